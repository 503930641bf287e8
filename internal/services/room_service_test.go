package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/roomstay/server/internal/models"
)

type fakeRoomsRepo struct {
	rooms []*models.Room
}

func (f *fakeRoomsRepo) CreateRoom(ctx context.Context, room *models.Room) (*models.Room, error) {
	f.rooms = append(f.rooms, room)
	return room, nil
}

func (f *fakeRoomsRepo) GetRoomByID(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	for _, r := range f.rooms {
		if r.Id == id {
			return r, nil
		}
	}
	return nil, models.ErrRoomNotFound
}

func (f *fakeRoomsRepo) ListRooms(ctx context.Context, offset, limit int) ([]*models.Room, int, error) {
	return f.rooms, len(f.rooms), nil
}

func TestCreateRoomAssignsIDAndHost(t *testing.T) {
	repo := &fakeRoomsRepo{}
	svc := NewRoomService(repo)

	hostId := uuid.New()
	room := &models.Room{
		Location:    "District 1, Ho Chi Minh City",
		Description: "Bright studio near the market",
		Price:       45,
		Amenities:   []string{"wifi", "air conditioning"},
		Image:       "https://example.com/rooms/studio.jpg",
		Latitude:    10.7769,
		Longitude:   106.7009,
	}

	created, err := svc.CreateRoom(context.Background(), room, hostId)
	if err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}
	if created.Id == uuid.Nil {
		t.Error("expected a generated room id")
	}
	if created.HostId != hostId {
		t.Error("room should carry the creating host's id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("timestamps should be set on create")
	}
}

func TestCreateRoomValidation(t *testing.T) {
	svc := NewRoomService(&fakeRoomsRepo{})

	cases := []struct {
		name string
		room *models.Room
	}{
		{"missing location", &models.Room{Price: 45}},
		{"zero price", &models.Room{Location: "Hanoi"}},
		{"negative price", &models.Room{Location: "Hanoi", Price: -10}},
		{"bad latitude", &models.Room{Location: "Hanoi", Price: 45, Latitude: 120}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateRoom(context.Background(), tc.room, uuid.New()); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestListRoomsRejectsBadPagination(t *testing.T) {
	svc := NewRoomService(&fakeRoomsRepo{})

	if _, _, err := svc.ListRooms(context.Background(), -1, 10); err == nil {
		t.Error("negative offset should be rejected")
	}
	if _, _, err := svc.ListRooms(context.Background(), 0, 0); err == nil {
		t.Error("zero limit should be rejected")
	}
}

func TestGetRoomByID(t *testing.T) {
	repo := &fakeRoomsRepo{}
	svc := NewRoomService(repo)

	room := &models.Room{Location: "Da Nang", Price: 30}
	created, err := svc.CreateRoom(context.Background(), room, uuid.New())
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.GetRoomByID(context.Background(), created.Id)
	if err != nil {
		t.Fatalf("GetRoomByID failed: %v", err)
	}
	if got.Id != created.Id {
		t.Error("returned the wrong room")
	}

	if _, err := svc.GetRoomByID(context.Background(), uuid.Nil); err == nil {
		t.Error("nil id should be rejected")
	}
}
