package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/roomstay/server/internal/connect"
	"github.com/roomstay/server/internal/helpers"
	"github.com/roomstay/server/internal/models"
)

type RoomService struct {
	roomsRepo models.RoomsRepo
}

func NewRoomService(roomsRepo models.RoomsRepo) *RoomService {
	return &RoomService{
		roomsRepo: roomsRepo,
	}
}

func (rs *RoomService) CreateRoom(ctx context.Context, room *models.Room, hostId uuid.UUID) (*models.Room, error) {
	if err := models.Validate.Struct(room); err != nil {
		return nil, fmt.Errorf("invalid room data provided: %v", err)
	}

	if room.Latitude < -90 || room.Latitude > 90 || room.Longitude < -180 || room.Longitude > 180 {
		return nil, fmt.Errorf("invalid coordinates")
	}

	if room.Id == uuid.Nil {
		room.Id = uuid.New()
	}

	// Local image paths go through Cloudinary; URLs are kept as-is.
	if room.Image != "" && !strings.HasPrefix(room.Image, "http") {
		url, err := helpers.UploadImage(ctx, connect.Cld, room.Image, helpers.RoomFolder)
		if err != nil {
			return nil, fmt.Errorf("failed to upload room image: %v", err)
		}
		room.Image = url
	}

	now := time.Now()
	room.HostId = hostId
	room.CreatedAt = now
	room.UpdatedAt = now

	return rs.roomsRepo.CreateRoom(ctx, room)
}

func (rs *RoomService) ListRooms(ctx context.Context, offset, limit int) ([]*models.Room, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}

	return rs.roomsRepo.ListRooms(ctx, offset, limit)
}

func (rs *RoomService) GetRoomByID(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid room ID")
	}

	return rs.roomsRepo.GetRoomByID(ctx, id)
}
