package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/roomstay/server/internal/clock"
	"github.com/roomstay/server/internal/helpers"
	"github.com/roomstay/server/internal/models"
	"github.com/roomstay/server/internal/services"
)

type memBookingsRepo struct {
	bookings []*models.Booking
}

func (m *memBookingsRepo) InsertBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	m.bookings = append(m.bookings, booking)
	return booking, nil
}

func (m *memBookingsRepo) GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	for _, b := range m.bookings {
		if b.Id == id {
			return b, nil
		}
	}
	return nil, models.ErrBookingNotFound
}

func (m *memBookingsRepo) QueryBookingsByUser(ctx context.Context, userId uuid.UUID) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range m.bookings {
		if b.UserId == userId {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookingsRepo) DeleteBookingByID(ctx context.Context, id uuid.UUID) error {
	for i, b := range m.bookings {
		if b.Id == id {
			m.bookings = append(m.bookings[:i], m.bookings[i+1:]...)
			return nil
		}
	}
	return models.ErrBookingNotFound
}

func testClaims(userId uuid.UUID, role string) *helpers.EnhancedClaims {
	return &helpers.EnhancedClaims{
		CustomClaims: &helpers.CustomClaims{},
		Role:         role,
		UserID:       userId.String(),
	}
}

func bookingsRouter(b *services.BookingService, claims *helpers.EnhancedClaims) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if claims != nil {
		r.Use(func(c *gin.Context) {
			c.Set("user", claims)
			c.Next()
		})
	}
	r.POST("/bookings", CreateBooking(b))
	r.GET("/bookings", ListBookings(b))
	r.DELETE("/bookings/:id", CancelBooking(b))
	return r
}

func TestCreateBookingHandler(t *testing.T) {
	repo := &memBookingsRepo{}
	svc := services.NewBookingService(repo, clock.NewFixed(time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)))
	userId := uuid.New()
	router := bookingsRouter(svc, testClaims(userId, "guest"))

	body := fmt.Sprintf(`{"room_id":%q,"booking_date":"2025-12-01T00:00:00Z"}`, uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var res models.ApiResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !res.Success {
		t.Error("expected success response")
	}
	if len(repo.bookings) != 1 {
		t.Fatalf("expected one persisted booking, got %d", len(repo.bookings))
	}
	if repo.bookings[0].UserId != userId {
		t.Error("booking must carry the authenticated user's id")
	}
}

func TestCreateBookingHandlerUnauthenticated(t *testing.T) {
	repo := &memBookingsRepo{}
	svc := services.NewBookingService(repo, clock.NewSystem())
	router := bookingsRouter(svc, nil)

	body := fmt.Sprintf(`{"room_id":%q,"booking_date":"2025-12-01T00:00:00Z"}`, uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	if len(repo.bookings) != 0 {
		t.Error("nothing should be persisted without an identity")
	}
}

func TestCreateBookingHandlerBadPayload(t *testing.T) {
	svc := services.NewBookingService(&memBookingsRepo{}, clock.NewSystem())
	router := bookingsRouter(svc, testClaims(uuid.New(), "guest"))

	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(`{"room_id":"not-a-uuid"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestListBookingsHandlerPartitions(t *testing.T) {
	repo := &memBookingsRepo{}
	svc := services.NewBookingService(repo, clock.NewFixed(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	userId := uuid.New()
	router := bookingsRouter(svc, testClaims(userId, "guest"))

	mustCreate := func(d time.Time) {
		t.Helper()
		if _, err := svc.CreateBooking(context.Background(), userId, uuid.New(), d); err != nil {
			t.Fatal(err)
		}
	}
	mustCreate(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC))
	mustCreate(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	req := httptest.NewRequest(http.MethodGet, "/bookings?as_of=2025-06-01T00:00:00Z", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var res struct {
		Success bool               `json:"success"`
		Data    models.BookingList `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(res.Data.Upcoming) != 1 || len(res.Data.Past) != 1 {
		t.Errorf("expected 1 upcoming and 1 past, got %d and %d",
			len(res.Data.Upcoming), len(res.Data.Past))
	}
}

func TestListBookingsHandlerRejectsBadAsOf(t *testing.T) {
	svc := services.NewBookingService(&memBookingsRepo{}, clock.NewSystem())
	router := bookingsRouter(svc, testClaims(uuid.New(), "guest"))

	req := httptest.NewRequest(http.MethodGet, "/bookings?as_of=yesterday", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCancelBookingHandler(t *testing.T) {
	repo := &memBookingsRepo{}
	svc := services.NewBookingService(repo, clock.NewFixed(time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)))
	userId := uuid.New()
	router := bookingsRouter(svc, testClaims(userId, "guest"))

	booking, err := svc.CreateBooking(context.Background(), userId, uuid.New(),
		time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/bookings/"+booking.Id.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// Cancelling again: the booking is gone
	req = httptest.NewRequest(http.MethodDelete, "/bookings/"+booking.Id.String(), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second cancel, got %d", w.Code)
	}
}

func TestCancelBookingHandlerIneligible(t *testing.T) {
	repo := &memBookingsRepo{}
	svc := services.NewBookingService(repo, clock.NewFixed(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	userId := uuid.New()
	router := bookingsRouter(svc, testClaims(userId, "guest"))

	booking, err := svc.CreateBooking(context.Background(), userId, uuid.New(),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/bookings/"+booking.Id.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	if len(repo.bookings) != 1 {
		t.Error("ineligible cancel must not delete the booking")
	}
}

func TestCancelBookingHandlerForbiddenForOtherUser(t *testing.T) {
	repo := &memBookingsRepo{}
	svc := services.NewBookingService(repo, clock.NewFixed(time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)))

	owner := uuid.New()
	booking, err := svc.CreateBooking(context.Background(), owner, uuid.New(),
		time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}

	// A different, non-admin user
	router := bookingsRouter(svc, testClaims(uuid.New(), "guest"))
	req := httptest.NewRequest(http.MethodDelete, "/bookings/"+booking.Id.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
	if len(repo.bookings) != 1 {
		t.Error("booking must survive a forbidden cancel attempt")
	}
}
