package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/roomstay/server/internal/clock"
	"github.com/roomstay/server/internal/models"
)

// BookingService owns the booking lifecycle: creation, partitioned retrieval
// and cancellation. It is stateless; all booking state lives in the repo, and
// every list call re-fetches so the service can never serve a stale view.
type BookingService struct {
	bookingsRepo models.BookingsRepo
	clock        clock.Clock
}

func NewBookingService(bookingsRepo models.BookingsRepo, clk clock.Clock) *BookingService {
	return &BookingService{
		bookingsRepo: bookingsRepo,
		clock:        clk,
	}
}

// CreateBooking persists a new booking for the given user. The room reference
// is trusted as-is: the caller resolved it from the catalog in order to book
// it, and rooms removed later do not invalidate existing bookings.
func (bs *BookingService) CreateBooking(ctx context.Context, userId, roomId uuid.UUID, bookingDate time.Time) (*models.Booking, error) {
	if userId == uuid.Nil {
		return nil, models.ErrUnauthenticated
	}
	if roomId == uuid.Nil {
		return nil, fmt.Errorf("invalid room ID")
	}
	if bookingDate.IsZero() {
		return nil, models.ErrInvalidBookingDate
	}

	booking := &models.Booking{
		Id:          uuid.New(),
		RoomId:      roomId,
		UserId:      userId,
		BookingDate: models.DateOnly(bookingDate),
		CreatedAt:   bs.clock.Now(),
	}

	if err := models.Validate.Struct(booking); err != nil {
		return nil, fmt.Errorf("invalid booking data provided: %v", err)
	}

	return bs.bookingsRepo.InsertBooking(ctx, booking)
}

// ListBookings fetches every booking for the user and partitions it around
// asOf: dates on or after asOf's calendar date are upcoming (soonest first),
// everything earlier is past (most recent first). A zero asOf means "now".
// Equal dates keep the repository's order, which is stable across calls.
func (bs *BookingService) ListBookings(ctx context.Context, userId uuid.UUID, asOf time.Time) (*models.BookingList, error) {
	if userId == uuid.Nil {
		return nil, models.ErrUnauthenticated
	}
	if asOf.IsZero() {
		asOf = bs.clock.Now()
	}

	bookings, err := bs.bookingsRepo.QueryBookingsByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	cutoff := models.DateOnly(asOf)
	list := &models.BookingList{
		Upcoming: []*models.Booking{},
		Past:     []*models.Booking{},
	}
	for _, b := range bookings {
		if b.BookingDate.Before(cutoff) {
			list.Past = append(list.Past, b)
		} else {
			list.Upcoming = append(list.Upcoming, b)
		}
	}

	sort.SliceStable(list.Upcoming, func(i, j int) bool {
		return list.Upcoming[i].BookingDate.Before(list.Upcoming[j].BookingDate)
	})
	sort.SliceStable(list.Past, func(i, j int) bool {
		return list.Past[i].BookingDate.After(list.Past[j].BookingDate)
	})

	return list, nil
}

// GetBooking looks up a single booking by id, for ownership checks before
// cancellation.
func (bs *BookingService) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	if id == uuid.Nil {
		return nil, models.ErrBookingNotFound
	}
	return bs.bookingsRepo.GetBookingByID(ctx, id)
}

// CanCancel reports whether the booking's date is strictly after asOf's
// calendar date. A booking for today or earlier is no longer cancellable.
// Pure; callers re-evaluate at action time since time may have advanced.
func (bs *BookingService) CanCancel(booking *models.Booking, asOf time.Time) bool {
	if booking == nil {
		return false
	}
	if asOf.IsZero() {
		asOf = bs.clock.Now()
	}
	return booking.BookingDate.After(models.DateOnly(asOf))
}

// CancelBooking deletes the booking if it is still eligible. An ineligible
// booking is left untouched. A booking already deleted by a concurrent cancel
// surfaces as ErrBookingNotFound.
func (bs *BookingService) CancelBooking(ctx context.Context, booking *models.Booking, asOf time.Time) error {
	if booking == nil {
		return models.ErrBookingNotFound
	}
	if !bs.CanCancel(booking, asOf) {
		return models.ErrCancellationClosed
	}

	return bs.bookingsRepo.DeleteBookingByID(ctx, booking.Id)
}
