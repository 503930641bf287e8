package models

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	BookingsDbName  = "roomstay"
	BookingsColName = "bookings"
)

// Booking links a user to a room for a single calendar date. Bookings are
// immutable once created; the only lifecycle transition is deletion through
// cancellation.
type Booking struct {
	Id          uuid.UUID `bson:"_id" json:"id"`
	RoomId      uuid.UUID `bson:"room_id" json:"room_id" validate:"required"`
	UserId      uuid.UUID `bson:"user_id" json:"user_id" validate:"required"`
	BookingDate time.Time `bson:"booking_date" json:"booking_date" validate:"required"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// BookingList is a user's bookings split around an evaluation instant.
// Upcoming is sorted soonest first, Past most recent first. "Completed" is a
// display label for everything in Past, not a stored state.
type BookingList struct {
	Upcoming []*Booking `json:"upcoming"`
	Past     []*Booking `json:"past"`
}

// DateOnly strips the time-of-day, leaving a UTC calendar date. Booking dates
// are timezone-naive: all comparisons happen on UTC midnights.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

type BookingsRepo interface {
	InsertBooking(ctx context.Context, booking *Booking) (*Booking, error)
	GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	QueryBookingsByUser(ctx context.Context, userId uuid.UUID) ([]*Booking, error)
	DeleteBookingByID(ctx context.Context, id uuid.UUID) error
}
