package models

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	RoomsDbName  = "roomstay"
	RoomsColName = "rooms"
)

// Room is a rentable listing in the catalog. Rooms are created by hosts and
// read-only for everyone else; bookings reference them by id.
type Room struct {
	Id          uuid.UUID `bson:"_id" json:"id"`
	Location    string    `bson:"location" json:"location" validate:"required"`
	Description string    `bson:"description" json:"description"`
	Price       float64   `bson:"price" json:"price" validate:"required,gt=0"`
	Amenities   []string  `bson:"amenities" json:"amenities,omitempty"`
	Image       string    `bson:"image" json:"image,omitempty"`
	Latitude    float64   `bson:"latitude" json:"latitude"`
	Longitude   float64   `bson:"longitude" json:"longitude"`
	HostId      uuid.UUID `bson:"host_id" json:"host_id,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

type RoomsRepo interface {
	CreateRoom(ctx context.Context, room *Room) (*Room, error)
	GetRoomByID(ctx context.Context, id uuid.UUID) (*Room, error)
	ListRooms(ctx context.Context, offset, limit int) ([]*Room, int, error)
}
