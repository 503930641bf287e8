package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestDateOnly(t *testing.T) {
	in := time.Date(2025, 12, 1, 18, 45, 12, 500, time.UTC)
	got := DateOnly(in)
	want := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DateOnly(%v) = %v, want %v", in, got, want)
	}

	// Idempotent
	if !DateOnly(got).Equal(got) {
		t.Error("DateOnly should be idempotent")
	}
}

func TestDateOnlyNormalizesZones(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	// 01:30 on Dec 2 in ICT is still Dec 1 in UTC
	in := time.Date(2025, 12, 2, 1, 30, 0, 0, loc)
	got := DateOnly(in)
	want := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DateOnly(%v) = %v, want %v", in, got, want)
	}
}

func TestBookingValidation(t *testing.T) {
	valid := &Booking{
		Id:          uuid.New(),
		RoomId:      uuid.New(),
		UserId:      uuid.New(),
		BookingDate: DateOnly(time.Now().AddDate(0, 1, 0)),
		CreatedAt:   time.Now(),
	}
	if err := Validate.Struct(valid); err != nil {
		t.Errorf("valid booking rejected: %v", err)
	}

	missingRoom := &Booking{
		Id:          uuid.New(),
		UserId:      uuid.New(),
		BookingDate: DateOnly(time.Now()),
	}
	if err := Validate.Struct(missingRoom); err == nil {
		t.Error("booking without a room should fail validation")
	}

	missingDate := &Booking{
		Id:     uuid.New(),
		RoomId: uuid.New(),
		UserId: uuid.New(),
	}
	if err := Validate.Struct(missingDate); err == nil {
		t.Error("booking without a date should fail validation")
	}
}
