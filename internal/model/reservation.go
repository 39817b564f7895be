package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ReservationStore defines persistence operations for reservations.
type ReservationStore interface {
	Create(ctx context.Context, reservation Reservation) (Reservation, error)
	GetByID(ctx context.Context, id uuid.UUID) (Reservation, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Reservation, error)
	ListOpen(ctx context.Context) ([]Reservation, error)
	Update(ctx context.Context, id uuid.UUID, update ReservationUpdate) (Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CloseBefore(ctx context.Context, date time.Time) (int64, error)
}

// TimeOfDay is a wall-clock time stored as the offset from midnight.
type TimeOfDay time.Duration

// NewTimeOfDay builds a TimeOfDay from hours and minutes.
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// String formats the time as HH:MM.
func (t TimeOfDay) String() string {
	d := time.Duration(t)
	return time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC).Add(d).Format("15:04")
}

// Reservation is a table booking listed for resale.
//
// SellerID is the user who originally listed it, CurrentOwnerID the user who
// holds it now. IsClosed and IsSold are independent flags.
type Reservation struct {
	ID             uuid.UUID
	RestaurantID   uuid.UUID
	SellerID       uuid.UUID
	CurrentOwnerID uuid.UUID
	PartySize      int
	Price          float64
	Date           time.Time
	Time           TimeOfDay
	IsClosed       bool
	IsSold         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CreateReservationParams contains parameters to list a reservation.
type CreateReservationParams struct {
	RestaurantID uuid.UUID
	SellerID     uuid.UUID
	PartySize    int
	Price        float64
	Date         time.Time
	Time         TimeOfDay
}

// ReservationUpdate is a partial update. Nil fields are left untouched.
type ReservationUpdate struct {
	RestaurantID   *uuid.UUID
	CurrentOwnerID *uuid.UUID
	PartySize      *int
	Price          *float64
	Date           *time.Time
	Time           *TimeOfDay
	IsClosed       *bool
	IsSold         *bool
}
