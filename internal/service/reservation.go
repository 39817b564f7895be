package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/tablemarket-server/internal/logger"
	"github.com/dtroode/tablemarket-server/internal/model"
)

// Reservations implements the reservation lifecycle: listing, resale,
// edits, removal and the closing sweep.
type Reservations struct {
	store  model.ReservationStore
	logger *logger.Logger
	now    func() time.Time
}

func NewReservations(store model.ReservationStore, logger *logger.Logger) *Reservations {
	return &Reservations{store: store, logger: logger, now: time.Now}
}

// Create lists a reservation. The seller starts out as the current owner and
// both flags are false.
func (s *Reservations) Create(ctx context.Context, params model.CreateReservationParams) (model.Reservation, error) {
	s.logger.Debug("Reservations service: creating reservation",
		"restaurant_id", params.RestaurantID,
		"seller_id", params.SellerID)

	res, err := s.store.Create(ctx, model.Reservation{
		ID:             uuid.New(),
		RestaurantID:   params.RestaurantID,
		SellerID:       params.SellerID,
		CurrentOwnerID: params.SellerID,
		PartySize:      params.PartySize,
		Price:          params.Price,
		Date:           params.Date,
		Time:           params.Time,
	})
	if err != nil {
		s.logger.Error("Reservations service: failed to create reservation",
			"seller_id", params.SellerID,
			"error", err.Error())
		return model.Reservation{}, fmt.Errorf("failed to create reservation: %w", err)
	}

	s.logger.Info("Reservations service: reservation created",
		"reservation_id", res.ID,
		"seller_id", res.SellerID)

	return res, nil
}

func (s *Reservations) GetByID(ctx context.Context, id uuid.UUID) (model.Reservation, error) {
	res, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.Reservation{}, fmt.Errorf("failed to get reservation %s: %w", id, err)
	}
	return res, nil
}

// ListByOwner returns open reservations held by ownerID.
func (s *Reservations) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Reservation, error) {
	rs, err := s.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations for %s: %w", ownerID, err)
	}
	return rs, nil
}

// ListOpen returns every reservation still on the market.
func (s *Reservations) ListOpen(ctx context.Context) ([]model.Reservation, error) {
	rs, err := s.store.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open reservations: %w", err)
	}
	return rs, nil
}

// Update applies a partial update and returns the refreshed reservation.
func (s *Reservations) Update(ctx context.Context, id uuid.UUID, update model.ReservationUpdate) (model.Reservation, error) {
	res, err := s.store.Update(ctx, id, update)
	if err != nil {
		s.logger.Error("Reservations service: failed to update reservation",
			"reservation_id", id,
			"error", err.Error())
		return model.Reservation{}, fmt.Errorf("failed to update reservation %s: %w", id, err)
	}

	s.logger.Info("Reservations service: reservation updated",
		"reservation_id", id)

	return res, nil
}

// Sell hands the reservation to buyerID and marks it sold.
func (s *Reservations) Sell(ctx context.Context, id, buyerID uuid.UUID) (model.Reservation, error) {
	sold := true
	res, err := s.Update(ctx, id, model.ReservationUpdate{
		CurrentOwnerID: &buyerID,
		IsSold:         &sold,
	})
	if err != nil {
		return model.Reservation{}, err
	}

	s.logger.Info("Reservations service: reservation sold",
		"reservation_id", id,
		"seller_id", res.SellerID,
		"buyer_id", buyerID)

	return res, nil
}

// Delete removes a reservation.
func (s *Reservations) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			s.logger.Error("Reservations service: failed to delete reservation",
				"reservation_id", id,
				"error", err.Error())
		}
		return fmt.Errorf("failed to delete reservation %s: %w", id, err)
	}

	s.logger.Info("Reservations service: reservation deleted",
		"reservation_id", id)

	return nil
}

// CloseExpired closes every reservation dated before today and returns how
// many were closed. Reservations for today stay open even when their time
// of day has already passed.
func (s *Reservations) CloseExpired(ctx context.Context) (int64, error) {
	now := s.now()

	closed, err := s.store.CloseBefore(ctx, now)
	if err != nil {
		s.logger.Error("Reservations service: closing sweep failed",
			"error", err.Error())
		return 0, fmt.Errorf("failed to close expired reservations: %w", err)
	}

	s.logger.Info("Reservations service: closing sweep finished",
		"before", now.Format(time.DateOnly),
		"closed", closed)

	return closed, nil
}
