package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/tablemarket-server/internal/model"
)

// Restaurants exposes read-only lookups over seeded reference data.
type Restaurants struct {
	store model.RestaurantStore
}

func NewRestaurants(store model.RestaurantStore) *Restaurants {
	return &Restaurants{store: store}
}

func (s *Restaurants) GetByID(ctx context.Context, id uuid.UUID) (model.Restaurant, error) {
	r, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.Restaurant{}, fmt.Errorf("failed to get restaurant %s: %w", id, err)
	}
	return r, nil
}

func (s *Restaurants) List(ctx context.Context) ([]model.Restaurant, error) {
	rs, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	return rs, nil
}
