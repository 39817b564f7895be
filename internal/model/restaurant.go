package model

import (
	"context"

	"github.com/google/uuid"
)

// RestaurantStore defines read operations for restaurant reference data.
type RestaurantStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (Restaurant, error)
	List(ctx context.Context) ([]Restaurant, error)
}

// Restaurant is static reference data populated by the seed step.
type Restaurant struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Cuisine  string    `json:"cuisine"`
	URL      string    `json:"url"`
	ImageURL string    `json:"image_url"`
	Address  string    `json:"address"`
	Phone    string    `json:"phone"`
}
