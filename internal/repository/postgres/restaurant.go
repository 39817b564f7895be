package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/tablemarket-server/internal/model"
)

var _ model.RestaurantStore = (*RestaurantRepository)(nil)

type RestaurantRepository struct {
	db *Connection
}

func NewRestaurantRepository(db *Connection) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

func (r *RestaurantRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Restaurant, error) {
	const query = `
		SELECT id, name, cuisine, url, image_url, address, phone
		FROM restaurants
		WHERE id = $1`

	var rest model.Restaurant
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rest.ID, &rest.Name, &rest.Cuisine, &rest.URL, &rest.ImageURL, &rest.Address, &rest.Phone,
	)
	if err != nil {
		return model.Restaurant{}, fmt.Errorf("failed to get restaurant by id: %w", translateError(err))
	}

	return rest, nil
}

func (r *RestaurantRepository) List(ctx context.Context) ([]model.Restaurant, error) {
	const query = `
		SELECT id, name, cuisine, url, image_url, address, phone
		FROM restaurants
		ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []model.Restaurant
	for rows.Next() {
		var rest model.Restaurant
		if err := rows.Scan(
			&rest.ID, &rest.Name, &rest.Cuisine, &rest.URL, &rest.ImageURL, &rest.Address, &rest.Phone,
		); err != nil {
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		restaurants = append(restaurants, rest)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate restaurants: %w", err)
	}

	return restaurants, nil
}
