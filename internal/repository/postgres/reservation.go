package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/dtroode/tablemarket-server/internal/model"
)

var _ model.ReservationStore = (*ReservationRepository)(nil)

const reservationColumns = `id, restaurant_id, seller_id, current_owner_id, party_size, price,
		       date, time, is_closed, is_sold, created_at, updated_at`

type ReservationRepository struct {
	db *Connection
}

func NewReservationRepository(db *Connection) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res model.Reservation) (model.Reservation, error) {
	query := `
		INSERT INTO reservations (id, restaurant_id, seller_id, current_owner_id, party_size, price, date, time, is_closed, is_sold)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + reservationColumns

	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}

	saved, err := scanReservation(r.db.QueryRow(ctx, query,
		res.ID, res.RestaurantID, res.SellerID, res.CurrentOwnerID, res.PartySize, res.Price,
		res.Date, toPgTime(res.Time), res.IsClosed, res.IsSold,
	))
	if err != nil {
		return model.Reservation{}, fmt.Errorf("failed to create reservation: %w", translateError(err))
	}

	return saved, nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	res, err := scanReservation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return model.Reservation{}, fmt.Errorf("failed to get reservation by id: %w", translateError(err))
	}

	return res, nil
}

// ListByOwner returns open reservations currently held by ownerID.
func (r *ReservationRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE current_owner_id = $1 AND is_closed = FALSE
		ORDER BY date, time`

	return r.list(ctx, query, ownerID)
}

// ListOpen returns every reservation that is not closed.
func (r *ReservationRepository) ListOpen(ctx context.Context) ([]model.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE is_closed = FALSE
		ORDER BY date, time`

	return r.list(ctx, query)
}

func (r *ReservationRepository) list(ctx context.Context, query string, args ...any) ([]model.Reservation, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer rows.Close()

	var reservations []model.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reservations: %w", err)
	}

	return reservations, nil
}

// Update applies the non-nil fields of update in a single statement.
func (r *ReservationRepository) Update(ctx context.Context, id uuid.UUID, update model.ReservationUpdate) (model.Reservation, error) {
	query := `
		UPDATE reservations SET
		    restaurant_id = COALESCE($2, restaurant_id),
		    current_owner_id = COALESCE($3, current_owner_id),
		    party_size = COALESCE($4, party_size),
		    price = COALESCE($5, price),
		    date = COALESCE($6, date),
		    time = COALESCE($7, time),
		    is_closed = COALESCE($8, is_closed),
		    is_sold = COALESCE($9, is_sold),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + reservationColumns

	var pgTime *pgtype.Time
	if update.Time != nil {
		t := toPgTime(*update.Time)
		pgTime = &t
	}

	res, err := scanReservation(r.db.QueryRow(ctx, query, id,
		update.RestaurantID, update.CurrentOwnerID, update.PartySize, update.Price,
		update.Date, pgTime, update.IsClosed, update.IsSold,
	))
	if err != nil {
		return model.Reservation{}, fmt.Errorf("failed to update reservation: %w", translateError(err))
	}

	return res, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reservation: %w", translateError(err))
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// CloseBefore marks every open reservation dated strictly before date as
// closed and returns how many rows changed. Only the calendar date of the
// argument is compared; the reservation time of day is not consulted.
func (r *ReservationRepository) CloseBefore(ctx context.Context, date time.Time) (int64, error) {
	const query = `
		UPDATE reservations
		SET is_closed = TRUE, updated_at = NOW()
		WHERE date < $1 AND is_closed = FALSE`

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	cmd, err := r.db.Exec(ctx, query, day)
	if err != nil {
		return 0, fmt.Errorf("failed to close expired reservations: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func scanReservation(row pgx.Row) (model.Reservation, error) {
	var (
		res    model.Reservation
		pgTime pgtype.Time
	)
	err := row.Scan(
		&res.ID, &res.RestaurantID, &res.SellerID, &res.CurrentOwnerID, &res.PartySize, &res.Price,
		&res.Date, &pgTime, &res.IsClosed, &res.IsSold, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return model.Reservation{}, err
	}
	res.Time = fromPgTime(pgTime)
	return res, nil
}

func toPgTime(t model.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: time.Duration(t).Microseconds(), Valid: true}
}

func fromPgTime(t pgtype.Time) model.TimeOfDay {
	if !t.Valid {
		return 0
	}
	return model.TimeOfDay(time.Duration(t.Microseconds) * time.Microsecond)
}
