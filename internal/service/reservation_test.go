package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/tablemarket-server/internal/mocks"
	"github.com/dtroode/tablemarket-server/internal/model"
	"github.com/dtroode/tablemarket-server/internal/testutil"
)

func newReservations(t *testing.T) (*Reservations, *mocks.ReservationStore) {
	store := mocks.NewReservationStore(t)
	return NewReservations(store, testutil.MakeNoopLogger()), store
}

func TestReservations_Create_OwnerIsSeller(t *testing.T) {
	s, store := newReservations(t)

	params := model.CreateReservationParams{
		RestaurantID: uuid.New(),
		SellerID:     uuid.New(),
		PartySize:    4,
		Price:        25.5,
		Date:         time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
		Time:         model.NewTimeOfDay(19, 30),
	}

	store.On("Create", mock.Anything, mock.Anything).
		Return(func(_ context.Context, r model.Reservation) model.Reservation { return r }, nil)

	res, err := s.Create(context.Background(), params)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, res.ID)
	assert.Equal(t, params.SellerID, res.SellerID)
	assert.Equal(t, params.SellerID, res.CurrentOwnerID)
	assert.Equal(t, params.RestaurantID, res.RestaurantID)
	assert.Equal(t, 4, res.PartySize)
	assert.Equal(t, 25.5, res.Price)
	assert.Equal(t, params.Date, res.Date)
	assert.Equal(t, params.Time, res.Time)
	assert.False(t, res.IsClosed)
	assert.False(t, res.IsSold)
}

func TestReservations_Create_StoreError(t *testing.T) {
	s, store := newReservations(t)

	store.On("Create", mock.Anything, mock.Anything).Return(model.Reservation{}, errors.New("fk violation"))

	_, err := s.Create(context.Background(), model.CreateReservationParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create reservation")
}

func TestReservations_Sell(t *testing.T) {
	s, store := newReservations(t)
	id, seller, buyer := uuid.New(), uuid.New(), uuid.New()

	store.On("Update", mock.Anything, id, mock.MatchedBy(func(u model.ReservationUpdate) bool {
		return u.CurrentOwnerID != nil && *u.CurrentOwnerID == buyer &&
			u.IsSold != nil && *u.IsSold &&
			u.IsClosed == nil && u.Price == nil
	})).Return(model.Reservation{ID: id, SellerID: seller, CurrentOwnerID: buyer, IsSold: true}, nil)

	res, err := s.Sell(context.Background(), id, buyer)
	require.NoError(t, err)
	assert.Equal(t, seller, res.SellerID)
	assert.Equal(t, buyer, res.CurrentOwnerID)
	assert.True(t, res.IsSold)
}

func TestReservations_Update_NotFound(t *testing.T) {
	s, store := newReservations(t)
	id := uuid.New()
	price := 10.0

	store.On("Update", mock.Anything, id, model.ReservationUpdate{Price: &price}).Return(model.Reservation{}, model.ErrNotFound)

	_, err := s.Update(context.Background(), id, model.ReservationUpdate{Price: &price})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestReservations_Delete(t *testing.T) {
	s, store := newReservations(t)
	existing, missing := uuid.New(), uuid.New()

	store.On("Delete", mock.Anything, existing).Return(nil)
	store.On("Delete", mock.Anything, missing).Return(model.ErrNotFound)

	require.NoError(t, s.Delete(context.Background(), existing))
	assert.ErrorIs(t, s.Delete(context.Background(), missing), model.ErrNotFound)
}

func TestReservations_Lists(t *testing.T) {
	s, store := newReservations(t)
	owner := uuid.New()
	open := []model.Reservation{{ID: uuid.New(), CurrentOwnerID: owner}}

	store.On("ListByOwner", mock.Anything, owner).Return(open, nil)
	store.On("ListOpen", mock.Anything).Return(nil, errors.New("timeout"))

	got, err := s.ListByOwner(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, open, got)

	_, err = s.ListOpen(context.Background())
	require.Error(t, err)
}

func TestReservations_CloseExpired(t *testing.T) {
	s, store := newReservations(t)
	now := time.Date(2026, 10, 19, 15, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return now }

	store.On("CloseBefore", mock.Anything, now).Return(int64(3), nil)

	closed, err := s.CloseExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), closed)
}

func TestReservations_CloseExpired_Error(t *testing.T) {
	s, store := newReservations(t)

	store.On("CloseBefore", mock.Anything, mock.Anything).Return(int64(0), errors.New("lock timeout"))

	_, err := s.CloseExpired(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to close expired reservations")
}
