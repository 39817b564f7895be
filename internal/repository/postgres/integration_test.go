//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/tablemarket-server/database"
	"github.com/dtroode/tablemarket-server/internal/model"
	repo "github.com/dtroode/tablemarket-server/internal/repository/postgres"
	"github.com/dtroode/tablemarket-server/internal/seed"
	"github.com/dtroode/tablemarket-server/internal/service"
	"github.com/dtroode/tablemarket-server/internal/testutil"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "tablemarket_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/tablemarket_test?sslmode=disable", host, port.Port())

	seeder := seed.NewSeeder(seed.NewEmbeddedSource(), testutil.MakeNoopLogger())
	if err := database.Initialize(ctx, dsn, seeder); err != nil {
		panic(err)
	}
	// second run must be a no-op
	if err := database.Initialize(ctx, dsn, seeder); err != nil {
		panic(err)
	}

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func connect(t *testing.T) *repo.Connection {
	t.Helper()
	conn, err := repo.NewConnection(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestRestaurants_Seeded(t *testing.T) {
	ctx := context.Background()
	rr := repo.NewRestaurantRepository(connect(t))

	list, err := rr.List(ctx)
	require.NoError(t, err)
	want, err := seed.NewEmbeddedSource().Load(ctx)
	require.NoError(t, err)
	require.Len(t, list, len(want), "initialize twice must not duplicate seed rows")

	got, err := rr.GetByID(ctx, list[0].ID)
	require.NoError(t, err)
	require.Equal(t, list[0], got)

	_, err = rr.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	ur := repo.NewUserRepository(connect(t))

	saved, err := ur.Create(ctx, model.User{Username: "carol", Email: "carol@example.com", Password: "hash"})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, saved.ID)

	_, err = ur.Create(ctx, model.User{Username: "carol2", Email: "carol@example.com", Password: "hash"})
	require.ErrorIs(t, err, model.ErrAlreadyExists)
	_, err = ur.Create(ctx, model.User{Username: "carol", Email: "other@example.com", Password: "hash"})
	require.ErrorIs(t, err, model.ErrAlreadyExists)

	byEmail, err := ur.GetByEmail(ctx, "carol@example.com")
	require.NoError(t, err)
	require.Equal(t, saved.ID, byEmail.ID)

	name := "caroline"
	updated, err := ur.Update(ctx, saved.ID, model.UserUpdate{Username: &name})
	require.NoError(t, err)
	require.Equal(t, "caroline", updated.Username)
	require.Equal(t, "carol@example.com", updated.Email)
	require.Equal(t, "hash", updated.Password)

	_, err = ur.Update(ctx, uuid.New(), model.UserUpdate{Username: &name})
	require.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, ur.Delete(ctx, saved.ID))
	_, err = ur.GetByID(ctx, saved.ID)
	require.ErrorIs(t, err, model.ErrNotFound)
	require.ErrorIs(t, ur.Delete(ctx, saved.ID), model.ErrNotFound)
}

func TestUsersService_EndToEnd(t *testing.T) {
	ctx := context.Background()
	users := service.NewUsers(repo.NewUserRepository(connect(t)), 4, testutil.MakeNoopLogger())

	created, err := users.Create(ctx, "alice", "Alice@Example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", created.Email)

	_, err = users.Create(ctx, "alice-again", "ALICE@example.com", "x")
	require.ErrorIs(t, err, model.ErrAlreadyExists)

	got, err := users.Verify(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)

	_, err = users.Verify(ctx, "alice@example.com", "wrong")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)

	_, err = users.Verify(ctx, "ghost@example.com", "secret123")
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestReservationRepository_LifecycleAndSweep(t *testing.T) {
	ctx := context.Background()
	conn := connect(t)
	ur := repo.NewUserRepository(conn)
	rr := repo.NewRestaurantRepository(conn)
	reservations := service.NewReservations(repo.NewReservationRepository(conn), testutil.MakeNoopLogger())
	store := repo.NewReservationRepository(conn)

	seller, err := ur.Create(ctx, model.User{Username: "seller", Email: "seller@example.com", Password: "h"})
	require.NoError(t, err)
	buyer, err := ur.Create(ctx, model.User{Username: "buyer", Email: "buyer@example.com", Password: "h"})
	require.NoError(t, err)
	restaurants, err := rr.List(ctx)
	require.NoError(t, err)
	restaurantID := restaurants[0].ID

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	create := func(date time.Time, tod model.TimeOfDay) model.Reservation {
		res, err := reservations.Create(ctx, model.CreateReservationParams{
			RestaurantID: restaurantID,
			SellerID:     seller.ID,
			PartySize:    2,
			Price:        40,
			Date:         date,
			Time:         tod,
		})
		require.NoError(t, err)
		return res
	}

	past := create(today.AddDate(0, 0, -1), model.NewTimeOfDay(20, 0))
	earlierToday := create(today, model.NewTimeOfDay(0, 1))
	future := create(today.AddDate(0, 0, 7), model.NewTimeOfDay(19, 30))

	require.Equal(t, seller.ID, future.CurrentOwnerID)
	require.False(t, future.IsClosed)
	require.False(t, future.IsSold)
	require.Equal(t, model.NewTimeOfDay(19, 30), future.Time)
	require.True(t, today.AddDate(0, 0, 7).Equal(future.Date))

	sold, err := reservations.Sell(ctx, future.ID, buyer.ID)
	require.NoError(t, err)
	require.Equal(t, buyer.ID, sold.CurrentOwnerID)
	require.Equal(t, seller.ID, sold.SellerID)
	require.True(t, sold.IsSold)
	require.Equal(t, 2, sold.PartySize)

	owned, err := store.ListByOwner(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)

	closed, err := reservations.CloseExpired(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, closed, int64(1))

	got, err := store.GetByID(ctx, past.ID)
	require.NoError(t, err)
	require.True(t, got.IsClosed)

	// time of day is not consulted: a reservation for today stays open even
	// if its time has already passed
	got, err = store.GetByID(ctx, earlierToday.ID)
	require.NoError(t, err)
	require.False(t, got.IsClosed)

	got, err = store.GetByID(ctx, future.ID)
	require.NoError(t, err)
	require.False(t, got.IsClosed)
	require.True(t, got.IsSold)

	closed, err = reservations.CloseExpired(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(0), closed)

	require.NoError(t, reservations.Delete(ctx, past.ID))
	_, err = store.GetByID(ctx, past.ID)
	require.ErrorIs(t, err, model.ErrNotFound)
	require.ErrorIs(t, reservations.Delete(ctx, past.ID), model.ErrNotFound)

	_, err = reservations.Update(ctx, uuid.New(), model.ReservationUpdate{})
	require.ErrorIs(t, err, model.ErrNotFound)
}
