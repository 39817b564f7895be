// Package app assembles the services a consumer (web layer, sweeper) needs
// on top of one shared database connection.
package app

import (
	"github.com/dtroode/tablemarket-server/internal/config"
	"github.com/dtroode/tablemarket-server/internal/logger"
	"github.com/dtroode/tablemarket-server/internal/repository/postgres"
	"github.com/dtroode/tablemarket-server/internal/service"
	"github.com/dtroode/tablemarket-server/internal/token"
)

// App holds the wired services.
type App struct {
	Users        *service.Users
	Restaurants  *service.Restaurants
	Reservations *service.Reservations
	Sessions     *service.Sessions
}

// New wires repositories and services over db.
func New(db *postgres.Connection, cfg *config.Config, logger *logger.Logger) *App {
	users := service.NewUsers(postgres.NewUserRepository(db), cfg.Auth.BcryptCost, logger)

	return &App{
		Users:        users,
		Restaurants:  service.NewRestaurants(postgres.NewRestaurantRepository(db)),
		Reservations: service.NewReservations(postgres.NewReservationRepository(db), logger),
		Sessions:     service.NewSessions(users, token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL), logger),
	}
}
