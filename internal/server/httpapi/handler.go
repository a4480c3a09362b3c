package httpapi

import (
	"context"

	"github.com/dmitrijs2005/sporttogether/internal/logging"
	"github.com/dmitrijs2005/sporttogether/internal/server/assets"
	"github.com/dmitrijs2005/sporttogether/internal/server/models"
	"github.com/dmitrijs2005/sporttogether/internal/server/services"
)

// UserService is the part of services.UserService the API needs.
type UserService interface {
	Register(ctx context.Context, r services.Registration) (string, error)
	Login(ctx context.Context, email, password string) (*services.Session, error)
	Delete(ctx context.Context, id string) error
	UserIDFromToken(token string) (string, error)
}

// GameService is the part of services.GameService the API needs.
type GameService interface {
	ReadForUser(ctx context.Context, userID string) (*services.UserGames, error)
	ReadByIDs(ctx context.Context, ids []string) ([]models.Game, error)
	Search(ctx context.Context, location, sport string) ([]models.Game, error)
	Create(ctx context.Context, ownerID string, g services.NewGame) (string, error)
	Update(ctx context.Context, userID string, u services.GameUpdate) (*models.Game, error)
	Join(ctx context.Context, gameID, userID string) error
	Withdraw(ctx context.Context, gameID, userID string) error
}

// Handler serves the API endpoints.
type Handler struct {
	users  UserService
	games  GameService
	icons  assets.IconStore
	logger logging.Logger
}

func NewHandler(users UserService, games GameService, icons assets.IconStore, logger logging.Logger) *Handler {
	return &Handler{
		users:  users,
		games:  games,
		icons:  icons,
		logger: logger.With("module", "httpapi"),
	}
}
