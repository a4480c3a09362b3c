package client

import (
	"context"

	"github.com/dmitrijs2005/sporttogether/internal/api"
)

type Client interface {
	// Login returns the session fields of a successful login.
	Login(ctx context.Context, creds any) (map[string]any, error)
	// Register returns the registration message.
	Register(ctx context.Context, fields any) (string, error)
	GamesForUser(ctx context.Context, userID string) (*api.UserGames, error)
	GamesByIDs(ctx context.Context, ids []string) ([]api.GameRecord, error)
	SearchGames(ctx context.Context, location string) ([]api.GameRecord, error)
	// UpdateGame returns the updated record, or nil when the server reports
	// that nothing changed.
	UpdateGame(ctx context.Context, fields any) (*api.GameRecord, error)
	CreateGame(ctx context.Context, fields any) (string, error)
	JoinGame(ctx context.Context, gameID, userID string) (string, error)
	// WithdrawGame takes the user out of a game. An owner leaving orphans it.
	WithdrawGame(ctx context.Context, gameID, userID string) (string, error)
	DeleteAccount(ctx context.Context, userID string) (string, error)
	Ping(ctx context.Context) error
}
