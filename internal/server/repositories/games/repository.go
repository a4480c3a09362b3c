package games

import (
	"context"

	"github.com/dmitrijs2005/sporttogether/internal/server/models"
)

type Repository interface {
	// Create inserts game and returns it with ID and CreatedAt set.
	Create(ctx context.Context, game *models.Game) (*models.Game, error)
	// GetByID returns the game with its attendees, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Game, error)
	// Search lists games at location (case-insensitive). An empty sport
	// matches every type.
	Search(ctx context.Context, location, sport string) ([]models.Game, error)
	// Update overwrites the editable fields of game and reports whether any
	// of them actually changed.
	Update(ctx context.Context, game *models.Game) (bool, error)
	// AddAttendee reports false when the user had already joined.
	AddAttendee(ctx context.Context, gameID string, a models.Attendee) (bool, error)
	// RemoveAttendee reports false when the user was not attending.
	RemoveAttendee(ctx context.Context, gameID, userID string) (bool, error)
	// ClearOwner orphans the game if userID owns it and reports whether it
	// did.
	ClearOwner(ctx context.Context, gameID, userID string) (bool, error)

	OwnedIDs(ctx context.Context, userID string) ([]string, error)
	JoinedIDs(ctx context.Context, userID string) ([]string, error)
	// OrphanedIDs lists joined games that no longer have an owner.
	OrphanedIDs(ctx context.Context, userID string) ([]string, error)
}
