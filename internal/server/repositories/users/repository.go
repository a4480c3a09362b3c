package users

import (
	"context"

	"github.com/dmitrijs2005/sporttogether/internal/server/models"
)

type Repository interface {
	// Create inserts user and returns it with ID and CreatedAt set. A taken
	// email address yields common.ErrorConflict.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	// Delete removes the account. Its attendances go with it and the games
	// it owned lose their owner. An unknown id yields common.ErrorNotFound.
	Delete(ctx context.Context, id string) error
}
