// Package users stores accounts. Every backend maps its own failures onto
// the common sentinels: a duplicate email is common.ErrAlreadyExists and a
// missing row is common.ErrNotFound.
package users

import (
	"context"

	"github.com/dmitrijs2005/whattowear/internal/server/models"
)

type Repository interface {
	// Create stores user, assigning an ID when it has none.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error)
}
