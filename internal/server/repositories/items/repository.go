// Package items stores clothing items and their likes. Likes are changed
// with a single conditional write per backend so concurrent likers never
// lose each other's updates.
package items

import (
	"context"

	"github.com/dmitrijs2005/whattowear/internal/server/models"
)

type Repository interface {
	// Create stores item, assigning an ID when it has none.
	Create(ctx context.Context, item *models.ClothingItem) (*models.ClothingItem, error)
	// List returns every item, newest first.
	List(ctx context.Context) ([]models.ClothingItem, error)
	GetByID(ctx context.Context, id string) (*models.ClothingItem, error)
	// Delete removes the item; common.ErrNotFound when nothing was removed.
	Delete(ctx context.Context, id string) error
	// AddLike and RemoveLike return the item after the change.
	AddLike(ctx context.Context, id, userID string) (*models.ClothingItem, error)
	RemoveLike(ctx context.Context, id, userID string) (*models.ClothingItem, error)
}
