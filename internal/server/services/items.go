package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/whattowear/internal/common"
	"github.com/dmitrijs2005/whattowear/internal/logging"
	"github.com/dmitrijs2005/whattowear/internal/server/apperr"
	"github.com/dmitrijs2005/whattowear/internal/server/models"
	"github.com/dmitrijs2005/whattowear/internal/server/repositories/repomanager"
)

const (
	msgItemNotFound  = "Item not found"
	msgInvalidItemID = "Invalid item ID"
	msgNotItemOwner  = "You are not allowed to delete this item"
)

// ItemsCache holds the full item list. GetOrLoad calls load on a miss and
// stores its result; Invalidate drops the cached list after a write.
type ItemsCache interface {
	GetOrLoad(ctx context.Context, load func(context.Context) ([]models.ClothingItem, error)) ([]models.ClothingItem, error)
	Invalidate(ctx context.Context) error
}

// NewItem is the validated create payload.
type NewItem struct {
	Name     string
	Weather  models.Weather
	ImageURL string
}

type ItemService struct {
	repomanager repomanager.RepositoryManager
	cache       ItemsCache
	logger      logging.Logger
}

// NewItemService builds an ItemService. cache may be nil.
func NewItemService(m repomanager.RepositoryManager, cache ItemsCache, l logging.Logger) *ItemService {
	return &ItemService{
		repomanager: m,
		cache:       cache,
		logger:      l.With("module", "item_service"),
	}
}

// List returns every item, newest first, through the cache when one is set.
func (s *ItemService) List(ctx context.Context) ([]models.ClothingItem, error) {
	load := func(ctx context.Context) ([]models.ClothingItem, error) {
		return s.repomanager.Items().List(ctx)
	}

	var (
		list []models.ClothingItem
		err  error
	)
	if s.cache != nil {
		list, err = s.cache.GetOrLoad(ctx, load)
	} else {
		list, err = load(ctx)
	}
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("error listing items: %w", err))
	}

	if list == nil {
		list = []models.ClothingItem{}
	}
	for i := range list {
		list[i].Normalize()
	}
	return list, nil
}

// Create stores a new item owned by ownerID with no likes.
func (s *ItemService) Create(ctx context.Context, ownerID string, in NewItem) (*models.ClothingItem, error) {
	item := &models.ClothingItem{
		Name:     in.Name,
		Weather:  in.Weather,
		ImageURL: in.ImageURL,
		Owner:    ownerID,
		Likes:    []string{},
	}

	created, err := s.repomanager.Items().Create(ctx, item)
	if err != nil {
		return nil, itemError(err)
	}
	s.invalidate(ctx)
	return created.Normalize(), nil
}

// Delete removes item id if userID owns it and returns the removed item.
func (s *ItemService) Delete(ctx context.Context, userID, id string) (*models.ClothingItem, error) {
	repo := s.repomanager.Items()

	item, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, itemError(err)
	}
	if item.Owner != userID {
		return nil, apperr.Forbidden(msgNotItemOwner)
	}

	if err := repo.Delete(ctx, id); err != nil {
		return nil, itemError(err)
	}
	s.invalidate(ctx)
	return item.Normalize(), nil
}

// Like adds userID to the item's likes. Liking twice is a no-op.
func (s *ItemService) Like(ctx context.Context, userID, id string) (*models.ClothingItem, error) {
	item, err := s.repomanager.Items().AddLike(ctx, id, userID)
	if err != nil {
		return nil, itemError(err)
	}
	s.invalidate(ctx)
	return item.Normalize(), nil
}

// Unlike removes userID from the item's likes, if present.
func (s *ItemService) Unlike(ctx context.Context, userID, id string) (*models.ClothingItem, error) {
	item, err := s.repomanager.Items().RemoveLike(ctx, id, userID)
	if err != nil {
		return nil, itemError(err)
	}
	s.invalidate(ctx)
	return item.Normalize(), nil
}

func (s *ItemService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn(ctx, "items cache invalidation failed", "error", err)
	}
}

func itemError(err error) error {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return apperr.Wrap(apperr.KindNotFound, msgItemNotFound, err)
	case errors.Is(err, common.ErrInvalidID):
		return apperr.Wrap(apperr.KindBadRequest, msgInvalidItemID, err)
	case errors.Is(err, common.ErrValidation):
		return apperr.Wrap(apperr.KindBadRequest, "Invalid item data", err)
	default:
		return apperr.Internal(err)
	}
}
