package items

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/whattowear/internal/common"
	"github.com/dmitrijs2005/whattowear/internal/server/models"
)

type memoryItem struct {
	item models.ClothingItem
	seq  uint64
}

// MemoryRepository keeps items in process memory. Safe for concurrent use.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]*memoryItem
	seq   uint64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]*memoryItem)}
}

func clone(it models.ClothingItem) *models.ClothingItem {
	it.Likes = append([]string{}, it.Likes...)
	return &it
}

func (r *MemoryRepository) Create(_ context.Context, item *models.ClothingItem) (*models.ClothingItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = models.NewID()
	}
	if _, taken := r.items[item.ID]; taken {
		return nil, common.ErrAlreadyExists
	}
	item.CreatedAt = time.Now().UTC()
	item.Likes = []string{}

	r.seq++
	r.items[item.ID] = &memoryItem{item: *clone(*item), seq: r.seq}
	return clone(*item), nil
}

func (r *MemoryRepository) List(_ context.Context) ([]models.ClothingItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*memoryItem, 0, len(r.items))
	for _, mi := range r.items {
		all = append(all, mi)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seq > all[j].seq })

	out := make([]models.ClothingItem, 0, len(all))
	for _, mi := range all {
		out = append(out, *clone(mi.item))
	}
	return out, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*models.ClothingItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mi, ok := r.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return clone(mi.item), nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *MemoryRepository) AddLike(_ context.Context, id, userID string) (*models.ClothingItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	mi, ok := r.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	if !slices.Contains(mi.item.Likes, userID) {
		mi.item.Likes = append(mi.item.Likes, userID)
	}
	return clone(mi.item), nil
}

func (r *MemoryRepository) RemoveLike(_ context.Context, id, userID string) (*models.ClothingItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	mi, ok := r.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	mi.item.Likes = slices.DeleteFunc(mi.item.Likes, func(u string) bool { return u == userID })
	return clone(mi.item), nil
}
