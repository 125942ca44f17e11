package items

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/whattowear/internal/common"
	"github.com/dmitrijs2005/whattowear/internal/dbx"
	"github.com/dmitrijs2005/whattowear/internal/server/models"
)

// PostgresRepository keeps items in clothing_items and likes in item_likes,
// one row per (item, user).
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectItems = `SELECT i.id, i.name, i.weather, i.image_url, i.owner_id, i.created_at,
		COALESCE(string_agg(l.user_id::text, ',' ORDER BY l.user_id), '')
	FROM clothing_items i
	LEFT JOIN item_likes l ON l.item_id = i.id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*models.ClothingItem, error) {
	var (
		it    models.ClothingItem
		likes string
	)
	if err := row.Scan(&it.ID, &it.Name, &it.Weather, &it.ImageURL, &it.Owner, &it.CreatedAt, &likes); err != nil {
		return nil, err
	}
	it.Likes = splitLikes(likes)
	return &it, nil
}

func splitLikes(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.ClothingItem) (*models.ClothingItem, error) {
	if item.ID == "" {
		item.ID = models.NewID()
	}

	query :=
		`INSERT INTO clothing_items (id, name, weather, image_url, owner_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		item.ID, item.Name, string(item.Weather), item.ImageURL, item.Owner).Scan(&item.CreatedAt)
	if err != nil {
		return nil, dbx.Classify(err)
	}

	item.Likes = []string{}
	return item, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.ClothingItem, error) {
	query := selectItems + `
	GROUP BY i.id
	ORDER BY i.created_at DESC, i.id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, dbx.Classify(err)
	}
	defer rows.Close()

	out := make([]models.ClothingItem, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Classify(err)
	}
	return out, nil
}

func getByID(ctx context.Context, db dbx.DBTX, id string) (*models.ClothingItem, error) {
	query := selectItems + `
	WHERE i.id = $1
	GROUP BY i.id`

	it, err := scanItem(db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, dbx.Classify(err)
	}
	return it, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.ClothingItem, error) {
	return getByID(ctx, r.db, id)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clothing_items WHERE id = $1`, id)
	if err != nil {
		return dbx.Classify(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

// AddLike inserts the like only if the item exists; a repeated like hits
// the primary key and is ignored.
func (r *PostgresRepository) AddLike(ctx context.Context, id, userID string) (*models.ClothingItem, error) {
	return dbx.InTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) (*models.ClothingItem, error) {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO item_likes (item_id, user_id)
			 SELECT id, $2 FROM clothing_items WHERE id = $1
			 ON CONFLICT DO NOTHING`, id, userID)
		if err != nil {
			return nil, dbx.Classify(err)
		}
		return getByID(ctx, tx, id)
	})
}

func (r *PostgresRepository) RemoveLike(ctx context.Context, id, userID string) (*models.ClothingItem, error) {
	return dbx.InTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) (*models.ClothingItem, error) {
		_, err := tx.ExecContext(ctx,
			`DELETE FROM item_likes WHERE item_id = $1 AND user_id = $2`, id, userID)
		if err != nil {
			return nil, dbx.Classify(err)
		}
		return getByID(ctx, tx, id)
	})
}
