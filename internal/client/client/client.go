package client

import (
	"context"

	"github.com/dmitrijs2005/whattowear/internal/client/models"
)

// Client is the API surface used by the CLI.
type Client interface {
	Signup(ctx context.Context, in models.SignupInput) (*models.User, error)
	Signin(ctx context.Context, email, password string) (string, *models.User, error)
	Me(ctx context.Context) (*models.User, error)
	UpdateMe(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)

	ListItems(ctx context.Context) ([]models.Item, error)
	CreateItem(ctx context.Context, in models.NewItem) (*models.Item, error)
	DeleteItem(ctx context.Context, id string) (*models.Item, error)
	LikeItem(ctx context.Context, id string) (*models.Item, error)
	UnlikeItem(ctx context.Context, id string) (*models.Item, error)
	PresignImage(ctx context.Context) (*models.ImageUpload, error)

	Ping(ctx context.Context) error
	SetToken(token string)
}
