package services

import (
	"context"

	"github.com/dmitrijs2005/whattowear/internal/client/client"
	"github.com/dmitrijs2005/whattowear/internal/client/models"
)

// fakeClient implements client.Client for service tests.
type fakeClient struct {
	token string

	signupIn  models.SignupInput
	signupErr error

	signinPass  string
	signinToken string
	signinErr   error

	meErr error

	items   []models.Item
	listErr error

	presign    *models.ImageUpload
	presignErr error

	lastID string
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) SetToken(token string) { f.token = token }

func (f *fakeClient) Signup(_ context.Context, in models.SignupInput) (*models.User, error) {
	f.signupIn = in
	if f.signupErr != nil {
		return nil, f.signupErr
	}
	return &models.User{ID: "u1", Email: in.Email, Name: in.Name}, nil
}

func (f *fakeClient) Signin(_ context.Context, email, password string) (string, *models.User, error) {
	f.signinPass = password
	if f.signinErr != nil {
		return "", nil, f.signinErr
	}
	f.token = f.signinToken
	return f.signinToken, &models.User{ID: "u1", Email: email}, nil
}

func (f *fakeClient) Me(context.Context) (*models.User, error) {
	if f.meErr != nil {
		return nil, f.meErr
	}
	return &models.User{ID: "u1"}, nil
}

func (f *fakeClient) UpdateMe(_ context.Context, upd models.ProfileUpdate) (*models.User, error) {
	u := &models.User{ID: "u1"}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	return u, nil
}

func (f *fakeClient) ListItems(context.Context) ([]models.Item, error) {
	return append([]models.Item(nil), f.items...), f.listErr
}

func (f *fakeClient) CreateItem(_ context.Context, in models.NewItem) (*models.Item, error) {
	return &models.Item{ID: "i1", Name: in.Name, Weather: in.Weather, ImageURL: in.ImageURL}, nil
}

func (f *fakeClient) DeleteItem(_ context.Context, id string) (*models.Item, error) {
	f.lastID = id
	return &models.Item{ID: id}, nil
}

func (f *fakeClient) LikeItem(_ context.Context, id string) (*models.Item, error) {
	f.lastID = id
	return &models.Item{ID: id, Likes: []string{"u1"}}, nil
}

func (f *fakeClient) UnlikeItem(_ context.Context, id string) (*models.Item, error) {
	f.lastID = id
	return &models.Item{ID: id, Likes: []string{}}, nil
}

func (f *fakeClient) PresignImage(context.Context) (*models.ImageUpload, error) {
	return f.presign, f.presignErr
}

func (f *fakeClient) Ping(context.Context) error { return nil }

