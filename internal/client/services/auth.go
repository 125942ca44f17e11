// Package services contains application services for the What to Wear CLI.
// This file defines the session service: signup, signin, the saved token and
// the current user's profile.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/whattowear/internal/client/client"
	"github.com/dmitrijs2005/whattowear/internal/client/models"
	"github.com/dmitrijs2005/whattowear/internal/common"
	"github.com/dmitrijs2005/whattowear/internal/filex"
)

// AuthService defines account operations for the CLI.
//
// Contract:
//   - Signup: create an account; does not sign in.
//   - Signin: authenticate and persist the token to the token file.
//   - Restore: reuse a saved token, dropping it when the server rejects it.
//   - Logout: forget the token locally (tokens are not revoked server-side).
type AuthService interface {
	Signup(ctx context.Context, in models.SignupInput, password []byte) (*models.User, error)
	Signin(ctx context.Context, email string, password []byte) (*models.User, error)
	Restore(ctx context.Context) (*models.User, error)
	Me(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
}

type authService struct {
	client    client.Client
	tokenFile string
}

// NewAuthService constructs an AuthService bound to the API client and the
// token file.
func NewAuthService(c client.Client, tokenFile string) AuthService {
	return &authService{client: c, tokenFile: tokenFile}
}

// Signup registers in with the given password. The password bytes are wiped
// once sent.
func (a *authService) Signup(ctx context.Context, in models.SignupInput, password []byte) (*models.User, error) {
	defer common.WipeByteArray(password)
	in.Password = string(password)
	return a.client.Signup(ctx, in)
}

func (a *authService) Signin(ctx context.Context, email string, password []byte) (*models.User, error) {
	defer common.WipeByteArray(password)

	token, u, err := a.client.Signin(ctx, email, string(password))
	if err != nil {
		return nil, err
	}
	if err := filex.WriteSecret(a.tokenFile, []byte(token)); err != nil {
		return nil, err
	}
	return u, nil
}

// Restore loads the saved token. It returns (nil, nil) when there is no
// usable session.
func (a *authService) Restore(ctx context.Context) (*models.User, error) {
	token, err := filex.ReadTrimmed(a.tokenFile)
	if err != nil || token == "" {
		return nil, err
	}

	a.client.SetToken(token)
	u, err := a.client.Me(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			a.client.SetToken("")
			return nil, filex.RemoveIfExists(a.tokenFile)
		}
		return nil, err
	}
	return u, nil
}

func (a *authService) Me(ctx context.Context) (*models.User, error) {
	return a.client.Me(ctx)
}

func (a *authService) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	return a.client.UpdateMe(ctx, upd)
}

func (a *authService) Logout(context.Context) error {
	a.client.SetToken("")
	return filex.RemoveIfExists(a.tokenFile)
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
