// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login and profile access.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/whattowear/internal/common"
	"github.com/dmitrijs2005/whattowear/internal/server/apperr"
	"github.com/dmitrijs2005/whattowear/internal/server/auth"
	"github.com/dmitrijs2005/whattowear/internal/server/config"
	"github.com/dmitrijs2005/whattowear/internal/server/models"
	"github.com/dmitrijs2005/whattowear/internal/server/repositories/repomanager"
)

const (
	msgBadCredentials = "Incorrect email or password"
	msgEmailTaken     = "User with this email already exists"
	msgUserNotFound   = "User not found"
)

// NewUser is the validated signup payload.
type NewUser struct {
	Name     string
	Avatar   string
	Email    string
	Password string
}

// UserService provides account operations:
//   - Register: create users with a hashed password
//   - Login: verify credentials and mint a token
//   - Get / List / Update: profile access
type UserService struct {
	repomanager repomanager.RepositoryManager
	hasher      auth.Hasher
	jwtSecret   []byte

	dummyOnce sync.Once
	dummyHash string
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(m repomanager.RepositoryManager, h auth.Hasher, cfg *config.Config) *UserService {
	return &UserService{
		repomanager: m,
		hasher:      h,
		jwtSecret:   []byte(cfg.SecretKey),
	}
}

// Register hashes the password and stores the user. The email is stored in
// its normalized form.
func (s *UserService) Register(ctx context.Context, in NewUser) (*models.User, error) {
	hash, err := s.hasher.Hash(ctx, in.Password)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("error hashing password: %w", err))
	}

	user := &models.User{
		Name:         in.Name,
		Avatar:       in.Avatar,
		Email:        common.NormalizeEmail(in.Email),
		PasswordHash: hash,
	}

	u, err := s.repomanager.Users().Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, apperr.Wrap(apperr.KindConflict, msgEmailTaken, err)
		}
		return nil, apperr.Internal(fmt.Errorf("error creating user: %w", err))
	}
	return u, nil
}

// Login checks the credentials and returns a signed token with the user.
// An unknown email costs one hash verification, same as a wrong password.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.repomanager.Users().GetByEmail(ctx, common.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.verifyDummy(ctx, password)
			return "", nil, apperr.Unauthorized(msgBadCredentials)
		}
		return "", nil, apperr.Internal(fmt.Errorf("error searching user: %w", err))
	}

	ok, err := s.hasher.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		return "", nil, apperr.Internal(fmt.Errorf("error verifying password: %w", err))
	}
	if !ok {
		return "", nil, apperr.Unauthorized(msgBadCredentials)
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret)
	if err != nil {
		return "", nil, apperr.Internal(fmt.Errorf("error generating token: %w", err))
	}
	return token, user, nil
}

// Get returns one user by id.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	u, err := s.repomanager.Users().GetByID(ctx, id)
	if err != nil {
		return nil, userError(err)
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	list, err := s.repomanager.Users().List(ctx)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("error listing users: %w", err))
	}
	if list == nil {
		list = []models.User{}
	}
	return list, nil
}

// Update changes name and/or avatar of the user id.
func (s *UserService) Update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	u, err := s.repomanager.Users().Update(ctx, id, upd)
	if err != nil {
		return nil, userError(err)
	}
	return u, nil
}

// --- helpers below ---

func userError(err error) error {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return apperr.Wrap(apperr.KindNotFound, msgUserNotFound, err)
	case errors.Is(err, common.ErrInvalidID):
		return apperr.Wrap(apperr.KindBadRequest, "Invalid user ID", err)
	case errors.Is(err, common.ErrValidation):
		return apperr.Wrap(apperr.KindBadRequest, "Invalid user data", err)
	default:
		return apperr.Internal(err)
	}
}

func (s *UserService) verifyDummy(ctx context.Context, password string) {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash(ctx, "wtwr-dummy-password")
	})
	if s.dummyHash != "" {
		_, _ = s.hasher.Verify(ctx, password, s.dummyHash)
	}
}
