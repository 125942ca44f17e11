package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/whattowear/internal/client/models"
	"github.com/dmitrijs2005/whattowear/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for the profile and a password and creates the account.
// It does not sign in.
func (a *App) Signup(ctx context.Context) error {
	var in models.SignupInput
	var err error

	if in.Name, err = getSimpleText(a.reader, "Enter name", a.out); err != nil {
		return err
	}
	if in.Avatar, err = getSimpleText(a.reader, "Enter avatar URL", a.out); err != nil {
		return err
	}
	if in.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	u, err := a.authService.Signup(ctx, in, password)
	if err != nil {
		return err
	}

	a.printf("Account %s created, you can sign in now\n", u.Email)
	return nil
}

// Signin prompts for credentials and starts a session on success.
func (a *App) Signin(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.authService.Signin(ctx, email, password)
	if err != nil {
		return err
	}

	a.user = u
	a.printf("Signed in as %s\n", u.Email)
	return nil
}

func (a *App) Me(ctx context.Context) error {
	u, err := a.authService.Me(ctx)
	if err != nil {
		return err
	}

	a.user = u
	a.printf("id:     %s\nname:   %s\nemail:  %s\navatar: %s\n", u.ID, u.Name, u.Email, u.Avatar)
	return nil
}

// Update asks for a new name and avatar; an empty answer keeps the value.
func (a *App) Update(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "New name (empty to keep)", a.out)
	if err != nil {
		return err
	}
	avatar, err := getSimpleText(a.reader, "New avatar URL (empty to keep)", a.out)
	if err != nil {
		return err
	}

	var upd models.ProfileUpdate
	if name != "" {
		upd.Name = &name
	}
	if avatar != "" {
		upd.Avatar = &avatar
	}
	if upd.Name == nil && upd.Avatar == nil {
		return fmt.Errorf("nothing to update")
	}

	u, err := a.authService.UpdateProfile(ctx, upd)
	if err != nil {
		return err
	}

	a.user = u
	a.printf("Profile updated\n")
	return nil
}

// Logout forgets the session locally.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.user = nil
	a.printf("Signed out\n")
	return nil
}
