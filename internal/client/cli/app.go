package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/dmitrijs2005/whattowear/internal/client/client"
	"github.com/dmitrijs2005/whattowear/internal/client/config"
	"github.com/dmitrijs2005/whattowear/internal/client/models"
	"github.com/dmitrijs2005/whattowear/internal/client/services"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	itemService services.ItemService
	user        *models.User
	reader      *bufio.Reader
	out         io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	as := services.NewAuthService(apiClient, c.TokenFile)
	is := services.NewItemService(apiClient, &http.Client{Timeout: c.RequestTimeout})

	return &App{
		config:      c,
		authService: as,
		itemService: is,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	log.Printf("Welcome to What to Wear CLI, server %s (type 'help' for commands)", a.config.ServerURL)

	u, err := a.authService.Restore(ctx)
	switch {
	case err != nil:
		log.Printf("Could not restore session: %s", describe(err))
	case u != nil:
		a.user = u
		log.Printf("Signed in as %s", u.Email)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) getStatus() string {
	if a.user == nil {
		return "(guest)"
	}
	if a.user.Email != "" {
		return fmt.Sprintf("(%s)", a.user.Email)
	}
	return fmt.Sprintf("(%s)", a.user.ID)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// describe turns an error into one line for the user.
func describe(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable"
	default:
		return err.Error()
	}
}
