// Package rest is the HTTP+JSON API of the What to Wear server: the route
// table, the middleware chain, request validation and the single place
// where failures are rendered.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/whattowear/internal/logging"
	"github.com/dmitrijs2005/whattowear/internal/server/config"
	"github.com/dmitrijs2005/whattowear/internal/server/models"
	"github.com/dmitrijs2005/whattowear/internal/server/services"
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	writeTimeout      = 15 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type UserService interface {
	Register(ctx context.Context, in services.NewUser) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error)
}

type ItemService interface {
	List(ctx context.Context) ([]models.ClothingItem, error)
	Create(ctx context.Context, ownerID string, in services.NewItem) (*models.ClothingItem, error)
	Delete(ctx context.Context, userID, id string) (*models.ClothingItem, error)
	Like(ctx context.Context, userID, id string) (*models.ClothingItem, error)
	Unlike(ctx context.Context, userID, id string) (*models.ClothingItem, error)
}

type ImageService interface {
	PresignUpload(ctx context.Context, userID string) (*services.ImageUpload, error)
}

// Pinger reports storage health for GET /healthz.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	address       string
	logger        logging.Logger
	users         UserService
	items         ItemService
	images        ImageService
	pinger        Pinger
	jwtSecret     []byte
	degradedItems bool
	corsOrigins   []string
}

// NewServer wires the API. images may be nil, in which case the upload
// route is not registered.
func NewServer(cfg *config.Config, l logging.Logger, us UserService, is ItemService, images ImageService, p Pinger) *Server {
	return &Server{
		address:       cfg.Addr,
		logger:        l.With("module", "http_server"),
		users:         us,
		items:         is,
		images:        images,
		pinger:        p,
		jwtSecret:     []byte(cfg.SecretKey),
		degradedItems: cfg.DegradedItems,
		corsOrigins:   cfg.CORSOrigins,
	}
}

// Handler returns the full middleware chain around the router.
func (s *Server) Handler() http.Handler {
	return s.withRequestLog(withCORS(s.corsOrigins, s.newRouter()))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *Server) serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())
		if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
