// Package server initializes and runs the What to Wear API server.
// It opens the configured storage backend, optionally connects the items
// cache, handles graceful shutdown and starts the HTTP server.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/whattowear/internal/logging"
	"github.com/dmitrijs2005/whattowear/internal/server/auth"
	"github.com/dmitrijs2005/whattowear/internal/server/cache"
	"github.com/dmitrijs2005/whattowear/internal/server/config"
	"github.com/dmitrijs2005/whattowear/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/whattowear/internal/server/rest"
	"github.com/dmitrijs2005/whattowear/internal/server/services"
	"github.com/redis/go-redis/v9"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repomanager repomanager.RepositoryManager
	redis       *redis.Client
	server      *rest.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger, err := logging.New(c.LogFormat, c.LogLevel, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	rm, err := repomanager.New(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := rm.RunMigrations(ctx); err != nil {
		_ = rm.Close(ctx)
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	hasher, err := auth.NewHasher(c.HashAlgorithm, c.BcryptCost, c.HashConcurrency)
	if err != nil {
		_ = rm.Close(ctx)
		return nil, fmt.Errorf("hasher init error: %w", err)
	}

	app := &App{config: c, logger: logger, repomanager: rm}

	var itemsCache services.ItemsCache
	if c.RedisAddr != "" {
		rdb, err := cache.NewRedisClient(ctx, c.RedisAddr, c.RedisPassword, c.RedisDB)
		if err != nil {
			_ = rm.Close(ctx)
			return nil, fmt.Errorf("redis init error: %w", err)
		}
		app.redis = rdb
		itemsCache = cache.NewItemsCache(rdb, c.CacheTTL)
	}

	// a nil *ImageService must not reach the interface
	var images rest.ImageService
	if c.S3Enabled() {
		images = services.NewImageService(c)
	}

	us := services.NewUserService(rm, hasher, c)
	is := services.NewItemService(rm, itemsCache, logger)
	app.server = rest.NewServer(c, logger, us, is, images, rm)

	logger.Info(ctx, "App initialized",
		"storage", c.StorageDriver,
		"cache", c.RedisAddr != "",
		"uploads", c.S3Enabled(),
		"degraded_items", c.DegradedItems,
	)
	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.close()
	app.logger.Info(context.Background(), "App stopped")
}

func (app *App) close() {
	ctx := context.Background()
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error(ctx, "redis close", "error", err)
		}
	}
	if err := app.repomanager.Close(ctx); err != nil {
		app.logger.Error(ctx, "storage close", "error", err)
	}
}
