package container

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"catalog/admin/internal/admin"
	"catalog/admin/internal/client"
	"catalog/admin/internal/config"
	"catalog/admin/internal/notify"
	"catalog/admin/internal/web"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config *config.Config
	Client *client.Client
	Flash  notify.FlashStore
	Web    *web.Server

	log   *logrus.Logger
	redis *redis.Client
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Client: client.New(cfg.API),
		log:    logger,
	}

	ttl := time.Duration(cfg.Redis.TTL) * time.Second
	switch cfg.Notify.Store {
	case config.StoreRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})

		// Test connection
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		logger.Info("✅ Connected to Redis successfully")

		container.redis = rdb
		container.Flash = notify.NewRedisStore(rdb, ttl)
	default:
		container.Flash = notify.NewMemoryStore(ttl)
	}

	loc, err := time.LoadLocation(cfg.UI.Timezone)
	if err != nil {
		logger.Warnf("⚠️ Unknown timezone %q, showing times in UTC: %v", cfg.UI.Timezone, err)
		loc = time.UTC
	}

	server, err := web.NewServer(web.Deps{
		Home:       admin.NewHome(container.Client.Categories, container.Client.Products, logger),
		Categories: admin.NewCategories(container.Client.Categories, logger),
		Products:   admin.NewProducts(container.Client.Products, container.Client.Categories, logger),
		Flash:      container.Flash,
		Logger:     logger,
		Location:   loc,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize web server: %w", err)
	}
	container.Web = server

	return container, nil
}

// Run serves the admin until ctx is cancelled, then shuts down gracefully
func (c *Container) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              c.Config.Server.Addr(),
		Handler:           c.Web.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		c.log.Infof("🚀 Admin listening on http://%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		timeout := time.Duration(c.Config.Server.ShutdownTimeout) * time.Second
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		c.log.Info("Shutting down http server...")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Check fetches both collections concurrently and reports their sizes,
// failing if the API cannot serve either.
func (c *Container) Check(ctx context.Context) (admin.Stats, error) {
	var stats admin.Stats

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		all, err := c.Client.Categories.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("categories: %w", err)
		}
		stats.Categories = len(all)
		return nil
	})
	g.Go(func() error {
		all, err := c.Client.Products.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("products: %w", err)
		}
		stats.Products = len(all)
		return nil
	})

	if err := g.Wait(); err != nil {
		return admin.Stats{}, err
	}
	return stats, nil
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	c.log.Info("Shutting down container...")

	var errs []error
	if err := c.Client.Close(); err != nil {
		errs = append(errs, err)
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	c.log.Info("Container shut down successfully")
	return errors.Join(errs...)
}
