package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"profile-folio/internal/config"
	"profile-folio/internal/database/migration"
	"profile-folio/internal/delivery/http/middleware"
	"profile-folio/internal/delivery/http/routes"
	"profile-folio/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := runMigrations(c); err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	errMw := middleware.NewErrorMiddleware(c.Logger)
	f.Use(errMw.Middleware())
	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	f.Use(accessMw.Middleware())

	registry := routes.NewRegistry(cfg, c.DB, c.Cache, c.Hub, c.Logger)
	registry.Register(f)

	go c.Hub.Run()
	ws.SetDefaultHub(c.Hub)

	cleanup := func() error {
		ws.SetDefaultHub(nil)
		return c.Close()
	}

	return &App{Fiber: f, Container: c}, cleanup, nil
}

func runMigrations(c *Container) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	runner := migration.Runner{Dir: c.Config.App.MigrationsDir}
	if err := runner.Run(ctx, c.DB.SQLDB()); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
