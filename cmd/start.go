package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"hero-catalog/core/loader"
	"hero-catalog/core/logger"
	"hero-catalog/core/middleware/auth"
	"hero-catalog/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "hero-catalog/docs/swagger"
)

// @title Hero Catalog API
// @version 1.0
// @description Marvel hero catalog with persisted favorites.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the hero catalog server",
	Long:  `Starts the HTTP server, loads the catalog in the background and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := bootstrap()
		if err != nil {
			return err
		}
		defer cleanup()

		logg := a.logger
		zap.ReplaceGlobals(logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		mgr := loader.NewManager()
		mgr.Register(a.heroes)
		mgr.Register(a.backup)
		mgr.Register(a.health)

		// RayID first so every later log line carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger stays public.
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{
			ApiKey: a.cfg.Server.ApiKey,
			Next: func(c *fiber.Ctx) bool {
				return strings.HasPrefix(c.Path(), "/swagger")
			},
		}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}
		for _, f := range mgr.Features() {
			logg.Info("Feature registered", zap.String("feature", f.Name()), zap.Bool("enabled", f.IsEnabled()))
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Initial load off the request path; List retries lazily if this fails.
		go func() {
			if _, err := a.heroes.Service().Refresh(ctx); err != nil {
				logg.Warn("Initial catalog load failed", zap.Error(err))
			}
		}()

		go func() {
			logg.Info("Starting server", zap.String("address", a.cfg.Server.Address()))
			if err := app.Listen(a.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		cancel()
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
