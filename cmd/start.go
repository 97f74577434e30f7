package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"emote-manager/core/audit"
	"emote-manager/core/cache"
	"emote-manager/core/config"
	"emote-manager/core/database"
	"emote-manager/core/errcat"
	"emote-manager/core/loader"
	"emote-manager/core/logger"
	"emote-manager/core/middleware/auth"
	"emote-manager/core/middleware/rayid"
	"emote-manager/core/seventv"

	"emote-manager/feature/emotes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "emote-manager/docs/swagger"
)

// @title Emote Manager API
// @version 1.0
// @description API for managing channel emote catalogs on 7TV.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the emote manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Load Error Catalog
		errs, err := errcat.Load(cfg.Server.ErrorCatalog)
		if err != nil {
			logg.Fatal("Failed to load error catalog", zap.Error(err))
		}

		// 4. Connect to Redis
		store, err := cache.NewRedisStore(context.Background(), cfg.Redis)
		if err != nil {
			logg.Fatal("Failed to connect to redis", zap.Error(err))
		}

		// 5. Connect to Audit Database (Optional)
		var recorder *audit.Recorder
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional audit database connection failed", zap.Error(err))
		} else {
			if recorder, err = audit.NewRecorder(db, logg); err != nil {
				logg.Warn("Audit schema migration failed", zap.Error(err))
			} else {
				logg.Info("Connected to audit database")
			}
		}

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 7. Initialize Upstream Client
		client := seventv.NewClient(cfg.SevenTV)

		// 8. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(emotes.NewFeature(client, store, cfg.Redis, cfg.SevenTV, errs, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
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

		// 3. Audit trail (no-op when the database is absent)
		app.Use(audit.Middleware(recorder))

		// 3.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
