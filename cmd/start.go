package cmd

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"guidegen/core/assets"
	"guidegen/core/config"
	"guidegen/core/database"
	"guidegen/core/llm"
	"guidegen/core/loader"
	"guidegen/core/logger"
	"guidegen/core/metrics"
	"guidegen/core/middleware"
	"guidegen/core/probe"
	"guidegen/core/server"
	"guidegen/core/storage"
	"guidegen/core/vector"

	"guidegen/feature/diag"
	"guidegen/feature/howto"
	"guidegen/feature/howto/illustrate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "guidegen/docs/swagger"
)

// @title Guidegen API
// @version 1.0
// @description API for generating illustrated how-to guides from your own documents.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the guide generation server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

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

		// 3. Resolve Application Root + Asset Search Path
		root := assets.Root()
		assets.EnsureSearchPath(root)
		logg.Info("Application root", zap.String("root", root))

		// 4. Open Vector Index (Optional)
		// Retrieval degrades to general-knowledge generation without it.
		var store vector.Store
		switch cfg.Vector.Mode {
		case vector.ModeQdrant:
			store = vector.NewQdrantStore(cfg.Vector)
			logg.Info("Using qdrant vector index", zap.String("url", cfg.Vector.URL))
		default:
			if db, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("Optional vector index unavailable, retrieval disabled", zap.Error(err))
			} else {
				store = vector.NewEmbeddedStore(db, cfg.Vector.Collection)
				logg.Info("Using embedded vector index", zap.String("path", cfg.Database.Path))
			}
		}

		// 5. Initialize LLM Client
		llmClient := llm.NewClient(cfg.LLM)

		// 6. Initialize Illustrations (Optional)
		imagesDir := cfg.Image.Dir
		if !filepath.IsAbs(imagesDir) {
			imagesDir = filepath.Join(root, imagesDir)
		}
		if err := os.MkdirAll(imagesDir, 0755); err != nil {
			logg.Warn("Failed to create images directory", zap.String("dir", imagesDir), zap.Error(err))
		}

		var attacher howto.Attacher
		if cfg.Image.Enabled {
			provider, err := illustrate.NewProvider(cfg.Image, llmClient)
			if err != nil {
				logg.Warn("Illustrations disabled", zap.Error(err))
			} else {
				var mirror storage.Client
				if cfg.Storage.Enabled {
					client, err := storage.NewClient(cfg.Storage)
					if err == nil {
						err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket)
					}
					if err != nil {
						logg.Warn("Optional illustration mirror unavailable", zap.Error(err))
					} else {
						mirror = client
						logg.Info("Illustration mirror enabled", zap.String("bucket", cfg.Storage.Bucket))
					}
				}

				cache := illustrate.NewCache(imagesDir, mirror, cfg.Storage.Bucket, cfg.Storage.Prefix, logg)
				attacher = illustrate.NewAttacher(provider, cache, cfg.Image.Style, cfg.Image.LogPrompts, logg)
				logg.Info("Illustrations enabled", zap.String("provider", provider.Name()))
			}
		}

		// 7. Load Guide Renderer (Advisory)
		// The JSON endpoints keep working when the template fails to parse.
		renderer, err := howto.NewRenderer(logg)
		if err != nil {
			logg.Warn("Guide template failed to load, HTML endpoint degraded", zap.Error(err))
		}
		templateCheck := func() (string, error) {
			return "", errors.New("guide template unavailable")
		}
		if renderer != nil {
			templateCheck = renderer.Check
		}

		// 8. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 9. Startup Probes (run after features are loaded)
		probes := []probe.Probe{
			probe.RuntimeProbe(),
			probe.WorkdirProbe(),
			probe.SearchPathProbe(),
			probe.LayoutProbe(root),
			probe.DependenciesProbe(
				"github.com/gofiber/fiber",
				"github.com/spf13/viper",
				"go.uber.org/zap",
				"gorm.io/gorm",
			),
			probe.TemplateProbe(templateCheck),
			probe.VectorStoreProbe(store, cfg.Vector.Mode),
			probe.LLMProbe(cfg.LLM),
			probe.RoutesProbe(func() []string {
				routes := app.GetRoutes()
				paths := make([]string, 0, len(routes))
				for _, route := range routes {
					paths = append(paths, route.Path)
				}
				return paths
			}, "/health", "/howto/json", "/howto/html", "/html-to-pdf", "/diag"),
		}

		// 10. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		mgr.Register(howto.NewFeature(llmClient, store, attacher, renderer, logg))
		mgr.Register(diag.NewFeature(probes, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(middleware.RayID())

		// 2. Panic Recovery + CORS (the HTML pages are fetched from anywhere)
		app.Use(recover.New())
		app.Use(cors.New())

		// 3. Logging Middleware (Custom to use Zap + RayID)
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

		// 4. Metrics (request counters + latency histogram)
		app.Use(metrics.Middleware())
		app.Get("/metrics", metrics.Handler())

		// 5. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 6. Static Files (generated illustrations live here)
		app.Static("/static", filepath.Join(root, "static"))

		// 11. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 12. Run Startup Probes
		report := probe.Run(ctx, logg, probes)
		logg.Info("Startup probes finished",
			zap.Int("passed", report.Passed),
			zap.Int("failed", report.Failed),
		)

		// 13. Resolve Port (platform-injected PORT wins over config)
		port, err := server.ResolvePort(os.Getenv, cfg.Server.Port)
		if err != nil {
			logg.Fatal("Failed to resolve port", zap.Error(err))
		}

		// 14. Start Server
		go func() {
			logg.Info("Starting server", zap.Int("port", port))
			if err := app.Listen(cfg.Server.Addr(port)); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 15. Graceful Shutdown
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
