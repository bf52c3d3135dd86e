package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vnkhanh/e-academy-backend/config"
	"github.com/vnkhanh/e-academy-backend/controllers"
	"github.com/vnkhanh/e-academy-backend/middleware"
	"github.com/vnkhanh/e-academy-backend/routes"
	"github.com/vnkhanh/e-academy-backend/services"
	"github.com/vnkhanh/e-academy-backend/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := utils.NewLogger(cfg.LogLevel, cfg.Production())
	if err != nil {
		return err
	}
	defer logger.Sync()

	utils.SetJWTSecret(cfg.JWTSecret)
	gin.SetMode(cfg.GinMode)

	deps, err := buildDeps(cfg, logger)
	if err != nil {
		return err
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger), middleware.Metrics())

	//Bật CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Auth-Token", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
	}))
	r = routes.SetupRouter(r, deps)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down server")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func buildDeps(cfg *config.Config, logger *zap.Logger) (*controllers.Deps, error) {
	store := services.NewSampleCatalogStore()
	deps := &controllers.Deps{
		Store:  store,
		Source: services.NewMockCatalogSource(store, services.ScaleLatency(cfg.CatalogLatencyMs)),
		Sink:   services.NewLogRequestSink(logger),
		Topics: services.SampleTopics(),
		Logger: logger,
	}

	if cfg.DatabaseEnabled() {
		db, err := config.InitDB(cfg, logger)
		if err != nil {
			return nil, err
		}
		deps.DB = db
		deps.Sink = services.NewGormRequestSink(db, logger)
	} else {
		logger.Info("DB_HOST not set, resource requests are only logged")
	}
	return deps, nil
}
