package main

import (
	"context"
	"log/slog"
	"os"

	"hotel-booking/cmd/bootstrap"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func init() {
	// Release mode unless explicitly overridden, so a missing GIN_MODE never
	// exposes debug output
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           hotel-booking
// @version         1.0
// @description     Room catalog, bookings and mock payments

// @BasePath  /
// @schemes http https
// @in header
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			listenAddr := ":" + cfg.Server.Port
			logger.Info("starting server", "address", listenAddr, "mode", gin.Mode())
			go func() {
				if err := engine.Run(listenAddr); err != nil {
					logger.Error("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("stopping server")
			return nil
		},
	})
}

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	app := fx.New(
		bootstrap.Module,
		fx.Provide(
			func(cfg config.Config) *slog.Logger {
				logger := middleware.NewLogger(cfg.Log)
				return logger.GetSlogLogger()
			},
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			startServer,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("application failed to start", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("application failed to stop cleanly", "error", err)
	}

	slog.Info("application stopped")
}
