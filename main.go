package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillswap_server/config"
	"skillswap_server/controllers"
	"skillswap_server/logger"
	"skillswap_server/middleware"
	"skillswap_server/routes"
	"skillswap_server/services"
	"skillswap_server/socket"
	"skillswap_server/store"

	"github.com/rs/cors"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	log := logger.Setup(cfg.Server)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg.Store, log)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.Close(closeCtx); err != nil {
			log.Error("failed to close store", "error", err)
		}
	}()
	log.Info("store ready", "driver", cfg.Store.Driver)

	hub := socket.NewHub(log)
	go func() {
		if err := hub.Serve(); err != nil {
			log.Error("socket server stopped", "error", err)
		}
	}()
	defer hub.Close()

	timeout := cfg.Server.RequestTimeout
	ctrls := routes.Controllers{
		Accounts: controllers.NewAccountController(services.NewAccountService(st, log), cfg.Auth, timeout),
		Swaps:    controllers.NewSwapController(services.NewSwapService(st, hub, log), timeout),
		Admin:    controllers.NewAdminController(services.NewModerationService(st, hub, log), timeout),
	}

	if cfg.Media.Bucket != "" {
		region := cfg.Media.Region
		if region == "" {
			region = cfg.Store.Region
		}
		presigner, err := services.NewS3Presigner(ctx, region)
		if err != nil {
			return fmt.Errorf("failed to initialize media storage: %w", err)
		}
		ctrls.Media = controllers.NewMediaController(services.NewMediaService(presigner, cfg.Media, log), timeout)
		log.Info("media routes enabled", "bucket", cfg.Media.Bucket)
	}

	router := routes.NewRouter(ctrls, middleware.NewAuthMiddleware(cfg.Auth), hub.Handler(), log)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", middleware.TraceHeader},
		ExposedHeaders:   []string{middleware.TraceHeader},
		AllowCredentials: true,
	}).Handler(router)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           corsHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
