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

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	"github.com/hvashisht/weddingsite/internal/adapter/driven/mongodb"
	"github.com/hvashisht/weddingsite/internal/adapter/driven/sqlite"
	"github.com/hvashisht/weddingsite/internal/adapter/driving/web"
	"github.com/hvashisht/weddingsite/internal/application"
	"github.com/hvashisht/weddingsite/internal/config"
	"github.com/hvashisht/weddingsite/internal/domain/port/driven"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on missing required env vars).
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.DebugMode {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open the store. The URI scheme selects the backend; the URI itself is
	// not logged since it may embed credentials.
	var rsvpStore driven.RSVPStore
	var userStore driven.UserStore

	if cfg.UsesMongo() {
		db, err := mongodb.NewDB(ctx, cfg.DatabaseURI)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := db.Close(context.Background()); closeErr != nil {
				slog.Error("error closing mongodb", "error", closeErr)
			}
		}()
		rsvpStore = mongodb.NewRSVPRepo(db)
		userStore = mongodb.NewUserRepo(db)
		slog.Info("store opened", "backend", "mongodb")
	} else {
		db, err := sqlite.NewDB(cfg.DatabaseURI)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := db.Close(); closeErr != nil {
				slog.Error("error closing database", "error", closeErr)
			}
		}()
		if err := sqlite.RunMigrations(db.Writer); err != nil {
			return err
		}
		rsvpStore = sqlite.NewRSVPRepo(db)
		userStore = sqlite.NewUserRepo(db)
		slog.Info("store opened", "backend", "sqlite", "path", cfg.DatabaseURI)
	}

	// 4. Seed the default admin account.
	authSvc := application.NewAuthService(userStore, cfg.AdminUser, cfg.AdminPass)
	if err := authSvc.EnsureAdmin(ctx); err != nil {
		return err
	}

	// 5. Wire services and the web adapter.
	rsvpSvc := application.NewRSVPService(rsvpStore)
	sessions := web.NewSessions(cfg.SecretKey)

	handler, err := web.NewHandler(rsvpSvc, authSvc, sessions, slog.Default())
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	web.RegisterRoutes(mux, handler)

	srv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           web.ApplyMiddleware(mux, slog.Default()),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
		}
	}()

	slog.Info("weddingsite started", "addr", cfg.ListenAddr(), "admin_user", cfg.AdminUser)

	// 6. Wait for shutdown signal, then drain.
	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	slog.Info("shutdown complete")
	return nil
}
