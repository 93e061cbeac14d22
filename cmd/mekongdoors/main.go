// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// mekongdoors is the bilingual marketing site and back office for the
// Mekong Doors catalog.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mekongdoors/internal/auth"
	"mekongdoors/internal/cache"
	"mekongdoors/internal/config"
	"mekongdoors/internal/content"
	"mekongdoors/internal/database"
	"mekongdoors/internal/handlers"
	"mekongdoors/internal/metrics"
	"mekongdoors/internal/notify"
	"mekongdoors/internal/render"
	"mekongdoors/internal/router"
	"mekongdoors/internal/session"
	"mekongdoors/internal/store"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		return err
	}
	if cfg.IsDevelopment() {
		adminEmail := ""
		if len(cfg.AdminEmails) > 0 {
			adminEmail = cfg.AdminEmails[0]
		}
		if err := database.Seed(db, adminEmail); err != nil {
			return err
		}
	}

	valkey, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		return err
	}
	defer valkey.Close()

	sessions := session.NewStore(valkey, cfg.IsProduction())
	pages := cache.NewPageCache(valkey, 0)
	tags := cache.NewContentCache(nil)
	mx := metrics.New()

	svc := content.NewService(tags, pages, mx,
		store.NewCategoryStore(db),
		store.NewProductStore(db),
		store.NewInstallationStore(db),
		store.NewSectionStore(db),
		store.NewMessageStore(db),
	)

	renderer, err := render.New()
	if err != nil {
		return err
	}

	admins := auth.NewWhitelist(cfg.AdminEmails)
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, 0)
	telegram := notify.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID)
	if !telegram.Enabled() {
		slog.Warn("telegram notifications disabled (missing credentials)")
	}

	users := store.NewUserStore(db)

	handler := router.New(router.Deps{
		Public:   handlers.NewPublic(svc, renderer, pages),
		API:      handlers.NewAPI(svc, telegram, admins),
		Admin:    handlers.NewAdmin(svc),
		Auth:     handlers.NewAuth(users, sessions, issuer, admins),
		Sessions: sessions,
		Issuer:   issuer,
		Admins:   admins,
		Metrics:  mx,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.Addr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		slog.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	slog.Info("server stopped")
	return nil
}
