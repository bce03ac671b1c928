// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/olegiv/ocms-admin/internal/auth"
	"github.com/olegiv/ocms-admin/internal/config"
	"github.com/olegiv/ocms-admin/internal/logging"
	"github.com/olegiv/ocms-admin/internal/metrics"
	"github.com/olegiv/ocms-admin/internal/render"
	"github.com/olegiv/ocms-admin/internal/session"
	"github.com/olegiv/ocms-admin/internal/store"
	"github.com/olegiv/ocms-admin/internal/version"
	"github.com/olegiv/ocms-admin/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "ocms-admin - DTC & CITAX content administration panel\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OCMS_SESSION_SECRET      Session and CSRF key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OCMS_SERVER_HOST         Listen host (default: localhost)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OCMS_SERVER_PORT         Listen port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OCMS_ENV                 development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OCMS_LOG_LEVEL           debug|info|warn|error (default: info)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OCMS_LOG_FILE            Rotated log file, in addition to stdout (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OCMS_SESSION_LIFETIME    Session lifetime (default: 24h)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OCMS_PERSIST_EDITS       Keep confirmed edits in memory (default: false)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OCMS_LOGIN_RATE_LIMIT    Sign-in attempts per second per IP, 0 disables (default: 0)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OCMS_LOGIN_RATE_BURST    Sign-in burst per IP (default: 5)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("ocms-admin %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	versionInfo := version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	s := store.New()

	// Audit records and WARN+ logs also land in the activity log.
	out, closer := logging.Output(cfg.LogFile)
	defer func() {
		if err := closer.Close(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "closing log file: %v\n", err)
		}
	}()
	slog.SetDefault(logging.NewLogger(out, cfg.SlogLevel(), s.Logs))

	directory, err := auth.NewDirectory(auth.DefaultCredentials)
	if err != nil {
		return fmt.Errorf("building credential directory: %w", err)
	}

	sessions := session.New(cfg.SessionLifetime, cfg.IsDevelopment())

	templatesFS, err := web.TemplatesFS()
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}

	renderer, err := render.New(render.Config{
		TemplatesFS: templatesFS,
		Sessions:    sessions,
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	router, err := newRouter(deps{
		cfg:       cfg,
		store:     s,
		sessions:  sessions,
		renderer:  renderer,
		directory: directory,
		metrics:   metrics.New(),
		version:   versionInfo,
	})
	if err != nil {
		return fmt.Errorf("building router: %w", err)
	}

	if !cfg.PersistEdits {
		slog.Info("edits are not persisted; screens revert to seed data on reload")
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "version", versionInfo.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
