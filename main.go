// Package main runs the hello-users API server.
//
// Two routes: GET / returns a greeting, POST /users echoes a username back
// with id 1. Main loads config, sets up logging, wires routes and serves on
// 127.0.0.1:3000.
//
// @title           hello-users API
// @version         1.0
// @description     Greeting endpoint and a stateless user-creation echo.
// @host            127.0.0.1:3000
// @BasePath        /
// @schemes         http
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jun-uen0/hello-users/internal/app"
	"github.com/jun-uen0/hello-users/internal/config"
	"github.com/jun-uen0/hello-users/internal/server"
)

func main() {
	cfg := config.Load()
	logger, levelErr := config.NewLogger(cfg, os.Stdout)
	slog.SetDefault(logger)
	if levelErr != nil {
		slog.Warn("unrecognized log level, using info", "err", levelErr)
	}

	routes := app.Routes(cfg)
	srv := server.New(server.Addr, app.Wrap(routes))
	if err := srv.Listen(); err != nil {
		slog.Error("server failed to start", "err", err)
		os.Exit(1)
	}
	slog.Debug("listening", "addr", srv.Addr())
	slog.Info("server started", "addr", srv.Addr(), "routes", strings.Join(routes.Routes(), ", "), "docs", cfg.DocsEnabled)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("server stopped", "err", err)
			os.Exit(1)
		}
		return
	case sig := <-quit:
		slog.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown failed", "err", err)
		os.Exit(1)
	}
}
