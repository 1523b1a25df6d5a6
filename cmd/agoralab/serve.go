package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "agoralab-core/docs"
	"agoralab-core/internal/presentation"
	"agoralab-core/internal/presentation/handlers"
)

// @title Agora Lab API
// @version 1.0
// @description Public repository and blog listings for the Agora Lab site

// @contact.name Agora Lab

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func newServeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Starts the HTTP API. The repository listing is loaded once at startup;
requests are served from that single load.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.serve(cmd.Context())
		},
	}
}

func (c *cli) serve(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := c.logger
	a, err := newApp(ctx, c.cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.listing.Mount(ctx); err != nil {
		return err
	}

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := presentation.NewRouter(&c.cfg.CORS, presentation.Handlers{
		Health:      handlers.NewHealthHandler(a.listing),
		Repository:  handlers.NewRepositoryHandler(a.listing),
		Post:        handlers.NewPostHandler(a.posts),
		Diagnostics: handlers.NewDiagnosticsHandler(a.diagnostics),
	}, logger.Named("http"))

	server := &http.Server{
		Addr:         c.cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  time.Duration(c.cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(c.cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(c.cfg.Server.IdleTimeout) * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			a.listing.Unmount()
			return err
		}
	case <-ctx.Done():
	}
	logger.Info("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	a.listing.Unmount()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := a.listing.Wait(shutdownCtx); err != nil {
		logger.Warn("Load cycle still running at shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
	return nil
}
