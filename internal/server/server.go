// Package server exposes the MessageCraft HTTP API.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zulandar/messagecraft/internal/compose"
	"github.com/zulandar/messagecraft/internal/delivery"
	"github.com/zulandar/messagecraft/internal/library"
)

// StartOpts holds configuration for the API server.
type StartOpts struct {
	Composer   *compose.Service
	Messages   *library.Messages
	Templates  *library.Templates
	Categories *library.Categories
	Delivery   *delivery.Registry // optional; nil disables /send
	Port       int
	Out        io.Writer
}

// Start launches the API server. It blocks until ctx is cancelled, then
// shuts down gracefully.
func Start(ctx context.Context, opts StartOpts) error {
	if opts.Composer == nil {
		return fmt.Errorf("server: composer is required")
	}
	if opts.Messages == nil || opts.Templates == nil || opts.Categories == nil {
		return fmt.Errorf("server: managers are required")
	}
	if opts.Port <= 0 {
		opts.Port = 8080
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	registerRoutes(router, opts)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: router,
	}

	// Graceful shutdown on context cancellation.
	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	if opts.Out != nil {
		fmt.Fprintf(opts.Out, "MessageCraft API listening on http://localhost:%d\n", opts.Port)
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
