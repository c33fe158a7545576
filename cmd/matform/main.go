// SPDX-License-Identifier: MIT

// Command matform serves the matrix multiplication form over HTTP.
//
// Configuration comes from MATFORM_* environment variables; see config.go.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/matform/web"
)

const svcName = "matform"

func main() {
	cfg, err := loadConfig(nil)
	if err != nil {
		log.Fatal(err)
	}
	level, err := cfg.level()
	if err != nil {
		log.Fatal(err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", cfg.addr())
	if err != nil {
		logger.Error("failed to listen", slog.String("addr", cfg.addr()), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := run(ctx, cfg, logger, ln); err != nil {
		logger.Error(fmt.Sprintf("%s service exited with error: %s", svcName, err))
		os.Exit(1)
	}
}

// run serves on ln until ctx is cancelled, then shuts the server down within
// cfg.ShutdownTimeout.
func run(ctx context.Context, cfg config, logger *slog.Logger, ln net.Listener) error {
	gin.SetMode(gin.ReleaseMode)
	h, err := web.NewHandler(
		web.WithLogger(logger),
		web.WithInstanceID(cfg.InstanceID),
		web.WithMaxDimension(cfg.MaxDimension),
		web.WithMaxElements(cfg.MaxElements),
	)
	if err != nil {
		return err
	}
	router, err := web.NewRouter(h, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info(fmt.Sprintf("%s service started", svcName),
			slog.String("addr", ln.Addr().String()),
			slog.String("instance_id", cfg.InstanceID),
		)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		logger.Info(fmt.Sprintf("%s service shutting down", svcName))
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
