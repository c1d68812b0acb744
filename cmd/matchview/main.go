package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/omarshaarawi/matchview/internal/api/data"
	"github.com/omarshaarawi/matchview/internal/config"
	"github.com/omarshaarawi/matchview/internal/repository/memory"
	"github.com/omarshaarawi/matchview/internal/scheduler"
	"github.com/omarshaarawi/matchview/internal/service"
	"github.com/omarshaarawi/matchview/internal/web"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Error("Error loading .env file", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	dataClient := data.NewClient(cfg.Data)
	dataAPI := data.NewAPI(dataClient)

	repo := memory.NewRepository()
	loader := service.NewLoader(dataAPI, repo)

	sharedPages, err := web.LoadSharedPages(cfg.Server.SharedPagesFile)
	if err != nil {
		return err
	}

	handler := web.NewHandler(loader, web.NewSessionStore(cfg.Server.SessionKey), web.Options{
		Years:       cfg.Data.Years,
		DefaultYear: cfg.Data.DefaultYear,
		LeagueName:  cfg.Server.LeagueName,
		SharedPages: sharedPages,
	})
	server := web.NewServer(cfg.Server.Addr, web.Routes(handler, cfg.Data.Dir))

	sched, err := scheduler.NewScheduler(loader, cfg.Data.Years, cfg.Prefetch.Interval, cfg.Data.Timeout)
	if err != nil {
		return err
	}

	// The loader may fetch the year files from this server's /data route,
	// so the port is bound before the first prefetch runs.
	if err := server.Listen(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(ctx)
	}()

	if err := sched.Start(); err != nil {
		stop()
		if serverErr := <-errCh; serverErr != nil {
			slog.Error("Error shutting down HTTP server", "error", serverErr)
		}
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("Error running HTTP server", "error", err)
			return err
		}
	case <-ctx.Done():
		slog.Info("Shutting down gracefully...")
		if err := <-errCh; err != nil {
			slog.Error("Error shutting down HTTP server", "error", err)
		}
	}

	return nil
}
