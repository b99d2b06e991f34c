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

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/stylencms/internal/db"
	"github.com/stylencms/internal/handler"
	"github.com/stylencms/internal/router"
	"github.com/stylencms/internal/service"
	"github.com/stylencms/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill empty content kinds with the built-in defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		report := service.NewSeedService(store.New(a.db), a.catalog).Seed(cmd.Context())
		for _, res := range report.Results {
			switch {
			case res.Error != "":
				fmt.Fprintf(cmd.OutOrStdout(), "%-9s failed: %s\n", res.Kind, res.Error)
			case res.Skipped:
				fmt.Fprintf(cmd.OutOrStdout(), "%-9s skipped (already has rows)\n", res.Kind)
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "%-9s inserted %d\n", res.Kind, res.Inserted)
			}
		}
		return report.Err()
	},
}

var initUserCmd = &cobra.Command{
	Use:   "init-user <username> <password>",
	Short: "Create an editor account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := service.NewUserService(a.db).CreateUser(args[0], args[1]); err != nil {
			if errors.Is(err, db.ErrUserExists) {
				fmt.Fprintf(cmd.OutOrStdout(), "user %s already exists\n", args[0])
				return nil
			}
			return fmt.Errorf("creating user: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "user %s created\n", args[0])
		return nil
	},
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := db.EnsureUser(a.db, a.cfg.SuperRootUserName, a.cfg.SuperRootPassword); err != nil && !errors.Is(err, db.ErrUserExists) {
		return fmt.Errorf("creating root user: %w", err)
	}

	gin.SetMode(a.cfg.GinMode)
	api := handler.NewAPI(a.db, a.catalog, a.handlerOptions())

	if a.cfg.SeedOnStart {
		if err := api.Seeder().Seed(ctx).Err(); err != nil {
			slog.WarnContext(ctx, "startup seeding incomplete", "err", err)
		}
	}

	srv := &http.Server{
		Addr:              a.cfg.ListenAddr,
		Handler:           router.SetupRouter(api, router.Config{SessionSecret: a.cfg.SessionSecret, GinMode: a.cfg.GinMode}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "listening", "addr", a.cfg.ListenAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	slog.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
