package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rogerio-castellano/inventory-dashboard/internal/http/ban"
	"github.com/rogerio-castellano/inventory-dashboard/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-dashboard/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-dashboard/internal/http/router"
	"github.com/rogerio-castellano/inventory-dashboard/internal/redissvc"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var trustProxy bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store, err := openStore(cfg.Database, log)
		if err != nil {
			return fmt.Errorf("could not connect to database: %w", err)
		}
		defer store.Close()

		opts := router.Options{
			Logger:    log,
			JWTSecret: cfg.Auth.JWTSecret,
			RealIP:    trustProxy,
		}

		if cfg.RateLimit.RPS > 0 {
			opts.Limiter = rl.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
			go opts.Limiter.StartVisitorCleanupLoop(ctx)
		}

		rdb, err := redissvc.Connect(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("could not connect to redis: %w", err)
		}
		if rdb != nil {
			defer rdb.Close()
			opts.Bans = ban.NewService(rdb, cfg.Ban.Strikes, cfg.Ban.Window, cfg.Ban.Duration)
			log.Info("ban list enabled", zap.String("redis", cfg.Redis.Addr))
		}

		if opts.JWTSecret == "" {
			log.Warn("auth.jwt_secret is empty, write endpoints are unauthenticated")
		}

		srv := &http.Server{
			Addr:         cfg.Server.Addr,
			Handler:      router.NewRouter(handlers.NewServer(store, log), opts),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("server running", zap.String("addr", srv.Addr))
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
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		log.Info("server exited")
		return nil
	},
}

func init() {
	serveCmd.Flags().BoolVar(&trustProxy, "trust-proxy", false, "take the client IP from X-Forwarded-For / X-Real-IP")
	rootCmd.AddCommand(serveCmd)
}
