package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iwvelando/mortgage-forecast/internal/logging"
	"github.com/iwvelando/mortgage-forecast/internal/server"
	"github.com/iwvelando/mortgage-forecast/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	var (
		serverConfigPath string
		address          string
		maxRequestSize   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculation API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := server.LoadConfig(serverConfigPath)
			if err != nil {
				return fmt.Errorf("failed to load server configuration at %s: %w", serverConfigPath, err)
			}
			if address != "" {
				cfg.Address = address
			}
			if maxRequestSize != "" {
				size, err := server.ParseSize(maxRequestSize)
				if err != nil {
					return err
				}
				cfg.SetRequestSizeBytes(size)
			}

			logger, err := logging.New(cfg.Logging, opts.logLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() {
				_ = logger.Sync()
			}()

			gin.SetMode(cfg.Mode)
			srv := &http.Server{
				Addr:              cfg.Address,
				Handler:           server.NewHandler(logger, cfg.RequestSizeBytes(), Version),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("starting HTTP server",
					zap.String("op", "cmd.serve"),
					zap.String("address", cfg.Address),
					zap.Int64("max_request_size", cfg.RequestSizeBytes()),
				)
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

			logger.Info("shutting down HTTP server", zap.String("op", "cmd.serve"))
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&serverConfigPath, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	cmd.Flags().StringVar(&address, "address", "", "listen address override")
	cmd.Flags().StringVar(&maxRequestSize, "max-request-size", "", "maximum request body size override (e.g. 256K, 1M)")
	return cmd
}
