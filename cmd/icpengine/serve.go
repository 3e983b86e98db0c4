package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gtm-studio/icp-engine/internal/config"
	"github.com/gtm-studio/icp-engine/internal/domain"
	"github.com/gtm-studio/icp-engine/internal/ipc"
	"github.com/gtm-studio/icp-engine/internal/workflow"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(*configPath)
			if err != nil {
				return err
			}

			logger, err := buildLogger(cfg)
			if err != nil {
				return err
			}
			defer logger.Sync()

			sessions := workflow.NewSessionManager(
				cfg.MaxSessions,
				domain.NamingConvention(cfg.NamingConvention),
				logger,
			)
			handler := &ipc.Handler{Sessions: sessions}
			srv := ipc.NewServer(handler, cfg.ListenAddr)

			// Graceful shutdown on interrupt.
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			go func() {
				<-sigCh
				logger.Info("shutting down")

				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := srv.Shutdown(ctx); err != nil {
					logger.Warn("server shutdown", zap.Error(err))
				}
			}()

			logger.Info("icp engine listening", zap.String("addr", cfg.ListenAddr))
			if err := srv.Start(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
}

// resolveConfig picks the config source: --config flag > ICP_CONFIG
// env > config.yaml next to the exe or in the cwd > built-in
// defaults.
func resolveConfig(flagPath string) (*config.Config, error) {
	path := flagPath
	if path == "" {
		path = os.Getenv("ICP_CONFIG")
	}
	if path == "" {
		path = discoverConfig()
	}
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// discoverConfig looks for config.yaml next to the executable, then
// in the cwd.
func discoverConfig() string {
	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	if _, err := os.Stat("config.yaml"); err == nil {
		return "config.yaml"
	}
	return ""
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	if cfg.LogPath != "" {
		zc.OutputPaths = []string{cfg.LogPath}
		zc.ErrorOutputPaths = []string{cfg.LogPath}
	}
	return zc.Build()
}
