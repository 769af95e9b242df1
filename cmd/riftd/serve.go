package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riftbroker/rift/internal/broker"
	"github.com/riftbroker/rift/internal/config"
	"github.com/riftbroker/rift/internal/grpcserver"
	"github.com/riftbroker/rift/internal/logging"
	"github.com/riftbroker/rift/internal/metrics"
	"github.com/riftbroker/rift/internal/queue"
	"github.com/riftbroker/rift/internal/tracing"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		brokerAddr string
		adminAddr  string
		logLevel   string
		logFormat  string
		dataDir    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the rift broker",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			if configPath != "" {
				loaded, err := config.LoadFromFile(configPath)
				if err != nil {
					return fmt.Errorf("load config %s: %w", configPath, err)
				}
				cfg = loaded
			}
			config.LoadFromEnv(cfg)

			if cmd.Flags().Changed("broker-addr") {
				cfg.Listen.BrokerAddr = brokerAddr
			}
			if cmd.Flags().Changed("admin-addr") {
				cfg.Listen.AdminAddr = adminAddr
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Observability.Logging.Level = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.Observability.Logging.Format = logFormat
			}
			if cmd.Flags().Changed("data-dir") {
				cfg.Data.Dir = dataDir
			}

			logging.SetLevelFromString(cfg.Observability.Logging.Level)
			logging.InitStructured(cfg.Observability.Logging.Format, cfg.Observability.Logging.Level)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			if cfg.Observability.Tracing.Enabled {
				if err := tracing.Init(ctx, tracing.Config{
					Enabled:     cfg.Observability.Tracing.Enabled,
					Exporter:    cfg.Observability.Tracing.Exporter,
					Endpoint:    cfg.Observability.Tracing.Endpoint,
					ServiceName: cfg.Observability.Tracing.ServiceName,
					SampleRate:  cfg.Observability.Tracing.SampleRate,
				}); err != nil {
					return fmt.Errorf("init tracing: %w", err)
				}
				defer tracing.Shutdown(context.Background())
			}

			if cfg.Observability.Metrics.Enabled {
				metrics.InitPrometheus(cfg.Observability.Metrics.Namespace, cfg.Observability.Metrics.HistogramBuckets)
			}

			b := broker.New(broker.Config{
				DefaultLeaseTTL:         cfg.Broker.DefaultLeaseTTL,
				LeaseSweepInterval:      cfg.Broker.LeaseSweepInterval,
				MaxDeliveryBufferPerSub: cfg.Broker.MaxDeliveryBufferPerSub,
			}, queue.NewChannelNotifier())
			b.Start(ctx)
			defer b.Stop()

			grpcSrv := grpcserver.New(b)
			grpcErrCh := make(chan error, 1)
			go func() {
				if err := grpcSrv.Serve(cfg.Listen.BrokerAddr); err != nil {
					grpcErrCh <- err
				}
			}()

			adminMux := http.NewServeMux()
			adminMux.Handle("/metrics", metrics.Handler())
			adminMux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("ok"))
			})
			adminServer := &http.Server{Addr: cfg.Listen.AdminAddr, Handler: adminMux}
			adminErrCh := make(chan error, 1)
			go func() {
				logging.Op().Info("admin listener started", "addr", cfg.Listen.AdminAddr)
				if err := adminServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					adminErrCh <- err
				}
			}()

			logging.Op().Info("riftd started", "broker_addr", cfg.Listen.BrokerAddr, "admin_addr", cfg.Listen.AdminAddr)

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case sig := <-sigCh:
				logging.Op().Info("shutdown signal received", "signal", sig.String())
			case err := <-grpcErrCh:
				return fmt.Errorf("broker gRPC server error: %w", err)
			case err := <-adminErrCh:
				return fmt.Errorf("admin server error: %w", err)
			}

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()

			grpcSrv.Stop()
			if err := adminServer.Shutdown(shutdownCtx); err != nil {
				logging.Op().Warn("admin server shutdown error", "error", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	cmd.Flags().StringVar(&brokerAddr, "broker-addr", ":7770", "Broker gRPC listen address")
	cmd.Flags().StringVar(&adminAddr, "admin-addr", ":7771", "Admin listen address (metrics, health)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Reserved for a future durable Message Store backend")

	return cmd
}
