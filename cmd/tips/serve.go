package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tips/internal/server"
	"github.com/vango-dev/tips/pkg/middleware"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var (
		port    int
		host    string
		pretty  bool
		tracing bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tips page, fragment and stylesheet",
		Long: `Serve the tips fragment over HTTP.

Routes:
  /                 standalone page
  /fragment/tips    bare fragment for hosts that embed it
  /static/...       fingerprinted stylesheet
  /styles.json      class map
  /mount            websocket mount
  /healthz          liveness probe
  /metrics          Prometheus metrics (unless disabled)

Examples:
  tips serve
  tips serve --port=9000 --dev
  tips serve --host=0.0.0.0 --trace`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if pretty {
				cfg.Render.Pretty = true
			}
			if tracing {
				cfg.Tracing.Enabled = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := newLogger(cfg, os.Stderr)

			s, err := buildSite(cfg)
			if err != nil {
				return err
			}

			opts := server.Options{
				Addr:            cfg.Address(),
				Dev:             cfg.Dev,
				ShutdownTimeout: cfg.ShutdownTimeout(),
				Logger:          logger,
				Tracing:         cfg.Tracing.Enabled,
				TracerName:      cfg.Tracing.TracerName,
			}
			if cfg.Metrics.Enabled {
				opts.Metrics = middleware.NewMetrics(middleware.WithNamespace(cfg.Metrics.Namespace))
			}
			if cfg.Tracing.Enabled {
				tp, shutdown, err := setupTracing(cfg.Name, os.Stderr)
				if err != nil {
					return err
				}
				defer flushTracing(shutdown, logger)
				opts.TracerProvider = tp
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("serving tips",
				"url", "http://"+cfg.Address()+"/",
				"stylesheet", s.StylesheetURL(),
				"metrics", cfg.Metrics.Enabled,
				"tracing", cfg.Tracing.Enabled)

			return server.New(s, opts).Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from tips.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from tips.json)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print HTML")
	cmd.Flags().BoolVar(&tracing, "trace", false, "Write OpenTelemetry spans to stderr")

	return cmd
}
