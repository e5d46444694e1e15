package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/autoform"
	"github.com/vango-dev/autoform/internal/config"
	"github.com/vango-dev/autoform/pkg/middleware"
	"github.com/vango-dev/autoform/pkg/render"
	"github.com/vango-dev/autoform/pkg/server"
	"github.com/vango-dev/autoform/pkg/source"
)

type serveOptions struct {
	addr  string
	forms string
}

func serveCmd(global *globalOptions) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preview server",
		Long: `Start the HTTP preview server.

Schemas are served from the forms directory in autoform.json, or
from S3 when storage.s3.bucket is set. --forms overrides both and
accepts a directory or an s3://bucket/prefix URI.

Routes:
  GET  /forms             list schemas
  GET  /forms/{name}      render a schema as a page
  POST /forms/{name}      validate a submission
  POST /render            render a posted schema
  GET  /components        list registered components
  GET  /ws/preview        live preview over WebSocket
  GET  /metrics           Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, global, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (default from autoform.json)")
	cmd.Flags().StringVar(&opts.forms, "forms", "", "Schema directory or s3:// URI")

	return cmd
}

// newServer assembles the preview server from cfg.
func newServer(cfg *config.Config, opts *serveOptions) (*server.Server, error) {
	var (
		observers []autoform.Option
		metrics   *middleware.Metrics
		gatherer  prometheus.Gatherer
	)
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics = middleware.NewMetrics(
			middleware.WithNamespace(cfg.Metrics.Namespace),
			middleware.WithRegistry(reg),
		)
		gatherer = reg
		observers = append(observers, autoform.WithObserver(metrics))
	} else {
		gatherer = prometheus.NewRegistry()
	}

	registry, err := autoform.NewWithConfig(cfg, observers...)
	if err != nil {
		return nil, err
	}

	uri := opts.forms
	if uri == "" {
		uri = cfg.FormsURI()
	}
	forms, err := source.Open(uri, source.Options{
		Region:   cfg.Storage.S3.Region,
		Endpoint: cfg.Storage.S3.Endpoint,
	})
	if err != nil {
		return nil, err
	}

	addr := opts.addr
	if addr == "" {
		addr = cfg.Address()
	}

	return server.New(&server.Config{
		Address:  addr,
		Forms:    forms,
		Registry: registry,
		Renderer: render.NewRenderer(render.RendererConfig{
			Pretty: cfg.Render.Pretty,
			Indent: cfg.Render.Indent,
		}),
		Metrics:     metrics,
		Gatherer:    gatherer,
		Stylesheets: cfg.Server.Stylesheets,
	}), nil
}

func runServe(ctx context.Context, global *globalOptions, opts *serveOptions, out io.Writer) error {
	cfg, err := loadConfig(global)
	if err != nil {
		return err
	}
	srv, err := newServer(cfg, opts)
	if err != nil {
		return err
	}

	forms := opts.forms
	if forms == "" {
		forms = cfg.FormsURI()
	}
	fmt.Fprint(out, banner)
	info(out, "Listening on http://%s", srv.Address())
	info(out, "Forms from %s", forms)
	fmt.Fprintln(out)

	slog.Info("starting preview server", "addr", srv.Address(), "metrics", cfg.Metrics.Enabled)
	if err := srv.ListenAndServe(ctx); err != nil {
		return err
	}
	slog.Info("preview server stopped")
	return nil
}
