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

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"mortar/internal/building"
	"mortar/internal/fixture"
	"mortar/internal/platform/config"
	"mortar/internal/platform/httpserver"
	platmetrics "mortar/internal/platform/metrics"
	"mortar/internal/solver"
	"mortar/internal/syncer"
	"mortar/internal/syncer/metrics"
	httptransport "mortar/internal/transport/http"
)

const shutdownTimeout = 10 * time.Second

// RunOptions holds flags for the run command.
type RunOptions struct {
	ModelPath string
	Listen    string
	Watch     bool
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:          "run",
		Short:        "Serve the synchronized solver registry for a building model",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), rootOpts, opts)
		},
	}

	cmd.Flags().StringVar(&opts.ModelPath, "model", "", "path to the building model file")
	cmd.Flags().StringVar(&opts.Listen, "listen", "", "listen address, defaults to MORTAR_LISTEN")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "reload the model file when it changes on disk")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}

func runServe(ctx context.Context, rootOpts *RootOptions, opts *RunOptions) error {
	log := rootOpts.Logger()
	listen := config.FromEnv().ListenAddr
	if opts.Listen != "" {
		listen = opts.Listen
	}

	doc, err := fixture.Load(opts.ModelPath)
	if err != nil {
		return err
	}

	model := building.NewMemoryStore(building.WithLogger(log))
	registry, err := solver.NewMemoryStore(model, solver.WithLogger(log))
	if err != nil {
		return err
	}
	sync, err := syncer.New(model, registry,
		syncer.WithLogger(log),
		syncer.WithMetrics(metrics.New()),
	)
	if err != nil {
		return err
	}
	if err := sync.Start(); err != nil {
		return err
	}
	defer func() { _ = sync.Close() }()

	if err := fixture.Apply(doc, model); err != nil {
		return err
	}
	log.Info("model loaded",
		"path", opts.ModelPath,
		"perimeters", len(doc.Perimeters),
		"constraints", len(doc.Constraints),
	)

	router := httptransport.NewRouter(httptransport.New(registry, log), platmetrics.New())
	srv := httpserver.New(listen, router)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server listening", "addr", listen)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if opts.Watch {
		watcher, err := fixture.NewWatcher(opts.ModelPath, model, doc,
			fixture.WithWatcherLogger(log))
		if err != nil {
			return err
		}
		g.Go(func() error { return watcher.Run(ctx) })
	}

	return g.Wait()
}
