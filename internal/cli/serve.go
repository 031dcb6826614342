package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/hivebudget/backend/pkg/jobs"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/hivebudget/backend/pkg/router"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Time in-flight requests have to finish on shutdown
const shutdownTimeout = 10 * time.Second

// NewServeCommand creates the serve command.
func NewServeCommand(opts *options) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server and the background jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), opts, listen)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", listenAddress(), "address to listen on")
	return cmd
}

// listenAddress returns the default address, respecting PORT like gin does.
func listenAddress() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":8080"
}

func serve(ctx context.Context, opts *options, listen string) error {
	err := opts.connect()
	if err != nil {
		return err
	}

	r, teardown, err := router.Config(opts.cfg)
	if err != nil {
		return err
	}
	defer teardown()

	router.AttachRoutes(opts.cfg, r.Group(opts.cfg.APIURL.Path))

	scheduler := jobs.New(models.DB, opts.cfg.JobInterval, opts.cfg.JobWorkers)
	for _, c := range scheduler.Collectors() {
		err := prometheus.Register(c)
		if err != nil {
			return err
		}
		defer prometheus.Unregister(c)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		scheduler.Start(ctx)
	}()

	l, err := net.Listen("tcp", listen)
	if err != nil {
		stop()
		wg.Wait()
		return err
	}

	srv := &http.Server{
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().Str("address", l.Addr().String()).Str("version", router.Version()).Msg("starting server")
	err = runServer(ctx, srv, l, shutdownTimeout)

	// Stop the background jobs when the server fails
	stop()
	wg.Wait()

	if err != nil {
		return err
	}

	log.Info().Msg("server stopped")
	return nil
}

// runServer serves on the listener until ctx is done. It returns after
// the in-flight requests have finished or the timeout has passed.
func runServer(ctx context.Context, srv *http.Server, l net.Listener, timeout time.Duration) error {
	shutdown := make(chan error, 1)
	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		shutdown <- srv.Shutdown(shutdownCtx)
	}()

	err := srv.Serve(l)
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return fmt.Errorf("draining requests: %w", err)
	}
	return nil
}
