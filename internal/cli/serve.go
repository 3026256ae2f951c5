package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/jeffamaxey/framecheck/internal/logging"
	httpadapter "github.com/jeffamaxey/framecheck/pkg/adapters/http"
	"github.com/jeffamaxey/framecheck/pkg/schema"
)

// ServeOptions configures the serve command.
type ServeOptions struct {
	Addr         string
	ContractsDir string
	Debug        bool
}

// Serve loads every contract in the configured directory and serves the
// check API until ctx is cancelled.
func Serve(ctx context.Context, opts ServeOptions) error {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	logger := logging.New(level)

	contracts, err := schema.LoadContracts(opts.ContractsDir)
	if err != nil {
		return err
	}
	if len(contracts) == 0 {
		logger.Warn("no contracts found", "dir", opts.ContractsDir)
	}

	server := &http.Server{
		Addr:    opts.Addr,
		Handler: httpadapter.NewServer(contracts, logger).Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", "err", err)
		}
	}()

	logger.Info("listening", "addr", opts.Addr, "contracts", len(contracts))
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
