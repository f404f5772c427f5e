package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"textwatch/internal/annotate"
	"textwatch/internal/config"
	"textwatch/internal/logging"
	"textwatch/internal/pipeline"
	"textwatch/internal/server"
	"textwatch/internal/store"
)

var listenAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analysis API server",
	Long: `Serve connects to the backing store, fetches all records, runs the
annotation batch once, and then serves the HTTP API.

A startup failure (unreachable store, failed fetch) leaves the service
running in a degraded state: liveness stays OK, readiness and the processed
endpoints return 503 with the startup reason.

Example:
  textwatch serve
  textwatch serve --listen :9090
  MONGO_HOST=db.internal MONGO_DB_NAME=flagged textwatch serve`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&listenAddr, "listen", "", "HTTP listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if listenAddr != "" {
		cfg.ListenAddr = listenAddr
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()

	sugar.Infow("starting application setup", "listen", cfg.ListenAddr)

	// A missing weapons list is non-fatal; detection just finds nothing.
	lexicon, err := annotate.LoadLexicon(cfg.WeaponsPath)
	if err != nil {
		sugar.Warnw("weapons list unavailable, detection disabled", "path", cfg.WeaponsPath, "error", err)
	} else {
		sugar.Infow("weapons list loaded", "path", cfg.WeaponsPath, "terms", lexicon.Len())
	}

	st := store.New(cfg.Mongo.URI(), cfg.Mongo.Database, cfg.Mongo.Collection, cfg.TextField, cfg.Mongo.ConnectTimeout, sugar)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect, fetch, annotate. Any failure leaves the service up but
	// degraded rather than crashing.
	result := startup(ctx, st, lexicon, sugar)

	srv := server.New(cfg, st, result, lexicon, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	sugar.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("http shutdown failed", "error", err)
	}
	if err := st.Disconnect(shutdownCtx); err != nil {
		sugar.Errorw("store disconnect failed", "error", err)
	}

	return <-errCh
}

// startup runs the connect-then-batch-process sequence exactly once. The
// returned Result is either the complete annotation batch or a Failed result
// carrying the startup error.
func startup(ctx context.Context, st *store.Store, lexicon *annotate.Lexicon, sugar *zap.SugaredLogger) *pipeline.Result {
	sugar.Info("step 1: connecting to store")
	if err := st.Connect(ctx); err != nil {
		sugar.Errorw("store connection failed, serving degraded", "error", err)
		return pipeline.Failed(fmt.Errorf("startup: %w", err))
	}

	sugar.Info("step 2: fetching records")
	records, err := st.FetchAll(ctx)
	if err != nil {
		sugar.Errorw("record fetch failed, serving degraded", "error", err)
		return pipeline.Failed(fmt.Errorf("startup: %w", err))
	}

	sugar.Info("step 3: running annotation batch")
	return pipeline.Run(records, lexicon, annotate.NewClassifier(), sugar)
}
