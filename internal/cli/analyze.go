package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"textwatch/internal/annotate"
	"textwatch/internal/config"
	"textwatch/internal/logging"
	"textwatch/internal/model"
	"textwatch/internal/pipeline"
	"textwatch/internal/store"
)

var (
	outJSON        string
	analyzeTimeout time.Duration
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the annotation batch once and write the results",
	Long: `Analyze is the one-shot offline mode: connect to the backing store,
fetch all records, run the annotation batch, and write the annotated records
plus the corpus summary as JSON to stdout or a file. Unlike serve, a store
failure here is fatal.

Example:
  textwatch analyze
  textwatch analyze --json results.json
  MONGO_COLLECTION_NAME=posts textwatch analyze --timeout 2m`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (default: stdout)")
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 5*time.Minute, "overall timeout for fetch and annotation")
}

// analysisOutput is the analyze command's JSON document.
type analysisOutput struct {
	Summary model.Summary           `json:"summary"`
	Records []model.AnnotatedRecord `json:"records"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
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

	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	lexicon, err := annotate.LoadLexicon(cfg.WeaponsPath)
	if err != nil {
		sugar.Warnw("weapons list unavailable, detection disabled", "path", cfg.WeaponsPath, "error", err)
	}

	st := store.New(cfg.Mongo.URI(), cfg.Mongo.Database, cfg.Mongo.Collection, cfg.TextField, cfg.Mongo.ConnectTimeout, sugar)
	if err := st.Connect(ctx); err != nil {
		return fmt.Errorf("connect store: %w", err)
	}
	defer func() { _ = st.Disconnect(context.Background()) }()

	records, err := st.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("fetch records: %w", err)
	}

	result := pipeline.Run(records, lexicon, annotate.NewClassifier(), sugar)

	out := analysisOutput{Summary: result.Summary(), Records: result.Records()}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	if outJSON == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(outJSON, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)

	return nil
}
