package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/philippgille/chromem-go"

	"specmaster/constants"
	"specmaster/internal/catalog"
	"specmaster/internal/classify"
	"specmaster/internal/common"
	"specmaster/internal/defects"
	"specmaster/internal/export"
	"specmaster/internal/extract"
	"specmaster/internal/pipeline"
	"specmaster/internal/repository"
	"specmaster/internal/specs"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem       = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir         = flag.String("dir", "", "directory of specification documents to process (required)")
		defectsPath = flag.String("defects", "", "defect records file (JSON or CSV) to classify against the run's master")
		out         = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		strategyStr = flag.String("strategy", "priority", "merge strategy for the exported master: priority or latest")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "master_specs.xlsx")
	}
	strategy := constants.ParseStrategy(*strategyStr)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if *inmem {
		cfg.Database.DSN = ""
	}
	if cfg.Similarity.RemoteURL == "" && cfg.Similarity.APIKey == "" {
		printError("Error: SIMILARITY_URL or EMBED_API_KEY must be set\n")
		os.Exit(1)
	}

	client, cleanup, err := repository.Open(ctx, repository.Config{DSN: cfg.Database.DSN}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := client.Schema.Create(ctx); err != nil {
		logger.Error("schema migration failed", "error", err)
		os.Exit(1)
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Error("failed to load parameter catalog", "path", cfg.Catalog.Path, "error", err)
		os.Exit(1)
	}

	rules, err := defects.LoadRules(cfg.Rules.Path)
	if err != nil {
		logger.Error("failed to load defect rules", "path", cfg.Rules.Path, "error", err)
		os.Exit(1)
	}

	var matcher classify.Matcher
	if cfg.Similarity.RemoteURL != "" {
		matcher = classify.NewHTTPMatcher(cfg.Similarity.RemoteURL, cat, cfg.Similarity.Timeout, logger)
	} else {
		embed := chromem.NewEmbeddingFuncOpenAICompat(
			cfg.Similarity.APIBase,
			cfg.Similarity.APIKey,
			cfg.Similarity.Model,
			nil,
		)
		matcher, err = classify.NewChromemMatcher(ctx, cat, embed)
		if err != nil {
			logger.Error("failed to build embedding matcher", "error", err)
			os.Exit(1)
		}
	}

	variantsRepo := repository.NewVariantRepository(client, logger)
	txRunner := repository.NewTxRunner(client, logger)

	classifier := classify.NewClassifier(matcher, cfg.Similarity.Threshold, logger)
	processor := pipeline.NewProcessor(
		extract.NewPlainTextExtractor(logger),
		pipeline.NewParseStage(classifier, logger),
		logger,
	)
	engine := defects.NewEngine(rules, logger)

	var snapshot specs.SnapshotSink
	if cfg.Export.SnapshotDir != "" {
		snapshot = export.NewFileSnapshot(cfg.Export.SnapshotDir, logger)
	}

	svc := specs.NewService(processor, txRunner, variantsRepo, engine, snapshot, logger)
	exporter := export.NewService(variantsRepo, logger)

	docs, err := readDocuments(*dir)
	if err != nil {
		logger.Error("failed to read document directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	if len(docs) == 0 {
		printError("Error: no documents found in %s\n", *dir)
		os.Exit(1)
	}

	var defectRecords []map[string]any
	if *defectsPath != "" {
		defectRecords, err = defects.LoadRecords(*defectsPath)
		if err != nil {
			logger.Error("failed to load defect records", "path", *defectsPath, "error", err)
			os.Exit(1)
		}
	}

	logger.Info("starting batch run", "documents", len(docs), "defect_records", len(defectRecords))
	run, err := svc.ProcessRun(ctx, docs, defectRecords)
	if err != nil {
		logger.Error("batch run failed", "error", err)
		os.Exit(1)
	}

	xlsxBytes, err := exporter.ExportMasterXLSX(ctx, strategy)
	if err != nil {
		logger.Error("failed to export master", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "path", *out, "error", err)
		os.Exit(1)
	}

	resultsOut := ""
	if len(defectRecords) > 0 {
		resultsOut = strings.TrimSuffix(*out, filepath.Ext(*out)) + "_defects.xlsx"
		resultBytes, err := exporter.ExportDefectsXLSX(defectRecords, run.Decisions)
		if err != nil {
			logger.Error("failed to export defect results", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(resultsOut, resultBytes, 0644); err != nil {
			logger.Error("failed to write defect results", "path", resultsOut, "error", err)
			os.Exit(1)
		}
	}

	logger.Info("batch run complete",
		"documents", run.DocumentsProcessed,
		"variants_created", run.VariantsCreated,
		"variants_updated", run.VariantsUpdated,
		"master_rows", len(run.Master),
		"output_file", *out)

	fmt.Printf("Batch run complete!\n")
	fmt.Printf("- Documents processed: %d\n", run.DocumentsProcessed)
	fmt.Printf("- Variants created: %d, updated: %d\n", run.VariantsCreated, run.VariantsUpdated)
	fmt.Printf("- Master parameters: %d\n", len(run.Master))
	if len(run.Warnings) > 0 {
		fmt.Printf("- Warnings: %d\n", len(run.Warnings))
	}
	fmt.Printf("- Master: %s\n", *out)
	if resultsOut != "" {
		fmt.Printf("- Defect results: %s\n", resultsOut)
	}
}

// readDocuments loads every regular file in dir, skipping hidden files and
// subdirectories.
func readDocuments(dir string) ([]pipeline.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var docs []pipeline.Document
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		content, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		docs = append(docs, pipeline.Document{Filename: e.Name(), Content: content})
	}
	return docs, nil
}
