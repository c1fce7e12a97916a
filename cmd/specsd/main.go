package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"

	"github.com/philippgille/chromem-go"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	specsv1 "specmaster/gen/proto/specs/v1"
	"specmaster/internal/catalog"
	"specmaster/internal/classify"
	"specmaster/internal/common"
	"specmaster/internal/defects"
	"specmaster/internal/export"
	"specmaster/internal/extract"
	"specmaster/internal/pipeline"
	"specmaster/internal/repository"
	"specmaster/internal/server"
	"specmaster/internal/specs"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client, cleanup, err := server.ConnectDB(ctx, cfg.Database.DSN, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Error("failed to load parameter catalog", "path", cfg.Catalog.Path, "error", err)
		os.Exit(1)
	}
	logger.Info("parameter catalog loaded", "parameters", cat.Len())

	rules, err := defects.LoadRules(cfg.Rules.Path)
	if err != nil {
		logger.Error("failed to load defect rules", "path", cfg.Rules.Path, "error", err)
		os.Exit(1)
	}

	matcher, err := buildMatcher(ctx, cfg, cat, logger)
	if err != nil {
		logger.Error("failed to build similarity matcher", "error", err)
		os.Exit(1)
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

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	// Reflection for grpcurl
	reflection.Register(grpcServer)

	specsv1.RegisterSpecsServiceServer(grpcServer, server.NewSpecsService(svc, exporter, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")
	grpcServer.GracefulStop()
	fmt.Println("stopped.")
}

// buildMatcher prefers the remote scoring service; without one it embeds
// catalog labels locally against an OpenAI-compatible endpoint.
func buildMatcher(ctx context.Context, cfg *common.Config, cat *catalog.Catalog, logger *slog.Logger) (classify.Matcher, error) {
	if cfg.Similarity.RemoteURL != "" {
		logger.Info("using remote similarity service", "url", cfg.Similarity.RemoteURL)
		return classify.NewHTTPMatcher(cfg.Similarity.RemoteURL, cat, cfg.Similarity.Timeout, logger), nil
	}

	logger.Info("using local embedding matcher", "model", cfg.Similarity.Model)
	embed := chromem.NewEmbeddingFuncOpenAICompat(
		cfg.Similarity.APIBase,
		cfg.Similarity.APIKey,
		cfg.Similarity.Model,
		nil,
	)
	return classify.NewChromemMatcher(ctx, cat, embed)
}
