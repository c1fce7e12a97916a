// Package specs owns the processing run: document extraction fans out,
// every produced variant lands in the store under one transaction, and the
// merged master is recomputed and snapshotted.
package specs

import (
	"context"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"specmaster/constants"
	"specmaster/internal/defects"
	"specmaster/internal/entity"
	"specmaster/internal/pipeline"
	"specmaster/internal/repository"
	"specmaster/internal/resolve"
)

// extractConcurrency bounds the per-run document fan-out.
const extractConcurrency = 4

// SnapshotSink receives the flat master table after each run, for
// archival/export outside the core.
type SnapshotSink interface {
	WriteMaster(ctx context.Context, rows []resolve.ResolvedSpec) error
}

// RunResult summarizes one processing run.
type RunResult struct {
	DocumentsProcessed int
	VariantsCreated    int
	VariantsUpdated    int
	ParsedBySource     map[string]int // origin filename -> candidate count
	Master             []resolve.ResolvedSpec
	Decisions          []string
	Warnings           []string
}

// SpecsResult is the answer to a parameter-resolution query; exactly one
// field is populated depending on view and strategy.
type SpecsResult struct {
	Merged  []resolve.ResolvedSpec
	Grouped map[string][]resolve.ResolvedSpec
	Raw     []resolve.ResolvedSpec
}

// Service wires the orchestrator, the variant store and the rule engine
// into the operations the API surface exposes.
type Service struct {
	processor *pipeline.Processor
	txRunner  repository.TxRunner
	variants  repository.VariantRepository
	engine    *defects.Engine
	snapshot  SnapshotSink
	logger    *slog.Logger
}

func NewService(
	processor *pipeline.Processor,
	txRunner repository.TxRunner,
	variants repository.VariantRepository,
	engine *defects.Engine,
	snapshot SnapshotSink,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		processor: processor,
		txRunner:  txRunner,
		variants:  variants,
		engine:    engine,
		snapshot:  snapshot,
		logger:    logger,
	}
}

// ProcessRun extracts and parses every document (in parallel), commits all
// resulting variants in a single transaction, recomputes the merged
// master, emits the snapshot, and classifies defectRecords against the
// fresh master.
func (s *Service) ProcessRun(ctx context.Context, docs []pipeline.Document, defectRecords []map[string]any) (*RunResult, error) {
	results := make([]*pipeline.DocumentResult, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(extractConcurrency)
	for i, doc := range docs {
		g.Go(func() error {
			res, err := s.processor.ProcessDocument(gctx, doc)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("processing run aborted during extraction", "error", err)
		return nil, err
	}

	run := &RunResult{
		DocumentsProcessed: len(docs),
		ParsedBySource:     make(map[string]int, len(docs)),
	}

	err := s.txRunner.RunInTx(ctx, func(variants repository.VariantRepository, extractions repository.ExtractionRepository) error {
		for _, res := range results {
			if _, err := extractions.Create(ctx, &res.Extraction); err != nil {
				return err
			}
			run.Warnings = append(run.Warnings, res.Warnings...)

			count := 0
			for _, param := range sortedParams(res.Candidates) {
				for _, candidate := range res.Candidates[param] {
					_, created, err := variants.Upsert(ctx, &candidate)
					if err != nil {
						return err
					}
					if created {
						run.VariantsCreated++
					} else {
						run.VariantsUpdated++
					}
					count++
				}
			}
			run.ParsedBySource[res.Extraction.Origin] = count
		}
		return nil
	})
	if err != nil {
		s.logger.Error("processing run aborted, transaction rolled back", "error", err)
		return nil, err
	}

	all, err := s.variants.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	run.Master = resolve.Merge(all, constants.StrategyPriority)

	if s.snapshot != nil {
		if err := s.snapshot.WriteMaster(ctx, run.Master); err != nil {
			s.logger.Warn("master snapshot failed", "error", err)
			run.Warnings = append(run.Warnings, "master snapshot failed: "+err.Error())
		}
	}

	if len(defectRecords) > 0 {
		run.Decisions = s.engine.ClassifyBatch(defectRecords, resolve.BuildMaster(all))
	}

	s.logger.Info("processing run complete",
		"documents", run.DocumentsProcessed,
		"variants_created", run.VariantsCreated,
		"variants_updated", run.VariantsUpdated,
		"decisions", len(run.Decisions),
	)
	return run, nil
}

// GetSpecs answers the parameter-resolution query.
func (s *Service) GetSpecs(ctx context.Context, view constants.View, strategy constants.Strategy) (*SpecsResult, error) {
	all, err := s.variants.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	switch {
	case view == constants.ViewRaw:
		return &SpecsResult{Raw: resolve.Raw(all)}, nil
	case strategy == constants.StrategyAll:
		return &SpecsResult{Grouped: resolve.GroupAll(all)}, nil
	default:
		return &SpecsResult{Merged: resolve.Merge(all, strategy)}, nil
	}
}

// ApplyOverrides upserts manual edits; the whole batch commits in one
// transaction so concurrent edits cannot interleave USER-row replacements.
func (s *Service) ApplyOverrides(ctx context.Context, overrides []Override) (int, error) {
	applied := 0
	err := s.txRunner.RunInTx(ctx, func(variants repository.VariantRepository, _ repository.ExtractionRepository) error {
		for _, o := range overrides {
			if _, err := variants.UpsertOverride(ctx, o.Param, o.Value, o.Unit, o.Source); err != nil {
				return err
			}
			applied++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.logger.Info("overrides applied", "count", applied)
	return applied, nil
}

// Master recomputes the full merged master from the variant store.
func (s *Service) Master(ctx context.Context) (resolve.MergedMaster, error) {
	all, err := s.variants.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return resolve.BuildMaster(all), nil
}

// ClassifyDefects classifies a batch of defect records against the current
// merged master and returns the decision column in record order.
func (s *Service) ClassifyDefects(ctx context.Context, records []map[string]any) ([]string, error) {
	master, err := s.Master(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.ClassifyBatch(records, master), nil
}

func sortedParams(candidates map[string][]entity.SpecVariant) []string {
	params := make([]string, 0, len(candidates))
	for p := range candidates {
		params = append(params, p)
	}
	sort.Strings(params)
	return params
}
