package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"specmaster/constants"
	specsv1 "specmaster/gen/proto/specs/v1"
	"specmaster/internal/common"
	"specmaster/internal/export"
	"specmaster/internal/pipeline"
	"specmaster/internal/specs"
	"specmaster/internal/utils"
)

type SpecsService struct {
	specsv1.UnimplementedSpecsServiceServer
	svc      *specs.Service
	exporter *export.Service
	logger   *slog.Logger
}

func NewSpecsService(svc *specs.Service, exporter *export.Service, logger *slog.Logger) *SpecsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SpecsService{svc: svc, exporter: exporter, logger: logger}
}

func (s *SpecsService) ProcessDocuments(ctx context.Context, req *specsv1.ProcessDocumentsRequest) (*specsv1.ProcessDocumentsResponse, error) {
	if len(req.GetDocuments()) == 0 {
		s.logger.Error("process documents request has no documents")
		return nil, common.InvalidArgumentError("at least one document is required")
	}

	docs := make([]pipeline.Document, 0, len(req.GetDocuments()))
	for _, d := range req.GetDocuments() {
		name := strings.TrimSpace(d.GetFilename())
		if name == "" {
			return nil, common.InvalidArgumentError("every document needs a filename")
		}
		docs = append(docs, pipeline.Document{Filename: name, Content: d.GetContent()})
	}

	records := make([]map[string]any, 0, len(req.GetDefectRecords()))
	for _, r := range req.GetDefectRecords() {
		records = append(records, r.AsMap())
	}

	s.logger.Info("starting processing run", "documents", len(docs), "defect_records", len(records))
	run, err := s.svc.ProcessRun(ctx, docs, records)
	if err != nil {
		s.logger.Error("processing run failed", "error", err)
		return nil, common.InternalErrorf("process documents: %v", err)
	}

	parsed := make(map[string]int32, len(run.ParsedBySource))
	for origin, n := range run.ParsedBySource {
		parsed[origin] = int32(n)
	}
	return &specsv1.ProcessDocumentsResponse{
		DocumentsProcessed: int32(run.DocumentsProcessed),
		VariantsCreated:    int32(run.VariantsCreated),
		VariantsUpdated:    int32(run.VariantsUpdated),
		ParsedBySource:     parsed,
		Master:             utils.ToPBResolvedSpecs(run.Master),
		Decisions:          run.Decisions,
		Warnings:           run.Warnings,
	}, nil
}

func (s *SpecsService) GetSpecs(ctx context.Context, req *specsv1.GetSpecsRequest) (*specsv1.GetSpecsResponse, error) {
	view := constants.ParseView(req.GetView())
	strategy := constants.ParseStrategy(req.GetStrategy())

	res, err := s.svc.GetSpecs(ctx, view, strategy)
	if err != nil {
		s.logger.Error("spec query failed", "view", view, "strategy", strategy, "error", err)
		return nil, common.InternalErrorf("get specs: %v", err)
	}

	out := &specsv1.GetSpecsResponse{
		Merged: utils.ToPBResolvedSpecs(res.Merged),
		Raw:    utils.ToPBResolvedSpecs(res.Raw),
	}
	if len(res.Grouped) > 0 {
		out.Grouped = make(map[string]*specsv1.SpecGroup, len(res.Grouped))
		for param, variants := range res.Grouped {
			out.Grouped[param] = &specsv1.SpecGroup{Variants: utils.ToPBResolvedSpecs(variants)}
		}
	}
	return out, nil
}

func (s *SpecsService) UpdateSpecs(ctx context.Context, req *specsv1.UpdateSpecsRequest) (*specsv1.UpdateSpecsResponse, error) {
	fields := req.GetUpdates().GetFields()
	if len(fields) == 0 {
		s.logger.Error("update specs request has no updates")
		return nil, common.InvalidArgumentError("updates must be a non-empty map of parameter edits")
	}

	payload := make(map[string]json.RawMessage, len(fields))
	for param, value := range fields {
		raw, err := value.MarshalJSON()
		if err != nil {
			return nil, common.InvalidArgumentErrorf("update for %q: %v", param, err)
		}
		payload[param] = raw
	}

	overrides, err := specs.ParseOverrides(payload)
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}

	applied, err := s.svc.ApplyOverrides(ctx, overrides)
	if err != nil {
		s.logger.Error("apply overrides failed", "error", err)
		return nil, common.InternalErrorf("update specs: %v", err)
	}

	res, err := s.svc.GetSpecs(ctx, constants.ViewMerged, constants.StrategyPriority)
	if err != nil {
		return nil, common.InternalErrorf("update specs: %v", err)
	}
	return &specsv1.UpdateSpecsResponse{
		Applied: int32(applied),
		Master:  utils.ToPBResolvedSpecs(res.Merged),
	}, nil
}

func (s *SpecsService) ClassifyDefects(ctx context.Context, req *specsv1.ClassifyDefectsRequest) (*specsv1.ClassifyDefectsResponse, error) {
	if len(req.GetRecords()) == 0 {
		return nil, common.InvalidArgumentError("at least one defect record is required")
	}
	records := make([]map[string]any, 0, len(req.GetRecords()))
	for _, r := range req.GetRecords() {
		records = append(records, r.AsMap())
	}

	decisions, err := s.svc.ClassifyDefects(ctx, records)
	if err != nil {
		s.logger.Error("defect classification failed", "error", err)
		return nil, common.InternalErrorf("classify defects: %v", err)
	}
	return &specsv1.ClassifyDefectsResponse{Decisions: decisions}, nil
}

func (s *SpecsService) ExportMaster(ctx context.Context, req *specsv1.ExportMasterRequest) (*specsv1.ExportMasterResponse, error) {
	strategy := constants.ParseStrategy(req.GetStrategy())

	xlsx, err := s.exporter.ExportMasterXLSX(ctx, strategy)
	if err != nil {
		s.logger.Error("master export failed", "strategy", strategy, "error", err)
		return nil, common.InternalErrorf("export master: %v", err)
	}
	return &specsv1.ExportMasterResponse{
		Filename: "master_specs.xlsx",
		Xlsx:     xlsx,
	}, nil
}
