package specs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specmaster/constants"
	"specmaster/internal/classify"
	"specmaster/internal/common"
	"specmaster/internal/defects"
	"specmaster/internal/entity"
	"specmaster/internal/extract"
	"specmaster/internal/pipeline"
	"specmaster/internal/repository"
	"specmaster/internal/resolve"
)

// memStore is an in-memory variant/extraction store with a monotonic
// clock, standing in for the Ent-backed repositories.
type memStore struct {
	mu          sync.Mutex
	variants    []entity.SpecVariant
	extractions []entity.RawExtraction
	ticks       int
}

func (m *memStore) now() time.Time {
	m.ticks++
	return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(m.ticks) * time.Second)
}

func (m *memStore) Upsert(_ context.Context, v *entity.SpecVariant) (*entity.SpecVariant, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.variants {
		ex := &m.variants[i]
		if ex.Param == v.Param && ex.Source == v.Source && ex.Raw == v.Raw {
			ex.Value, ex.Unit, ex.Origin, ex.Priority, ex.Meta = v.Value, v.Unit, v.Origin, v.Priority, v.Meta
			if v.ExtractionID != nil {
				ex.ExtractionID = v.ExtractionID
			}
			out := *ex
			return &out, false, nil
		}
	}
	row := *v
	row.ID = uuid.New()
	row.UploadedAt = m.now()
	m.variants = append(m.variants, row)
	out := row
	return &out, true, nil
}

func (m *memStore) UpsertOverride(_ context.Context, param, value, unit string, source constants.SourceType) (*entity.SpecVariant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if source == "" {
		source = constants.SourceUser
	}
	for i := range m.variants {
		ex := &m.variants[i]
		if ex.Param == param && ex.Source == constants.SourceUser {
			if unit == "" {
				unit = ex.Unit
			}
			raw := strings.TrimSpace(fmt.Sprintf("USER_EDIT:%s %s", value, unit))
			ex.Value, ex.Unit, ex.Raw, ex.Priority = value, unit, raw, constants.PriorityUser
			out := *ex
			return &out, nil
		}
	}
	raw := strings.TrimSpace(fmt.Sprintf("USER_EDIT:%s %s", value, unit))
	row := entity.SpecVariant{
		ID: uuid.New(), Param: param, Value: value, Unit: unit, Raw: raw,
		Source: source, Priority: constants.PriorityUser, UploadedAt: m.now(),
	}
	m.variants = append(m.variants, row)
	return &row, nil
}

func (m *memStore) ListAll(context.Context) ([]entity.SpecVariant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.SpecVariant, len(m.variants))
	copy(out, m.variants)
	return out, nil
}

func (m *memStore) ListByParam(_ context.Context, param string) ([]entity.SpecVariant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.SpecVariant
	for _, v := range m.variants {
		if v.Param == param {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *memStore) Create(_ context.Context, e *entity.RawExtraction) (*entity.RawExtraction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row := *e
	row.CreatedAt = m.now()
	m.extractions = append(m.extractions, row)
	return &row, nil
}

func (m *memStore) GetByID(_ context.Context, id uuid.UUID) (*entity.RawExtraction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.extractions {
		if e.ID == id {
			out := e
			return &out, nil
		}
	}
	return nil, fmt.Errorf("raw extraction %s: %w", id, common.ErrNotFound)
}

func (m *memStore) RunInTx(_ context.Context, fn func(repository.VariantRepository, repository.ExtractionRepository) error) error {
	return fn(m, m)
}

type memSnapshot struct {
	mu     sync.Mutex
	writes int
	last   []resolve.ResolvedSpec
}

func (s *memSnapshot) WriteMaster(_ context.Context, rows []resolve.ResolvedSpec) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	s.last = rows
	return nil
}

type labelMatcher struct{}

func (labelMatcher) BestMatch(_ context.Context, line string) (string, float64, error) {
	l := strings.ToLower(line)
	switch {
	case strings.Contains(l, "cap diameter"):
		return "cap_diameter", 0.9, nil
	case strings.Contains(l, "pressure"):
		return "max_pressure", 0.8, nil
	case strings.Contains(l, "tear"):
		return "tear_size_limit", 0.85, nil
	default:
		return "", -1, nil
	}
}

func newTestService(t *testing.T) (*Service, *memStore, *memSnapshot) {
	t.Helper()
	logger := slog.Default()
	classifier := classify.NewClassifier(labelMatcher{}, 0, logger)
	processor := pipeline.NewProcessor(
		extract.NewPlainTextExtractor(logger),
		pipeline.NewParseStage(classifier, logger),
		logger,
	)
	store := &memStore{}
	snapshot := &memSnapshot{}
	engine := defects.NewEngine(defects.DefaultRules(), logger)
	return NewService(processor, store, store, engine, snapshot, logger), store, snapshot
}

var runDocs = []pipeline.Document{
	{Filename: "sheet_a.txt", Content: []byte("Cap diameter: 25mm\nMax pressure 10 bar\n")},
	{Filename: "sheet_b.txt", Content: []byte("Cap diameter: 26mm\nTear size limit 3 mm\n")},
}

func TestProcessRun(t *testing.T) {
	svc, store, snapshot := newTestService(t)

	run, err := svc.ProcessRun(context.Background(), runDocs, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, run.DocumentsProcessed)
	assert.Equal(t, 4, run.VariantsCreated)
	assert.Zero(t, run.VariantsUpdated)
	assert.Equal(t, map[string]int{"sheet_a.txt": 2, "sheet_b.txt": 2}, run.ParsedBySource)
	require.Len(t, store.extractions, 2)

	stored, err := store.GetByID(context.Background(), store.extractions[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "sheet_a.txt", stored.Origin)
	_, err = store.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)

	// merged master: one row per parameter
	require.Len(t, run.Master, 3)
	assert.Equal(t, 1, snapshot.writes)
	assert.Len(t, snapshot.last, 3)
}

func TestProcessRunIdempotent(t *testing.T) {
	svc, store, _ := newTestService(t)

	_, err := svc.ProcessRun(context.Background(), runDocs, nil)
	require.NoError(t, err)
	countAfterFirst := len(store.variants)

	run, err := svc.ProcessRun(context.Background(), runDocs, nil)
	require.NoError(t, err)

	assert.Zero(t, run.VariantsCreated)
	assert.Equal(t, 4, run.VariantsUpdated)
	assert.Equal(t, countAfterFirst, len(store.variants))

	// refreshed variants point at the second run's landing records
	require.Len(t, store.extractions, 4)
	secondRunIDs := make(map[uuid.UUID]bool)
	for _, ex := range store.extractions[2:] {
		secondRunIDs[ex.ID] = true
	}
	for _, v := range store.variants {
		require.NotNil(t, v.ExtractionID)
		assert.True(t, secondRunIDs[*v.ExtractionID], "variant %s still bound to a first-run extraction", v.Param)
	}
}

func TestProcessRunClassifiesDefects(t *testing.T) {
	svc, _, _ := newTestService(t)

	run, err := svc.ProcessRun(context.Background(), runDocs, []map[string]any{
		{"defect_type": "dent", "measured_pressure": 8},
		{"defect_type": "dent", "measured_pressure": 12},
		{"defect_type": "hole", "hole_size": 2},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Repairable",
		"Not Repairable",
		defects.DecisionSpecMissing, // no hole_diameter in the documents
	}, run.Decisions)
}

func TestApplyOverridesSupremacy(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.ProcessRun(context.Background(), runDocs, nil)
	require.NoError(t, err)

	applied, err := svc.ApplyOverrides(context.Background(), []Override{
		{Param: "cap_diameter", Value: "24.5", Unit: "mm", Source: constants.SourceUser},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, applied)

	res, err := svc.GetSpecs(context.Background(), constants.ViewMerged, constants.StrategyPriority)
	require.NoError(t, err)
	for _, row := range res.Merged {
		if row.Param == "cap_diameter" {
			assert.Equal(t, "24.5", row.Value)
			assert.Equal(t, constants.SourceUser, row.Source)
			assert.Equal(t, "USER_EDIT:24.5 mm", row.Raw)
			return
		}
	}
	t.Fatal("cap_diameter missing from merged view")
}

func TestApplyOverrideReplacesExistingUserRow(t *testing.T) {
	svc, store, _ := newTestService(t)

	for _, value := range []string{"24.0", "24.5"} {
		_, err := svc.ApplyOverrides(context.Background(), []Override{
			{Param: "cap_diameter", Value: value, Unit: "mm"},
		})
		require.NoError(t, err)
	}

	userRows := 0
	for _, v := range store.variants {
		if v.Param == "cap_diameter" && v.Source == constants.SourceUser {
			userRows++
			assert.Equal(t, "24.5", v.Value)
		}
	}
	assert.Equal(t, 1, userRows)
}

func TestApplyOverrideKeepsPriorUnit(t *testing.T) {
	svc, store, _ := newTestService(t)

	_, err := svc.ApplyOverrides(context.Background(), []Override{
		{Param: "cap_diameter", Value: "24.0", Unit: "mm"},
	})
	require.NoError(t, err)

	// a unitless edit refines the value without dropping the unit
	_, err = svc.ApplyOverrides(context.Background(), []Override{
		{Param: "cap_diameter", Value: "24.5"},
	})
	require.NoError(t, err)

	var row *entity.SpecVariant
	for i := range store.variants {
		if store.variants[i].Param == "cap_diameter" && store.variants[i].Source == constants.SourceUser {
			row = &store.variants[i]
		}
	}
	require.NotNil(t, row)
	assert.Equal(t, "24.5", row.Value)
	assert.Equal(t, "mm", row.Unit)
	assert.Equal(t, "USER_EDIT:24.5 mm", row.Raw)
}

func TestGetSpecsViews(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.ProcessRun(context.Background(), runDocs, nil)
	require.NoError(t, err)

	raw, err := svc.GetSpecs(context.Background(), constants.ViewRaw, constants.StrategyPriority)
	require.NoError(t, err)
	assert.Len(t, raw.Raw, 4)
	assert.Nil(t, raw.Merged)

	all, err := svc.GetSpecs(context.Background(), constants.ViewMerged, constants.StrategyAll)
	require.NoError(t, err)
	assert.Len(t, all.Grouped["cap_diameter"], 2)

	latest, err := svc.GetSpecs(context.Background(), constants.ViewMerged, constants.StrategyLatest)
	require.NoError(t, err)
	assert.Len(t, latest.Merged, 3)
}

// sanity check that override payload parsing feeds the service correctly
func TestOverridePayloadEndToEnd(t *testing.T) {
	svc, _, _ := newTestService(t)

	overrides, err := ParseOverrides(map[string]json.RawMessage{
		"coating_required": json.RawMessage(`"yes"`),
	})
	require.NoError(t, err)
	_, err = svc.ApplyOverrides(context.Background(), overrides)
	require.NoError(t, err)

	decisions, err := svc.ClassifyDefects(context.Background(), []map[string]any{
		{"defect_type": "scratch"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Not Repairable"}, decisions)
}
