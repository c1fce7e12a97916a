package pipeline

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specmaster/constants"
	"specmaster/internal/classify"
	"specmaster/internal/extract"
)

// keywordMatcher scores a line by whether it mentions a known label.
type keywordMatcher struct{}

func (keywordMatcher) BestMatch(_ context.Context, line string) (string, float64, error) {
	l := strings.ToLower(line)
	switch {
	case strings.Contains(l, "cap diameter"):
		return "cap_diameter", 0.91, nil
	case strings.Contains(l, "surface finish"):
		return "surface_finish_tolerance", 0.88, nil
	case strings.Contains(l, "pressure"):
		return "max_pressure", 0.77, nil
	case strings.Contains(l, "material"):
		return "material_type", 0.81, nil
	case strings.Contains(l, "revision"):
		return "cap_diameter", 0.32, nil
	default:
		return "", -1, nil
	}
}

func newTestProcessor() *Processor {
	logger := slog.Default()
	classifier := classify.NewClassifier(keywordMatcher{}, 0, logger)
	return NewProcessor(extract.NewPlainTextExtractor(logger), NewParseStage(classifier, logger), logger)
}

const sampleDoc = `Cap diameter: 25mm

Surface finish 12 micron
Operating pressure 14.5 psi
Material type: steel
Revision 3 of drawing
just-noise
`

func TestProcessDocument(t *testing.T) {
	p := newTestProcessor()
	res, err := p.ProcessDocument(context.Background(), Document{
		Filename: "spec_sheet.txt",
		Content:  []byte(sampleDoc),
	})
	require.NoError(t, err)

	assert.Equal(t, "spec_sheet.txt", res.Extraction.Origin)
	assert.Equal(t, constants.SourceOther, res.Extraction.SourceType)
	assert.NotEmpty(t, res.Extraction.RawText)

	require.Len(t, res.Candidates, 4)

	cap := res.Candidates["cap_diameter"]
	require.Len(t, cap, 1)
	assert.Equal(t, "25.0", cap[0].Value)
	assert.Equal(t, "mm", cap[0].Unit)
	assert.Equal(t, "Cap diameter: 25mm", cap[0].Raw)
	assert.Equal(t, constants.PriorityOther, cap[0].Priority)
	require.NotNil(t, cap[0].ExtractionID)
	assert.Equal(t, res.Extraction.ID, *cap[0].ExtractionID)

	finish := res.Candidates["surface_finish_tolerance"]
	require.Len(t, finish, 1)
	assert.Equal(t, "12.0", finish[0].Value)
	assert.Equal(t, "µm", finish[0].Unit)

	pressure := res.Candidates["max_pressure"]
	require.Len(t, pressure, 1)
	assert.InDelta(t, 0.99974, mustFloat(t, pressure[0].Value), 1e-4)
	assert.Equal(t, "psi", pressure[0].Unit)

	// no normalization target: last-token fallback kept verbatim
	material := res.Candidates["material_type"]
	require.Len(t, material, 1)
	assert.Equal(t, "steel", material[0].Value)
	assert.Empty(t, material[0].Unit)
}

func TestProcessDocumentSkipsLowConfidenceLines(t *testing.T) {
	p := newTestProcessor()
	res, err := p.ProcessDocument(context.Background(), Document{
		Filename: "revisions.txt",
		Content:  []byte("Revision 3 of drawing\nRevision 4 of drawing\n"),
	})
	require.NoError(t, err)
	assert.Empty(t, res.Candidates)
}

func TestProcessDocumentUnsupportedTypeYieldsWarning(t *testing.T) {
	p := newTestProcessor()
	res, err := p.ProcessDocument(context.Background(), Document{
		Filename: "drawing.pdf",
		Content:  []byte{0x25, 0x50, 0x44, 0x46},
	})
	require.NoError(t, err)
	assert.Equal(t, constants.SourcePDF, res.Extraction.SourceType)
	assert.Empty(t, res.Candidates)
	assert.NotEmpty(t, res.Warnings)
}

func mustFloat(t *testing.T, s string) float64 {
	t.Helper()
	f, err := strconv.ParseFloat(s, 64)
	require.NoError(t, err)
	return f
}
