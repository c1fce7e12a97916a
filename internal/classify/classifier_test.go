package classify

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specmaster/internal/catalog"
)

type stubMatcher struct {
	param string
	score float64
	err   error
}

func (s *stubMatcher) BestMatch(context.Context, string) (string, float64, error) {
	return s.param, s.score, s.err
}

func TestClassifyAboveFloor(t *testing.T) {
	c := NewClassifier(&stubMatcher{param: "cap_diameter", score: 0.82}, 0, slog.Default())
	param, score, ok := c.Classify(context.Background(), "Cap diameter: 25mm")
	assert.True(t, ok)
	assert.Equal(t, "cap_diameter", param)
	assert.InDelta(t, 0.82, score, 1e-9)
}

func TestClassifyBelowFloorDiscarded(t *testing.T) {
	// 0.40 is the best score, but still below the floor
	c := NewClassifier(&stubMatcher{param: "cap_diameter", score: 0.40}, 0, slog.Default())
	_, _, ok := c.Classify(context.Background(), "some unrelated sentence")
	assert.False(t, ok)
}

func TestClassifyExactFloorAccepted(t *testing.T) {
	c := NewClassifier(&stubMatcher{param: "max_pressure", score: 0.55}, 0, slog.Default())
	_, _, ok := c.Classify(context.Background(), "operating pressure 10 bar")
	assert.True(t, ok)
}

func TestClassifyMatcherErrorDegradesToNoMatch(t *testing.T) {
	c := NewClassifier(&stubMatcher{err: errors.New("service down")}, 0, slog.Default())
	param, score, ok := c.Classify(context.Background(), "Cap diameter: 25mm")
	assert.False(t, ok)
	assert.Empty(t, param)
	assert.Zero(t, score)
}

func TestHTTPMatcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"param": "hole_diameter", "score": 0.73}`))
	}))
	defer srv.Close()

	m := NewHTTPMatcher(srv.URL, catalog.Default(), time.Second, slog.Default())
	param, score, err := m.BestMatch(context.Background(), "hole dia 5mm")
	require.NoError(t, err)
	assert.Equal(t, "hole_diameter", param)
	assert.InDelta(t, 0.73, score, 1e-9)
}

func TestHTTPMatcherNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	m := NewHTTPMatcher(srv.URL, catalog.Default(), time.Second, slog.Default())
	_, _, err := m.BestMatch(context.Background(), "hole dia 5mm")
	assert.Error(t, err)
}
