package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"specmaster/internal/catalog"
	"specmaster/internal/common"
)

// HTTPMatcher delegates scoring to a remote similarity service. The catalog
// travels with every request so the service stays stateless.
type HTTPMatcher struct {
	url     string
	params  []catalog.Parameter
	client  *http.Client
	logger  *slog.Logger
	timeout time.Duration
}

type matchRequest struct {
	Line       string              `json:"line"`
	Parameters []catalog.Parameter `json:"parameters"`
}

type matchResponse struct {
	Param string  `json:"param"`
	Score float64 `json:"score"`
}

func NewHTTPMatcher(url string, cat *catalog.Catalog, timeout time.Duration, logger *slog.Logger) *HTTPMatcher {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPMatcher{
		url:     url,
		params:  cat.Parameters(),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
		timeout: timeout,
	}
}

func (m *HTTPMatcher) BestMatch(ctx context.Context, line string) (string, float64, error) {
	reqID := uuid.New().String()
	start := time.Now()

	bs, err := json.Marshal(matchRequest{Line: line, Parameters: m.params})
	if err != nil {
		return "", 0, fmt.Errorf("encode match request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewReader(bs))
	if err != nil {
		return "", 0, fmt.Errorf("build match request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		m.logger.Warn("similarity.http.send_error", "req_id", reqID, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return "", 0, err
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			m.logger.Warn("similarity.http.response_body_close_error", "req_id", reqID, "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		m.logger.Warn("similarity.http.non_2xx", "req_id", reqID, "status", resp.StatusCode, "elapsed_ms", time.Since(start).Milliseconds())
		return "", 0, fmt.Errorf("similarity service status %d: %w", resp.StatusCode, common.ErrUnavailable)
	}

	var out matchResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", 0, fmt.Errorf("decode match response: %w", err)
	}
	return out.Param, out.Score, nil
}
