package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/yungtweek/responses-mock/internal/config"
	"github.com/yungtweek/responses-mock/internal/logger"
	"github.com/yungtweek/responses-mock/internal/mock"
)

// Prometheus simulation metrics.
var (
	injectedErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mock_injected_errors_total",
			Help: "Total number of errors injected by the failure simulation.",
		},
		[]string{"status"},
	)
	simulatedDelaySeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mock_simulated_delay_seconds",
			Help:    "Artificial latency added to mock responses.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(injectedErrorsTotal)
	prometheus.MustRegister(simulatedDelaySeconds)
}

// MockResponsesService implements the mock Responses API surface.
//
// It simulates:
//   - base + jitter + TTFT latency
//   - optional per-token latency and generation pacing
//   - error injection
//
// This is a mock/benchmark tool, so behavior is intentionally
// deterministic-ish and configurable via Config plus per-request overrides.
type MockResponsesService struct {
	cfg     config.Config
	started time.Time
}

func NewMockResponsesService(cfg config.Config) *MockResponsesService {
	return &MockResponsesService{cfg: cfg, started: time.Now()}
}

// CreateResponse handles POST /v1/responses: parse (or ignore) the body,
// optionally inject an error, simulate latency, and echo the extracted text
// in a Responses API envelope.
func (s *MockResponsesService) CreateResponse(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, err := decodeRequest(r)
	if err != nil {
		logger.Log.Warnw("[http][CreateResponse] invalid JSON", "err", err, "requestId", RequestID(r.Context()))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON: " + err.Error()})
		return
	}

	o := req.Overrides()

	// Error injection (before any simulated work).
	if s.shouldFail(o) {
		st := mock.PickErrorStatus(s.errorMode(o))
		injectedErrorsTotal.WithLabelValues(strconv.Itoa(st)).Inc()
		logger.Log.Infow("[http][CreateResponse] injected error", "status", st, "mode", s.errorMode(o))
		writeJSON(w, st, map[string]string{"error": "mock error"})
		return
	}

	model := req.Model(s.cfg.DefaultModel)
	echo := req.EchoText()
	resp := mock.BuildResponse(model, echo)

	// Simulate total latency (roughly): base+jitter + TTFT + generation time.
	delay := s.computeDelay(o, resp.Usage.OutputTokens)
	if delay > 0 {
		simulatedDelaySeconds.Observe(delay.Seconds())
		sleepWithContext(r.Context(), delay)
		if err := r.Context().Err(); err != nil {
			logger.Log.Infow("[http][CreateResponse] canceled during delay", "err", err, "requestId", RequestID(r.Context()))
			return
		}
	}

	logger.Log.Infow("[http][CreateResponse] completed",
		"model", model,
		"stream", req.Stream(),
		"echo", mock.Trim(echo, s.cfg.DebugOutputChars),
		"outputTokens", resp.Usage.OutputTokens,
		"delayMs", delay.Milliseconds(),
		"latencyMs", time.Since(start).Milliseconds(),
	)
	writeJSON(w, http.StatusOK, resp)
}

// ModelInfo describes one entry in the models listing.
type ModelInfo struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	OwnedBy string `json:"owned_by"`
}

// ModelList is the OpenAI-compatible models listing envelope.
type ModelList struct {
	Object string      `json:"object"`
	Data   []ModelInfo `json:"data"`
}

// ListModels handles GET /v1/models so SDK clients that probe the models
// endpoint work against the mock.
func (s *MockResponsesService) ListModels(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, ModelList{
		Object: "list",
		Data: []ModelInfo{{
			ID:      s.cfg.DefaultModel,
			Object:  "model",
			Created: s.started.Unix(),
			OwnedBy: "responses-mock",
		}},
	})
}

// decodeRequest parses the request body. Bodies without a JSON content type
// are ignored outright and treated as the empty object; JSON bodies must
// parse or the call fails with the parse error.
func decodeRequest(r *http.Request) (*mock.Request, error) {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		return mock.EmptyRequest(), nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	return mock.ParseRequest(body)
}

// ---- simulation helpers ----

func (s *MockResponsesService) computeDelay(o *mock.Overrides, outputTokens int) time.Duration {
	ms := s.baseDelayMs(o) + s.jitterMs(o) + s.ttftMs(o)
	// Optional per-token overhead (e.g., server-side processing).
	ms += s.perTokenDelayMs(o) * outputTokens
	// Token generation time from TokensPerSec.
	if tps := s.tokensPerSec(); tps > 0 {
		ms += outputTokens * 1000 / tps
	}
	return time.Duration(ms) * time.Millisecond
}

func (s *MockResponsesService) baseDelayMs(o *mock.Overrides) int {
	if o != nil && o.BaseDelayMs != nil {
		return *o.BaseDelayMs
	}
	return s.cfg.BaseDelayMs
}

func (s *MockResponsesService) jitterMs(o *mock.Overrides) int {
	j := s.cfg.JitterMs
	if o != nil && o.JitterMs != nil {
		j = *o.JitterMs
	}
	if j <= 0 {
		return 0
	}
	return mock.RandIntn(j + 1)
}

func (s *MockResponsesService) perTokenDelayMs(o *mock.Overrides) int {
	if o != nil && o.PerTokenDelayMs != nil {
		return *o.PerTokenDelayMs
	}
	return s.cfg.PerTokenDelayMs
}

func (s *MockResponsesService) ttftMs(o *mock.Overrides) int {
	min := s.cfg.TTFTMinMs
	max := s.cfg.TTFTMaxMs
	if o != nil && o.TTFTMinMs != nil {
		min = *o.TTFTMinMs
	}
	if o != nil && o.TTFTMaxMs != nil {
		max = *o.TTFTMaxMs
	}
	if min <= 0 && max <= 0 {
		return 0
	}
	if min <= 0 {
		min = max
	}
	if max <= 0 {
		max = min
	}
	if max < min {
		max = min
	}
	if max == min {
		return min
	}
	return min + mock.RandIntn(max-min+1)
}

func (s *MockResponsesService) tokensPerSec() int {
	return s.cfg.TokensPerSec
}

func (s *MockResponsesService) errorRate(o *mock.Overrides) float64 {
	if o != nil && o.ErrorRate != nil {
		return *o.ErrorRate
	}
	return s.cfg.ErrorRate
}

func (s *MockResponsesService) errorMode(o *mock.Overrides) string {
	if o != nil && o.ErrorMode != nil {
		return *o.ErrorMode
	}
	return s.cfg.ErrorMode
}

func (s *MockResponsesService) shouldFail(o *mock.Overrides) bool {
	rate := s.errorRate(o)
	if rate <= 0 {
		return false
	}
	if rate >= 1 {
		return true
	}
	return mock.RandFloat64() < rate
}

func sleepWithContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// writeJSON writes data as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.Errorw("[http] write response", "err", err)
	}
}
