package metric_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/go-token-service/pkg/metric"
)

func TestPrometheus_ExposesRecordedMetrics(t *testing.T) {
	metrics := metric.NewPrometheus("token")

	metrics.WithLabel("result", "success").Increment("link_verification_total")
	metrics.WithLabel("result", "success").Increment("link_verification_total")
	metrics.WithLabel("result", "failure").Increment("link_verification_total")
	metrics.With(metric.Labels{"method": "POST", "code": "200"}).Duration("http_request_duration_seconds", 50*time.Millisecond)

	body := scrape(t, metrics.Handler())
	assert.Contains(t, body, `token_link_verification_total{result="success"} 2`)
	assert.Contains(t, body, `token_link_verification_total{result="failure"} 1`)
	assert.Contains(t, body, `token_http_request_duration_seconds_count{code="200",method="POST"} 1`)
	assert.Contains(t, body, "go_goroutines")
}

func TestPrometheus_DropsMismatchingLabels(t *testing.T) {
	metrics := metric.NewPrometheus("token")

	metrics.WithLabel("result", "success").Increment("session_issued_total")
	assert.NotPanics(t, func() {
		metrics.WithLabel("other", "value").Increment("session_issued_total")
	})

	body := scrape(t, metrics.Handler())
	assert.Contains(t, body, `token_session_issued_total{result="success"} 1`)
	assert.NotContains(t, body, `other="value"`)
}

func scrape(t *testing.T, handler http.Handler) string {
	t.Helper()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}
