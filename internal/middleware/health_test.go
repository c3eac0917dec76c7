package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkerFunc func(ctx context.Context) error

func (f checkerFunc) Check(ctx context.Context) error { return f(ctx) }

func TestHealthHandlerAllHealthy(t *testing.T) {
	h := HealthHandler(map[string]HealthChecker{
		"database": checkerFunc(func(context.Context) error { return nil }),
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var status HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "healthy", status.Checks["database"].Status)
}

func TestHealthHandlerFailingCheck(t *testing.T) {
	h := HealthHandler(map[string]HealthChecker{
		"database":     checkerFunc(func(context.Context) error { return nil }),
		"object_store": checkerFunc(func(context.Context) error { return fmt.Errorf("bucket unreachable") }),
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var status HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "unhealthy", status.Status)
	assert.Equal(t, "healthy", status.Checks["database"].Status)
	assert.Equal(t, "bucket unreachable", status.Checks["object_store"].Message)
}

func TestLivenessHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	LivenessHandler(rec, httptest.NewRequest(http.MethodGet, "/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
