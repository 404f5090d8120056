package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/shooping/list-server/internal/logger"
	"github.com/shooping/list-server/internal/testutil"
)

func captureLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewTextHandler(buf, nil))}
}

func TestLogging_PassesThrough(t *testing.T) {
	t.Parallel()

	m := NewLogging(testutil.MakeNoopLogger())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/lists", nil)
	rec := httptest.NewRecorder()
	m.Handle(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestLogging_RecordsStatus(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	m := NewLogging(captureLogger(&buf))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lists", nil)
	rec := httptest.NewRecorder()
	m.Handle(next).ServeHTTP(rec, req)

	out := buf.String()
	assert.Contains(t, out, "http request completed")
	assert.Contains(t, out, "status=418")
	assert.NotContains(t, out, "http request failed")
}

func TestLogging_FlagsServerErrors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	m := NewLogging(captureLogger(&buf))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lists", nil)
	rec := httptest.NewRecorder()
	m.Handle(next).ServeHTTP(rec, req)

	assert.Contains(t, buf.String(), "http request failed")
}

func TestLogging_PreservesCorrelationID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	m := NewLogging(captureLogger(&buf))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lists", nil)
	req.Header.Set("X-Correlation-Id", "test-correlation-123")
	rec := httptest.NewRecorder()
	m.Handle(next).ServeHTTP(rec, req)

	assert.Equal(t, "test-correlation-123", rec.Header().Get("X-Correlation-Id"))
	assert.Contains(t, buf.String(), "correlation_id=test-correlation-123")
}

func TestLogging_MintsCorrelationID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	m := NewLogging(captureLogger(&buf))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lists", nil)
	rec := httptest.NewRecorder()
	m.Handle(next).ServeHTTP(rec, req)

	id := rec.Header().Get("X-Correlation-Id")
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "correlation_id="+id)
}
