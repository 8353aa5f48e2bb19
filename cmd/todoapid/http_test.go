// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-todoapi/memory"
	"github.com/diffeo/go-todoapi/restdata"
	"github.com/diffeo/go-todoapi/todoapi"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/negroni"
)

func TestRequestLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	mock := clock.NewMock()

	n := negroni.New(&requestLogger{Log: logger, Clock: mock})
	n.UseHandler(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		mock.Add(5 * time.Millisecond)
		rw.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	n.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	id := rec.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, id)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, id, entry.Data["request_id"])
	assert.Equal(t, http.MethodGet, entry.Data["method"])
	assert.Equal(t, "/api/users", entry.Data["path"])
	assert.Equal(t, http.StatusTeapot, entry.Data["status"])
	assert.Equal(t, 5*time.Millisecond, entry.Data["duration"])
}

func TestRequestIDsDiffer(t *testing.T) {
	logger, _ := test.NewNullLogger()
	h := &HTTP{
		Service:    memory.New(todoapi.DefaultSeed()),
		Log:        logger,
		RequestLog: logger,
		Clock:      clock.NewMock(),
	}
	handler := h.Handler()
	ids := make(map[string]bool)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		ids[rec.Header().Get(RequestIDHeader)] = true
	}
	assert.Len(t, ids, 3)
}

func TestHandler(t *testing.T) {
	logger, _ := test.NewNullLogger()
	h := &HTTP{
		Service: memory.New(todoapi.DefaultSeed()),
		Log:     logger,
		Clock:   clock.NewMock(),
	}
	handler := h.Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, restdata.UsersURL, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get(RequestIDHeader))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, restdata.TodosURL,
		strings.NewReader(`{"title":"Water plants"}`)))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `diffeo_todoapi_http_requests_total{method="GET",route="users",status="200"} 1`)
	assert.Contains(t, body, `diffeo_todoapi_http_requests_total{method="POST",route="todos",status="201"} 1`)
	assert.Contains(t, body, "diffeo_todoapi_users 2")
	assert.Contains(t, body, "diffeo_todoapi_todos 3")
}

func TestMetricsMiddleware(t *testing.T) {
	m := newMetrics(memory.New(todoapi.Seed{}))
	handler := m.Middleware(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusNoContent)
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/x", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("", http.MethodDelete, "204")))
}
