// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"net/http"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-todoapi/restserver"
	"github.com/diffeo/go-todoapi/todoapi"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

// HTTP serves the REST API.
type HTTP struct {
	Service todoapi.Service
	Laddr   string

	// Log receives handler panics.
	Log logrus.FieldLogger

	// RequestLog, if not nil, gets a debug message for every
	// request.
	RequestLog *logrus.Logger

	// Clock times requests for RequestLog.
	Clock clock.Clock
}

// Handler builds the complete middleware stack and router.
func (h *HTTP) Handler() http.Handler {
	metrics := newMetrics(h.Service)

	r := mux.NewRouter()
	r.Use(metrics.Middleware)
	restserver.PopulateRouterWithLogger(r, h.Service, h.Log)
	r.Path("/metrics").Name("metrics").
		Handler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	n := negroni.New(negroni.NewRecovery())
	if h.RequestLog != nil {
		n.Use(&requestLogger{Log: h.RequestLog, Clock: h.Clock})
	}
	n.UseHandler(r)
	return n
}

// Serve runs an HTTP server on the configured local address.  This
// serves connections until the listener fails.
func (h *HTTP) Serve() error {
	return http.ListenAndServe(h.Laddr, h.Handler())
}

// RequestIDHeader carries the id a request is logged under.
const RequestIDHeader = "X-Request-Id"

// requestLogger is negroni middleware that logs one line per request.
type requestLogger struct {
	Log   logrus.FieldLogger
	Clock clock.Clock
}

func (l *requestLogger) ServeHTTP(rw http.ResponseWriter, req *http.Request, next http.HandlerFunc) {
	start := l.Clock.Now()
	id := uuid.NewV4().String()
	rw.Header().Set(RequestIDHeader, id)

	res, ok := rw.(negroni.ResponseWriter)
	if !ok {
		res = negroni.NewResponseWriter(rw)
	}
	next(res, req)

	l.Log.WithFields(logrus.Fields{
		"request_id": id,
		"method":     req.Method,
		"path":       req.URL.Path,
		"status":     res.Status(),
		"duration":   l.Clock.Now().Sub(start),
	}).Debug("request")
}
