// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"net/http"
	"strconv"

	"github.com/diffeo/go-todoapi/todoapi"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/negroni"
)

type metrics struct {
	Registry *prometheus.Registry
	Requests *prometheus.CounterVec
}

// newMetrics creates the request counter and collection size gauges,
// in a registry of their own.
func newMetrics(svc todoapi.Service) *metrics {
	m := &metrics{
		Registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "diffeo",
				Subsystem: "todoapi",
				Name:      "http_requests_total",
				Help:      "HTTP requests by route, method and status",
			},
			[]string{
				"route",
				"method",
				"status",
			},
		),
	}
	users := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: "diffeo",
			Subsystem: "todoapi",
			Name:      "users",
			Help:      "Number of users",
		},
		func() float64 {
			users, err := svc.Users()
			if err != nil {
				return 0
			}
			return float64(len(users))
		},
	)
	todos := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: "diffeo",
			Subsystem: "todoapi",
			Name:      "todos",
			Help:      "Number of todos",
		},
		func() float64 {
			todos, err := svc.Todos(todoapi.TodoQuery{})
			if err != nil {
				return 0
			}
			return float64(len(todos))
		},
	)
	m.Registry.MustRegister(
		m.Requests,
		users,
		todos,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return m
}

// Middleware counts requests that matched a route.
func (m *metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		res, ok := rw.(negroni.ResponseWriter)
		if !ok {
			res = negroni.NewResponseWriter(rw)
		}
		next.ServeHTTP(res, req)

		route := ""
		if current := mux.CurrentRoute(req); current != nil {
			route = current.GetName()
		}
		m.Requests.WithLabelValues(route, req.Method, strconv.Itoa(res.Status())).Inc()
	})
}
