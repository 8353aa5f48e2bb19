// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restclient provides a todoapi-compatible HTTP REST client
// that talks to the matching server in the "restserver" package.
//
// The server in github.com/diffeo/go-todoapi/cmd/todoapid can run a
// compatible REST server.  Call New() with the base URL of that
// service; for instance,
//
//     svc, err := restclient.New("http://localhost:3000/")
//
// Validation failures come back as todoapi.ErrInvalid carrying the
// server's message, and missing records as todoapi.ErrNotFound.
package restclient

import (
	"net/http"
	"net/url"

	"github.com/diffeo/go-todoapi/todoapi"
	"github.com/pkg/errors"
)

// New creates a new todoapi Service that speaks to an external REST
// server at baseURL, which must be an absolute http or https URL.
func New(baseURL string) (todoapi.Service, error) {
	return NewWithClient(baseURL, http.DefaultClient)
}

// NewWithClient is New, but sends requests through client.
func NewWithClient(baseURL string, client *http.Client) (todoapi.Service, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing server URL %q", baseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Errorf("server URL %q is not an http URL", baseURL)
	}
	if u.Host == "" {
		return nil, errors.Errorf("server URL %q has no host", baseURL)
	}
	return &restClient{resource: resource{URL: u, Client: client}}, nil
}

type restClient struct {
	resource
}
