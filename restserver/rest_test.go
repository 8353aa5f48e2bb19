// Regression tests for rest.go.
//
// The end-to-end behavior is covered by server_test.go and by the
// todoapitest tests driven from restclient.  This only contains
// special cases of the resource handler itself.
//
// Copyright 2016-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/diffeo/go-todoapi/memory"
	"github.com/diffeo/go-todoapi/restdata"
	"github.com/diffeo/go-todoapi/todoapi"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

type failResponseWriter struct {
	Headers    http.Header
	StatusCode int
}

func (rw *failResponseWriter) Header() http.Header {
	if rw.Headers == nil {
		rw.Headers = make(http.Header)
	}
	return rw.Headers
}

func (rw *failResponseWriter) Write([]byte) (int, error) {
	return 0, errors.New("foo")
}

func (rw *failResponseWriter) WriteHeader(code int) {
	rw.StatusCode = code
}

// TestDoubleFault checks that, if there is an error serializing a JSON
// response, it doesn't actually panic the process.
func TestDoubleFault(t *testing.T) {
	router := NewRouter(memory.New(todoapi.DefaultSeed()))
	req := &http.Request{
		Method: http.MethodGet,
		URL: &url.URL{
			Path: restdata.UsersURL + "/1",
		},
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     http.Header{},
		Close:      true,
		Host:       "localhost",
	}
	resp := &failResponseWriter{}
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestPanic checks that a panicking handler produces a logged 500
// rather than killing the server.
func TestPanic(t *testing.T) {
	logger, hook := test.NewNullLogger()
	api := &restAPI{Log: logger}
	h := api.handler(resourceHandler{
		Get: func(*context) (interface{}, error) {
			panic("boom")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"panic: boom"}`, rec.Body.String())
	if entry := hook.LastEntry(); assert.NotNil(t, entry) {
		assert.Equal(t, logrus.ErrorLevel, entry.Level)
		assert.Equal(t, "panic: boom", entry.Message)
		assert.Contains(t, entry.Data, "stack")
	}
}

// TestHandlerError checks that an arbitrary error is a 500 with its
// message passed through.
func TestHandlerError(t *testing.T) {
	api := &restAPI{}
	h := api.handler(resourceHandler{
		Get: func(*context) (interface{}, error) {
			return nil, errors.New("disk on fire")
		},
	})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"disk on fire"}`, rec.Body.String())
}

// TestHeadText checks that HEAD reports the content type GET would
// have but sends no body.
func TestHeadText(t *testing.T) {
	api := &restAPI{}
	h := api.handler(resourceHandler{Get: api.RootDocument})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))
	assert.Empty(t, rec.Body.String())
}

func TestNegotiateResponse(t *testing.T) {
	for _, tc := range []struct {
		Accept string
		Type   string
		Status int
	}{
		{"", restdata.JSONMediaType, 0},
		{"*/*", restdata.JSONMediaType, 0},
		{"application/*", restdata.JSONMediaType, 0},
		{"text/*", "text/json", 0},
		{"text/json", "text/json", 0},
		{"application/json", restdata.JSONMediaType, 0},
		{"text/html, application/json;q=0.5", restdata.JSONMediaType, 0},
		{"text/json;q=0.5, application/json", restdata.JSONMediaType, 0},
		{"*/*;q=0.1, text/json", "text/json", 0},
		{"text/html", "", http.StatusNotAcceptable},
		{"application/json;q=0", "", http.StatusNotAcceptable},
		{"application/json;q=2", "", -1},
		{"application/json;q=x", "", -1},
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.Accept != "" {
			req.Header.Set("Accept", tc.Accept)
		}
		mediaType, err := negotiateResponse(req)
		switch tc.Status {
		case 0:
			if assert.NoError(t, err, tc.Accept) {
				assert.Equal(t, tc.Type, mediaType, tc.Accept)
			}
		case -1:
			assert.Error(t, err, tc.Accept)
		default:
			if assert.Implements(t, (*restdata.ErrorStatus)(nil), err, tc.Accept) {
				assert.Equal(t, tc.Status, err.(restdata.ErrorStatus).HTTPStatus(), tc.Accept)
			}
		}
	}
}

func TestIntParam(t *testing.T) {
	for _, tc := range []struct {
		Query string
		Want  *int
		OK    bool
	}{
		{"", nil, true},
		{"userId=", nil, true},
		{"userId=0", nil, true},
		{"userId=abc", nil, true},
		{"userId=NaN", nil, true},
		{"userId=1.5", nil, false},
		{"userId=1e20", nil, false},
		{"userId=1e400", nil, false},
		{"userId=2", todoapi.IntPtr(2), true},
		{"userId=2.0", todoapi.IntPtr(2), true},
		{"userId=-3", todoapi.IntPtr(-3), true},
		{"other=2", nil, true},
	} {
		q, err := url.ParseQuery(tc.Query)
		if assert.NoError(t, err) {
			ctx := &context{QueryParams: q}
			got, ok := ctx.IntParam("userId")
			assert.Equal(t, tc.Want, got, tc.Query)
			assert.Equal(t, tc.OK, ok, tc.Query)
		}
	}
}
