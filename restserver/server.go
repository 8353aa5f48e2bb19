// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"net/http"

	"github.com/diffeo/go-todoapi/apidoc"
	"github.com/diffeo/go-todoapi/restdata"
	"github.com/diffeo/go-todoapi/schema"
	"github.com/diffeo/go-todoapi/todoapi"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// NewRouter creates a new HTTP handler that processes all API
// requests.  For more control over this setup, create a mux.Router
// and call PopulateRouter instead.
func NewRouter(svc todoapi.Service) http.Handler {
	r := mux.NewRouter()
	PopulateRouter(r, svc)
	return r
}

// PopulateRouter adds all of the API routes to an existing
// github.com/gorilla/mux router object.  Handler panics are logged
// to the logrus standard logger.
//
//     import "github.com/diffeo/go-todoapi/memory"
//     import "github.com/gorilla/mux"
//     r := mux.NewRouter()
//     svc := memory.New(todoapi.DefaultSeed())
//     PopulateRouter(r, svc)
func PopulateRouter(r *mux.Router, svc todoapi.Service) {
	PopulateRouterWithLogger(r, svc, logrus.StandardLogger())
}

// PopulateRouterWithLogger is PopulateRouter, but logs handler panics
// to log.  Panics if the built-in schemas or API document cannot be
// built, which would be a programming error.
func PopulateRouterWithLogger(r *mux.Router, svc todoapi.Service, log logrus.FieldLogger) {
	docs, err := apidoc.JSON()
	if err != nil {
		panic(err)
	}
	api := &restAPI{
		Service:   svc,
		Router:    r,
		Validator: schema.MustNew(),
		Docs:      docs,
		Log:       log,
	}
	api.PopulateRouter(r)
}

// restAPI holds the persistent state for the REST API.
type restAPI struct {
	Service   todoapi.Service
	Router    *mux.Router
	Validator *schema.Validator
	Docs      []byte
	Log       logrus.FieldLogger
}

// handler fills in the parts of a resourceHandler common to every
// route.
func (api *restAPI) handler(h resourceHandler) *resourceHandler {
	if h.Context == nil {
		h.Context = api.PlainContext
	}
	h.Log = api.Log
	return &h
}

// PopulateRouter adds all URL paths to a router.
func (api *restAPI) PopulateRouter(r *mux.Router) {
	api.PopulateUsers(r)
	api.PopulateTodos(r)
	r.Path(restdata.DocsURL).Name("docs").Handler(api.handler(resourceHandler{
		Get: api.DocsDocument,
	}))
	r.Path("/").Name("root").Handler(api.handler(resourceHandler{
		Get: api.RootDocument,
	}))
}

// RootDocument returns a fixed greeting.
func (api *restAPI) RootDocument(ctx *context) (interface{}, error) {
	return responseText(restdata.Greeting), nil
}

// DocsDocument returns the OpenAPI description of this API.
func (api *restAPI) DocsDocument(ctx *context) (interface{}, error) {
	return responseJSON(api.Docs), nil
}
