// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/diffeo/go-todoapi/restdata"
	"github.com/diffeo/go-todoapi/schema"
	"github.com/diffeo/go-todoapi/todoapi"
	"github.com/gorilla/mux"
)

// context holds all of the information and objects that can be extracted
// from URL parameters.
type context struct {
	// User is the user named by the URL, if any.
	User *todoapi.User

	// Todo is the todo named by the URL, if any.
	Todo *todoapi.Todo

	QueryParams url.Values
}

// parseID converts an {id} URL parameter to a record id.  Anything
// that is not a number names no record at all, so it is reported as
// missing rather than as a bad request.
func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, restdata.ErrNotFound{Err: err}
	}
	return id, nil
}

// missing turns a todoapi.ErrNotFound into a 404; other errors pass
// through.
func missing(err error) error {
	if _, isMissing := err.(todoapi.ErrNotFound); isMissing {
		return restdata.ErrNotFound{Err: err}
	}
	return err
}

// UserContext builds a context for the user routes.  If the URL has
// an {id}, that user must exist.
func (api *restAPI) UserContext(req *http.Request) (ctx *context, err error) {
	ctx = &context{QueryParams: req.URL.Query()}
	if s, present := mux.Vars(req)["id"]; present {
		var id int
		var user todoapi.User
		id, err = parseID(s)
		if err == nil {
			user, err = api.Service.User(id)
		}
		if err == nil {
			ctx.User = &user
		}
	}
	return ctx, missing(err)
}

// TodoContext builds a context for the todo routes.  If the URL has
// an {id}, that todo must exist.
func (api *restAPI) TodoContext(req *http.Request) (ctx *context, err error) {
	ctx = &context{QueryParams: req.URL.Query()}
	if s, present := mux.Vars(req)["id"]; present {
		var id int
		var todo todoapi.Todo
		id, err = parseID(s)
		if err == nil {
			todo, err = api.Service.Todo(id)
		}
		if err == nil {
			ctx.Todo = &todo
		}
	}
	return ctx, missing(err)
}

// PlainContext builds a context for routes that do not name a record.
func (api *restAPI) PlainContext(req *http.Request) (*context, error) {
	return &context{QueryParams: req.URL.Query()}, nil
}

// IntParam looks at ctx.QueryParams for a numeric parameter named
// name.  If it is absent, empty, zero or not a number at all, returns
// nil and true: there is no restriction.  If it is a nonzero integer,
// returns a pointer to it and true.  Any other number, such as 1.5,
// can never equal an id, and returns nil and false.
func (ctx *context) IntParam(name string) (*int, bool) {
	f, err := strconv.ParseFloat(ctx.QueryParams.Get(name), 64)
	if err != nil && !math.IsInf(f, 0) {
		return nil, true
	}
	if f == 0 || math.IsNaN(f) {
		return nil, true
	}
	if f != math.Trunc(f) || math.Abs(f) > schema.MaxInteger {
		return nil, false
	}
	i := int(f)
	return &i, true
}
