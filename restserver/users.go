// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"strconv"

	"github.com/diffeo/go-todoapi/restdata"
	"github.com/gorilla/mux"
)

// UserList gets a list of all users known in the system.
func (api *restAPI) UserList(ctx *context) (interface{}, error) {
	return api.Service.Users()
}

// UserPost creates a new user from a NewUser body.
func (api *restAPI) UserPost(ctx *context, in interface{}) (interface{}, error) {
	fields, err := api.Validator.NewUser(in)
	if err != nil {
		return nil, err
	}
	user, err := api.Service.CreateUser(fields)
	if err != nil {
		return nil, err
	}
	created := responseCreated{Body: user}
	err = buildURLs(api.Router, "id", strconv.Itoa(user.ID)).
		URL(&created.Location, "user").
		Error
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UserGet returns the user named in the URL.
func (api *restAPI) UserGet(ctx *context) (interface{}, error) {
	// If we've gotten here, we're just returning ctx.User
	return *ctx.User, nil
}

// UserPut replaces the user named in the URL with a User body.  The
// body's id may be absent; the URL's id is the one that counts.
func (api *restAPI) UserPut(ctx *context, in interface{}) (interface{}, error) {
	_, fields, err := api.Validator.User(in)
	if err != nil {
		return nil, err
	}
	return api.Service.ReplaceUser(ctx.User.ID, fields)
}

// UserDelete destroys the user named in the URL.  Its todos are left
// alone.
func (api *restAPI) UserDelete(ctx *context) (interface{}, error) {
	return nil, missing(api.Service.DeleteUser(ctx.User.ID))
}

// PopulateUsers adds user-specific routes to a router.
func (api *restAPI) PopulateUsers(r *mux.Router) {
	r.Path(restdata.UsersURL).Name("users").Handler(api.handler(resourceHandler{
		Context: api.UserContext,
		Get:     api.UserList,
		Post:    api.UserPost,
	}))
	r.Path(restdata.UsersURL + "/{id}").Name("user").Handler(api.handler(resourceHandler{
		Context: api.UserContext,
		Get:     api.UserGet,
		Put:     api.UserPut,
		Delete:  api.UserDelete,
	}))
}
