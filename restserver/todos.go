// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"strconv"

	"github.com/diffeo/go-todoapi/restdata"
	"github.com/diffeo/go-todoapi/todoapi"
	"github.com/gorilla/mux"
)

// TodoList gets a list of todos, restricted to one owner if the
// userId query parameter is a nonzero number.  A number that cannot
// be an id matches nothing; a missing or non-numeric userId is
// ignored.
func (api *restAPI) TodoList(ctx *context) (interface{}, error) {
	userID, ok := ctx.IntParam("userId")
	if !ok {
		return []todoapi.Todo{}, nil
	}
	return api.Service.Todos(todoapi.TodoQuery{UserID: userID})
}

// TodoPost creates a new todo from a NewTodo body.  The owning user,
// if any, is not checked.
func (api *restAPI) TodoPost(ctx *context, in interface{}) (interface{}, error) {
	fields, err := api.Validator.NewTodo(in)
	if err != nil {
		return nil, err
	}
	todo, err := api.Service.CreateTodo(fields)
	if err != nil {
		return nil, err
	}
	created := responseCreated{Body: todo}
	err = buildURLs(api.Router, "id", strconv.Itoa(todo.ID)).
		URL(&created.Location, "todo").
		Error
	if err != nil {
		return nil, err
	}
	return created, nil
}

// TodoGet returns the todo named in the URL.
func (api *restAPI) TodoGet(ctx *context) (interface{}, error) {
	return *ctx.Todo, nil
}

// TodoPut replaces the todo named in the URL with a Todo body.
// Fields absent from the body take their defaults, not their old
// values.
func (api *restAPI) TodoPut(ctx *context, in interface{}) (interface{}, error) {
	_, fields, err := api.Validator.Todo(in)
	if err != nil {
		return nil, err
	}
	return api.Service.ReplaceTodo(ctx.Todo.ID, fields)
}

// TodoDelete destroys the todo named in the URL.
func (api *restAPI) TodoDelete(ctx *context) (interface{}, error) {
	return nil, missing(api.Service.DeleteTodo(ctx.Todo.ID))
}

// PopulateTodos adds todo-specific routes to a router.
func (api *restAPI) PopulateTodos(r *mux.Router) {
	r.Path(restdata.TodosURL).Name("todos").Handler(api.handler(resourceHandler{
		Context: api.TodoContext,
		Get:     api.TodoList,
		Post:    api.TodoPost,
	}))
	r.Path(restdata.TodosURL + "/{id}").Name("todo").Handler(api.handler(resourceHandler{
		Context: api.TodoContext,
		Get:     api.TodoGet,
		Put:     api.TodoPut,
		Delete:  api.TodoDelete,
	}))
}
