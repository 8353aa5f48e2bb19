// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"strconv"

	"github.com/diffeo/go-todoapi/restdata"
	"github.com/diffeo/go-todoapi/todoapi"
)

func todoVars(id int) map[string]interface{} {
	return map[string]interface{}{"id": strconv.Itoa(id)}
}

func todoBody(id int, fields todoapi.NewTodo) restdata.TodoBody {
	return restdata.TodoBody{
		ID:     id,
		Title:  fields.Title,
		Done:   fields.Done,
		UserID: fields.UserID,
	}
}

// Todos lists todos.  The server reads userId=0 as no filter at all,
// so that query is answered locally: no todo is owned by user 0.
func (c *restClient) Todos(q todoapi.TodoQuery) ([]todoapi.Todo, error) {
	vars := map[string]interface{}{}
	if q.UserID != nil {
		if *q.UserID == 0 {
			return []todoapi.Todo{}, nil
		}
		vars["userId"] = strconv.Itoa(*q.UserID)
	}
	todos := []todoapi.Todo{}
	err := c.GetFrom(restdata.TodoURLTemplate, vars, &todos)
	if err != nil {
		return nil, recordError(err, "", 0)
	}
	return todos, nil
}

func (c *restClient) Todo(id int) (todo todoapi.Todo, err error) {
	err = c.GetFrom(restdata.TodoURLTemplate, todoVars(id), &todo)
	return todo, recordError(err, "todo", id)
}

func (c *restClient) CreateTodo(fields todoapi.NewTodo) (todo todoapi.Todo, err error) {
	err = c.PostTo(restdata.TodoURLTemplate, map[string]interface{}{}, todoBody(0, fields), &todo)
	return todo, recordError(err, "", 0)
}

func (c *restClient) ReplaceTodo(id int, fields todoapi.NewTodo) (todo todoapi.Todo, err error) {
	err = c.PutTo(restdata.TodoURLTemplate, todoVars(id), todoBody(id, fields), &todo)
	return todo, recordError(err, "todo", id)
}

func (c *restClient) DeleteTodo(id int) error {
	return recordError(c.DeleteAt(restdata.TodoURLTemplate, todoVars(id)), "todo", id)
}
