// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package todoapi defines an abstract API to a small users-and-todos
// service.
//
// In most cases, applications will know of specific implementations of
// this API and will get a Service from that implementation: the
// memory package keeps everything in the current process, and the
// restclient package talks to a remote restserver.
//
// Records are plain values.  Getting a record returns a copy; the only
// way to change what a Service holds is through its methods.  Every
// method that addresses a record by id returns an instance of
// ErrNotFound if no record has that id.
//
// A Todo's UserID is a weak reference.  Nothing checks that the user
// exists, when the todo is created or later; deleting a user leaves
// its todos in place.
package todoapi

// Service is the principal interface to the system.  It combines the
// user collection and the todo collection, which are independent: no
// operation spans both.
type Service interface {
	UserService
	TodoService
}

// UserService manages the user collection.
type UserService interface {
	// Users returns every user, in the order they were created.
	// This may be an empty slice.
	Users() ([]User, error)

	// User retrieves a single user by id.
	User(id int) (User, error)

	// CreateUser allocates a new id and appends a new user.  Ids
	// are never reused, even after the user holding one is
	// deleted.
	CreateUser(fields NewUser) (User, error)

	// ReplaceUser overwrites every field of an existing user,
	// keeping its id and its position in the collection.
	ReplaceUser(id int, fields NewUser) (User, error)

	// DeleteUser removes a user.
	DeleteUser(id int) error
}

// TodoService manages the todo collection.
type TodoService interface {
	// Todos returns the todos matching q, in the order they were
	// created.  A zero TodoQuery matches everything.
	Todos(q TodoQuery) ([]Todo, error)

	// Todo retrieves a single todo by id.
	Todo(id int) (Todo, error)

	// CreateTodo allocates a new id and appends a new todo.  An
	// absent Done is false, and an absent UserID stays nil.
	CreateTodo(fields NewTodo) (Todo, error)

	// ReplaceTodo overwrites every field of an existing todo,
	// keeping its id and its position.  This is not a merge: an
	// absent Done becomes false and an absent UserID becomes nil,
	// whatever the todo held before.
	ReplaceTodo(id int, fields NewTodo) (Todo, error)

	// DeleteTodo removes a todo.
	DeleteTodo(id int) error
}

// TodoQuery restricts the set of todos returned from
// TodoService.Todos().
type TodoQuery struct {
	// UserID, if non-nil, only returns todos whose UserID is
	// equal to this value.  Todos with no user never match.
	UserID *int
}

// Matches reports whether a todo is selected by this query.
func (q TodoQuery) Matches(todo Todo) bool {
	if q.UserID == nil {
		return true
	}
	return todo.UserID != nil && *todo.UserID == *q.UserID
}
