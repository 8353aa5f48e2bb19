// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package memory provides an in-process, in-memory implementation of
// the todoapi Service.  There is no persistence; everything is lost
// when the process exits.
//
// Each collection is an ordered slice behind its own mutex, so a
// single operation always runs to completion before the next one on
// the same collection starts.  Nothing coordinates the two
// collections with each other.
package memory

import (
	"github.com/diffeo/go-todoapi/todoapi"
)

// This is the only external entry point to this package:

// New creates a new Service that operates purely in memory, holding
// the records in seed.  Use todoapi.DefaultSeed() for the standard
// starting content or todoapi.Seed{} to start empty.
func New(seed todoapi.Seed) todoapi.Service {
	users := make([]todoapi.User, len(seed.Users))
	copy(users, seed.Users)
	todos := make([]todoapi.Todo, len(seed.Todos))
	for i, todo := range seed.Todos {
		todos[i] = copyTodo(todo)
	}
	return &memService{
		users: newCollection[todoapi.User, todoapi.NewUser]("user", users),
		todos: newCollection[todoapi.Todo, todoapi.NewTodo]("todo", todos),
	}
}

type memService struct {
	users *collection[todoapi.User, todoapi.NewUser]
	todos *collection[todoapi.Todo, todoapi.NewTodo]
}

// copyTodo returns a todo that shares no memory with its argument.
func copyTodo(todo todoapi.Todo) todoapi.Todo {
	if todo.UserID != nil {
		todo.UserID = todoapi.IntPtr(*todo.UserID)
	}
	return todo
}

// User collection:

func (s *memService) Users() ([]todoapi.User, error) {
	return s.users.List(nil), nil
}

func (s *memService) User(id int) (todoapi.User, error) {
	return s.users.Get(id)
}

func (s *memService) CreateUser(fields todoapi.NewUser) (todoapi.User, error) {
	return s.users.Create(fields), nil
}

func (s *memService) ReplaceUser(id int, fields todoapi.NewUser) (todoapi.User, error) {
	return s.users.Replace(id, fields)
}

func (s *memService) DeleteUser(id int) error {
	return s.users.Delete(id)
}

// Todo collection:

func (s *memService) Todos(q todoapi.TodoQuery) ([]todoapi.Todo, error) {
	todos := s.todos.List(q.Matches)
	for i := range todos {
		todos[i] = copyTodo(todos[i])
	}
	return todos, nil
}

func (s *memService) Todo(id int) (todoapi.Todo, error) {
	todo, err := s.todos.Get(id)
	return copyTodo(todo), err
}

func (s *memService) CreateTodo(fields todoapi.NewTodo) (todoapi.Todo, error) {
	return copyTodo(s.todos.Create(fields)), nil
}

func (s *memService) ReplaceTodo(id int, fields todoapi.NewTodo) (todoapi.Todo, error) {
	todo, err := s.todos.Replace(id, fields)
	return copyTodo(todo), err
}

func (s *memService) DeleteTodo(id int) error {
	return s.todos.Delete(id)
}
