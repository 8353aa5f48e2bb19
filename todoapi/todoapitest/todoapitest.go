// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package todoapitest provides generic functional tests for the
// todoapi Service interface.  A typical backend test module sets
// NewService and then calls each test:
//
//     package mybackend_test
//
//     import (
//             "testing"
//             "github.com/diffeo/go-todoapi/todoapi/todoapitest"
//     )
//
//     func init() {
//             todoapitest.NewService = mybackend.New
//     }
//
//     func TestUserLifecycle(t *testing.T) {
//             todoapitest.TestUserLifecycle(t)
//     }
package todoapitest

import (
	"testing"

	"github.com/diffeo/go-todoapi/todoapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewService creates the backend under test, holding seed.  Every
// test calls this once, so backends must not share state between
// calls.  It is set by importing packages.
var NewService func(seed todoapi.Seed) todoapi.Service

// ---------------------------------------------------------------------------
// Support functions for common tests

// emptyService creates a new service with no records.
func emptyService(t *testing.T) todoapi.Service {
	require.NotNil(t, NewService, "todoapitest.NewService not set")
	return NewService(todoapi.Seed{})
}

// seededService creates a new service with the default records.
func seededService(t *testing.T) todoapi.Service {
	require.NotNil(t, NewService, "todoapitest.NewService not set")
	return NewService(todoapi.DefaultSeed())
}

// UserIDs returns the ids of all of the users in the system, in order.
func UserIDs(t *testing.T, svc todoapi.Service) []int {
	users, err := svc.Users()
	require.NoError(t, err)
	ids := make([]int, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids
}

// TodoIDs returns the ids of the todos matching q, in order.
func TodoIDs(t *testing.T, svc todoapi.Service, q todoapi.TodoQuery) []int {
	todos, err := svc.Todos(q)
	require.NoError(t, err)
	ids := make([]int, len(todos))
	for i, todo := range todos {
		ids[i] = todo.ID
	}
	return ids
}

// IsNotFound checks that err reports a missing record of the given
// kind and id.
func IsNotFound(t *testing.T, resource string, id int, err error) bool {
	return assert.Equal(t, todoapi.ErrNotFound{Resource: resource, ID: id}, err)
}
