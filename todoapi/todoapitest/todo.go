// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package todoapitest

import (
	"testing"

	"github.com/diffeo/go-todoapi/todoapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTodoDefaults checks that an absent done is false and an absent
// user id stays empty.
func TestTodoDefaults(t *testing.T) {
	svc := emptyService(t)
	todo, err := svc.CreateTodo(todoapi.NewTodo{Title: "Buy milk"})
	require.NoError(t, err)
	assert.Equal(t, todoapi.Todo{ID: 1, Title: "Buy milk"}, todo)
	assert.False(t, todo.Done)
	assert.Nil(t, todo.UserID)
}

// TestTodoRoundTrip creates a todo and reads back the same record.
func TestTodoRoundTrip(t *testing.T) {
	svc := seededService(t)
	created, err := svc.CreateTodo(todoapi.NewTodo{
		Title:  "Learn Swagger",
		Done:   todoapi.BoolPtr(true),
		UserID: todoapi.IntPtr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, todoapi.Todo{
		ID:     3,
		Title:  "Learn Swagger",
		Done:   true,
		UserID: todoapi.IntPtr(2),
	}, created)

	got, err := svc.Todo(created.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, created, got)
	}
}

// TestTodoFilter checks that filtering by user id returns only the
// matching todos, in their original relative order.
func TestTodoFilter(t *testing.T) {
	svc := emptyService(t)
	owners := []*int{
		todoapi.IntPtr(1),
		todoapi.IntPtr(2),
		nil,
		todoapi.IntPtr(1),
		todoapi.IntPtr(2),
		todoapi.IntPtr(1),
	}
	for _, owner := range owners {
		_, err := svc.CreateTodo(todoapi.NewTodo{Title: "t", UserID: owner})
		require.NoError(t, err)
	}

	assert.Equal(t, []int{1, 4, 6}, TodoIDs(t, svc, todoapi.TodoQuery{UserID: todoapi.IntPtr(1)}))
	assert.Equal(t, []int{2, 5}, TodoIDs(t, svc, todoapi.TodoQuery{UserID: todoapi.IntPtr(2)}))
	assert.Equal(t, []int{}, TodoIDs(t, svc, todoapi.TodoQuery{UserID: todoapi.IntPtr(3)}))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, TodoIDs(t, svc, todoapi.TodoQuery{}))
}

// TestTodoReplaceIsTotal checks that replacing a todo overwrites every
// field instead of merging.
func TestTodoReplaceIsTotal(t *testing.T) {
	svc := emptyService(t)
	old, err := svc.CreateTodo(todoapi.NewTodo{
		Title:  "Old",
		Done:   todoapi.BoolPtr(true),
		UserID: todoapi.IntPtr(5),
	})
	require.NoError(t, err)

	replaced, err := svc.ReplaceTodo(old.ID, todoapi.NewTodo{Title: "X"})
	require.NoError(t, err)
	assert.Equal(t, todoapi.Todo{ID: old.ID, Title: "X"}, replaced)

	got, err := svc.Todo(old.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, replaced, got)
	}
}

// TestTodoNotFound checks that every by-id todo operation fails on a
// missing id without changing anything.
func TestTodoNotFound(t *testing.T) {
	svc := seededService(t)

	_, err := svc.Todo(42)
	IsNotFound(t, "todo", 42, err)

	_, err = svc.ReplaceTodo(42, todoapi.NewTodo{Title: "x"})
	IsNotFound(t, "todo", 42, err)

	err = svc.DeleteTodo(42)
	IsNotFound(t, "todo", 42, err)

	assert.Equal(t, []int{1, 2}, TodoIDs(t, svc, todoapi.TodoQuery{}))
}

// TestTodoDeleteTwice checks that the second delete of an id fails,
// and that the id is not handed out again.
func TestTodoDeleteTwice(t *testing.T) {
	svc := seededService(t)
	assert.NoError(t, svc.DeleteTodo(2))
	IsNotFound(t, "todo", 2, svc.DeleteTodo(2))

	todo, err := svc.CreateTodo(todoapi.NewTodo{Title: "again"})
	if assert.NoError(t, err) {
		assert.Equal(t, 3, todo.ID)
	}
	assert.Equal(t, []int{1, 3}, TodoIDs(t, svc, todoapi.TodoQuery{}))
}

// TestWeakUserReference checks that todos may name users that do not
// exist, and survive deletion of the user they name.
func TestWeakUserReference(t *testing.T) {
	svc := seededService(t)

	dangling, err := svc.CreateTodo(todoapi.NewTodo{Title: "orphan", UserID: todoapi.IntPtr(404)})
	if assert.NoError(t, err) {
		assert.Equal(t, todoapi.IntPtr(404), dangling.UserID)
	}

	require.NoError(t, svc.DeleteUser(1))
	todo, err := svc.Todo(1)
	if assert.NoError(t, err) {
		assert.Equal(t, todoapi.IntPtr(1), todo.UserID)
	}
	assert.Equal(t, []int{1}, TodoIDs(t, svc, todoapi.TodoQuery{UserID: todoapi.IntPtr(1)}))
}

// TestTodoCopies checks that changing a returned record does not
// change the stored one.
func TestTodoCopies(t *testing.T) {
	svc := seededService(t)
	todo, err := svc.Todo(1)
	require.NoError(t, err)
	require.NotNil(t, todo.UserID)
	*todo.UserID = 99
	todo.Title = "changed"

	again, err := svc.Todo(1)
	if assert.NoError(t, err) {
		assert.Equal(t, "Buy milk", again.Title)
		assert.Equal(t, todoapi.IntPtr(1), again.UserID)
	}
}
