// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package todoapitest

import (
	"testing"

	"github.com/diffeo/go-todoapi/todoapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultSeed checks the content of a freshly seeded system.
func TestDefaultSeed(t *testing.T) {
	svc := seededService(t)

	users, err := svc.Users()
	require.NoError(t, err)
	assert.Equal(t, todoapi.DefaultSeed().Users, users)

	todos, err := svc.Todos(todoapi.TodoQuery{})
	require.NoError(t, err)
	assert.Equal(t, todoapi.DefaultSeed().Todos, todos)

	// The next ids come after the seed
	u, err := svc.CreateUser(todoapi.NewUser{Name: "Carol", Email: "carol@example.com"})
	if assert.NoError(t, err) {
		assert.Equal(t, 3, u.ID)
	}
	todo, err := svc.CreateTodo(todoapi.NewTodo{Title: "Walk dog"})
	if assert.NoError(t, err) {
		assert.Equal(t, 3, todo.ID)
	}
}

// TestUserLifecycle creates, reads, replaces and deletes a user.
func TestUserLifecycle(t *testing.T) {
	svc := emptyService(t)

	users, err := svc.Users()
	require.NoError(t, err)
	assert.Empty(t, users)

	created, err := svc.CreateUser(todoapi.NewUser{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, todoapi.User{ID: 1, Name: "Alice", Email: "alice@example.com"}, created)

	got, err := svc.User(created.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, created, got)
	}

	replaced, err := svc.ReplaceUser(created.ID, todoapi.NewUser{Name: "Alicia", Email: "alicia@example.com"})
	if assert.NoError(t, err) {
		assert.Equal(t, todoapi.User{ID: 1, Name: "Alicia", Email: "alicia@example.com"}, replaced)
	}

	got, err = svc.User(created.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, replaced, got)
	}

	err = svc.DeleteUser(created.ID)
	assert.NoError(t, err)

	_, err = svc.User(created.ID)
	IsNotFound(t, "user", created.ID, err)
	assert.Empty(t, UserIDs(t, svc))
}

// TestUserIDsIncrease checks that user ids strictly increase and are
// never reused, even after deletion.
func TestUserIDsIncrease(t *testing.T) {
	svc := emptyService(t)
	last := 0
	for i := 0; i < 5; i++ {
		u, err := svc.CreateUser(todoapi.NewUser{Name: "u", Email: "u@example.com"})
		require.NoError(t, err)
		assert.True(t, u.ID > last, "id %v not above %v", u.ID, last)
		last = u.ID
		if i%2 == 0 {
			require.NoError(t, svc.DeleteUser(u.ID))
		}
	}
	assert.Equal(t, []int{2, 4}, UserIDs(t, svc))
}

// TestUserNotFound checks that every by-id user operation fails on a
// missing id without changing anything.
func TestUserNotFound(t *testing.T) {
	svc := seededService(t)

	_, err := svc.User(99)
	IsNotFound(t, "user", 99, err)

	_, err = svc.ReplaceUser(99, todoapi.NewUser{Name: "x", Email: "x@example.com"})
	IsNotFound(t, "user", 99, err)

	err = svc.DeleteUser(99)
	IsNotFound(t, "user", 99, err)

	assert.Equal(t, []int{1, 2}, UserIDs(t, svc))
}

// TestUserDeleteTwice checks that a second delete of the same id
// fails.
func TestUserDeleteTwice(t *testing.T) {
	svc := seededService(t)
	assert.NoError(t, svc.DeleteUser(1))
	IsNotFound(t, "user", 1, svc.DeleteUser(1))
	assert.Equal(t, []int{2}, UserIDs(t, svc))
}

// TestUserReplaceKeepsOrder checks that replacing a user does not move
// it within the list.
func TestUserReplaceKeepsOrder(t *testing.T) {
	svc := seededService(t)
	_, err := svc.CreateUser(todoapi.NewUser{Name: "Carol", Email: "carol@example.com"})
	require.NoError(t, err)

	_, err = svc.ReplaceUser(1, todoapi.NewUser{Name: "Alice B.", Email: "alice@example.org"})
	require.NoError(t, err)

	users, err := svc.Users()
	require.NoError(t, err)
	if assert.Len(t, users, 3) {
		assert.Equal(t, todoapi.User{ID: 1, Name: "Alice B.", Email: "alice@example.org"}, users[0])
		assert.Equal(t, 2, users[1].ID)
		assert.Equal(t, 3, users[2].ID)
	}
}
