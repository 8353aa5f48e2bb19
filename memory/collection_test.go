// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import (
	"testing"

	"github.com/diffeo/go-todoapi/todoapi"
	"github.com/stretchr/testify/assert"
)

type userCollection = collection[todoapi.User, todoapi.NewUser]

func newUsers(seed ...todoapi.User) *userCollection {
	return newCollection[todoapi.User, todoapi.NewUser]("user", seed)
}

// ids returns the ids of every user in c, in order.
func ids(c *userCollection) []int {
	var result []int
	for _, u := range c.List(nil) {
		result = append(result, u.ID)
	}
	return result
}

// TestEmptyCollection checks that an empty collection starts its ids
// at 1 and lists as an empty, non-nil slice.
func TestEmptyCollection(t *testing.T) {
	c := newUsers()
	list := c.List(nil)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	u := c.Create(todoapi.NewUser{Name: "a", Email: "a@example.com"})
	assert.Equal(t, 1, u.ID)
}

// TestSeedAllocator checks that the allocator starts above the
// highest seeded id, even if the seed is not in id order.
func TestSeedAllocator(t *testing.T) {
	c := newUsers(
		todoapi.User{ID: 7, Name: "g"},
		todoapi.User{ID: 3, Name: "c"},
	)
	u := c.Create(todoapi.NewUser{Name: "h"})
	assert.Equal(t, 8, u.ID)
	assert.Equal(t, []int{7, 3, 8}, ids(c))
}

// TestIDsNeverReused deletes the most recent record and checks the
// next one still gets a fresh id.
func TestIDsNeverReused(t *testing.T) {
	c := newUsers()
	a := c.Create(todoapi.NewUser{Name: "a"})
	b := c.Create(todoapi.NewUser{Name: "b"})
	assert.NoError(t, c.Delete(b.ID))
	assert.NoError(t, c.Delete(a.ID))

	d := c.Create(todoapi.NewUser{Name: "d"})
	assert.Equal(t, 3, d.ID)
	assert.Equal(t, []int{3}, ids(c))
}

// TestReplaceKeepsPosition checks that replacement happens in place.
func TestReplaceKeepsPosition(t *testing.T) {
	c := newUsers(
		todoapi.User{ID: 1, Name: "a"},
		todoapi.User{ID: 2, Name: "b"},
		todoapi.User{ID: 3, Name: "c"},
	)
	u, err := c.Replace(2, todoapi.NewUser{Name: "B", Email: "b@example.com"})
	if assert.NoError(t, err) {
		assert.Equal(t, todoapi.User{ID: 2, Name: "B", Email: "b@example.com"}, u)
	}
	assert.Equal(t, []int{1, 2, 3}, ids(c))

	got, err := c.Get(2)
	if assert.NoError(t, err) {
		assert.Equal(t, u, got)
	}
}

// TestMissing checks that every by-id operation reports a missing
// record without changing anything.
func TestMissing(t *testing.T) {
	c := newUsers(todoapi.User{ID: 1, Name: "a"})
	expected := todoapi.ErrNotFound{Resource: "user", ID: 5}

	_, err := c.Get(5)
	assert.Equal(t, expected, err)

	_, err = c.Replace(5, todoapi.NewUser{Name: "x"})
	assert.Equal(t, expected, err)

	err = c.Delete(5)
	assert.Equal(t, expected, err)

	assert.Equal(t, []int{1}, ids(c))
	// a failed replace must not consume an id
	u := c.Create(todoapi.NewUser{Name: "b"})
	assert.Equal(t, 2, u.ID)
}

// TestDeleteExactlyOne checks that deleting removes one record and
// keeps the order of the rest.
func TestDeleteExactlyOne(t *testing.T) {
	c := newUsers(
		todoapi.User{ID: 1},
		todoapi.User{ID: 2},
		todoapi.User{ID: 3},
	)
	assert.NoError(t, c.Delete(2))
	assert.Equal(t, []int{1, 3}, ids(c))
	assert.Equal(t, todoapi.ErrNotFound{Resource: "user", ID: 2}, c.Delete(2))
}

// TestListPredicate checks filtering preserves relative order.
func TestListPredicate(t *testing.T) {
	c := newUsers(
		todoapi.User{ID: 1, Name: "x"},
		todoapi.User{ID: 2, Name: "y"},
		todoapi.User{ID: 3, Name: "x"},
	)
	list := c.List(func(u todoapi.User) bool { return u.Name == "x" })
	if assert.Len(t, list, 2) {
		assert.Equal(t, 1, list[0].ID)
		assert.Equal(t, 3, list[1].ID)
	}

	list = c.List(func(todoapi.User) bool { return false })
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
