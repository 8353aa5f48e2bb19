// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import (
	"sync"

	"github.com/diffeo/go-todoapi/todoapi"
)

// record is anything a collection can hold.  Its id is assigned by
// the collection and never changes afterwards.
type record interface {
	RecordID() int
}

// builder is the caller-supplied content of a record, which becomes
// a record once the collection picks its id.
type builder[R record] interface {
	Build(id int) R
}

// collection is an ordered sequence of records with an id allocator.
// Records stay in insertion order; nothing ever re-sorts them.  All
// operations hold the collection's lock for their whole duration.
type collection[R record, B builder[R]] struct {
	resource string
	records  []R
	nextID   int
	sem      sync.Mutex
}

// newCollection creates a collection holding seed, in order.  The
// first allocated id is one more than the highest seeded id.
func newCollection[R record, B builder[R]](resource string, seed []R) *collection[R, B] {
	c := &collection[R, B]{
		resource: resource,
		records:  make([]R, 0, len(seed)),
		nextID:   1,
	}
	for _, r := range seed {
		c.records = append(c.records, r)
		if r.RecordID() >= c.nextID {
			c.nextID = r.RecordID() + 1
		}
	}
	return c
}

func (c *collection[R, B]) notFound(id int) error {
	return todoapi.ErrNotFound{Resource: c.resource, ID: id}
}

// index returns the position of the record with id, or -1.  The
// caller must hold the lock.
func (c *collection[R, B]) index(id int) int {
	for i, r := range c.records {
		if r.RecordID() == id {
			return i
		}
	}
	return -1
}

// List returns the records for which pred returns true, or all of
// them if pred is nil.  The result is never nil.
func (c *collection[R, B]) List(pred func(R) bool) []R {
	c.sem.Lock()
	defer c.sem.Unlock()

	result := make([]R, 0, len(c.records))
	for _, r := range c.records {
		if pred == nil || pred(r) {
			result = append(result, r)
		}
	}
	return result
}

// Get returns the record with id.
func (c *collection[R, B]) Get(id int) (R, error) {
	c.sem.Lock()
	defer c.sem.Unlock()

	var zero R
	i := c.index(id)
	if i < 0 {
		return zero, c.notFound(id)
	}
	return c.records[i], nil
}

// Create allocates the next id and appends a new record.
func (c *collection[R, B]) Create(fields B) R {
	c.sem.Lock()
	defer c.sem.Unlock()

	r := fields.Build(c.nextID)
	c.nextID++
	c.records = append(c.records, r)
	return r
}

// Replace overwrites the record with id in place.  If there is no
// such record nothing changes.
func (c *collection[R, B]) Replace(id int, fields B) (R, error) {
	c.sem.Lock()
	defer c.sem.Unlock()

	var zero R
	i := c.index(id)
	if i < 0 {
		return zero, c.notFound(id)
	}
	c.records[i] = fields.Build(id)
	return c.records[i], nil
}

// Delete removes exactly one record.
func (c *collection[R, B]) Delete(id int) error {
	c.sem.Lock()
	defer c.sem.Unlock()

	i := c.index(id)
	if i < 0 {
		return c.notFound(id)
	}
	c.records = append(c.records[:i], c.records[i+1:]...)
	return nil
}
