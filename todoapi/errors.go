// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package todoapi

import "fmt"

// NotFoundMessage is the text every missing-record error carries
// across the wire.
const NotFoundMessage = "Not found"

// ErrNotFound is returned by Service methods that look up a record
// by id but cannot find it.
type ErrNotFound struct {
	// Resource names the collection, "user" or "todo".
	Resource string

	// ID is the id that was looked up.
	ID int
}

func (err ErrNotFound) Error() string {
	if err.Resource == "" {
		return NotFoundMessage
	}
	return fmt.Sprintf("No such %v %v", err.Resource, err.ID)
}

// ErrInvalid is returned when a payload fails validation.  Message
// lists every failing field as "field: reason", separated by ", ".
type ErrInvalid struct {
	Message string
}

func (err ErrInvalid) Error() string {
	return err.Message
}
