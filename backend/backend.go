// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package backend provides a standard way to construct a todoapi
// Service based on command-line flags.
package backend

import (
	"strings"

	"github.com/diffeo/go-todoapi/memory"
	"github.com/diffeo/go-todoapi/restclient"
	"github.com/diffeo/go-todoapi/todoapi"
	"github.com/pkg/errors"
)

// Backend describes user-visible parameters to store todoapi data.
// This implements the flag.Value interface, and so a typical use is
//
//     func main() {
//         backend := backend.Backend{Implementation: "memory"}
//         flag.Var(&backend, "backend", "impl:address of storage")
//         flag.Parse()
//         svc, err := backend.Service(todoapi.DefaultSeed())
//     }
type Backend struct {
	// Implementation holds the name of the implementation:
	// "memory", or "rest" to forward to another server.
	Implementation string

	// Address holds some backend-specific address, such as the
	// base URL of a REST server.
	Address string
}

// Service creates a new todoapi Service.  This generally should be
// only called once.  If b.Implementation is "memory", multiple calls
// to this will create multiple independent worlds, each starting
// with seed.  Other backends already hold their own records and
// ignore seed.
func (b *Backend) Service(seed todoapi.Seed) (todoapi.Service, error) {
	switch b.Implementation {
	case "memory":
		return memory.New(seed), nil
	case "rest":
		return restclient.New(b.Address)
	default:
		return nil, errors.Errorf("unknown backend %q", b.Implementation)
	}
}

// String renders a backend description as a string.
func (b *Backend) String() string {
	if b.Address == "" {
		return b.Implementation
	}
	return b.Implementation + ":" + b.Address
}

// Set parses a string into an existing backend description.  The
// string should be of the form "implementation:address", where
// address can be any string; for instance,
// "rest:http://localhost:3000/".  Set checks to see if the provided
// implementation is any of the known implementations, and returns an
// appropriate error if not.
//
// This is part of the flag.Value interface.  Neither Set nor
// String attempts to validate the address or make a connection.
func (b *Backend) Set(param string) error {
	parts := strings.SplitN(param, ":", 2)
	impl, address := parts[0], ""
	if len(parts) == 2 {
		address = parts[1]
	}
	switch impl {
	case "":
		return errors.New("must specify a backend type")
	case "memory":
		if address != "" {
			return errors.New("memory backend takes no address")
		}
	case "rest":
		if address == "" {
			return errors.New("rest backend needs a server URL")
		}
	default:
		return errors.Errorf("unknown backend %q", impl)
	}
	b.Implementation = impl
	b.Address = address
	return nil
}
