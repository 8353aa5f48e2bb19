// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory_test

//go:generate go run ../cmd/suitegen --output todoapitest_test.go --package memory_test --import github.com/diffeo/go-todoapi/todoapi/todoapitest ../todoapi/todoapitest

import (
	"github.com/diffeo/go-todoapi/memory"
	"github.com/diffeo/go-todoapi/todoapi/todoapitest"
)

func init() {
	todoapitest.NewService = memory.New
}
