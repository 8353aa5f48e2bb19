// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sharedSource = `package shared

import "testing"

var Thing int

func TestOne(t *testing.T) {}

func helper(t *testing.T) {}

func TestReturns(t *testing.T) error { return nil }

func TestWrongArg(x int) {}

func BenchmarkOne(b *testing.B) {}

func TestSkipped(t *testing.T) {}

func TestTwo(t *testing.T) {}
`

func writeShared(t *testing.T) string {
	dir, err := ioutil.TempDir("", "suitegen")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "shared.go"), []byte(sharedSource), 0644))
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "shared_test.go"),
		[]byte("package shared\n\nimport \"testing\"\n\nfunc TestInternal(t *testing.T) {}\n"), 0644))
	return dir
}

func TestReadSuite(t *testing.T) {
	dir := writeShared(t)
	suite, err := readSuite(dir, "example.com/shared", []string{"TestSkipped"})
	require.NoError(t, err)
	assert.Equal(t, "shared", suite.Name)
	assert.Equal(t, []string{"TestOne", "TestTwo"}, suite.Tests)
	assert.Equal(t, []string{"BenchmarkOne"}, suite.Benchmarks)
}

func TestWrite(t *testing.T) {
	suite := &Suite{
		Package:    "mine_test",
		Command:    "suitegen example.com/shared",
		ImportPath: "example.com/shared",
		Name:       "shared",
		Tests:      []string{"TestOne"},
		Benchmarks: []string{"BenchmarkOne"},
	}
	var buf bytes.Buffer
	require.NoError(t, suite.Write(&buf))
	assert.Equal(t, `// Code generated by suitegen example.com/shared; DO NOT EDIT.

package mine_test

import (
	"testing"

	"example.com/shared"
)

func TestOne(t *testing.T) {
	shared.TestOne(t)
}

func BenchmarkOne(b *testing.B) {
	shared.BenchmarkOne(b)
}
`, buf.String())
}

func TestNoTests(t *testing.T) {
	dir, err := ioutil.TempDir("", "suitegen")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "x.go"), []byte("package x\n"), 0644))
	_, err = readSuite(dir, "example.com/x", nil)
	assert.Error(t, err)
}
