// Copyright 2016-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"bytes"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

// Suite is a shared test package and the functions to wrap from it.
type Suite struct {
	// Package is the name of the generated package.
	Package string

	// Command is recorded in the generated file's header.
	Command string

	// ImportPath is the shared package's import path.
	ImportPath string

	// Name is the shared package's name.
	Name string

	// Tests and Benchmarks are the wrapped function names, in
	// source order.
	Tests      []string
	Benchmarks []string
}

var suiteTemplate = template.Must(template.New("suite").Parse(`// Code generated by {{.Command}}; DO NOT EDIT.

package {{.Package}}

import (
	"testing"

	"{{.ImportPath}}"
)
{{range .Tests}}
func {{.}}(t *testing.T) {
	{{$.Name}}.{{.}}(t)
}
{{end}}{{range .Benchmarks}}
func {{.}}(b *testing.B) {
	{{$.Name}}.{{.}}(b)
}
{{end}}`))

// Write renders the wrapper file, gofmt-formatted.
func (s *Suite) Write(w io.Writer) error {
	var buf bytes.Buffer
	if err := suiteTemplate.Execute(&buf, s); err != nil {
		return err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return errors.Wrap(err, "formatting generated code")
	}
	_, err = w.Write(src)
	return err
}

// readSuite parses the non-test Go files in dir and collects its
// exported test and benchmark functions.
func readSuite(dir, importPath string, except []string) (*Suite, error) {
	skip := make(map[string]bool)
	for _, name := range except {
		skip[name] = true
	}

	fset := token.NewFileSet()
	notTest := func(fi os.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go")
	}
	pkgs, err := parser.ParseDir(fset, dir, notTest, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %v", dir)
	}
	if len(pkgs) != 1 {
		return nil, errors.Errorf("expected one package in %v, found %v", dir, len(pkgs))
	}

	suite := &Suite{ImportPath: importPath}
	for name, pkg := range pkgs {
		suite.Name = name
		// Files come back as a map; visit them in name order,
		// then each file's functions in position order
		var files []string
		for filename := range pkg.Files {
			files = append(files, filename)
		}
		sort.Strings(files)
		for _, filename := range files {
			suite.collect(pkg.Files[filename], skip)
		}
	}
	if len(suite.Tests)+len(suite.Benchmarks) == 0 {
		return nil, errors.Errorf("no tests in %v", filepath.Clean(dir))
	}
	return suite, nil
}

func (s *Suite) collect(file *ast.File, skip map[string]bool) {
	for _, decl := range file.Decls {
		funcDecl, ok := decl.(*ast.FuncDecl)
		if !ok || funcDecl.Recv != nil || skip[funcDecl.Name.Name] {
			continue
		}
		// Test functions never return anything
		if !emptyFieldList(funcDecl.Type.Results) {
			continue
		}
		name := funcDecl.Name.Name
		switch {
		case strings.HasPrefix(name, "Test") && takesATesting("T", funcDecl.Type.Params):
			s.Tests = append(s.Tests, name)
		case strings.HasPrefix(name, "Benchmark") && takesATesting("B", funcDecl.Type.Params):
			s.Benchmarks = append(s.Benchmarks, name)
		}
	}
}

func emptyFieldList(fl *ast.FieldList) bool {
	return fl == nil || len(fl.List) == 0
}

// takesATesting reports whether fl is exactly one *testing.T (or
// *testing.B, or whatever t names).
func takesATesting(t string, fl *ast.FieldList) bool {
	if fl == nil || len(fl.List) != 1 || len(fl.List[0].Names) > 1 {
		return false
	}
	star, ok := fl.List[0].Type.(*ast.StarExpr)
	if !ok {
		return false
	}
	sel, ok := star.X.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	pkg, ok := sel.X.(*ast.Ident)
	return ok && pkg.Name == "testing" && sel.Sel.Name == t
}
