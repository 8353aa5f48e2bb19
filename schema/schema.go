// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package schema validates request payloads and turns them into the
// typed values the rest of the system works with.
//
// Each payload shape is a Definition: an ordered list of fields with
// their types and constraints.  A Definition renders itself as a JSON
// Schema document, which is what actually checks incoming data, and
// the apidoc package renders the same Definitions into the published
// API documentation.
//
// Validation is total.  Every field is checked, and a failure reports
// every violation at once, as "field: reason" entries joined by ", ",
// in the order the fields are defined.  A payload that passes is
// decoded into its Go type; properties the Definition does not name
// are dropped.
package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/diffeo/go-todoapi/todoapi"
	"github.com/mitchellh/mapstructure"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validator checks payloads against the compiled Definitions.  It is
// safe for concurrent use.
type Validator struct {
	compiled map[string]*compiledDefinition
}

type compiledDefinition struct {
	Definition
	schema *jsonschema.Schema
}

// New compiles every Definition.  This only fails if a Definition
// cannot be expressed as a JSON Schema, which is a programming error.
func New() (*Validator, error) {
	v := &Validator{compiled: make(map[string]*compiledDefinition)}
	all := append(append([]Definition{}, Definitions...), replacements...)
	for _, d := range all {
		s, err := compile(d)
		if err != nil {
			return nil, fmt.Errorf("compiling %v schema: %v", d.Name, err)
		}
		v.compiled[d.Name] = &compiledDefinition{Definition: d, schema: s}
	}
	return v, nil
}

// MustNew is New, but panics on error.
func MustNew() *Validator {
	v, err := New()
	if err != nil {
		panic(err)
	}
	return v
}

func compile(d Definition) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	compiler.AssertFormat = true

	doc, err := json.Marshal(d.JSONSchema())
	if err != nil {
		return nil, err
	}
	url := d.Name + ".json"
	if err := compiler.AddResource(url, strings.NewReader(string(doc))); err != nil {
		return nil, err
	}
	return compiler.Compile(url)
}

// Check validates a raw JSON value, as produced by encoding/json,
// against the named Definition.  It returns nil or an instance of
// todoapi.ErrInvalid.
func (v *Validator) Check(name string, value interface{}) error {
	c, ok := v.compiled[name]
	if !ok {
		return fmt.Errorf("no schema named %q", name)
	}
	err := c.schema.Validate(value)
	if err == nil {
		return nil
	}
	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return todoapi.ErrInvalid{Message: err.Error()}
	}
	var problems []problem
	collect(c.Definition, value, verr, &problems)
	return todoapi.ErrInvalid{Message: c.message(problems)}
}

// problem is a single field-level violation.
type problem struct {
	Field  string
	Reason string
}

// collect walks a validation error tree and records its leaves.
func collect(d Definition, value interface{}, verr *jsonschema.ValidationError, problems *[]problem) {
	if len(verr.Causes) > 0 {
		for _, cause := range verr.Causes {
			collect(d, value, cause, problems)
		}
		return
	}

	// A missing required property is reported against the
	// enclosing object; report it against each missing field.
	if strings.HasSuffix(verr.KeywordLocation, "/required") {
		if obj, isObj := value.(map[string]interface{}); isObj {
			for _, name := range d.RequiredNames() {
				if _, present := obj[name]; !present {
					*problems = append(*problems, problem{Field: name, Reason: "Required"})
				}
			}
			return
		}
	}

	field := strings.TrimPrefix(verr.InstanceLocation, "/")
	field = strings.ReplaceAll(field, "/", ".")
	if field == "" {
		field = "body"
	}
	*problems = append(*problems, problem{Field: field, Reason: verr.Message})
}

// message joins problems in field definition order.
func (c *compiledDefinition) message(problems []problem) string {
	sort.SliceStable(problems, func(i, j int) bool {
		return c.position(problems[i].Field) < c.position(problems[j].Field)
	})
	parts := make([]string, 0, len(problems))
	seen := make(map[problem]bool)
	for _, p := range problems {
		if seen[p] {
			continue
		}
		seen[p] = true
		parts = append(parts, p.Field+": "+p.Reason)
	}
	return strings.Join(parts, ", ")
}

// ReadJSON reads a single raw JSON value from r.  An empty body reads
// as an empty object.  Malformed JSON is an instance of
// todoapi.ErrInvalid.
func ReadJSON(r io.Reader) (interface{}, error) {
	var value interface{}
	err := json.NewDecoder(r).Decode(&value)
	if err == io.EOF {
		return map[string]interface{}{}, nil
	}
	if err != nil {
		return nil, todoapi.ErrInvalid{Message: "body: invalid JSON: " + err.Error()}
	}
	return value, nil
}

// decode validates value against the named Definition and, if it
// passes, copies the recognized fields into out.
func (v *Validator) decode(name string, value interface{}, out interface{}) error {
	if err := v.Check(name, value); err != nil {
		return err
	}
	if err := mapstructure.Decode(value, out); err != nil {
		return todoapi.ErrInvalid{Message: err.Error()}
	}
	return nil
}

// NewUser validates and decodes the body of a user creation.
func (v *Validator) NewUser(value interface{}) (result todoapi.NewUser, err error) {
	err = v.decode(NewUserName, value, &result)
	return
}

// User validates and decodes the body of a user replacement,
// returning the id it carries, or 0 if it has none, and the fields
// that replace the user.
func (v *Validator) User(value interface{}) (id int, result todoapi.NewUser, err error) {
	var payload struct {
		ID              int `mapstructure:"id"`
		todoapi.NewUser `mapstructure:",squash"`
	}
	err = v.decode(UserReplacementName, value, &payload)
	if err == nil {
		id = payload.ID
		result = payload.NewUser
	}
	return
}

// NewTodo validates and decodes the body of a todo creation.
func (v *Validator) NewTodo(value interface{}) (result todoapi.NewTodo, err error) {
	err = v.decode(NewTodoName, value, &result)
	return
}

// Todo validates and decodes the body of a todo replacement, like
// User.  The result keeps track of absent fields so that defaults
// apply.
func (v *Validator) Todo(value interface{}) (id int, result todoapi.NewTodo, err error) {
	var payload struct {
		ID              int `mapstructure:"id"`
		todoapi.NewTodo `mapstructure:",squash"`
	}
	err = v.decode(TodoReplacementName, value, &payload)
	if err == nil {
		id = payload.ID
		result = payload.NewTodo
	}
	return
}
