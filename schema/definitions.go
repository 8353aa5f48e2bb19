// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package schema

// Field describes one property of a request payload.
type Field struct {
	// Name is the JSON property name.
	Name string

	// Type is the JSON type: "string", "integer" or "boolean".
	Type string

	// Required fields must be present.  Absent optional fields
	// take their type's default.
	Required bool

	// Nullable fields may be JSON null, which is the same as
	// absent.
	Nullable bool

	// MinLength is the minimum length of a string field.
	MinLength int

	// Positive integer fields must be strictly greater than zero.
	Positive bool

	// Format names a string format, such as "email".
	Format string

	// Example is a sample value, used in documentation.
	Example interface{}

	// Default is the documented value of an absent field.
	Default interface{}
}

// Definition is a named payload shape.
type Definition struct {
	Name   string
	Fields []Field
}

// Names of the payload definitions.
const (
	NewUserName = "NewUser"
	UserName    = "User"
	NewTodoName = "NewTodo"
	TodoName    = "Todo"
)

// MaxInteger is the largest value an integer field accepts: the
// largest integer a JSON number holds exactly.
const MaxInteger = 1<<53 - 1

var idField = Field{Name: "id", Type: "integer", Required: true, Positive: true, Example: 1}

// NewUser is the body of a user creation.
var NewUser = Definition{
	Name: NewUserName,
	Fields: []Field{
		{Name: "name", Type: "string", Required: true, MinLength: 1, Example: "Bob"},
		{Name: "email", Type: "string", Required: true, Format: "email", Example: "bob@example.com"},
	},
}

// User is the body of a user replacement, and a user as returned.
var User = NewUser.extend(UserName, idField)

// NewTodo is the body of a todo creation.
var NewTodo = Definition{
	Name: NewTodoName,
	Fields: []Field{
		{Name: "title", Type: "string", Required: true, MinLength: 1, Example: "Learn Swagger"},
		{Name: "done", Type: "boolean", Default: false, Example: false},
		{Name: "userId", Type: "integer", Positive: true, Nullable: true, Example: 1},
	},
}

// Todo is the body of a todo replacement, and a todo as returned.
var Todo = NewTodo.extend(TodoName, idField)

// Definitions lists every payload definition, in documentation order.
var Definitions = []Definition{User, NewUser, Todo, NewTodo}

// Names of the replacement body definitions.
const (
	UserReplacementName = "UserReplacement"
	TodoReplacementName = "TodoReplacement"
)

// A replacement body is a User or Todo whose id may be absent.  The
// path names the record being replaced, so an id in the body is only
// checked, never used.
var (
	UserReplacement = NewUser.extend(UserReplacementName, idField.optional())
	TodoReplacement = NewTodo.extend(TodoReplacementName, idField.optional())
)

// replacements are compiled alongside Definitions but not published.
var replacements = []Definition{UserReplacement, TodoReplacement}

// optional returns a copy of f that need not be present.
func (f Field) optional() Field {
	f.Required = false
	return f
}

// extend returns a new definition with extra fields placed first.
func (d Definition) extend(name string, fields ...Field) Definition {
	all := make([]Field, 0, len(fields)+len(d.Fields))
	all = append(all, fields...)
	all = append(all, d.Fields...)
	return Definition{Name: name, Fields: all}
}

// RequiredNames returns the names of the required fields, in order.
func (d Definition) RequiredNames() []string {
	var names []string
	for _, f := range d.Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// position returns the index of the named field, or len(d.Fields)
// if there is no such field.
func (d Definition) position(name string) int {
	for i, f := range d.Fields {
		if f.Name == name {
			return i
		}
	}
	return len(d.Fields)
}

// JSONSchema renders d as a draft 7 JSON Schema document.  Unknown
// properties are allowed; they are dropped when the payload is
// decoded.
func (d Definition) JSONSchema() map[string]interface{} {
	properties := make(map[string]interface{}, len(d.Fields))
	for _, f := range d.Fields {
		p := map[string]interface{}{}
		if f.Nullable {
			p["type"] = []string{f.Type, "null"}
		} else {
			p["type"] = f.Type
		}
		if f.MinLength > 0 {
			p["minLength"] = f.MinLength
		}
		if f.Positive {
			p["exclusiveMinimum"] = 0
		}
		if f.Type == "integer" {
			p["maximum"] = int64(MaxInteger)
		}
		if f.Format != "" {
			p["format"] = f.Format
		}
		properties[f.Name] = p
	}
	result := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if required := d.RequiredNames(); len(required) > 0 {
		result["required"] = required
	}
	return result
}
