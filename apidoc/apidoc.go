// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package apidoc builds the OpenAPI 3 description of the REST API.
//
// The payload schemas come from the same schema.Definitions the
// server validates requests against, so the published shapes cannot
// drift from the enforced ones.  The document is presentational: the
// bearer token scheme it declares is not checked anywhere.
package apidoc

import (
	"net/http"

	"github.com/diffeo/go-todoapi/restdata"
	"github.com/diffeo/go-todoapi/schema"
	"github.com/getkin/kin-openapi/openapi3"
)

// Title, version and description of the published document.
const (
	Title       = "CRUD Demo (Users & Todos)"
	Version     = "1.0.0"
	Description = "Users and todos held in memory, with validated request bodies."
)

// ServerURL is the base URL advertised for a local server.
const ServerURL = "http://localhost:3000"

// ErrorName is the name of the error response schema.
const ErrorName = "Error"

// schemaRef returns a reference to a named component schema.
func schemaRef(name string) *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("#/components/schemas/"+name, nil)
}

// fieldSchema renders one payload field.
func fieldSchema(f schema.Field) *openapi3.Schema {
	var s *openapi3.Schema
	switch f.Type {
	case "string":
		s = openapi3.NewStringSchema()
	case "integer":
		s = openapi3.NewIntegerSchema()
	case "boolean":
		s = openapi3.NewBoolSchema()
	default:
		s = openapi3.NewSchema()
	}
	if f.MinLength > 0 {
		s.WithMinLength(int64(f.MinLength))
	}
	if f.Positive {
		s.WithMin(1)
	}
	if f.Type == "integer" {
		s.WithMax(schema.MaxInteger)
	}
	if f.Format != "" {
		s.WithFormat(f.Format)
	}
	if f.Nullable {
		s.WithNullable()
	}
	s.Example = f.Example
	s.Default = f.Default
	return s
}

// definitionSchema renders a whole payload definition as an object
// schema.
func definitionSchema(d schema.Definition) *openapi3.Schema {
	s := openapi3.NewObjectSchema()
	for _, f := range d.Fields {
		s.WithProperty(f.Name, fieldSchema(f))
	}
	s.Required = d.RequiredNames()
	return s
}

// errorSchema renders restdata.ErrorResponse.
func errorSchema() *openapi3.Schema {
	message := openapi3.NewStringSchema()
	message.Example = "Not found"
	return openapi3.NewObjectSchema().WithProperty("message", message)
}

// Components returns the reusable parts of the document: every
// payload schema, the error schema and the security scheme.
func Components() openapi3.Components {
	schemas := make(openapi3.Schemas)
	for _, d := range schema.Definitions {
		schemas[d.Name] = openapi3.NewSchemaRef("", definitionSchema(d))
	}
	schemas[ErrorName] = openapi3.NewSchemaRef("", errorSchema())
	return openapi3.Components{
		Schemas: schemas,
		SecuritySchemes: openapi3.SecuritySchemes{
			"bearerAuth": &openapi3.SecuritySchemeRef{
				Value: openapi3.NewJWTSecurityScheme(),
			},
		},
	}
}

// New builds the complete OpenAPI document.
func New() *openapi3.T {
	components := Components()
	return &openapi3.T{
		OpenAPI: "3.0.0",
		Info: &openapi3.Info{
			Title:       Title,
			Version:     Version,
			Description: Description,
		},
		Servers: openapi3.Servers{
			&openapi3.Server{URL: ServerURL, Description: "Local dev"},
		},
		Components: &components,
		Paths:      paths(),
	}
}

// JSON returns the serialized OpenAPI document.
func JSON() ([]byte, error) {
	return New().MarshalJSON()
}

// response builds a response with a description and an optional body.
func response(description string, body *openapi3.SchemaRef) *openapi3.ResponseRef {
	r := openapi3.NewResponse().WithDescription(description)
	if body != nil {
		r.WithJSONSchemaRef(body)
	}
	return &openapi3.ResponseRef{Value: r}
}

// responses collects status → response pairs.
func responses(pairs map[int]*openapi3.ResponseRef) *openapi3.Responses {
	var opts []openapi3.NewResponsesOption
	for status, r := range pairs {
		opts = append(opts, openapi3.WithStatus(status, r))
	}
	return openapi3.NewResponses(opts...)
}

// operation builds an operation tagged with its resource.
func operation(tag, summary string, rs map[int]*openapi3.ResponseRef) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.Tags = []string{tag}
	op.Summary = summary
	op.Responses = responses(rs)
	return op
}

// withBody attaches a required JSON request body.
func withBody(op *openapi3.Operation, name string) *openapi3.Operation {
	op.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().
			WithRequired(true).
			WithJSONSchemaRef(schemaRef(name)),
	}
	return op
}

// withID attaches the {id} path parameter.
func withID(op *openapi3.Operation) *openapi3.Operation {
	op.AddParameter(openapi3.NewPathParameter("id").
		WithSchema(openapi3.NewIntegerSchema()))
	return op
}

// collection describes one resource type's routes.
type collection struct {
	Tag       string
	Noun      string
	Path      string
	Record    string
	NewRecord string
}

func (c collection) paths(p *openapi3.Paths) {
	array := openapi3.NewArraySchema()
	array.Items = schemaRef(c.Record)
	arrayOf := openapi3.NewSchemaRef("", array)
	notFound := response("Not found", schemaRef(ErrorName))

	list := operation(c.Tag, "List all "+c.Noun+"s", map[int]*openapi3.ResponseRef{
		http.StatusOK: response("List of "+c.Noun+"s", arrayOf),
	})
	create := withBody(operation(c.Tag, "Create a "+c.Noun, map[int]*openapi3.ResponseRef{
		http.StatusCreated:    response("Created", schemaRef(c.Record)),
		http.StatusBadRequest: response("Invalid body", schemaRef(ErrorName)),
	}), c.NewRecord)
	get := withID(operation(c.Tag, "Get a "+c.Noun+" by id", map[int]*openapi3.ResponseRef{
		http.StatusOK:       response("Found", schemaRef(c.Record)),
		http.StatusNotFound: notFound,
	}))
	put := withBody(withID(operation(c.Tag, "Replace a "+c.Noun+" (whole object)", map[int]*openapi3.ResponseRef{
		http.StatusOK:         response("Replaced", schemaRef(c.Record)),
		http.StatusBadRequest: response("Invalid body", schemaRef(ErrorName)),
		http.StatusNotFound:   notFound,
	})), c.Record)
	del := withID(operation(c.Tag, "Delete a "+c.Noun, map[int]*openapi3.ResponseRef{
		http.StatusNoContent: response("Deleted", nil),
		http.StatusNotFound:  notFound,
	}))

	p.Set(c.Path, &openapi3.PathItem{Get: list, Post: create})
	p.Set(c.Path+"/{id}", &openapi3.PathItem{Get: get, Put: put, Delete: del})
}

// paths describes every route.
func paths() *openapi3.Paths {
	p := openapi3.NewPaths()
	users := collection{
		Tag:       "Users",
		Noun:      "user",
		Path:      restdata.UsersURL,
		Record:    schema.UserName,
		NewRecord: schema.NewUserName,
	}
	users.paths(p)

	todos := collection{
		Tag:       "Todos",
		Noun:      "todo",
		Path:      restdata.TodosURL,
		Record:    schema.TodoName,
		NewRecord: schema.NewTodoName,
	}
	todos.paths(p)

	// Todo listing also filters by owner
	filter := openapi3.NewQueryParameter("userId").
		WithSchema(openapi3.NewIntegerSchema()).
		WithDescription("Only list todos owned by this user")
	list := p.Value(restdata.TodosURL).Get
	list.Summary = "List all todos, optionally by owner"
	list.AddParameter(filter)
	return p
}
