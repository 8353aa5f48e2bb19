// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package apidoc_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/diffeo/go-todoapi/apidoc"
	"github.com/diffeo/go-todoapi/restdata"
	"github.com/diffeo/go-todoapi/schema"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T) *openapi3.T {
	data, err := apidoc.JSON()
	require.NoError(t, err)
	doc, err := openapi3.NewLoader().LoadFromData(data)
	require.NoError(t, err)
	return doc
}

// TestDocumentLoads checks that the serialized document parses back
// with its metadata intact.
func TestDocumentLoads(t *testing.T) {
	doc := load(t)
	assert.Equal(t, "3.0.0", doc.OpenAPI)
	if assert.NotNil(t, doc.Info) {
		assert.Equal(t, apidoc.Title, doc.Info.Title)
		assert.Equal(t, apidoc.Version, doc.Info.Version)
	}
	if assert.Len(t, doc.Servers, 1) {
		assert.Equal(t, apidoc.ServerURL, doc.Servers[0].URL)
	}
	assert.Contains(t, doc.Components.SecuritySchemes, "bearerAuth")
}

// TestDocumentValidates runs the document, with its references
// resolved, through the OpenAPI validator.
func TestDocumentValidates(t *testing.T) {
	doc := load(t)
	assert.NoError(t, doc.Validate(context.Background()))
}

func TestSchemas(t *testing.T) {
	doc := load(t)
	for _, d := range schema.Definitions {
		ref, ok := doc.Components.Schemas[d.Name]
		if assert.True(t, ok, d.Name) {
			assert.ElementsMatch(t, d.RequiredNames(), ref.Value.Required, d.Name)
			for _, f := range d.Fields {
				assert.Contains(t, ref.Value.Properties, f.Name, "%v.%v", d.Name, f.Name)
			}
		}
	}
	assert.Contains(t, doc.Components.Schemas, apidoc.ErrorName)

	todo := doc.Components.Schemas[schema.TodoName].Value
	assert.True(t, todo.Properties["userId"].Value.Nullable)
	if max := todo.Properties["userId"].Value.Max; assert.NotNil(t, max) {
		assert.Equal(t, float64(schema.MaxInteger), *max)
	}
	user := doc.Components.Schemas[schema.UserName].Value
	assert.Equal(t, "email", user.Properties["email"].Value.Format)
}

func TestPaths(t *testing.T) {
	doc := load(t)

	users := doc.Paths.Value(restdata.UsersURL)
	if assert.NotNil(t, users) {
		assert.NotNil(t, users.Get)
		if assert.NotNil(t, users.Post) {
			assert.NotNil(t, users.Post.RequestBody)
			assert.NotNil(t, users.Post.Responses.Status(http.StatusCreated))
			assert.Equal(t, []string{"Users"}, users.Post.Tags)
		}
		assert.Nil(t, users.Put)
	}

	user := doc.Paths.Value(restdata.UsersURL + "/{id}")
	if assert.NotNil(t, user) {
		assert.NotNil(t, user.Get)
		assert.NotNil(t, user.Put)
		if assert.NotNil(t, user.Delete) {
			assert.NotNil(t, user.Delete.Responses.Status(http.StatusNoContent))
			assert.NotNil(t, user.Delete.Parameters.GetByInAndName("path", "id"))
		}
		assert.Nil(t, user.Post)
	}

	todos := doc.Paths.Value(restdata.TodosURL)
	if assert.NotNil(t, todos) && assert.NotNil(t, todos.Get) {
		assert.NotNil(t, todos.Get.Parameters.GetByInAndName("query", "userId"))
		assert.Equal(t, []string{"Todos"}, todos.Get.Tags)
	}
	assert.NotNil(t, doc.Paths.Value(restdata.TodosURL+"/{id}"))
}
