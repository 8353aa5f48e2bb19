// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restdata defines common data structures shared between the
// restserver and restclient packages.  Request and response bodies are
// JSON; records are the todoapi User and Todo types themselves.
//
// API Usage
//
// Unlike a hypermedia API, the URL layout here is fixed and is part of
// the contract:
//
//     GET    /api/users                list users
//     POST   /api/users                create a user from a NewUser
//     GET    /api/users/{id}           get one user
//     PUT    /api/users/{id}           replace a user with a User
//     DELETE /api/users/{id}           delete a user
//     GET    /api/todos{?userId}       list todos, optionally by owner
//     POST   /api/todos                create a todo from a NewTodo
//     GET    /api/todos/{id}           get one todo
//     PUT    /api/todos/{id}           replace a todo with a Todo
//     DELETE /api/todos/{id}           delete a todo
//     GET    /docs                     OpenAPI description of the above
//
// The URL templates in this package are RFC 6570 URI templates
// describing these paths.
//
// HTTP Considerations
//
// A successful creation returns 201 Created with the new record as
// the body and a Location: header naming it.  A successful deletion
// returns 204 No Content.  Any resource that supports GET also
// supports HEAD.
//
// A PUT replaces the whole record.  It is not a merge: optional fields
// absent from the body take their defaults, not their previous values.
// The path id always wins over an id in the body.
//
// Errors
//
// Every failure is a JSON encoding of ErrorResponse, with the HTTP
// status as the only machine-readable classification: 400 for a body
// that fails validation, 404 for a missing record (including an id
// that is not a number), and the usual 405, 406, 415 and 500 for
// protocol problems.  Validation failures list every failing field
// in a single message.
//
// Security
//
// The documentation declares a bearer token scheme.  Nothing checks
// it.
package restdata

// JSONMediaType is the MIME type of every request and response body.
const JSONMediaType = "application/json"

// UsersURL is the path of the user collection.
const UsersURL = "/api/users"

// TodosURL is the path of the todo collection.
const TodosURL = "/api/todos"

// UserURLTemplate addresses a single user, or the collection if "id"
// is not given.
const UserURLTemplate = UsersURL + "{/id}"

// TodoURLTemplate addresses a single todo, or the collection if "id"
// is not given; "userId" filters the collection.
const TodoURLTemplate = TodosURL + "{/id}{?userId}"

// DocsURL is the path of the OpenAPI document.
const DocsURL = "/docs"

// Greeting is the plain-text body of the root document.
const Greeting = "OK. API documentation is at " + DocsURL

// ErrorResponse can be a response to any method, generally accompanied
// by a failing HTTP status code.
type ErrorResponse struct {
	// Message is a human-readable description of the failure.
	Message string `json:"message"`
}

// UserBody is the request body of a user creation or replacement.
// Zero fields are omitted, so the server reports them as missing.
type UserBody struct {
	ID    int    `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// TodoBody is the request body of a todo creation or replacement.
// Zero fields are omitted; absent optional fields take their
// defaults on the server.
type TodoBody struct {
	ID     int    `json:"id,omitempty"`
	Title  string `json:"title,omitempty"`
	Done   *bool  `json:"done,omitempty"`
	UserID *int   `json:"userId,omitempty"`
}
