// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restserver publishes a todoapi Service as a REST service.
// The restclient package is a matching client.
//
// The complete REST API, including its fixed URL layout, is defined
// in the restdata package; the OpenAPI description of it comes from
// the apidoc package and is served at /docs.
//
// HTTP Considerations
//
// Request and response bodies are JSON.  Clients may use the standard
// HTTP Accept: header, but the only representations available are
//
//     application/json
//     text/json
//
// and a request that accepts neither fails with 406 Not Acceptable.
// A request body with any other Content-Type: fails with 415
// Unsupported Media Type; a body with no Content-Type: at all is read
// as JSON.  An empty body reads as an empty object.
//
// Every request body passes through the schema package's validator
// before it reaches the service.  A PUT or DELETE naming a record that
// does not exist fails with 404 before its body is looked at.
//
// This interface does not support HTTP caching or authentication
// headers.
package restserver
