// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"fmt"
	"net/http"
	"runtime"

	"github.com/diffeo/go-todoapi/todoapi"
)

// ErrorStatus describes errors that correspond to specific HTTP status
// codes.
type ErrorStatus interface {
	// HTTPStatus returns the HTTP status code for this error.
	HTTPStatus() int
}

// ErrUnsupportedMediaType is returned from Decode() if the provided
// Content-Type: is unrecognized.  This translates directly into the
// equivalent HTTP 415 error.
type ErrUnsupportedMediaType struct {
	Type string
}

func (e ErrUnsupportedMediaType) Error() string {
	return fmt.Sprintf("Unsupported media type %q", e.Type)
}

// HTTPStatus returns a fixed 415 Unsupported Media Type error code.
func (e ErrUnsupportedMediaType) HTTPStatus() int {
	return http.StatusUnsupportedMediaType
}

// ErrNotFound is a wrapper error that indicates that, due to the
// embedded error, a REST service should return a 404 Not Found error.
// Its message is always the fixed todoapi.NotFoundMessage.
type ErrNotFound struct {
	Err error
}

func (e ErrNotFound) Error() string {
	return todoapi.NotFoundMessage
}

// HTTPStatus returns a fixed 404 Not Found error code.
func (e ErrNotFound) HTTPStatus() int {
	return http.StatusNotFound
}

// ErrBadRequest is returned as an error when there is an error decoding
// HTTP headers or the request body.
type ErrBadRequest struct {
	Err error
}

func (e ErrBadRequest) Error() string {
	return e.Err.Error()
}

// HTTPStatus returns a fixed 400 Bad Request HTTP status code.
func (e ErrBadRequest) HTTPStatus() int {
	return http.StatusBadRequest
}

// Status picks the HTTP status for an error returned from a handler.
// The todoapi errors have well-known statuses; anything else that does
// not implement ErrorStatus is a 500.
func Status(err error) int {
	switch et := err.(type) {
	case ErrorStatus:
		return et.HTTPStatus()
	case todoapi.ErrNotFound:
		return http.StatusNotFound
	case todoapi.ErrInvalid:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// FromError populates an ErrorResponse based on an error value.
// Missing records always report the same fixed message.
func (e *ErrorResponse) FromError(err error) {
	switch err.(type) {
	case todoapi.ErrNotFound, ErrNotFound:
		e.Message = todoapi.NotFoundMessage
	default:
		e.Message = err.Error()
	}
}

// ToError converts e back to an error, given the HTTP status it came
// with and the record it was about.  404 and 400 become the matching
// todoapi errors; anything else is a plain error with e.Message text.
func (e *ErrorResponse) ToError(status int, resource string, id int) error {
	switch status {
	case http.StatusNotFound:
		return todoapi.ErrNotFound{Resource: resource, ID: id}
	case http.StatusBadRequest:
		return todoapi.ErrInvalid{Message: e.Message}
	}
	return fmt.Errorf("%v (HTTP %v)", e.Message, status)
}

// FromPanic populates an error response based on a panic, and
// returns the stack trace of the panicking goroutine.  Typical use
// is:
//
//     defer func() {
//         if obj := recover(); obj != nil {
//             resp := restdata.ErrorResponse{}
//             stack := resp.FromPanic(obj)
//             // log stack, write resp out as makes sense
//         }
//    }
func (e *ErrorResponse) FromPanic(obj interface{}) string {
	if recoveredError, isError := obj.(error); isError {
		e.Message = "panic: " + recoveredError.Error()
	} else {
		e.Message = fmt.Sprintf("panic: %+v", obj)
	}
	var stack [4096]byte
	len := runtime.Stack(stack[:], false)
	return string(stack[:len])
}
