// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

// This file contains a REST skeleton framework.
//
// The bulk of this is dealing with HTTP content type negotiation, and
// providing a standard way to deal with input and output values.  The
// specific handler functions only ever see a context built from the
// URL and, for PUT and POST, the raw JSON body, which they hand to
// the schema validator before doing anything else with it.

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/diffeo/go-todoapi/restdata"
	"github.com/diffeo/go-todoapi/schema"
	"github.com/sirupsen/logrus"
)

// knownTypes lists the specific media types a response can have.
var knownTypes = map[string]bool{
	"text/json":            true,
	restdata.JSONMediaType: true,
}

// errBadAccept is returned from negotiateResponse() if the Accept:
// header is malformed (and no more specific error applies).
var errBadAccept = errors.New("Invalid Accept: header")

// errNotAcceptable is returned from negotiateResponse() if the Accept:
// header does not mention any media types we can actually return.
type errNotAcceptable struct{}

func (e errNotAcceptable) Error() string {
	return "No acceptable representation for response"
}

func (e errNotAcceptable) HTTPStatus() int {
	return http.StatusNotAcceptable
}

// errMethodNotAllowed is used within the resourceHandler implementation
// to flag an error if a particular HTTP method is not allowed.  This
// corresponds exactly to the 405 Method Not Allowed HTTP status code.
type errMethodNotAllowed struct {
	Method string
}

func (e errMethodNotAllowed) Error() string {
	return fmt.Sprintf("Method %v not allowed", e.Method)
}

func (e errMethodNotAllowed) HTTPStatus() int {
	return http.StatusMethodNotAllowed
}

// responseCreated is returned as a value response from handler
// functions that want to indicate that a new resource was created.
type responseCreated struct {
	// Location holds the canonical URL to the newly created resource.
	Location string

	// Body contains the object sent in the body of the response.
	Body interface{}
}

// responseText is returned from handler functions whose response is
// plain text rather than JSON.
type responseText string

// responseJSON is returned from handler functions that have already
// serialized their response.
type responseJSON []byte

type resourceHandler struct {
	// Context reads an HTTP request and produces a context object.
	// This runs before the request body is read, so a missing
	// resource is reported even if the body is bad.
	Context func(req *http.Request) (*context, error)

	// Get, if non-nil, returns a representation of the object.
	Get func(*context) (interface{}, error)

	// Put, if non-nil, updates the representation of the object.
	// The interface parameter is the raw decoded JSON body.  The
	// return can be any useful return value.
	Put func(*context, interface{}) (interface{}, error)

	// Post, if non-nil, takes some arbitrary action.  The
	// interface parameter is the raw decoded JSON body.  The
	// return can be any useful return value, include
	// responseCreated.
	Post func(*context, interface{}) (interface{}, error)

	// Delete, if non-nil, deletes the object.  The return can be
	// any useful return value; nil produces 204 No Content.
	Delete func(*context) (interface{}, error)

	// Log receives reports of handler panics.
	Log logrus.FieldLogger
}

func (h *resourceHandler) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	var (
		ctx          *context
		in, out      interface{}
		err          error
		status       int
		responseType string
	)

	// Recover from panics by sending an HTTP error.
	defer func() {
		if recovered := recover(); recovered != nil {
			response := restdata.ErrorResponse{}
			stack := response.FromPanic(recovered)
			if h.Log != nil {
				h.Log.WithFields(logrus.Fields{
					"method": req.Method,
					"path":   req.URL.Path,
					"stack":  stack,
				}).Error(response.Message)
			}
			resp.Header().Set("Content-Type", restdata.JSONMediaType)
			resp.WriteHeader(http.StatusInternalServerError)
			_ = restdata.Encode(resp, response)
		}
	}()

	// Start by trying to come up with a response type, even before
	// trying to parse the input.  This determines what format an
	// error message could be sent back as.
	responseType, err = negotiateResponse(req)
	if err != nil {
		// Gotta pick something
		responseType = restdata.JSONMediaType
		if _, hasStatus := err.(restdata.ErrorStatus); !hasStatus {
			err = restdata.ErrBadRequest{Err: err}
		}
	}

	// Get bits from URL parameters
	if err == nil {
		ctx, err = h.Context(req)
	}

	// Read the JSON body, if it's there
	if err == nil && (req.Method == http.MethodPut || req.Method == http.MethodPost) {
		err = restdata.CheckContentType(req.Header.Get("Content-Type"))
		if err == nil {
			in, err = schema.ReadJSON(req.Body)
		}
	}

	// Actually call the handler method
	if err == nil {
		// We will return this if the method is unexpected or
		// we don't have a handler for it
		err = errMethodNotAllowed{Method: req.Method}
		switch req.Method {
		case http.MethodGet, http.MethodHead:
			if h.Get != nil {
				out, err = h.Get(ctx)
			}
		case http.MethodPut:
			if h.Put != nil {
				out, err = h.Put(ctx, in)
			}
		case http.MethodPost:
			if h.Post != nil {
				out, err = h.Post(ctx, in)
			}
		case http.MethodDelete:
			if h.Delete != nil {
				out, err = h.Delete(ctx)
			}
		}
	}

	// Fix up the final result based on what we know.
	if err != nil {
		status = restdata.Status(err)
		errResp := restdata.ErrorResponse{}
		errResp.FromError(err)
		out = errResp
	} else if out == nil {
		status = http.StatusNoContent
	} else if created, isCreated := out.(responseCreated); isCreated {
		status = http.StatusCreated
		if created.Location != "" {
			resp.Header().Set("Location", created.Location)
		}
		out = created.Body
	} else {
		status = http.StatusOK
	}
	if req.Method == http.MethodHead {
		// Headers only, but with the type the body would have had
		if _, isText := out.(responseText); isText {
			responseType = "text/plain; charset=utf-8"
		}
		if out != nil {
			resp.Header().Set("Content-Type", responseType)
		}
		resp.WriteHeader(status)
		return
	}

	// Actually send the response.  If writing fails we have
	// already sent a status line, so there is nothing better to
	// do than drop the error.
	switch body := out.(type) {
	case nil:
		resp.WriteHeader(status)
	case responseText:
		resp.Header().Set("Content-Type", "text/plain; charset=utf-8")
		resp.WriteHeader(status)
		_, _ = resp.Write([]byte(body))
	case responseJSON:
		resp.Header().Set("Content-Type", responseType)
		resp.WriteHeader(status)
		_, _ = resp.Write(body)
	default:
		resp.Header().Set("Content-Type", responseType)
		resp.WriteHeader(status)
		_ = restdata.Encode(resp, body)
	}
}

// negotiateResponse returns a supported MIME type for the response
// body, following the path laid out in RFC 7231 section 5.3.
func negotiateResponse(req *http.Request) (string, error) {
	accept := req.Header.Get("Accept")
	if accept == "" {
		accept = "*/*"
	}
	bestType := ""
	bestQ := 0.0
	mediaRanges := strings.Split(accept, ",")
	for _, mediaRange := range mediaRanges {
		mediaRange = strings.TrimSpace(mediaRange)
		mediaType, params, err := mime.ParseMediaType(mediaRange)
		if err != nil {
			return "", err
		}

		// What is the "q" ("quality") parameter for this type?
		// If it is less than the best known so far, skip it
		q := 1.0
		if qStr, haveQ := params["q"]; haveQ {
			q, err = strconv.ParseFloat(qStr, 64)
			if err != nil {
				return "", err
			}
			if q < 0.0 || q > 1.0 {
				return "", errBadAccept
			}
		}
		if q < bestQ {
			continue
		}

		// This is acceptable if it's one of the known
		// types; or it's one of a couple of specific wildcards.
		// Also need to handle wildcard precedence.  So:
		if mediaType == "*/*" {
			// Doesn't override anything.
			if q > bestQ {
				bestType = mediaType
				bestQ = q
			}
		} else if mediaType == "text/*" || mediaType == "application/*" {
			// Only overrides "*/*".
			if q > bestQ || bestType == "*/*" {
				bestType = mediaType
				bestQ = q
			}
		} else if knownTypes[mediaType] {
			// Overrides any wildcard.  We want the first one
			// at a given q to win.
			if q > bestQ || bestType == "*/*" || bestType == "text/*" || bestType == "application/*" {
				bestType = mediaType
				bestQ = q
			}
		}
		// Otherwise we don't recognize this type at all, so
		// just drop it.
	}
	// If this failed to win, return an error
	if bestQ == 0.0 {
		return "", errNotAcceptable{}
	}
	switch bestType {
	case "*/*", "application/*":
		return restdata.JSONMediaType, nil
	case "text/*":
		return "text/json", nil
	default:
		return bestType, nil
	}
}
