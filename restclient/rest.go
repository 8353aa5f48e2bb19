// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

// This file provides generic REST client code.

import (
	"bytes"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/diffeo/go-todoapi/restdata"
	"github.com/jtacoma/uritemplates"
	"github.com/pkg/errors"
	"github.com/ugorji/go/codec"
)

// resource is any object that has a URL and a representation.
type resource struct {
	URL    *url.URL
	Client *http.Client
}

// Template expands a URI template with vars and returns the result
// relative to the resource's URL.
func (r *resource) Template(template string, vars map[string]interface{}) (*url.URL, error) {
	tmpl, err := uritemplates.Parse(template)
	if err != nil {
		return nil, err
	}
	expanded, err := tmpl.Expand(vars)
	if err != nil {
		return nil, err
	}
	return r.URL.Parse(expanded)
}

// Do performs some HTTP action.  If in is non-nil, the request data is
// serialized and sent as the body of, for instance, a POST request.
// If out is non-nil, the response data (if any) is deserialized into
// this object, which must be of pointer type.
func (r *resource) Do(method string, url *url.URL, in, out interface{}) (err error) {
	json := &codec.JsonHandle{}

	// Set up the body as serialized JSON, if there is one
	var body io.Reader
	var reader *io.PipeReader
	if in != nil {
		var writer *io.PipeWriter
		reader, writer = io.Pipe()
		encoder := codec.NewEncoder(writer, json)
		finished := make(chan error)
		go func() {
			err := encoder.Encode(in)
			err = firstError(err, writer.Close())
			finished <- err
		}()
		defer func() {
			err = firstError(err, <-finished)
		}()
		body = reader
	}

	// Create the request and set headers
	req, err := http.NewRequest(method, url.String(), body)
	if err != nil {
		// Nothing will read the body, so stop the encoder
		if reader != nil {
			reader.CloseWithError(err)
		}
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", restdata.JSONMediaType)
	}
	req.Header.Set("Accept", restdata.JSONMediaType)

	// Actually do the request
	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%v %v", method, url)
	}

	// If the response included a body, clean up afterwards
	if resp.Body != nil {
		defer func() {
			err = firstError(err, resp.Body.Close())
		}()
	}

	// Check the response code
	if err = checkHTTPStatus(resp); err != nil {
		return err
	}

	// If there is both a body and a requested output,
	// decode it
	if resp.Body != nil && out != nil {
		contentType := resp.Header.Get("Content-Type")
		err = restdata.Decode(contentType, resp.Body, out)
		if err != nil {
			err = errors.Wrapf(err, "decoding %v %v", method, url)
		}
	}

	return err // may be nil
}

// GetFrom retrieves a resource from some other URL.  template is
// interpreted as a URI template, modified by vars, and the result
// taken relative to the resource's URL.  The result is stored in
// result, which must be of pointer type.
func (r *resource) GetFrom(template string, vars map[string]interface{}, out interface{}) (err error) {
	url, err := r.Template(template, vars)
	if err == nil {
		err = r.Do(http.MethodGet, url, nil, out)
	}
	return err
}

// PutTo updates a resource at some other URL.  The server response is
// stored in out, which must be of pointer type.
func (r *resource) PutTo(template string, vars map[string]interface{}, in, out interface{}) (err error) {
	url, err := r.Template(template, vars)
	if err == nil {
		err = r.Do(http.MethodPut, url, in, out)
	}
	return err
}

// PostTo submits data to a service at some other URL.  The server
// response is stored in out, which must be of pointer type.
func (r *resource) PostTo(template string, vars map[string]interface{}, in, out interface{}) error {
	url, err := r.Template(template, vars)
	if err == nil {
		err = r.Do(http.MethodPost, url, in, out)
	}
	return err
}

// DeleteAt deletes the resource at some other URL.
func (r *resource) DeleteAt(template string, vars map[string]interface{}) error {
	url, err := r.Template(template, vars)
	if err == nil {
		err = r.Do(http.MethodDelete, url, nil, nil)
	}
	return err
}

// ErrorHTTP is a catch-all error for non-successes returned from the
// REST endpoint.
type ErrorHTTP struct {
	// Response holds a pointer to the failing HTTP response.
	Response *http.Response

	// Body holds the contents of the message body, presumed to
	// be text.
	Body string

	// Decoded holds the server's error report, if the body was
	// one.
	Decoded *restdata.ErrorResponse
}

func (e ErrorHTTP) Error() string {
	if e.Decoded != nil {
		return e.Decoded.Message
	}
	return e.Response.Status
}

// checkHTTPStatus examines an HTTP response and returns an error if
// it is not successful.
func checkHTTPStatus(resp *http.Response) error {
	if len(resp.Status) > 0 && resp.Status[0] == '2' {
		return nil
	}

	// Always collect the entire body; we will need it as a fallback
	// and can only parse it once.
	var body []byte
	var err error
	if resp.Body != nil {
		body, err = ioutil.ReadAll(resp.Body)
		if err != nil {
			return err
		}
	}

	// Take a shot at decoding it as a better error
	result := ErrorHTTP{Response: resp, Body: string(body)}
	var errResp restdata.ErrorResponse
	contentType := resp.Header.Get("Content-Type")
	if restdata.Decode(contentType, bytes.NewReader(body), &errResp) == nil {
		result.Decoded = &errResp
	}
	return result
}

// recordError converts a server error about the record resource/id
// into the matching todoapi error.  Other errors pass through.
func recordError(err error, resource string, id int) error {
	if e, isHTTP := err.(ErrorHTTP); isHTTP && e.Decoded != nil {
		return e.Decoded.ToError(e.Response.StatusCode, resource, id)
	}
	return err
}

func firstError(e1, e2 error) error {
	if e1 != nil {
		return e1
	}
	return e2
}
