// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"io"
	"mime"

	"github.com/ugorji/go/codec"
)

// CheckContentType verifies that a Content-Type: header names JSON.
// An empty header is accepted as JSON, since plenty of clients send
// a JSON body without declaring it.
func CheckContentType(contentType string) error {
	if contentType == "" {
		return nil
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ErrBadRequest{Err: err}
	}
	switch mediaType {
	case "text/json", "application/json":
		return nil
	}
	return ErrUnsupportedMediaType{Type: mediaType}
}

// Decode tries to decode a restdata object from a reader, such as an
// HTTP response.  out must be a pointer type.
func Decode(contentType string, r io.Reader, out interface{}) error {
	if err := CheckContentType(contentType); err != nil {
		return err
	}
	json := &codec.JsonHandle{}
	decoder := codec.NewDecoder(r, json)
	return decoder.Decode(out)
}

// Encode writes a JSON representation of in to w.
func Encode(w io.Writer, in interface{}) error {
	json := &codec.JsonHandle{}
	encoder := codec.NewEncoder(w, json)
	return encoder.Encode(in)
}
