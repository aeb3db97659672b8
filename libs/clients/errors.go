package clients

import (
	"errors"
	"fmt"

	errorutils "github.com/pixpay/pacs008-client/libs/errors"
)

var (
	// ErrUnableToDecode unable to decode body
	ErrUnableToDecode = "unable to decode response"
	// ErrProtocolError the error was within the data that went into the endpoint
	ErrProtocolError = "protocol error"
	// ErrUnableToEscapeURL the url could nto be escaped
	ErrUnableToEscapeURL = "unable to escape url"
	// ErrInvalidHost the host was invalid
	ErrInvalidHost = "invalid host"
	// ErrMalformedRequest the request was malformed
	ErrMalformedRequest = "malformed request"
	// ErrUnableToEncodeBody body could not be encoded
	ErrUnableToEncodeBody = "unable to encode body"
)

// HTTPState captures the state of the response to be read by lower fns in the stack
type HTTPState struct {
	Status int
	Path   string
	Body   interface{}
}

// ResponseBody returns the textual response body carried by the state, if any
func (hs HTTPState) ResponseBody() string {
	switch b := hs.Body.(type) {
	case RespErrData:
		if s, ok := b.Body.(string); ok {
			return s
		}
	case string:
		return b
	}
	return ""
}

// NewHTTPError creates a new errors.ErrorBundle with an HTTPState wrapping the status, path and v.
func NewHTTPError(err error, path, message string, status int, v interface{}) error {
	return errorutils.New(err, message, HTTPState{
		Status: status,
		Path:   path,
		Body:   v,
	})
}

// UnwrapHTTPState finds the HTTPState carried anywhere in the error chain
func UnwrapHTTPState(err error) (*HTTPState, error) {
	var eb *errorutils.ErrorBundle
	if errors.As(err, &eb) {
		if httpState, ok := eb.Data().(HTTPState); ok {
			return &httpState, nil
		}
	}
	return nil, fmt.Errorf("error unwrapping http state for error %w", err)
}

// FromResponse reports whether the state was captured from a server response
func (hs HTTPState) FromResponse() bool {
	_, ok := hs.Body.(RespErrData)
	return ok
}
