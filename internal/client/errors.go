package client

import (
	"errors"
	"fmt"
)

// The failure classes a submission can end in. Classification is always
// structural (status code, decode failure, missing config), never by
// matching message text.

// ConfigError means the page is miswired: no endpoint for the section, or
// no anti-forgery token anywhere on the page. No request is attempted.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string { return e.Message }

// AppError is a response that arrived and parsed but carried
// success:false. FieldErrors, when present, maps field names to the
// server's messages so they can be rendered next to their inputs.
type AppError struct {
	Message     string
	FieldErrors map[string][]string
}

func (e *AppError) Error() string {
	if e.Message == "" {
		return "request rejected"
	}
	return e.Message
}

// StatusError is a non-2xx response. Message is the server's JSON error
// message when one could be parsed, otherwise a generic line for the code.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server error %d", e.Code)
}

// TransportError is a request that produced no interpretable response: the
// connection failed or the body was not JSON.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "request failed: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// statusMessage picks the user-facing wording for a failed application
// submission by status range.
func statusMessage(code int) string {
	switch {
	case code == 404:
		return "This job is no longer available."
	case code == 403:
		return "You are not allowed to apply to this job."
	case code >= 500:
		return "The server hit an internal error. Please try again later."
	}
	return fmt.Sprintf("server error %d", code)
}

// IsLocal reports whether the error was raised before any request was sent.
func IsLocal(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
