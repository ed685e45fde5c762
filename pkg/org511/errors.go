package org511

import "fmt"

// RequestError is returned when 511.org could not be reached or answered with a non-2xx status
type RequestError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Err        error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("511.org %s request to %s failed: %v", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("511.org %s request to %s failed: %s", e.Method, e.URL, e.Status)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// ParseError is returned when 511.org answered 2xx but the body was not the expected JSON
type ParseError struct {
	Method string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing 511.org %s response: %v", e.Method, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
