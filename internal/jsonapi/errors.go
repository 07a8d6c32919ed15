package jsonapi

import (
	"net/http"
	"strconv"
)

// Error is error object
type Error struct {
	Status string       `json:"status"`
	Title  string       `json:"title"`
	Detail string       `json:"detail,omitempty"`
	Source *ErrorSource `json:"source,omitempty"`
}

// ErrorSource points to the part of request which caused error
type ErrorSource struct {
	Parameter string `json:"parameter,omitempty"`
}

// ErrorDocument is top-level document with errors
type ErrorDocument struct {
	Errors []Error `json:"errors"`
}

// NewError builds error object for http status code
func NewError(status int, detail string) Error {
	return Error{
		Status: strconv.Itoa(status),
		Title:  http.StatusText(status),
		Detail: detail,
	}
}

// NewParameterError builds error object pointing to invalid query or path parameter
func NewParameterError(status int, param, detail string) Error {
	e := NewError(status, detail)
	e.Source = &ErrorSource{Parameter: param}
	return e
}

// Errors builds error document
func Errors(errs ...Error) *ErrorDocument {
	if errs == nil {
		errs = make([]Error, 0)
	}
	return &ErrorDocument{Errors: errs}
}
