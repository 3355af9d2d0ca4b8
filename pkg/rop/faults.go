package rop

import "errors"

// Sentinels carried by the panics raised on contract violations. A recovered
// value can be matched with errors.Is.
var (
	ErrNilArgument   = errors.New("value cannot be nil")
	ErrEmptyArgument = errors.New("value cannot be empty")
	ErrInvalidState  = errors.New("invalid result state")
)

// ArgumentError is raised (as a panic value) when a collection argument is
// nil or empty.
type ArgumentError struct {
	Param   string
	Message string
	err     error
}

func (e *ArgumentError) Error() string {
	return e.Message + " (parameter '" + e.Param + "')"
}

func (e *ArgumentError) Unwrap() error {
	return e.err
}

// NewNilArgumentError returns the fault raised for a nil argument.
func NewNilArgumentError(param string) *ArgumentError {
	return &ArgumentError{Param: param, Message: ErrNilArgument.Error(), err: ErrNilArgument}
}

// NewEmptyArgumentError returns the fault raised for an empty argument.
func NewEmptyArgumentError(param, message string) *ArgumentError {
	return &ArgumentError{Param: param, Message: message, err: ErrEmptyArgument}
}

// StateError is raised (as a panic value) when the absent side of a Result is
// read.
type StateError struct {
	Message string
}

func (e *StateError) Error() string {
	return e.Message
}

func (e *StateError) Unwrap() error {
	return ErrInvalidState
}

func validateErrors(errs []Error, param, emptyMessage string) {
	if errs == nil {
		panic(NewNilArgumentError(param))
	}
	if len(errs) == 0 {
		panic(NewEmptyArgumentError(param, emptyMessage))
	}
}
