// Package zlog writes rop results to zerolog. It works on rop.View, so the
// caller does not need to know the value type.
package zlog

import (
	"github.com/rs/zerolog"

	"github.com/ib-77/erroror/pkg/rop"
)

type options struct {
	errorLevel zerolog.Level
	valueLevel zerolog.Level
}

// Option configures Log and ElseDo.
type Option func(*options)

// WithErrorLevel sets the level used for error results. Defaults to Warn.
func WithErrorLevel(level zerolog.Level) Option {
	return func(o *options) {
		o.errorLevel = level
	}
}

// WithValueLevel sets the level used for value results. Defaults to Debug.
func WithValueLevel(level zerolog.Level) Option {
	return func(o *options) {
		o.valueLevel = level
	}
}

func newOptions(opts []Option) options {
	o := options{
		errorLevel: zerolog.WarnLevel,
		valueLevel: zerolog.DebugLevel,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type errorObject rop.Error

func (o errorObject) MarshalZerologObject(e *zerolog.Event) {
	err := rop.Error(o)
	e.Str("code", err.Code()).
		Str("description", err.Description()).
		Str("kind", err.Kind().String()).
		Int("numeric_kind", err.NumericKind())
	if md := err.Metadata(); md != nil {
		e.Interface("metadata", md)
	}
}

type errorArray []rop.Error

func (a errorArray) MarshalZerologArray(arr *zerolog.Array) {
	for _, err := range a {
		arr.Object(errorObject(err))
	}
}

// Event adds the state of view to e: "is_error" and either "errors" or
// "value".
func Event(e *zerolog.Event, view rop.View) *zerolog.Event {
	if errs, ok := view.Errors(); ok {
		return errorsEvent(e, errs)
	}
	return e.Bool("is_error", false).Interface("value", view.ValueAsAny())
}

func errorsEvent(e *zerolog.Event, errs []rop.Error) *zerolog.Event {
	return e.Bool("is_error", true).Array("errors", errorArray(errs))
}

// Log writes view with msg, at the error level for error results and the
// value level otherwise.
func Log(logger zerolog.Logger, view rop.View, msg string, opts ...Option) {
	o := newOptions(opts)

	level := o.valueLevel
	if view.IsError() {
		level = o.errorLevel
	}
	Event(logger.WithLevel(level), view).Msg(msg)
}

// ElseDo returns a callback for solo.ElseDo that logs the errors with msg.
func ElseDo(logger zerolog.Logger, msg string, opts ...Option) func(errs []rop.Error) {
	o := newOptions(opts)

	return func(errs []rop.Error) {
		errorsEvent(logger.WithLevel(o.errorLevel), errs).Msg(msg)
	}
}
