package rop

import (
	"encoding/json"
	"hash/fnv"
	"maps"
	"reflect"
	"slices"
	"strconv"
)

// Error is one classified error occurrence. It is immutable: every accessor
// returns a copy of mutable state.
type Error struct {
	code        string
	description string
	kind        Kind
	numericKind int
	metadata    map[string]any
}

// ErrorOption overrides a default of an Error constructor.
type ErrorOption func(*Error)

// WithCode sets the error code.
func WithCode(code string) ErrorOption {
	return func(e *Error) {
		e.code = code
	}
}

// WithDescription sets the human-readable description.
func WithDescription(description string) ErrorOption {
	return func(e *Error) {
		e.description = description
	}
}

// WithMetadata attaches metadata. The map is copied; an empty map leaves the
// error without metadata.
func WithMetadata(metadata map[string]any) ErrorOption {
	return func(e *Error) {
		if len(metadata) == 0 {
			e.metadata = nil
			return
		}
		e.metadata = maps.Clone(metadata)
	}
}

func newError(kind Kind, opts []ErrorOption) Error {
	d := defaults[kind]
	e := Error{
		code:        d.code,
		description: d.description,
		kind:        kind,
		numericKind: int(kind),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Failure creates an error of kind KindFailure.
func Failure(opts ...ErrorOption) Error { return newError(KindFailure, opts) }

// Unexpected creates an error of kind KindUnexpected.
func Unexpected(opts ...ErrorOption) Error { return newError(KindUnexpected, opts) }

// Validation creates an error of kind KindValidation.
func Validation(opts ...ErrorOption) Error { return newError(KindValidation, opts) }

// Conflict creates an error of kind KindConflict.
func Conflict(opts ...ErrorOption) Error { return newError(KindConflict, opts) }

// NotFound creates an error of kind KindNotFound.
func NotFound(opts ...ErrorOption) Error { return newError(KindNotFound, opts) }

// Unauthorized creates an error of kind KindUnauthorized.
func Unauthorized(opts ...ErrorOption) Error { return newError(KindUnauthorized, opts) }

// Forbidden creates an error of kind KindForbidden.
func Forbidden(opts ...ErrorOption) Error { return newError(KindForbidden, opts) }

// Custom creates a domain-specific error with the numeric discriminator kind.
// opts apply after code and description, so WithMetadata is the usual one.
func Custom(kind int, code, description string, opts ...ErrorOption) Error {
	e := Error{
		code:        code,
		description: description,
		kind:        KindCustom,
		numericKind: kind,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func (e Error) Code() string        { return e.code }
func (e Error) Description() string { return e.description }
func (e Error) Kind() Kind          { return e.kind }

// NumericKind returns the ordinal of a built-in kind or the discriminator of
// a custom one.
func (e Error) NumericKind() int { return e.numericKind }

// Metadata returns a copy of the metadata, or nil when none was attached.
func (e Error) Metadata() map[string]any {
	return maps.Clone(e.metadata)
}

// Error implements the error interface.
func (e Error) Error() string {
	return e.code + ": " + e.description
}

// Equal reports whether e and other have the same code, description, kind and
// metadata. Metadata values are compared with reflect.DeepEqual.
func (e Error) Equal(other Error) bool {
	if e.code != other.code || e.description != other.description ||
		e.kind != other.kind || e.numericKind != other.numericKind {
		return false
	}
	if len(e.metadata) != len(other.metadata) {
		return false
	}
	for k, v := range e.metadata {
		ov, ok := other.metadata[k]
		if !ok || !reflect.DeepEqual(v, ov) {
			return false
		}
	}
	return true
}

// Is lets errors.Is match a wrapped Error by value.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && e.Equal(t)
}

// Hash returns a hash consistent with Equal. Metadata contributes its keys
// only.
func (e Error) Hash() uint64 {
	h := fnv.New64a()
	write := func(s string) {
		_, _ = h.Write([]byte(s))
		_, _ = h.Write([]byte{0})
	}
	write(e.code)
	write(e.description)
	write(strconv.Itoa(int(e.kind)))
	write(strconv.Itoa(e.numericKind))
	for _, k := range slices.Sorted(maps.Keys(e.metadata)) {
		write(k)
	}
	return h.Sum64()
}

type errorJSON struct {
	Code        string         `json:"code"`
	Description string         `json:"description"`
	Kind        string         `json:"kind"`
	NumericKind int            `json:"numericKind"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (e Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(errorJSON{
		Code:        e.code,
		Description: e.description,
		Kind:        e.kind.String(),
		NumericKind: e.numericKind,
		Metadata:    e.metadata,
	})
}
