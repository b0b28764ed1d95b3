package erroror

import (
	"maps"
	"reflect"
)

// Error describes one expected failure: a stable machine-readable code,
// a human-readable description, and a Kind for category mapping.
// Metadata is an optional diagnostic side channel, absent by default.
// Errors are immutable once constructed; the With* builders return
// modified copies.
type Error struct {
	kind        Kind
	code        string
	description string
	metadata    map[string]any
}

// Custom constructs an Error with an explicit kind, including numeric
// tags outside the fixed set. No validation is performed on code or
// description; the type stores and classifies, nothing more.
func Custom(kind Kind, code, description string) Error {
	return Error{
		kind:        kind,
		code:        code,
		description: description,
	}
}

// Failure constructs a general failure error.
func Failure(code, description string) Error {
	return Custom(KindFailure, code, description)
}

// Unexpected constructs an error for anticipated-but-unexpected faults.
func Unexpected(code, description string) Error {
	return Custom(KindUnexpected, code, description)
}

// Validation constructs a validation error.
func Validation(code, description string) Error {
	return Custom(KindValidation, code, description)
}

// Conflict constructs a conflict error.
func Conflict(code, description string) Error {
	return Custom(KindConflict, code, description)
}

// NotFound constructs a not-found error.
func NotFound(code, description string) Error {
	return Custom(KindNotFound, code, description)
}

// Unauthorized constructs an unauthorized error.
func Unauthorized(code, description string) Error {
	return Custom(KindUnauthorized, code, description)
}

// Forbidden constructs a forbidden error.
func Forbidden(code, description string) Error {
	return Custom(KindForbidden, code, description)
}

func (e Error) Kind() Kind {
	return e.kind
}

func (e Error) Code() string {
	return e.code
}

func (e Error) Description() string {
	return e.description
}

// Metadata returns a copy of the diagnostic metadata, or nil when none
// was attached. Never exposes the internal map.
func (e Error) Metadata() map[string]any {
	return maps.Clone(e.metadata)
}

// WithMetadata returns a copy of the error carrying a copy of md. The
// receiver is unchanged.
func (e Error) WithMetadata(md map[string]any) Error {
	return Error{
		kind:        e.kind,
		code:        e.code,
		description: e.description,
		metadata:    maps.Clone(md),
	}
}

// Error implements the error interface so failures plug into logging
// and wrapping without conversion.
func (e Error) Error() string {
	if e.code == "" {
		return e.description
	}
	if e.description == "" {
		return e.code
	}

	return e.code + ": " + e.description
}

// Equal reports structural equality: two errors are equal iff kind,
// code, description, and metadata all match. Metadata values are
// compared deeply since they may be of any type.
func (e Error) Equal(other Error) bool {
	if e.kind != other.kind || e.code != other.code || e.description != other.description {
		return false
	}
	if len(e.metadata) != len(other.metadata) {
		return false
	}
	for key, value := range e.metadata {
		otherValue, ok := other.metadata[key]
		if !ok || !reflect.DeepEqual(value, otherValue) {
			return false
		}
	}

	return true
}
