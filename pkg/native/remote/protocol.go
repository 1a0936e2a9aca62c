package remote

import (
	"errors"

	"github.com/mandelsoft/drivebind/pkg/native"
)

const (
	OP_LOOKUP     = "lookup"
	OP_ROOTS      = "roots"
	OP_FIELD      = "field"
	OP_OBJECT     = "object"
	OP_COLLECTION = "collection"
	OP_ISA        = "isa"
	OP_LINEAGE    = "lineage"
)

const (
	CODE_NOT_FOUND      = "not_found"
	CODE_INVALID_HANDLE = "invalid_handle"
	CODE_UNKNOWN_FIELD  = "unknown_field"
)

// Request is a single call on a native object.
type Request struct {
	Op   string `json:"op"`
	Id   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// Ref describes a native object.
type Ref struct {
	Id   string `json:"id"`
	Type string `json:"type"`
}

// Response is the answer to a Request. Null values are indicated by
// a missing Value, Ref or Refs.
type Response struct {
	Value   any      `json:"value,omitempty"`
	Ref     *Ref     `json:"ref,omitempty"`
	Refs    []*Ref   `json:"refs"`
	Bool    bool     `json:"bool,omitempty"`
	Lineage []string `json:"lineage,omitempty"`

	Error string `json:"error,omitempty"`
	Code  string `json:"code,omitempty"`
}

var codes = map[string]error{
	CODE_NOT_FOUND:      native.ErrNotFound,
	CODE_INVALID_HANDLE: native.ErrInvalidHandle,
	CODE_UNKNOWN_FIELD:  native.ErrUnknownField,
}

func errorCode(err error) string {
	for c, e := range codes {
		if errors.Is(err, e) {
			return c
		}
	}
	return ""
}

// Error is a fault reported by the remote runtime.
type Error struct {
	Message string
	Code    string
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap maps well-known codes back to the native sentinel errors.
func (e *Error) Unwrap() error {
	return codes[e.Code]
}
