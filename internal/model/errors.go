package model

import (
	"fmt"
	"strings"
)

// Shape identifies the envelope shapes recognized by the unwrapper.
type Shape string

const (
	ShapeSOAP    Shape = "soap"
	ShapeBatch   Shape = "batch"
	ShapeSingle  Shape = "single"
	ShapeUnknown Shape = "unknown"
)

// UnwrapError reports an envelope that matched no shape or matched one
// with a required child missing.
type UnwrapError struct {
	Shape   Shape
	Message string
	// Keys lists the top-level element names seen, for diagnostics.
	Keys []string
}

func (e *UnwrapError) Error() string {
	if len(e.Keys) > 0 {
		return fmt.Sprintf("malformed envelope [%s]: %s (root keys: %s)", e.Shape, e.Message, strings.Join(e.Keys, ", "))
	}
	return fmt.Sprintf("malformed envelope [%s]: %s", e.Shape, e.Message)
}

// NewUnwrapError creates a new unwrap error.
func NewUnwrapError(shape Shape, message string, keys []string) *UnwrapError {
	return &UnwrapError{Shape: shape, Message: message, Keys: keys}
}

// QRError reports a rejected or empty QR payload. The renderer recovers
// from it by leaving the QR area empty.
type QRError struct {
	Message string
	Cause   error
}

func (e *QRError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("qr encode: %s (%v)", e.Message, e.Cause)
	}
	return "qr encode: " + e.Message
}

func (e *QRError) Unwrap() error {
	return e.Cause
}

// NewQRError creates a new QR encoding error.
func NewQRError(message string, cause error) *QRError {
	return &QRError{Message: message, Cause: cause}
}

// RenderFailure is the uniform failure contract returned to the boundary
// layer: every internal error is converted to this shape rather than
// propagated as-is. Code is always 0.
type RenderFailure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RenderFailure) Error() string {
	return e.Message
}

// NewRenderFailure creates the {code:0, message} failure object.
func NewRenderFailure(message string) *RenderFailure {
	return &RenderFailure{Code: 0, Message: message}
}

// AsRenderFailure converts any error to the uniform failure shape,
// passing an existing RenderFailure through untouched.
func AsRenderFailure(err error) *RenderFailure {
	if err == nil {
		return nil
	}
	if f, ok := err.(*RenderFailure); ok {
		return f
	}
	return NewRenderFailure(err.Error())
}
