// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsoncore

import (
	"bytes"
	"fmt"

	"github.com/10gen/mongolite/bson/bsontype"
	"github.com/go-stack/stack"
)

// InsufficientBytesError indicates that there were not enough bytes to read the next
// component of a BSON value or document.
type InsufficientBytesError struct {
	Source    []byte
	Remaining []byte
	Stack     stack.CallStack
}

// NewInsufficientBytesError creates a new InsufficientBytesError with the given Source,
// Remaining, and the current stack.
func NewInsufficientBytesError(src, rem []byte) InsufficientBytesError {
	return InsufficientBytesError{Source: src, Remaining: rem, Stack: stack.Trace().TrimRuntime()}
}

// Error implements the error interface.
func (ibe InsufficientBytesError) Error() string {
	return "too few bytes to read next component"
}

// ErrorStack returns a string representing the stack at the point where the error occurred.
func (ibe InsufficientBytesError) ErrorStack() string {
	s := bytes.NewBufferString("too few bytes to read next component: [")

	for i, call := range ibe.Stack {
		if i != 0 {
			s.WriteString(", ")
		}

		// go vet doesn't like %k even though it's part of stack's API, so we move the format
		// string so it doesn't complain. (We also can't make it a constant, or go vet still
		// complains.)
		callFormat := "%k.%n %v"

		s.WriteString(fmt.Sprintf(callFormat, call, call, call))
	}

	s.WriteRune(']')

	return s.String()
}

// Equal checks that err2 also is an InsufficientBytesError. The stacks are ignored.
func (ibe InsufficientBytesError) Equal(err2 error) bool {
	switch err2.(type) {
	case InsufficientBytesError:
		return true
	default:
		return false
	}
}

// InvalidDepthTraversalError is returned when attempting a recursive Lookup when one component of
// the path is neither an embedded document nor an array.
type InvalidDepthTraversalError struct {
	Key  string
	Type bsontype.Type
}

// Error implements the error interface.
func (idte InvalidDepthTraversalError) Error() string {
	return fmt.Sprintf(
		"attempt to traverse into %s, but it's type is %s, not %s nor %s",
		idte.Key, idte.Type, bsontype.EmbeddedDocument, bsontype.Array,
	)
}

// ErrElementNotFound indicates that an Element matching a certain condition does not exist.
var ErrElementNotFound = MalformedElementError("element not found")

// ErrOutOfBounds indicates that an index provided to access something was invalid.
var ErrOutOfBounds = MalformedElementError("out of bounds")

// MalformedElementError represents a class of errors returned when decoding an invalid element.
type MalformedElementError string

// Error implements the error interface.
func (mee MalformedElementError) Error() string { return string(mee) }

// ErrElementMissingKey is returned when an element is missing a key.
const ErrElementMissingKey MalformedElementError = "element is missing key"

// ErrElementMissingType is returned when an element is missing a type.
const ErrElementMissingType MalformedElementError = "element is missing type"

// ErrMissingNull is returned when a document or array's last byte is not null.
const ErrMissingNull MalformedElementError = "document or array end is missing null byte"

// ErrInvalidLength indicates that a length in a binary representation of a BSON document is
// invalid.
const ErrInvalidLength MalformedElementError = "document length is invalid"

// ErrNilReader indicates that an operation was attempted on a nil io.Reader.
var ErrNilReader = MalformedElementError("nil reader")

// ValidationError is an error type returned when attempting to validate a document or array.
type ValidationError string

// Error implements the error interface.
func (ve ValidationError) Error() string { return string(ve) }

// NewDocumentLengthError creates and returns an error for when the length of a document exceeds
// the bytes available.
func NewDocumentLengthError(length, rem int) error {
	return lengthError("document", length, rem)
}

// NewArrayLengthError creates and returns an error for when the length of an array exceeds the
// bytes available.
func NewArrayLengthError(length, rem int) error {
	return lengthError("array", length, rem)
}

func lengthError(bufferType string, length, rem int) error {
	return ValidationError(fmt.Sprintf("%v length exceeds available bytes. length=%d remainingBytes=%d",
		bufferType, length, rem))
}

// InvalidTypeError is returned when a document contains an element with a type byte that is not
// part of the BSON specification.
type InvalidTypeError struct {
	Type bsontype.Type
}

// Error implements the error interface.
func (ite InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid BSON type %#02x", byte(ite.Type))
}

// ElementTypeError specifies that a method to obtain a BSON value an incorrect type was called on
// a bsoncore.Value.
type ElementTypeError struct {
	Method string
	Type   bsontype.Type
}

// Error implements the error interface.
func (ete ElementTypeError) Error() string {
	return "Call of " + ete.Method + " on " + ete.Type.String() + " type"
}
