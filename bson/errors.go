// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bson

import (
	"errors"
	"fmt"

	"github.com/10gen/mongolite/bson/bsontype"
)

// ErrNilDocument indicates that an operation was attempted on a nil *bson.Doc.
var ErrNilDocument = errors.New("document is nil")

// ErrNilArray indicates that an operation was attempted on a nil *bson.Arr.
var ErrNilArray = errors.New("array is nil")

// KeyNotFound is an error type returned from the Lookup methods on Doc. This type contains
// information about which key was not found and if it was actually not found or if a component of
// the key except the last was not a document nor array.
type KeyNotFound struct {
	Key   []string      // The keys that were searched for.
	Depth uint          // Which key either was not found or was an incorrect type.
	Type  bsontype.Type // The type of the key that was found but was an incorrect type.
}

func (knf KeyNotFound) Error() string {
	depth := knf.Depth
	if depth >= uint(len(knf.Key)) {
		depth = uint(len(knf.Key)) - 1
	}

	if len(knf.Key) == 0 {
		return "no keys were provided for lookup"
	}

	if knf.Type != bsontype.Type(0) {
		return fmt.Sprintf(`key "%s" was found but was not valid to traverse BSON type %s`, knf.Key[depth], knf.Type)
	}

	return fmt.Sprintf(`key "%s" was not found`, knf.Key[depth])
}

// ElementTypeError specifies that a method to obtain a BSON value an incorrect type was called on a
// bson.Val.
type ElementTypeError struct {
	Method string
	Type   bsontype.Type
}

// Error implements the error interface.
func (ete ElementTypeError) Error() string {
	return "Call of " + ete.Method + " on " + ete.Type.String() + " type"
}

// UnsupportedValueError is returned when a Val cannot be represented as a BSON element value. The
// zero Val and any Val whose type falls outside the supported set fail this way.
type UnsupportedValueError struct {
	Type bsontype.Type
}

// Error implements the error interface.
func (uve UnsupportedValueError) Error() string {
	return fmt.Sprintf("Unsupported value type %s", uve.Type)
}
