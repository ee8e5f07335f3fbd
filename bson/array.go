// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bson

import (
	"strconv"

	"github.com/10gen/mongolite/bson/bsoncore"
	"github.com/10gen/mongolite/bson/bsontype"
)

// Arr represents an array in BSON.
type Arr []Val

// ReadArr will create an Arr using the provided slice of bytes. The layout on the wire is the same
// as a document; the values are yielded in order and the numeric keys are ignored. If the slice of
// bytes is not a valid BSON array, this method will return an error.
func ReadArr(b []byte) (Arr, error) {
	arr := make(Arr, 0)
	err := arr.UnmarshalBSONValue(bsontype.Array, b)
	if err != nil {
		return nil, err
	}
	return arr, nil
}

// Copy makes a shallow copy of this array.
func (a Arr) Copy() Arr {
	a2 := make(Arr, len(a))
	copy(a2, a)
	return a2
}

// Equal compares this array to another, returning true if they are equal.
func (a Arr) Equal(a2 Arr) bool {
	if len(a) != len(a2) {
		return false
	}
	for idx := range a {
		if !a[idx].Equal(a2[idx]) {
			return false
		}
	}
	return true
}

// lookupTraverse descends into the value at index using the remaining keys. The returned
// KeyNotFound depth counts from the array itself, the callers above adjust it.
func (a Arr) lookupTraverse(index uint, keys ...string) (Elem, error) {
	if index >= uint(len(a)) {
		return Elem{}, KeyNotFound{}
	}

	val := a[index]
	if len(keys) == 0 {
		return Elem{Key: strconv.Itoa(int(index)), Value: val}, nil
	}

	var elem Elem
	var err error
	switch val.Type() {
	case bsontype.EmbeddedDocument:
		elem, err = val.Document().LookupElementErr(keys...)
	case bsontype.Array:
		var idx uint64
		idx, err = strconv.ParseUint(keys[0], 10, 0)
		if err != nil {
			err = KeyNotFound{}
			break
		}
		elem, err = val.Array().lookupTraverse(uint(idx), keys[1:]...)
	default:
		err = KeyNotFound{Type: val.Type()}
	}

	switch tt := err.(type) {
	case KeyNotFound:
		tt.Depth++
		return Elem{}, tt
	case nil:
		return elem, nil
	default:
		return Elem{}, err
	}
}

// String implements the fmt.Stringer interface. The output is extended JSON when the array can be
// encoded and empty otherwise.
func (a Arr) String() string {
	_, data, err := a.MarshalBSONValue()
	if err != nil {
		return ""
	}
	return bsoncore.Array(data).String()
}
