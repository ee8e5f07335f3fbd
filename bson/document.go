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

// Doc is a type safe, concise BSON document representation. Elements retain their insertion order;
// the builder methods keep keys unique, Append trusts the caller.
type Doc []Elem

// ReadDoc will create a Doc using the provided slice of bytes. If the
// slice of bytes is not a valid BSON document, this method will return an error.
func ReadDoc(b []byte) (Doc, error) {
	doc := make(Doc, 0)
	err := doc.UnmarshalBSON(b)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Copy makes a shallow copy of this document.
func (d Doc) Copy() Doc {
	d2 := make(Doc, len(d))
	copy(d2, d)
	return d2
}

// Append adds an element to the end of the document, creating it from the key and value provided.
func (d Doc) Append(key string, val Val) Doc {
	return append(d, Elem{Key: key, Value: val})
}

// Prepend adds an element to the beginning of the document, creating it from the key and value
// provided.
func (d Doc) Prepend(key string, val Val) Doc {
	return append(Doc{{Key: key, Value: val}}, d...)
}

// Set replaces an element of a document. If an element with a matching key is found, the element
// will be replaced with the one provided. If the document does not have an element with that key,
// the element is appended to the document instead.
func (d Doc) Set(key string, val Val) Doc {
	idx := d.IndexOf(key)
	if idx == -1 {
		return append(d, Elem{Key: key, Value: val})
	}
	d[idx] = Elem{Key: key, Value: val}
	return d
}

// IndexOf returns the index of the first element with a matching key. If no element with a matching
// key is found, -1 is returned.
func (d Doc) IndexOf(key string) int {
	for i, e := range d {
		if e.Key == key {
			return i
		}
	}
	return -1
}

// Delete removes the element with key if it exists and returns the updated Doc.
func (d Doc) Delete(key string) Doc {
	idx := d.IndexOf(key)
	if idx == -1 {
		return d
	}
	return append(d[:idx], d[idx+1:]...)
}

// Lookup searches the document and potentially subdocuments or arrays for the
// provided key. Each key provided to this method represents a layer of depth.
//
// This method will return an empty Value if they key does not exist. To know if they key actually
// exists, use LookupErr.
func (d Doc) Lookup(key ...string) Val {
	val, _ := d.LookupErr(key...)
	return val
}

// LookupErr searches the document and potentially subdocuments or arrays for the
// provided key. Each key provided to this method represents a layer of depth.
func (d Doc) LookupErr(key ...string) (Val, error) {
	elem, err := d.LookupElementErr(key...)
	return elem.Value, err
}

// LookupElement searches the document and potentially subdocuments or arrays for the
// provided key. Each key provided to this method represents a layer of depth.
//
// This method will return an empty Element if they key does not exist. To know if they key actually
// exists, use LookupElementErr.
func (d Doc) LookupElement(key ...string) Elem {
	elem, _ := d.LookupElementErr(key...)
	return elem
}

// LookupElementErr searches the document and potentially subdocuments or arrays for the
// provided key. Each key provided to this method represents a layer of depth.
func (d Doc) LookupElementErr(key ...string) (Elem, error) {
	// KeyNotFound operates by being created where the error happens and then the depth is
	// incremented by 1 as each function unwinds. Whenever this function returns, it also assigns
	// the Key slice to the key slice it has. This ensures that the proper depth is identified and
	// the proper keys.
	if len(key) == 0 {
		return Elem{}, KeyNotFound{Key: key}
	}

	var elem Elem
	var err error
	idx := d.IndexOf(key[0])
	if idx == -1 {
		return Elem{}, KeyNotFound{Key: key}
	}

	elem = d[idx]
	if len(key) == 1 {
		return elem, nil
	}

	switch elem.Value.Type() {
	case bsontype.EmbeddedDocument:
		elem, err = elem.Value.Document().LookupElementErr(key[1:]...)
	case bsontype.Array:
		var index uint64
		index, err = strconv.ParseUint(key[1], 10, 0)
		if err != nil {
			err = KeyNotFound{Key: key}
			break
		}
		elem, err = elem.Value.Array().lookupTraverse(uint(index), key[2:]...)
	default:
		err = KeyNotFound{Type: elem.Value.Type()}
	}

	switch tt := err.(type) {
	case KeyNotFound:
		tt.Depth++
		tt.Key = key
		return Elem{}, tt
	case nil:
		return elem, nil
	default:
		return Elem{}, err
	}
}

// Equal compares this document to another, returning true if they are equal. Two documents are
// equal if and only if they hold the same keys in the same order with equal values.
func (d Doc) Equal(d2 Doc) bool {
	if len(d) != len(d2) {
		return false
	}
	for idx := range d {
		if !d[idx].Equal(d2[idx]) {
			return false
		}
	}
	return true
}

// String implements the fmt.Stringer interface. The output is extended JSON when the document can
// be encoded and empty otherwise.
func (d Doc) String() string {
	b, err := d.MarshalBSON()
	if err != nil {
		return ""
	}
	return bsoncore.Document(b).String()
}
