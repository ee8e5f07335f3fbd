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

// Marshaler is an interface implemented by types that can marshal themselves into a BSON document
// represented as bytes. The bytes returned must be a valid BSON document if the error is nil.
type Marshaler interface {
	MarshalBSON() ([]byte, error)
}

// ValueMarshaler is an interface implemented by types that can marshal themselves into a BSON
// value as bytes. The type must be the valid type for the bytes returned. The bytes and byte type
// together must be valid if the error is nil.
type ValueMarshaler interface {
	MarshalBSONValue() (bsontype.Type, []byte, error)
}

// Marshal converts the document into its BSON wire representation. The elements are written in
// insertion order with a single length back-patch per container.
func Marshal(d Doc) ([]byte, error) { return d.MarshalBSON() }

// MarshalBSON implements the Marshaler interface.
func (d Doc) MarshalBSON() ([]byte, error) { return d.AppendMarshalBSON(nil) }

// AppendMarshalBSON marshals Doc to BSON bytes, appending to dst.
//
// This method will never return an error for a valid Doc. A Val outside the supported set fails
// with UnsupportedValueError and dst is returned unextended.
func (d Doc) AppendMarshalBSON(dst []byte) ([]byte, error) {
	idx, out := bsoncore.AppendDocumentStart(dst)
	var err error
	for _, elem := range d {
		out = bsoncore.AppendHeader(out, elem.Value.Type(), elem.Key)
		out, err = elem.Value.appendValue(out)
		if err != nil {
			return dst, err
		}
	}
	out, err = bsoncore.AppendDocumentEnd(out, idx)
	if err != nil {
		return dst, err
	}
	return out, nil
}

// MarshalBSONValue implements the ValueMarshaler interface.
func (d Doc) MarshalBSONValue() (bsontype.Type, []byte, error) {
	data, err := d.MarshalBSON()
	if err != nil {
		return bsontype.Type(0), nil, err
	}
	return bsontype.EmbeddedDocument, data, nil
}

// MarshalBSONValue implements the ValueMarshaler interface.
func (a Arr) MarshalBSONValue() (bsontype.Type, []byte, error) {
	data, err := a.appendMarshalArr(nil)
	if err != nil {
		return bsontype.Type(0), nil, err
	}
	return bsontype.Array, data, nil
}

// appendMarshalArr marshals Arr to BSON array bytes, appending to dst. The keys are the value
// indexes in base 10.
func (a Arr) appendMarshalArr(dst []byte) ([]byte, error) {
	idx, out := bsoncore.AppendArrayStart(dst)
	var err error
	for i, val := range a {
		out = bsoncore.AppendHeader(out, val.Type(), strconv.Itoa(i))
		out, err = val.appendValue(out)
		if err != nil {
			return dst, err
		}
	}
	out, err = bsoncore.AppendArrayEnd(out, idx)
	if err != nil {
		return dst, err
	}
	return out, nil
}

// MarshalBSONValue implements the ValueMarshaler interface.
func (v Val) MarshalBSONValue() (bsontype.Type, []byte, error) {
	data, err := v.appendValue(nil)
	if err != nil {
		return bsontype.Type(0), nil, err
	}
	return v.t, data, nil
}

// appendValue appends the wire representation of the value's payload to dst. The type tag and key
// belong to the element header and are the caller's responsibility.
func (v Val) appendValue(dst []byte) ([]byte, error) {
	var err error
	switch v.t {
	case bsontype.Double:
		dst = bsoncore.AppendDouble(dst, v.Double())
	case bsontype.String:
		dst = bsoncore.AppendString(dst, v.StringValue())
	case bsontype.EmbeddedDocument:
		dst, err = v.Document().AppendMarshalBSON(dst)
	case bsontype.Array:
		dst, err = v.Array().appendMarshalArr(dst)
	case bsontype.Binary:
		bin := v.Binary()
		dst = bsoncore.AppendBinary(dst, bin.Subtype, bin.Data)
	case bsontype.ObjectID:
		dst = bsoncore.AppendObjectID(dst, v.ObjectID())
	case bsontype.Boolean:
		dst = bsoncore.AppendBoolean(dst, v.Boolean())
	case bsontype.DateTime:
		dst = bsoncore.AppendDateTime(dst, v.DateTime())
	case bsontype.Null:
	case bsontype.Regex:
		regex := v.Regex()
		dst = bsoncore.AppendRegex(dst, regex.Pattern, regex.Options)
	case bsontype.DBPointer:
		dbptr := v.DBPointer()
		dst = bsoncore.AppendDBPointer(dst, dbptr.DB, dbptr.Pointer)
	case bsontype.JavaScript:
		dst = bsoncore.AppendJavaScript(dst, string(v.JavaScript()))
	case bsontype.Int32:
		dst = bsoncore.AppendInt32(dst, v.Int32())
	case bsontype.Timestamp:
		ts := v.Timestamp()
		dst = bsoncore.AppendTimestamp(dst, ts.T, ts.I)
	case bsontype.Int64:
		dst = bsoncore.AppendInt64(dst, v.Int64())
	case bsontype.MinKey:
	case bsontype.MaxKey:
	default:
		return dst, UnsupportedValueError{Type: v.t}
	}
	return dst, err
}
