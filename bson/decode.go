// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bson

import (
	"github.com/10gen/mongolite/bson/bsoncore"
	"github.com/10gen/mongolite/bson/bsontype"
)

// Unmarshaler is an interface implemented by types that can unmarshal a BSON document
// representation of themselves. The BSON bytes can be assumed to be valid. UnmarshalBSON must copy
// the BSON bytes if it wishes to retain the data after returning.
type Unmarshaler interface {
	UnmarshalBSON([]byte) error
}

// ValueUnmarshaler is an interface implemented by types that can unmarshal a BSON value
// representation of themselves. The BSON bytes and type can be assumed to be valid.
// UnmarshalBSONValue must copy the BSON value bytes if it wishes to retain the data after
// returning.
type ValueUnmarshaler interface {
	UnmarshalBSONValue(bsontype.Type, []byte) error
}

// visitorFunc receives each decoded element of a document in insertion order. Returning stop ==
// true ends the walk of the enclosing document early without an error.
type visitorFunc func(key string, val Val) (stop bool, err error)

// UnmarshalBSON implements the Unmarshaler interface.
//
// This method will OVERWRITE any data currently in d.
func (d *Doc) UnmarshalBSON(b []byte) error {
	if d == nil {
		return ErrNilDocument
	}
	doc, err := decodeDoc(b)
	if err != nil {
		return err
	}
	*d = doc
	return nil
}

// UnmarshalBSONValue implements the ValueUnmarshaler interface.
//
// This method will OVERWRITE any data currently in a.
func (a *Arr) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if a == nil {
		return ErrNilArray
	}
	if t != bsontype.Array {
		return ElementTypeError{"bson.Arr.UnmarshalBSONValue", t}
	}
	arr, err := decodeArr(data)
	if err != nil {
		return err
	}
	*a = arr
	return nil
}

// decodeDoc walks raw and accumulates elements in insertion order.
func decodeDoc(raw bsoncore.Document) (Doc, error) {
	doc := make(Doc, 0)
	err := walkDocument(raw, func(key string, val Val) (bool, error) {
		doc = append(doc, Elem{Key: key, Value: val})
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// decodeArr walks raw and accumulates values in order. The numeric keys an array carries on the
// wire are not validated.
func decodeArr(raw bsoncore.Document) (Arr, error) {
	arr := make(Arr, 0)
	err := walkDocument(raw, func(_ string, val Val) (bool, error) {
		arr = append(arr, val)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return arr, nil
}

// walkDocument decodes doc one element at a time and hands each to visit. Symbol, code with scope,
// and undefined elements are recognized and skipped without producing a value. Any other tag
// outside the supported set fails with InvalidTypeError before its element is consumed.
func walkDocument(doc bsoncore.Document, visit visitorFunc) error {
	length, rem, ok := bsoncore.ReadLength(doc)
	if !ok {
		return bsoncore.NewInsufficientBytesError(doc, rem)
	}
	if int(length) > len(doc) {
		return bsoncore.NewDocumentLengthError(int(length), len(doc))
	}
	if length < 5 {
		return bsoncore.ErrInvalidLength
	}
	if doc[length-1] != 0x00 {
		return bsoncore.ErrMissingNull
	}

	length -= 4
	var elem bsoncore.Element

	for length > 1 {
		t := bsontype.Type(rem[0])
		switch t {
		case bsontype.Double, bsontype.String, bsontype.EmbeddedDocument, bsontype.Array,
			bsontype.Binary, bsontype.Undefined, bsontype.ObjectID, bsontype.Boolean,
			bsontype.DateTime, bsontype.Null, bsontype.Regex, bsontype.DBPointer,
			bsontype.JavaScript, bsontype.Symbol, bsontype.CodeWithScope, bsontype.Int32,
			bsontype.Timestamp, bsontype.Int64, bsontype.MinKey, bsontype.MaxKey:
		default:
			return bsoncore.InvalidTypeError{Type: t}
		}

		elem, rem, ok = bsoncore.ReadElement(rem)
		length -= int32(len(elem))
		if !ok {
			return bsoncore.NewInsufficientBytesError(doc, rem)
		}

		switch t {
		case bsontype.Symbol, bsontype.CodeWithScope, bsontype.Undefined:
			continue
		}

		val, err := decodeValue(elem.Value())
		if err != nil {
			return err
		}

		stop, err := visit(elem.Key(), val)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}

	if len(rem) < 1 || rem[0] != 0x00 {
		return bsoncore.ErrMissingNull
	}
	return nil
}

// decodeValue converts a wire value into a Val. Composite values recurse through walkDocument and
// byte payloads are copied, so the returned Val does not retain v.Data.
func decodeValue(v bsoncore.Value) (Val, error) {
	switch v.Type {
	case bsontype.Double:
		f64, _, ok := bsoncore.ReadDouble(v.Data)
		if !ok {
			return Val{}, bsoncore.NewInsufficientBytesError(v.Data, v.Data)
		}
		return Double(f64), nil
	case bsontype.String:
		str, _, ok := bsoncore.ReadString(v.Data)
		if !ok {
			return Val{}, bsoncore.NewInsufficientBytesError(v.Data, v.Data)
		}
		return String(str), nil
	case bsontype.EmbeddedDocument:
		rawDoc, _, ok := bsoncore.ReadDocument(v.Data)
		if !ok {
			return Val{}, bsoncore.NewInsufficientBytesError(v.Data, v.Data)
		}
		doc, err := decodeDoc(rawDoc)
		if err != nil {
			return Val{}, err
		}
		return Document(doc), nil
	case bsontype.Array:
		rawArr, _, ok := bsoncore.ReadArray(v.Data)
		if !ok {
			return Val{}, bsoncore.NewInsufficientBytesError(v.Data, v.Data)
		}
		arr, err := decodeArr(bsoncore.Document(rawArr))
		if err != nil {
			return Val{}, err
		}
		return Array(arr), nil
	case bsontype.Binary:
		subtype, bin, _, ok := bsoncore.ReadBinary(v.Data)
		if !ok {
			return Val{}, bsoncore.NewInsufficientBytesError(v.Data, v.Data)
		}
		data := make([]byte, len(bin))
		copy(data, bin)
		return Binary(subtype, data), nil
	case bsontype.ObjectID:
		oid, _, ok := bsoncore.ReadObjectID(v.Data)
		if !ok {
			return Val{}, bsoncore.NewInsufficientBytesError(v.Data, v.Data)
		}
		return ObjectID(oid), nil
	case bsontype.Boolean:
		b, _, ok := bsoncore.ReadBoolean(v.Data)
		if !ok {
			return Val{}, bsoncore.NewInsufficientBytesError(v.Data, v.Data)
		}
		return Boolean(b), nil
	case bsontype.DateTime:
		dt, _, ok := bsoncore.ReadDateTime(v.Data)
		if !ok {
			return Val{}, bsoncore.NewInsufficientBytesError(v.Data, v.Data)
		}
		return DateTime(dt), nil
	case bsontype.Null:
		return Null(), nil
	case bsontype.Regex:
		pattern, options, _, ok := bsoncore.ReadRegex(v.Data)
		if !ok {
			return Val{}, bsoncore.NewInsufficientBytesError(v.Data, v.Data)
		}
		return Regex(pattern, options), nil
	case bsontype.DBPointer:
		ns, ptr, _, ok := bsoncore.ReadDBPointer(v.Data)
		if !ok {
			return Val{}, bsoncore.NewInsufficientBytesError(v.Data, v.Data)
		}
		return DBPointer(ns, ptr), nil
	case bsontype.JavaScript:
		js, _, ok := bsoncore.ReadJavaScript(v.Data)
		if !ok {
			return Val{}, bsoncore.NewInsufficientBytesError(v.Data, v.Data)
		}
		return JavaScript(js), nil
	case bsontype.Int32:
		i32, _, ok := bsoncore.ReadInt32(v.Data)
		if !ok {
			return Val{}, bsoncore.NewInsufficientBytesError(v.Data, v.Data)
		}
		return Int32(i32), nil
	case bsontype.Timestamp:
		t, i, _, ok := bsoncore.ReadTimestamp(v.Data)
		if !ok {
			return Val{}, bsoncore.NewInsufficientBytesError(v.Data, v.Data)
		}
		return Timestamp(t, i), nil
	case bsontype.Int64:
		i64, _, ok := bsoncore.ReadInt64(v.Data)
		if !ok {
			return Val{}, bsoncore.NewInsufficientBytesError(v.Data, v.Data)
		}
		return Int64(i64), nil
	case bsontype.MinKey:
		return MinKey(), nil
	case bsontype.MaxKey:
		return MaxKey(), nil
	default:
		return Val{}, bsoncore.InvalidTypeError{Type: v.Type}
	}
}
