// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bson

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
	"time"

	"github.com/10gen/mongolite/bson/bsoncore"
	"github.com/10gen/mongolite/bson/bsontype"
	"github.com/10gen/mongolite/bson/primitive"
)

// Val represents a BSON value.
type Val struct {
	// NOTE: The bootstrap is a small amount of space that'll be on the stack. At 15 bytes this
	// doesn't make this type any larger, since there are 7 bytes of padding and we want an int64 to
	// store small values (e.g. boolean, double, int64, etc...). The primitive property is where all
	// of the larger values go. They will use either Go primitives or the primitive package types.
	t         bsontype.Type
	bootstrap [15]byte
	primitive interface{}
}

func (v Val) string() string {
	if v.primitive != nil {
		return v.primitive.(string)
	}
	// The string will either end with a null byte or it fills the entire bootstrap space.
	idx := bytes.IndexByte(v.bootstrap[:], 0x00)
	if idx == -1 {
		idx = 15
	}
	return string(v.bootstrap[:idx])
}

// writestring stores str inline when it fits the bootstrap space and contains no null bytes,
// which would truncate the inline read. Everything else goes to the heap.
func (v Val) writestring(str string) Val {
	switch {
	case len(str) < 16 && strings.IndexByte(str, 0x00) == -1:
		copy(v.bootstrap[:], str)
	default:
		v.primitive = str
	}
	return v
}

func (v Val) writei64(i64 int64) Val {
	binary.LittleEndian.PutUint64(v.bootstrap[0:8], uint64(i64))
	return v
}

func (v Val) i64() int64 {
	return int64(v.bootstrap[0]) | int64(v.bootstrap[1])<<8 | int64(v.bootstrap[2])<<16 |
		int64(v.bootstrap[3])<<24 | int64(v.bootstrap[4])<<32 | int64(v.bootstrap[5])<<40 |
		int64(v.bootstrap[6])<<48 | int64(v.bootstrap[7])<<56
}

// IsZero returns true if this value is zero.
func (v Val) IsZero() bool { return v.t == bsontype.Type(0) && v.primitive == nil }

// Type returns the BSON type of this value.
func (v Val) Type() bsontype.Type { return v.t }

// IsNumber returns true if the type of v is a numeric BSON type.
func (v Val) IsNumber() bool {
	switch v.t {
	case bsontype.Double, bsontype.Int32, bsontype.Int64:
		return true
	default:
		return false
	}
}

// Interface returns the Go value of this Value as an empty interface.
//
// This method will return nil if it is empty, otherwise it will return a Go primitive or a
// primitive package type.
func (v Val) Interface() interface{} {
	switch v.t {
	case bsontype.Double:
		return v.Double()
	case bsontype.String:
		return v.StringValue()
	case bsontype.EmbeddedDocument:
		return v.Document()
	case bsontype.Array:
		return v.Array()
	case bsontype.Binary:
		return v.Binary()
	case bsontype.ObjectID:
		return v.ObjectID()
	case bsontype.Boolean:
		return v.Boolean()
	case bsontype.DateTime:
		return v.DateTime()
	case bsontype.Null:
		return primitive.Null{}
	case bsontype.Regex:
		return v.Regex()
	case bsontype.DBPointer:
		return v.DBPointer()
	case bsontype.JavaScript:
		return v.JavaScript()
	case bsontype.Int32:
		return v.Int32()
	case bsontype.Timestamp:
		return v.Timestamp()
	case bsontype.Int64:
		return v.Int64()
	case bsontype.MinKey:
		return primitive.MinKey{}
	case bsontype.MaxKey:
		return primitive.MaxKey{}
	default:
		return nil
	}
}

// Double returns the BSON double the Val represents. It panics if the value is a BSON type other
// than double.
func (v Val) Double() float64 {
	if v.t != bsontype.Double {
		panic(ElementTypeError{"bson.Val.Double", v.t})
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(v.bootstrap[0:8]))
}

// DoubleOK is the same as Double, but returns a boolean instead of panicking.
func (v Val) DoubleOK() (float64, bool) {
	if v.t != bsontype.Double {
		return 0, false
	}
	return v.Double(), true
}

// StringValue returns the BSON string the Val represents. It panics if the value is a BSON type
// other than string.
//
// NOTE: This method is called StringValue to avoid a collision with the String method used for
// debugging output.
func (v Val) StringValue() string {
	if v.t != bsontype.String {
		panic(ElementTypeError{"bson.Val.StringValue", v.t})
	}
	return v.string()
}

// StringValueOK is the same as StringValue, but returns a boolean instead of panicking.
func (v Val) StringValueOK() (string, bool) {
	if v.t != bsontype.String {
		return "", false
	}
	return v.StringValue(), true
}

// Document returns the BSON embedded document the Val represents. It panics if the value is a BSON
// type other than embedded document.
func (v Val) Document() Doc {
	if v.t != bsontype.EmbeddedDocument {
		panic(ElementTypeError{"bson.Val.Document", v.t})
	}
	return v.primitive.(Doc)
}

// DocumentOK is the same as Document, except it returns a boolean instead of panicking.
func (v Val) DocumentOK() (Doc, bool) {
	if v.t != bsontype.EmbeddedDocument {
		return nil, false
	}
	return v.Document(), true
}

// Array returns the BSON array the Val represents. It panics if the value is a BSON type other
// than array.
func (v Val) Array() Arr {
	if v.t != bsontype.Array {
		panic(ElementTypeError{"bson.Val.Array", v.t})
	}
	return v.primitive.(Arr)
}

// ArrayOK is the same as Array, except it returns a boolean instead of panicking.
func (v Val) ArrayOK() (Arr, bool) {
	if v.t != bsontype.Array {
		return nil, false
	}
	return v.Array(), true
}

// Binary returns the BSON binary the Val represents. It panics if the value is a BSON type other
// than binary.
func (v Val) Binary() primitive.Binary {
	if v.t != bsontype.Binary {
		panic(ElementTypeError{"bson.Val.Binary", v.t})
	}
	return v.primitive.(primitive.Binary)
}

// BinaryOK is the same as Binary, except it returns a boolean instead of panicking.
func (v Val) BinaryOK() (primitive.Binary, bool) {
	if v.t != bsontype.Binary {
		return primitive.Binary{}, false
	}
	return v.Binary(), true
}

// ObjectID returns the BSON ObjectID the Val represents. It panics if the value is a BSON type
// other than ObjectID.
func (v Val) ObjectID() primitive.ObjectID {
	if v.t != bsontype.ObjectID {
		panic(ElementTypeError{"bson.Val.ObjectID", v.t})
	}
	var oid primitive.ObjectID
	copy(oid[:], v.bootstrap[:12])
	return oid
}

// ObjectIDOK is the same as ObjectID, except it returns a boolean instead of panicking.
func (v Val) ObjectIDOK() (primitive.ObjectID, bool) {
	if v.t != bsontype.ObjectID {
		return primitive.ObjectID{}, false
	}
	return v.ObjectID(), true
}

// Boolean returns the BSON boolean the Val represents. It panics if the value is a BSON type other
// than boolean.
func (v Val) Boolean() bool {
	if v.t != bsontype.Boolean {
		panic(ElementTypeError{"bson.Val.Boolean", v.t})
	}
	return v.bootstrap[0] == 0x01
}

// BooleanOK is the same as Boolean, except it returns a boolean instead of panicking.
func (v Val) BooleanOK() (bool, bool) {
	if v.t != bsontype.Boolean {
		return false, false
	}
	return v.Boolean(), true
}

// DateTime returns the BSON datetime the Val represents as milliseconds since the Unix epoch. It
// panics if the value is a BSON type other than datetime.
func (v Val) DateTime() int64 {
	if v.t != bsontype.DateTime {
		panic(ElementTypeError{"bson.Val.DateTime", v.t})
	}
	return v.i64()
}

// DateTimeOK is the same as DateTime, except it returns a boolean instead of panicking.
func (v Val) DateTimeOK() (int64, bool) {
	if v.t != bsontype.DateTime {
		return 0, false
	}
	return v.DateTime(), true
}

// Time returns the BSON datetime the Val represents as a time.Time. It panics if the value is a
// BSON type other than datetime. The millisecond component splits into whole seconds and the
// remainder in nanoseconds.
func (v Val) Time() time.Time {
	i := v.DateTime()
	return time.Unix(i/1000, i%1000*1000000)
}

// TimeOK is the same as Time, except it returns a boolean instead of panicking.
func (v Val) TimeOK() (time.Time, bool) {
	if v.t != bsontype.DateTime {
		return time.Time{}, false
	}
	return v.Time(), true
}

// Regex returns the BSON regex the Val represents. It panics if the value is a BSON type other
// than regex.
func (v Val) Regex() primitive.Regex {
	if v.t != bsontype.Regex {
		panic(ElementTypeError{"bson.Val.Regex", v.t})
	}
	return v.primitive.(primitive.Regex)
}

// RegexOK is the same as Regex, except it returns a boolean instead of panicking.
func (v Val) RegexOK() (primitive.Regex, bool) {
	if v.t != bsontype.Regex {
		return primitive.Regex{}, false
	}
	return v.Regex(), true
}

// DBPointer returns the BSON dbpointer the Val represents. It panics if the value is a BSON type
// other than dbpointer.
func (v Val) DBPointer() primitive.DBPointer {
	if v.t != bsontype.DBPointer {
		panic(ElementTypeError{"bson.Val.DBPointer", v.t})
	}
	return v.primitive.(primitive.DBPointer)
}

// DBPointerOK is the same as DBPointer, except it returns a boolean instead of panicking.
func (v Val) DBPointerOK() (primitive.DBPointer, bool) {
	if v.t != bsontype.DBPointer {
		return primitive.DBPointer{}, false
	}
	return v.DBPointer(), true
}

// JavaScript returns the BSON JavaScript code the Val represents. It panics if the value is a BSON
// type other than JavaScript code.
func (v Val) JavaScript() primitive.JavaScript {
	if v.t != bsontype.JavaScript {
		panic(ElementTypeError{"bson.Val.JavaScript", v.t})
	}
	return primitive.JavaScript(v.string())
}

// JavaScriptOK is the same as JavaScript, except it returns a boolean instead of panicking.
func (v Val) JavaScriptOK() (primitive.JavaScript, bool) {
	if v.t != bsontype.JavaScript {
		return "", false
	}
	return v.JavaScript(), true
}

// Int32 returns the BSON int32 the Val represents. It panics if the value is a BSON type other
// than int32.
func (v Val) Int32() int32 {
	if v.t != bsontype.Int32 {
		panic(ElementTypeError{"bson.Val.Int32", v.t})
	}
	return int32(v.bootstrap[0]) | int32(v.bootstrap[1])<<8 |
		int32(v.bootstrap[2])<<16 | int32(v.bootstrap[3])<<24
}

// Int32OK is the same as Int32, except it returns a boolean instead of panicking.
func (v Val) Int32OK() (int32, bool) {
	if v.t != bsontype.Int32 {
		return 0, false
	}
	return v.Int32(), true
}

// Timestamp returns the BSON timestamp the Val represents. It panics if the value is a BSON type
// other than timestamp.
func (v Val) Timestamp() primitive.Timestamp {
	if v.t != bsontype.Timestamp {
		panic(ElementTypeError{"bson.Val.Timestamp", v.t})
	}
	return primitive.Timestamp{
		I: uint32(v.bootstrap[0]) | uint32(v.bootstrap[1])<<8 |
			uint32(v.bootstrap[2])<<16 | uint32(v.bootstrap[3])<<24,
		T: uint32(v.bootstrap[4]) | uint32(v.bootstrap[5])<<8 |
			uint32(v.bootstrap[6])<<16 | uint32(v.bootstrap[7])<<24,
	}
}

// TimestampOK is the same as Timestamp, except it returns a boolean instead of panicking.
func (v Val) TimestampOK() (primitive.Timestamp, bool) {
	if v.t != bsontype.Timestamp {
		return primitive.Timestamp{}, false
	}
	return v.Timestamp(), true
}

// Int64 returns the BSON int64 the Val represents. It panics if the value is a BSON type other
// than int64.
func (v Val) Int64() int64 {
	if v.t != bsontype.Int64 {
		panic(ElementTypeError{"bson.Val.Int64", v.t})
	}
	return v.i64()
}

// Int64OK is the same as Int64, except it returns a boolean instead of panicking.
func (v Val) Int64OK() (int64, bool) {
	if v.t != bsontype.Int64 {
		return 0, false
	}
	return v.Int64(), true
}

// Equal compares v to v2 and returns true if they are equal. Documents and arrays compare
// structurally, everything else by payload.
func (v Val) Equal(v2 Val) bool {
	if v.t != v2.t {
		return false
	}
	switch v.t {
	case bsontype.Double, bsontype.DateTime, bsontype.Int64:
		return bytes.Equal(v.bootstrap[0:8], v2.bootstrap[0:8])
	case bsontype.String:
		return v.string() == v2.string()
	case bsontype.EmbeddedDocument:
		return v.Document().Equal(v2.Document())
	case bsontype.Array:
		return v.Array().Equal(v2.Array())
	case bsontype.Binary:
		return v.Binary().Equal(v2.Binary())
	case bsontype.ObjectID:
		return bytes.Equal(v.bootstrap[0:12], v2.bootstrap[0:12])
	case bsontype.Boolean:
		return v.bootstrap[0] == v2.bootstrap[0]
	case bsontype.Null:
		return true
	case bsontype.Regex:
		return v.Regex().Equal(v2.Regex())
	case bsontype.DBPointer:
		return v.DBPointer().Equal(v2.DBPointer())
	case bsontype.JavaScript:
		return v.JavaScript() == v2.JavaScript()
	case bsontype.Int32:
		return v.Int32() == v2.Int32()
	case bsontype.Timestamp:
		return v.Timestamp().Equal(v2.Timestamp())
	case bsontype.MinKey:
		return true
	case bsontype.MaxKey:
		return true
	default:
		return true
	}
}

// String implements the fmt.Stringer interface. The output is extended JSON for any value that can
// be encoded and empty otherwise.
func (v Val) String() string {
	t, data, err := v.MarshalBSONValue()
	if err != nil {
		return ""
	}
	return bsoncore.Value{Type: t, Data: data}.String()
}
