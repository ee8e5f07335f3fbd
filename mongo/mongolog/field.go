// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongolog

import (
	"fmt"
	"math"
	"time"
)

// A Field represents a key-value pair in the structured logs. Type is used to know
// where and how the variable is stored
type Field struct {
	Key       string
	Type      FieldType
	Integer   int64
	String    string
	Interface interface{}
}

// Bool constructs a field that carries a bool
func Bool(key string, val bool) Field {
	var ival int64
	if val {
		ival = 1
	}
	return Field{Key: key, Type: BoolType, Integer: ival}
}

// Float64 constructs a field that carries a float64
func Float64(key string, val float64) Field {
	return Field{Key: key, Type: Float64Type, Integer: int64(math.Float64bits(val))}
}

// Int constructs a field that carries an int
func Int(key string, val int) Field {
	return Int64(key, int64(val))
}

// Int64 constructs a field that carries an int64
func Int64(key string, val int64) Field {
	return Field{Key: key, Type: Int64Type, Integer: val}
}

// Int32 constructs a field that carries an int32
func Int32(key string, val int32) Field {
	return Field{Key: key, Type: Int32Type, Integer: int64(val)}
}

// String constructs a field that carries a string
func String(key string, val string) Field {
	return Field{Key: key, Type: StringType, String: val}
}

// Stringer constructs a field with the given key and the output of the value's
// String method
func Stringer(key string, val fmt.Stringer) Field {
	return Field{Key: key, Type: StringerType, Interface: val}
}

// Duration constructs a field that carries a time.Duration
func Duration(key string, val time.Duration) Field {
	return Field{Key: key, Type: DurationType, Integer: int64(val)}
}

// Time constructs a field that carries a time.Time stored as nanoseconds
// since the Unix epoch.
func Time(key string, val time.Time) Field {
	return Field{Key: key, Type: TimeType, Integer: val.UnixNano(), Interface: val.Location()}
}

// Reflect constructs a field that carries an arbitrary object
func Reflect(key string, val interface{}) Field {
	return Field{Key: key, Type: ReflectType, Interface: val}
}

// Value returns the value stored in the field as an interface{}.
func (f Field) Value() interface{} {
	switch f.Type {
	case BoolType:
		return f.Integer == 1
	case Float64Type:
		return math.Float64frombits(uint64(f.Integer))
	case Int64Type:
		return f.Integer
	case Int32Type:
		return int32(f.Integer)
	case StringType:
		return f.String
	case StringerType:
		return f.Interface.(fmt.Stringer).String()
	case DurationType:
		return time.Duration(f.Integer)
	case TimeType:
		return time.Unix(0, f.Integer).In(f.Interface.(*time.Location))
	case ReflectType:
		return f.Interface
	default:
		panic(fmt.Sprintf("unknown field type: %v", f.Type))
	}
}

// A FieldType indicates which member of the Field union struct should be used
// and how it should be serialized.
type FieldType uint8

const (
	_ FieldType = iota
	// BoolType indicates that the field carries a bool.
	BoolType
	// DurationType indicates that the field carries a time.Duration.
	DurationType
	// Float64Type indicates that the field carries a float64.
	Float64Type
	// Int64Type indicates that the field carries an int64.
	Int64Type
	// Int32Type indicates that the field carries an int32.
	Int32Type
	// StringType indicates that the field carries a string.
	StringType
	// StringerType indicates that the field carries a fmt.Stringer.
	StringerType
	// TimeType indicates that the field carries a time.Time representable
	// by its UnixNano() stored as an int64.
	TimeType
	// ReflectType indicates that the field carries an interface{}, which should
	// be serialized using reflection.
	ReflectType
)
