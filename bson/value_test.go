// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bson

import (
	"testing"
	"time"

	"github.com/10gen/mongolite/bson/bsontype"
	"github.com/10gen/mongolite/bson/primitive"
	"github.com/davecgh/go-spew/spew"
)

func TestVal(t *testing.T) {
	t.Run("panic", func(t *testing.T) {
		handle := func(want ElementTypeError) func() {
			return func() {
				got := recover()
				if got != want {
					t.Errorf("Incorrect value for panic. got %v; want %v", got, want)
				}
			}
		}
		t.Run("double", func(t *testing.T) {
			defer handle(ElementTypeError{"bson.Val.Double", bsontype.String})()
			String("foo").Double()
		})
		t.Run("string", func(t *testing.T) {
			defer handle(ElementTypeError{"bson.Val.StringValue", bsontype.Double})()
			Double(3.14159).StringValue()
		})
		t.Run("document", func(t *testing.T) {
			defer handle(ElementTypeError{"bson.Val.Document", bsontype.Boolean})()
			Boolean(true).Document()
		})
		t.Run("binary", func(t *testing.T) {
			defer handle(ElementTypeError{"bson.Val.Binary", bsontype.Null})()
			Null().Binary()
		})
		t.Run("timestamp", func(t *testing.T) {
			defer handle(ElementTypeError{"bson.Val.Timestamp", bsontype.Int64})()
			Int64(12345).Timestamp()
		})
	})
	t.Run("accessors", func(t *testing.T) {
		oid := primitive.NewObjectID()
		now := time.Now().Truncate(time.Millisecond)

		t.Run("double", func(t *testing.T) {
			f64, ok := Double(3.14159).DoubleOK()
			if !ok || f64 != 3.14159 {
				t.Errorf("Unexpected result. got (%f, %t); want (%f, %t)", f64, ok, 3.14159, true)
			}
			_, ok = Double(3.14159).StringValueOK()
			if ok {
				t.Errorf("Expected the wrong type accessor to report failure")
			}
		})
		t.Run("string", func(t *testing.T) {
			str, ok := String("bar").StringValueOK()
			if !ok || str != "bar" {
				t.Errorf("Unexpected result. got (%s, %t); want (%s, %t)", str, ok, "bar", true)
			}
		})
		t.Run("string-with-null-byte", func(t *testing.T) {
			want := "fo\x00o"
			str, ok := String(want).StringValueOK()
			if !ok || str != want {
				t.Errorf("Unexpected result. got (%q, %t); want (%q, %t)", str, ok, want, true)
			}
		})
		t.Run("long-string", func(t *testing.T) {
			want := "this string does not fit inline"
			str, ok := String(want).StringValueOK()
			if !ok || str != want {
				t.Errorf("Unexpected result. got (%q, %t); want (%q, %t)", str, ok, want, true)
			}
		})
		t.Run("document", func(t *testing.T) {
			want := Doc{{"a", Int32(1)}}
			doc, ok := Document(want).DocumentOK()
			if !ok || !doc.Equal(want) {
				t.Errorf("Unexpected result. got (%v, %t); want (%v, %t)", doc, ok, want, true)
			}
		})
		t.Run("array", func(t *testing.T) {
			want := Arr{String("x"), Null()}
			arr, ok := Array(want).ArrayOK()
			if !ok || !arr.Equal(want) {
				t.Errorf("Unexpected result. got (%v, %t); want (%v, %t)", arr, ok, want, true)
			}
		})
		t.Run("binary", func(t *testing.T) {
			bin, ok := Binary(0x02, []byte{0x01, 0x02}).BinaryOK()
			want := primitive.Binary{Subtype: 0x02, Data: []byte{0x01, 0x02}}
			if !ok || !bin.Equal(want) {
				t.Errorf("Unexpected result. got (%v, %t); want (%v, %t)", bin, ok, want, true)
			}
		})
		t.Run("objectID", func(t *testing.T) {
			got, ok := ObjectID(oid).ObjectIDOK()
			if !ok || got != oid {
				t.Errorf("Unexpected result. got (%v, %t); want (%v, %t)", got, ok, oid, true)
			}
		})
		t.Run("boolean", func(t *testing.T) {
			b, ok := Boolean(true).BooleanOK()
			if !ok || !b {
				t.Errorf("Unexpected result. got (%t, %t); want (%t, %t)", b, ok, true, true)
			}
		})
		t.Run("datetime", func(t *testing.T) {
			dt, ok := DateTime(1234567890).DateTimeOK()
			if !ok || dt != 1234567890 {
				t.Errorf("Unexpected result. got (%d, %t); want (%d, %t)", dt, ok, 1234567890, true)
			}
		})
		t.Run("time", func(t *testing.T) {
			got, ok := Time(now).TimeOK()
			if !ok || !got.Equal(now) {
				t.Errorf("Unexpected result. got (%v, %t); want (%v, %t)", got, ok, now, true)
			}
		})
		t.Run("regex", func(t *testing.T) {
			rgx, ok := Regex("/twitter/", "i").RegexOK()
			want := primitive.Regex{Pattern: "/twitter/", Options: "i"}
			if !ok || !rgx.Equal(want) {
				t.Errorf("Unexpected result. got (%v, %t); want (%v, %t)", rgx, ok, want, true)
			}
		})
		t.Run("dbPointer", func(t *testing.T) {
			ptr, ok := DBPointer("db.coll", oid).DBPointerOK()
			want := primitive.DBPointer{DB: "db.coll", Pointer: oid}
			if !ok || !ptr.Equal(want) {
				t.Errorf("Unexpected result. got (%v, %t); want (%v, %t)", ptr, ok, want, true)
			}
		})
		t.Run("javascript", func(t *testing.T) {
			js, ok := JavaScript("var hello = 'world';").JavaScriptOK()
			if !ok || js != primitive.JavaScript("var hello = 'world';") {
				t.Errorf("Unexpected result. got (%v, %t)", js, ok)
			}
		})
		t.Run("int32", func(t *testing.T) {
			i32, ok := Int32(1234).Int32OK()
			if !ok || i32 != 1234 {
				t.Errorf("Unexpected result. got (%d, %t); want (%d, %t)", i32, ok, 1234, true)
			}
		})
		t.Run("timestamp", func(t *testing.T) {
			ts, ok := Timestamp(12345, 67890).TimestampOK()
			want := primitive.Timestamp{T: 12345, I: 67890}
			if !ok || !ts.Equal(want) {
				t.Errorf("Unexpected result. got (%v, %t); want (%v, %t)", ts, ok, want, true)
			}
		})
		t.Run("int64", func(t *testing.T) {
			i64, ok := Int64(1234567890987).Int64OK()
			if !ok || i64 != 1234567890987 {
				t.Errorf("Unexpected result. got (%d, %t); want (%d, %t)", i64, ok, int64(1234567890987), true)
			}
		})
	})
	t.Run("Interface", func(t *testing.T) {
		oid := primitive.NewObjectID()
		testCases := []struct {
			name string
			val  Val
			want interface{}
		}{
			{"double", Double(3.14159), float64(3.14159)},
			{"string", String("foo"), "foo"},
			{"binary", Binary(0x00, []byte{0x01}), primitive.Binary{Data: []byte{0x01}}},
			{"objectID", ObjectID(oid), oid},
			{"boolean", Boolean(false), false},
			{"datetime", DateTime(1234567890), int64(1234567890)},
			{"null", Null(), primitive.Null{}},
			{"regex", Regex("pattern", "imx"), primitive.Regex{Pattern: "pattern", Options: "imx"}},
			{"dbPointer", DBPointer("db.coll", oid), primitive.DBPointer{DB: "db.coll", Pointer: oid}},
			{"javascript", JavaScript("js"), primitive.JavaScript("js")},
			{"int32", Int32(1), int32(1)},
			{"timestamp", Timestamp(1, 2), primitive.Timestamp{T: 1, I: 2}},
			{"int64", Int64(2), int64(2)},
			{"minKey", MinKey(), primitive.MinKey{}},
			{"maxKey", MaxKey(), primitive.MaxKey{}},
			{"zero", Val{}, nil},
		}

		for _, tc := range testCases {
			tc := tc
			t.Run(tc.name, func(t *testing.T) {
				got := tc.val.Interface()
				switch want := tc.want.(type) {
				case primitive.Binary:
					if !got.(primitive.Binary).Equal(want) {
						t.Errorf("Unexpected result. got %v; want %v", got, want)
					}
				default:
					if got != tc.want {
						t.Errorf("Unexpected result. got %v; want %v", got, tc.want)
					}
				}
			})
		}
	})
	t.Run("IsNumber", func(t *testing.T) {
		testCases := []struct {
			name string
			val  Val
			want bool
		}{
			{"double", Double(3.14159), true},
			{"int32", Int32(1), true},
			{"int64", Int64(1), true},
			{"string", String("1"), false},
			{"boolean", Boolean(true), false},
		}

		for _, tc := range testCases {
			tc := tc
			t.Run(tc.name, func(t *testing.T) {
				got := tc.val.IsNumber()
				if got != tc.want {
					t.Errorf("IsNumber returned the wrong result. got %t; want %t", got, tc.want)
				}
			})
		}
	})
	t.Run("IsZero", func(t *testing.T) {
		if !(Val{}).IsZero() {
			t.Errorf("Expected the uninitialized Val to report zero")
		}
		if Null().IsZero() {
			t.Errorf("Expected a null value to not report zero")
		}
	})
	t.Run("Equal", func(t *testing.T) {
		oid := primitive.NewObjectID()
		testCases := []struct {
			name  string
			v1    Val
			v2    Val
			equal bool
		}{
			{"different types", Int32(1), Int64(1), false},
			{"doubles equal", Double(3.14159), Double(3.14159), true},
			{"doubles not equal", Double(3.14159), Double(2.71828), false},
			{"strings equal", String("hello"), String("hello"), true},
			{"strings not equal", String("hello"), String("world"), false},
			{"strings with null byte", String("a\x00b"), String("a\x00b"), true},
			{"documents equal", Document(Doc{{"a", Int32(1)}}), Document(Doc{{"a", Int32(1)}}), true},
			{"documents not equal", Document(Doc{{"a", Int32(1)}}), Document(Doc{{"a", Int32(2)}}), false},
			{"arrays equal", Array(Arr{Int32(1)}), Array(Arr{Int32(1)}), true},
			{"arrays not equal", Array(Arr{Int32(1)}), Array(Arr{Int64(1)}), false},
			{"binary equal", Binary(0x02, []byte{0x01}), Binary(0x02, []byte{0x01}), true},
			{"binary different subtype", Binary(0x02, []byte{0x01}), Binary(0x00, []byte{0x01}), false},
			{"objectIDs equal", ObjectID(oid), ObjectID(oid), true},
			{"booleans not equal", Boolean(true), Boolean(false), false},
			{"datetimes equal", DateTime(1234567890), DateTime(1234567890), true},
			{"nulls equal", Null(), Null(), true},
			{"regexes equal", Regex("pattern", "i"), Regex("pattern", "i"), true},
			{"regexes not equal", Regex("pattern", "i"), Regex("pattern", "m"), false},
			{"timestamps equal", Timestamp(12345, 1), Timestamp(12345, 1), true},
			{"timestamps swapped fields", Timestamp(12345, 1), Timestamp(1, 12345), false},
			{"minKeys equal", MinKey(), MinKey(), true},
			{"maxKeys equal", MaxKey(), MaxKey(), true},
		}

		for idx, tc := range testCases {
			tc := tc
			t.Run(tc.name, func(t *testing.T) {
				equal := tc.v1.Equal(tc.v2)
				if equal != tc.equal {
					t.Errorf("test case %d: Expected equality not satisfied. got %t; want %t", idx, equal, tc.equal)
					t.Errorf("\nv1: %#v\nv2: %#v", tc.v1, tc.v2)
					spew.Dump(tc.v1, tc.v2)
				}
			})
		}
	})
	t.Run("Time", func(t *testing.T) {
		now := time.Now().Truncate(time.Millisecond)
		val := Time(now)
		if got := val.Time(); !got.Equal(now) {
			t.Errorf("Time did not round trip through a datetime. got %v; want %v", got, now)
		}
		if got := val.DateTime(); got != now.Unix()*1000+int64(now.Nanosecond()/1e6) {
			t.Errorf("DateTime returned the wrong millisecond count. got %d", got)
		}
	})
	t.Run("String", func(t *testing.T) {
		testCases := []struct {
			name string
			val  Val
			want string
		}{
			{"double", Double(3.14159), `{"$numberDouble":"3.14159"}`},
			{"string", String("foo"), `"foo"`},
			{"int32", Int32(1), `{"$numberInt":"1"}`},
			{"int64", Int64(1), `{"$numberLong":"1"}`},
			{"boolean", Boolean(true), `true`},
			{"null", Null(), `null`},
			{"timestamp", Timestamp(12345, 1), `{"$timestamp":{"t":12345,"i":1}}`},
			{"minKey", MinKey(), `{"$minKey":1}`},
			{"maxKey", MaxKey(), `{"$maxKey":1}`},
			{"zero", Val{}, ``},
		}

		for _, tc := range testCases {
			tc := tc
			t.Run(tc.name, func(t *testing.T) {
				got := tc.val.String()
				if got != tc.want {
					t.Errorf("Output does not match. got %s; want %s", got, tc.want)
				}
			})
		}
	})
}
