// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsoncore

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestElement(t *testing.T) {
	t.Run("KeyErr", func(t *testing.T) {
		testCases := []struct {
			name string
			elem Element
			key  string
			err  error
		}{
			{"no type", Element{}, "", ErrElementMissingType},
			{"no key", Element{0x02, 'f', 'o', 'o'}, "", ErrElementMissingKey},
			{"success", AppendNullElement(nil, "foobar"), "foobar", nil},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				key, err := tc.elem.KeyErr()
				if !compareErrors(err, tc.err) {
					t.Errorf("errors do not match. got %v; want %v", err, tc.err)
				}
				if key != tc.key {
					t.Errorf("keys do not match. got %s; want %s", key, tc.key)
				}
			})
		}
	})
	t.Run("Validate", func(t *testing.T) {
		testCases := []struct {
			name string
			elem Element
			err  error
		}{
			{"no type", Element{}, ErrElementMissingType},
			{"no key", Element{0x0A, 'f', 'o', 'o'}, ErrElementMissingKey},
			{"invalid value", Element{0x02, 'f', 0x00, 0x01, 0x02}, NewInsufficientBytesError(nil, nil)},
			{"success", AppendDoubleElement(nil, "pi", 3.14159), nil},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				err := tc.elem.Validate()
				if !compareErrors(err, tc.err) {
					t.Errorf("errors do not match. got %v; want %v", err, tc.err)
				}
			})
		}
	})
	t.Run("CompareKey", func(t *testing.T) {
		testCases := []struct {
			name  string
			elem  Element
			key   []byte
			equal bool
		}{
			{"too short", Element{0x0A}, []byte("foo"), false},
			{"no key", Element{0x0A, 'f', 'o', 'o'}, []byte("foo"), false},
			{"equal", AppendNullElement(nil, "foo"), []byte("foo"), true},
			{"equal with null byte", AppendNullElement(nil, "foo"), []byte("foo\x00bar"), true},
			{"not equal", AppendNullElement(nil, "foo"), []byte("bar"), false},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				equal := tc.elem.CompareKey(tc.key)
				if equal != tc.equal {
					t.Errorf("Did not get expected result from CompareKey. got %t; want %t", equal, tc.equal)
				}
			})
		}
	})
	t.Run("ValueErr", func(t *testing.T) {
		testCases := []struct {
			name string
			elem Element
			val  Value
			err  error
		}{
			{"no type", Element{}, Value{}, ErrElementMissingType},
			{"no key", Element{0x0A, 'f', 'o', 'o'}, Value{}, ErrElementMissingKey},
			{"insufficient bytes", Element{0x01, 'f', 0x00, 0x01, 0x02}, Value{}, NewInsufficientBytesError(nil, nil)},
			{"success", AppendInt32Element(nil, "foo", 42),
				Value{Type: TypeInt32, Data: AppendInt32(nil, 42)}, nil},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				val, err := tc.elem.ValueErr()
				if !compareErrors(err, tc.err) {
					t.Errorf("errors do not match. got %v; want %v", err, tc.err)
				}
				if !cmp.Equal(val, tc.val) {
					t.Errorf("Values do not match. got %v; want %v", val, tc.val)
				}
			})
		}
	})
	t.Run("String", func(t *testing.T) {
		testCases := []struct {
			name string
			elem Element
			str  string
		}{
			{"empty", Element{}, ""},
			{"no key", Element{0x0A, 'f', 'o', 'o'}, ""},
			{"malformed value", Element{0x02, 'f', 0x00, 0x01, 0x02}, ""},
			{"string", AppendStringElement(nil, "foo", "bar"), `"foo": "bar"`},
			{"int32", AppendInt32Element(nil, "foo", 42), `"foo": {"$numberInt":"42"}`},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				str := tc.elem.String()
				if str != tc.str {
					t.Errorf("element strings do not match. got %q; want %q", str, tc.str)
				}
			})
		}
	})
	t.Run("DebugString", func(t *testing.T) {
		testCases := []struct {
			name string
			elem Element
			str  string
		}{
			{"empty", Element{}, "<malformed>"},
			{"no key", Element{0x0A, 'f', 'o', 'o'}, "bson.Element{[null]<malformed>}"},
			{"malformed value", Element{0x02, 'f', 0x00, 0x01, 0x02}, `bson.Element{[string]"f": <malformed>}`},
			{"string", AppendStringElement(nil, "foo", "bar"), `bson.Element{[string]"foo": "bar"}`},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				str := tc.elem.DebugString()
				if str != tc.str {
					t.Errorf("element debug strings do not match. got %q; want %q", str, tc.str)
				}
			})
		}
	})
}
