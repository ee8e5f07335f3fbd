// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package bson is a library for reading, writing, and manipulating BSON. The
// library models a BSON document as an ordered slice of elements, with a
// closed set of value types that survive a round trip through the wire
// format without loss.
//
// The Doc type is the primary type. It is an ordered representation of a
// BSON document, each element of which pairs a string key with a Val. The
// Arr type is a BSON array and the Val type is a concise, immutable
// representation of any single BSON value. Values are built with the
// constructor functions in this package.
//
// Example:
// 		bson.Doc{
// 			{"foo", bson.String("bar")},
// 			{"hello", bson.Int32(42)},
// 			{"pi", bson.Double(3.14159)},
// 		}
//
// Documents support lookup by key, including dotted traversal through
// embedded documents and numeric traversal through arrays, along with the
// Append, Prepend, Set, and Delete methods for manipulation.
//
// Marshaling and unmarshaling are handled by the Marshal and ReadDoc
// functions and the MarshalBSON and UnmarshalBSON families of methods.
// Encoding is exact: the bytes produced by Marshal decode to an equal Doc,
// and the bytes produced from a decoded Doc are identical to the input.
//
// Example:
// 		b, err := bson.Marshal(bson.Doc{{"foo", bson.String("bar")}})
// 		if err != nil { return err }
// 		doc, err := bson.ReadDoc(b)
// 		if err != nil { return err }
// 		// do something with doc...
//
// Decoding recognizes symbol, code with scope, and undefined elements and
// skips over them without producing an element. Any other tag outside the
// supported set fails with bsoncore.InvalidTypeError.
package bson
