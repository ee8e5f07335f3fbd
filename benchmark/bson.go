// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package benchmark

import (
	"fmt"
	"strings"

	"github.com/10gen/mongolite/bson"
)

// utility functions and source documents for the bson benchmarks

const (
	flatFieldGroups = 24
	deepTreeDepth   = 6
	largeFieldCount = 64
)

var largeFieldValue = strings.Repeat("mongolite", 114)

// flatDocument returns a wide document of scalar values.
func flatDocument() bson.Doc {
	doc := make(bson.Doc, 0, 6*flatFieldGroups)
	for i := 0; i < flatFieldGroups; i++ {
		doc = append(doc,
			bson.Elem{Key: fmt.Sprintf("double_%02d", i), Value: bson.Double(float64(i) * 1.5)},
			bson.Elem{Key: fmt.Sprintf("string_%02d", i), Value: bson.String(fmt.Sprintf("benchmark value %d", i))},
			bson.Elem{Key: fmt.Sprintf("int32_%02d", i), Value: bson.Int32(int32(i))},
			bson.Elem{Key: fmt.Sprintf("int64_%02d", i), Value: bson.Int64(int64(i) << 32)},
			bson.Elem{Key: fmt.Sprintf("boolean_%02d", i), Value: bson.Boolean(i%2 == 0)},
			bson.Elem{Key: fmt.Sprintf("datetime_%02d", i), Value: bson.DateTime(1509586466975 + int64(i))},
		)
	}
	return doc
}

// deepDocument returns a full binary tree of nested documents.
func deepDocument() bson.Doc {
	return bson.Doc{{Key: "root", Value: bson.Document(deepTreeLevel(deepTreeDepth))}}
}

func deepTreeLevel(depth int) bson.Doc {
	doc := bson.Doc{
		{Key: "depth", Value: bson.Int32(int32(depth))},
		{Key: "tags", Value: bson.Array(bson.Arr{bson.String("left"), bson.String("right")})},
	}
	if depth == 0 {
		return doc
	}
	return append(doc,
		bson.Elem{Key: "left", Value: bson.Document(deepTreeLevel(depth - 1))},
		bson.Elem{Key: "right", Value: bson.Document(deepTreeLevel(depth - 1))},
	)
}

// smallDocument returns the document used by the small write workloads.
func smallDocument() bson.Doc {
	return bson.Doc{
		{Key: "kind", Value: bson.String("canary")},
		{Key: "seq", Value: bson.Int64(42)},
		{Key: "score", Value: bson.Double(1.618)},
		{Key: "active", Value: bson.Boolean(true)},
	}
}

// largeDocument returns the document used by the large write workloads. It
// is a little over 64KiB of string fields plus a binary payload.
func largeDocument() bson.Doc {
	doc := make(bson.Doc, 0, largeFieldCount+1)
	for i := 0; i < largeFieldCount; i++ {
		doc = append(doc, bson.Elem{Key: fmt.Sprintf("field_%03d", i), Value: bson.String(largeFieldValue)})
	}
	return append(doc, bson.Elem{Key: "payload", Value: bson.Binary(0x00, make([]byte, 8*hundred))})
}

func rawSize(doc bson.Doc) int {
	raw, err := doc.MarshalBSON()
	if err != nil {
		return 0
	}
	return len(raw)
}
