// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package benchmark

import (
	"context"
	"errors"

	"github.com/10gen/mongolite/bson"
	"github.com/10gen/mongolite/bson/bsoncore"
)

func bsonDocumentEncoding(tm TimerManager, iters int, doc bson.Doc) error {
	tm.ResetTimer()

	for i := 0; i < iters; i++ {
		out, err := doc.MarshalBSON()
		if err != nil {
			return err
		}
		if len(out) == 0 {
			return errors.New("marshaling error")
		}
	}

	return nil
}

func bsonDocumentDecodingLazy(tm TimerManager, iters int, doc bson.Doc) error {
	raw, err := doc.MarshalBSON()
	if err != nil {
		return err
	}

	tm.ResetTimer()

	for i := 0; i < iters; i++ {
		if err := bsoncore.Document(raw).Validate(); err != nil {
			return err
		}
	}
	return nil
}

func bsonDocumentDecoding(tm TimerManager, iters int, doc bson.Doc, numKeys int) error {
	raw, err := doc.MarshalBSON()
	if err != nil {
		return err
	}

	tm.ResetTimer()

	for i := 0; i < iters; i++ {
		out, err := bson.ReadDoc(raw)
		if err != nil {
			return err
		}

		if countElements(out) != numKeys {
			return errors.New("document parsing error")
		}
	}
	return nil
}

func bsonDocumentRoundTrip(tm TimerManager, iters int, doc bson.Doc) error {
	tm.ResetTimer()

	for i := 0; i < iters; i++ {
		raw, err := doc.MarshalBSON()
		if err != nil {
			return err
		}

		out, err := bson.ReadDoc(raw)
		if err != nil {
			return err
		}
		if !out.Equal(doc) {
			return errors.New("documents do not match")
		}
	}
	return nil
}

func countElements(doc bson.Doc) int {
	count := 0
	for _, elem := range doc {
		count++
		if sub, ok := elem.Value.DocumentOK(); ok {
			count += countElements(sub)
		}
	}
	return count
}

func BSONFlatDocumentEncoding(ctx context.Context, tm TimerManager, iters int) error {
	return bsonDocumentEncoding(tm, iters, flatDocument())
}

func BSONFlatDocumentDecodingLazy(ctx context.Context, tm TimerManager, iters int) error {
	return bsonDocumentDecodingLazy(tm, iters, flatDocument())
}

func BSONFlatDocumentDecoding(ctx context.Context, tm TimerManager, iters int) error {
	return bsonDocumentDecoding(tm, iters, flatDocument(), 6*flatFieldGroups)
}

func BSONFlatDocumentRoundTrip(ctx context.Context, tm TimerManager, iters int) error {
	return bsonDocumentRoundTrip(tm, iters, flatDocument())
}

func BSONDeepDocumentEncoding(ctx context.Context, tm TimerManager, iters int) error {
	return bsonDocumentEncoding(tm, iters, deepDocument())
}

func BSONDeepDocumentDecodingLazy(ctx context.Context, tm TimerManager, iters int) error {
	return bsonDocumentDecodingLazy(tm, iters, deepDocument())
}

func BSONDeepDocumentDecoding(ctx context.Context, tm TimerManager, iters int) error {
	return bsonDocumentDecoding(tm, iters, deepDocument(), 1+deepElementCount(deepTreeDepth))
}

func BSONDeepDocumentRoundTrip(ctx context.Context, tm TimerManager, iters int) error {
	return bsonDocumentRoundTrip(tm, iters, deepDocument())
}

// deepElementCount returns the number of elements, at every level, of the
// tree produced by deepTreeLevel.
func deepElementCount(depth int) int {
	if depth == 0 {
		return 2
	}
	return 4 + 2*deepElementCount(depth-1)
}
