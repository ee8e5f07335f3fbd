// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package benchmark

import (
	"context"

	"github.com/10gen/mongolite/bson"
	"github.com/10gen/mongolite/bson/bsoncore"
	"github.com/10gen/mongolite/mongo"
	"github.com/10gen/mongolite/mongo/writeconcern"
	"github.com/pkg/errors"
)

// loopbackTransport validates every submitted document and serves a canned
// last operation result. It keeps the collection benchmarks focused on the
// document pipeline instead of on a server.
type loopbackTransport struct {
	lastOpResult []byte
}

func newLoopbackTransport() *loopbackTransport {
	idx, result := bsoncore.AppendDocumentStart(nil)
	result = bsoncore.AppendInt32Element(result, "ok", 1)
	result = bsoncore.AppendInt32Element(result, "nMatched", 1)
	result = bsoncore.AppendInt32Element(result, "nModified", 1)
	result, _ = bsoncore.AppendDocumentEnd(result, idx)
	return &loopbackTransport{lastOpResult: result}
}

func (t *loopbackTransport) SubmitInsert(ctx context.Context, document []byte, wc *writeconcern.WriteConcern) error {
	return bsoncore.Document(document).Validate()
}

func (t *loopbackTransport) SubmitDelete(ctx context.Context, selector []byte, flags mongo.DeleteFlags, wc *writeconcern.WriteConcern) error {
	return bsoncore.Document(selector).Validate()
}

func (t *loopbackTransport) SubmitUpdate(ctx context.Context, selector, update []byte, flags mongo.UpdateFlags, wc *writeconcern.WriteConcern) error {
	if err := bsoncore.Document(selector).Validate(); err != nil {
		return err
	}
	return bsoncore.Document(update).Validate()
}

func (t *loopbackTransport) FetchLastOperationResult(ctx context.Context) ([]byte, error) {
	return t.lastOpResult, nil
}

func collectionInsertCase(ctx context.Context, tm TimerManager, iters int, doc bson.Doc) error {
	coll := mongo.NewCollection("corpus", newLoopbackTransport())

	tm.ResetTimer()

	for i := 0; i < iters; i++ {
		res, err := coll.Insert(ctx, doc)
		if err != nil {
			return err
		}
		if res.InsertedID.IsZero() {
			return errors.New("no inserted ID returned")
		}
	}

	tm.StopTimer()

	return nil
}

func CollectionInsertSmallDocument(ctx context.Context, tm TimerManager, iters int) error {
	return collectionInsertCase(ctx, tm, iters, smallDocument())
}

func CollectionInsertLargeDocument(ctx context.Context, tm TimerManager, iters int) error {
	return collectionInsertCase(ctx, tm, iters, largeDocument())
}

func CollectionUpdateSmallDocument(ctx context.Context, tm TimerManager, iters int) error {
	coll := mongo.NewCollection("corpus", newLoopbackTransport())

	criteria := bson.Doc{{Key: "kind", Value: bson.String("canary")}}
	update := bson.Doc{{Key: "$set", Value: bson.Document(smallDocument())}}

	tm.ResetTimer()

	for i := 0; i < iters; i++ {
		res, err := coll.Update(ctx, criteria, update)
		if err != nil {
			return err
		}
		if res.MatchedCount != 1 {
			return errors.New("update did not match")
		}
	}

	tm.StopTimer()

	return nil
}

func CollectionRemoveSmallDocument(ctx context.Context, tm TimerManager, iters int) error {
	coll := mongo.NewCollection("corpus", newLoopbackTransport())

	criteria := bson.Doc{{Key: "kind", Value: bson.String("canary")}}

	tm.ResetTimer()

	for i := 0; i < iters; i++ {
		res, err := coll.Remove(ctx, criteria)
		if err != nil {
			return err
		}
		if !res.Acknowledged {
			return errors.New("remove was not acknowledged")
		}
	}

	tm.StopTimer()

	return nil
}
