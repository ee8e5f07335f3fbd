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

func bsonViewDecoding(tm TimerManager, iters int, doc bson.Doc, numElements int) error {
	raw, err := doc.MarshalBSON()
	if err != nil {
		return err
	}

	tm.ResetTimer()

	for i := 0; i < iters; i++ {
		elms, err := bsoncore.Document(raw).Elements()
		if err != nil {
			return err
		}
		if len(elms) != numElements {
			return errors.New("view parsing error")
		}
		for _, elm := range elms {
			if err := elm.Value().Validate(); err != nil {
				return err
			}
		}
	}

	return nil
}

func BSONFlatViewDecoding(ctx context.Context, tm TimerManager, iters int) error {
	return bsonViewDecoding(tm, iters, flatDocument(), 6*flatFieldGroups)
}

func BSONDeepViewDecoding(ctx context.Context, tm TimerManager, iters int) error {
	return bsonViewDecoding(tm, iters, deepDocument(), 1)
}
