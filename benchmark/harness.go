// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package benchmark

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	ExecutionTimeout = 5 * time.Minute
	StandardRuntime  = time.Minute
	MinimumRuntime   = 10 * time.Second
	MinIterations    = 100

	ten         = 10
	hundred     = ten * ten
	thousand    = ten * hundred
	tenThousand = ten * thousand
)

type BenchCase func(context.Context, TimerManager, int) error
type BenchFunction func(*testing.B)

func WrapCase(bench BenchCase) BenchFunction {
	name := getName(bench)
	return func(b *testing.B) {
		ctx := context.Background()
		b.ResetTimer()
		err := bench(ctx, b, b.N)
		require.NoError(b, err, "case='%s'", name)
	}
}

func getAllCases() []*CaseDefinition {
	flatSize := rawSize(flatDocument())
	deepSize := rawSize(deepDocument())
	smallSize := rawSize(smallDocument())
	largeSize := rawSize(largeDocument())

	return []*CaseDefinition{
		{
			Bench:   CanaryIncCase,
			Count:   hundred,
			Size:    -1,
			Runtime: MinimumRuntime,
		},
		{
			Bench:   GlobalCanaryIncCase,
			Count:   hundred,
			Size:    -1,
			Runtime: MinimumRuntime,
		},
		{
			Bench:   BSONFlatDocumentEncoding,
			Count:   tenThousand,
			Size:    tenThousand * flatSize,
			Runtime: StandardRuntime,
		},
		{
			Bench:   BSONFlatDocumentDecodingLazy,
			Count:   tenThousand,
			Size:    tenThousand * flatSize,
			Runtime: StandardRuntime,
		},
		{
			Bench:   BSONFlatDocumentDecoding,
			Count:   tenThousand,
			Size:    tenThousand * flatSize,
			Runtime: StandardRuntime,
		},
		{
			Bench:   BSONFlatDocumentRoundTrip,
			Count:   tenThousand,
			Size:    tenThousand * flatSize,
			Runtime: StandardRuntime,
		},
		{
			Bench:   BSONDeepDocumentEncoding,
			Count:   tenThousand,
			Size:    tenThousand * deepSize,
			Runtime: StandardRuntime,
		},
		{
			Bench:   BSONDeepDocumentDecodingLazy,
			Count:   tenThousand,
			Size:    tenThousand * deepSize,
			Runtime: StandardRuntime,
		},
		{
			Bench:   BSONDeepDocumentDecoding,
			Count:   tenThousand,
			Size:    tenThousand * deepSize,
			Runtime: StandardRuntime,
		},
		{
			Bench:   BSONDeepDocumentRoundTrip,
			Count:   tenThousand,
			Size:    tenThousand * deepSize,
			Runtime: StandardRuntime,
		},
		{
			Bench:   BSONFlatViewDecoding,
			Count:   tenThousand,
			Size:    tenThousand * flatSize,
			Runtime: StandardRuntime,
		},
		{
			Bench:   BSONDeepViewDecoding,
			Count:   tenThousand,
			Size:    tenThousand * deepSize,
			Runtime: StandardRuntime,
		},
		{
			Bench:   CollectionInsertSmallDocument,
			Count:   tenThousand,
			Size:    tenThousand * smallSize,
			Runtime: StandardRuntime,
		},
		{
			Bench:   CollectionInsertLargeDocument,
			Count:   ten,
			Size:    ten * largeSize,
			Runtime: StandardRuntime,
		},
		{
			Bench:   CollectionUpdateSmallDocument,
			Count:   tenThousand,
			Size:    tenThousand * smallSize,
			Runtime: StandardRuntime,
		},
		{
			Bench:   CollectionRemoveSmallDocument,
			Count:   tenThousand,
			Size:    tenThousand * smallSize,
			Runtime: StandardRuntime,
		},
	}
}
