// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongo

import (
	"testing"

	"github.com/10gen/mongolite/bson"
	"github.com/10gen/mongolite/bson/primitive"
	"github.com/stretchr/testify/assert"
)

func TestNewUpdateResult(t *testing.T) {
	writeErrs := bson.Arr{bson.Document(bson.Doc{
		{Key: "index", Value: bson.Int32(0)},
		{Key: "code", Value: bson.Int32(11000)},
		{Key: "errmsg", Value: bson.String("duplicate")},
	})}

	testCases := []struct {
		description     string
		reply           bson.Doc
		ok              bool
		matched         int64
		modified        int64
		updatedExisting bool
		err             bson.Val
		lastOp          primitive.Timestamp
	}{
		{
			description: "typical reply",
			reply: bson.Doc{
				{Key: "ok", Value: bson.Double(1)},
				{Key: "nMatched", Value: bson.Int32(2)},
				{Key: "nModified", Value: bson.Int32(1)},
				{Key: "writeErrors", Value: bson.Array(bson.Arr{})},
			},
			ok:              true,
			matched:         2,
			modified:        1,
			updatedExisting: true,
			err:             bson.Array(bson.Arr{}),
		},
		{
			description: "empty reply keeps the defaults",
			reply:       bson.Doc{},
			ok:          true,
			err:         bson.Null(),
		},
		{
			description: "ok can be boolean",
			reply:       bson.Doc{{Key: "ok", Value: bson.Boolean(false)}},
			ok:          false,
			err:         bson.Null(),
		},
		{
			description: "ok zero is a failure",
			reply:       bson.Doc{{Key: "ok", Value: bson.Int32(0)}},
			ok:          false,
			err:         bson.Null(),
		},
		{
			description:     "n is read when nMatched is absent",
			reply:           bson.Doc{{"ok", bson.Int32(1)}, {"n", bson.Int64(3)}},
			ok:              true,
			matched:         3,
			updatedExisting: true,
			err:             bson.Null(),
		},
		{
			description: "nMatched wins over n",
			reply: bson.Doc{
				{"n", bson.Int32(1)},
				{"nMatched", bson.Int32(5)},
			},
			ok:              true,
			matched:         5,
			updatedExisting: true,
			err:             bson.Null(),
		},
		{
			description:     "counts may arrive as doubles",
			reply:           bson.Doc{{"n", bson.Double(2)}, {"nModified", bson.Double(2)}},
			ok:              true,
			matched:         2,
			modified:        2,
			updatedExisting: true,
			err:             bson.Null(),
		},
		{
			description: "writeErrors carried under Err and ErrMsg",
			reply: bson.Doc{
				{"ok", bson.Int32(1)},
				{"writeErrors", bson.Array(writeErrs)},
			},
			ok:  true,
			err: bson.Array(writeErrs),
		},
		{
			description: "lastOp timestamp is projected",
			reply: bson.Doc{
				{"ok", bson.Int32(1)},
				{"n", bson.Int32(1)},
				{"lastOp", bson.Timestamp(100, 2)},
			},
			ok:              true,
			matched:         1,
			updatedExisting: true,
			err:             bson.Null(),
			lastOp:          primitive.Timestamp{T: 100, I: 2},
		},
		{
			description: "non-timestamp lastOp is ignored",
			reply:       bson.Doc{{"lastOp", bson.Int32(5)}},
			ok:          true,
			err:         bson.Null(),
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()

			got := newUpdateResult(tc.reply)

			assert.Equal(t, tc.ok, got.OK, "OK values do not match")
			assert.Equal(t, tc.matched, got.MatchedCount, "MatchedCount values do not match")
			assert.Equal(t, tc.modified, got.ModifiedCount, "ModifiedCount values do not match")
			assert.Equal(t, tc.updatedExisting, got.UpdatedExisting, "UpdatedExisting values do not match")
			assert.True(t, got.Err.Equal(tc.err), "expected Err %v, got %v", tc.err, got.Err)
			assert.True(t, got.ErrMsg.Equal(tc.err), "expected ErrMsg %v, got %v", tc.err, got.ErrMsg)
			assert.Equal(t, tc.lastOp, got.LastOp, "LastOp values do not match")
			assert.True(t, got.Raw.Equal(tc.reply), "expected Raw to hold the reply")
		})
	}
}

func TestInt64Value(t *testing.T) {
	testCases := []struct {
		description string
		val         bson.Val
		want        int64
	}{
		{"int32", bson.Int32(-7), -7},
		{"int64", bson.Int64(1 << 40), 1 << 40},
		{"double", bson.Double(3.9), 3},
		{"non numeric", bson.String("3"), 0},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, int64Value(tc.val))
		})
	}
}
