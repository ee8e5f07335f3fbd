// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongo

import (
	"github.com/10gen/mongolite/bson"
	"github.com/10gen/mongolite/bson/bsontype"
	"github.com/10gen/mongolite/bson/primitive"
)

// InsertResult is a result of an Insert operation.
type InsertResult struct {
	// The _id of the inserted document. When the submitted document carried
	// no _id, this is the ObjectID the Collection generated for it.
	InsertedID bson.Val

	// Acknowledged is false when the write used an unacknowledged write
	// concern.
	Acknowledged bool
}

// RemoveResult is a result of a Remove operation.
type RemoveResult struct {
	// Acknowledged is false when the write used an unacknowledged write
	// concern.
	Acknowledged bool
}

// UpdateResult is a result of an Update operation, projected from the
// driver's last-operation result document.
type UpdateResult struct {
	// OK reports whether the driver considered the update successful.
	OK bool

	// The number of documents that matched the selector.
	MatchedCount int64

	// The number of documents that were modified.
	ModifiedCount int64

	// UpdatedExisting reports whether the update matched an existing
	// document.
	UpdatedExisting bool

	// Err and ErrMsg both hold the reply's writeErrors value; callers
	// historically read either one. Null when the reply has no writeErrors
	// field.
	Err    bson.Val
	ErrMsg bson.Val

	// LastOp is the operation time reported by the driver, or the zero
	// Timestamp when the reply carries none.
	LastOp primitive.Timestamp

	// Raw is the full decoded reply, for fields not otherwise projected.
	Raw bson.Doc
}

// newUpdateResult projects the decoded last-operation result document into an
// UpdateResult. Missing fields keep their documented defaults: OK true,
// counts zero, Err and ErrMsg null, LastOp zero.
func newUpdateResult(reply bson.Doc) *UpdateResult {
	result := UpdateResult{
		OK:     true,
		Err:    bson.Null(),
		ErrMsg: bson.Null(),
		Raw:    reply,
	}

	if v, err := reply.LookupErr("ok"); err == nil {
		result.OK = booleanValue(v)
	}
	if v, err := reply.LookupErr("nMatched"); err == nil {
		result.MatchedCount = int64Value(v)
	} else if v, err := reply.LookupErr("n"); err == nil {
		result.MatchedCount = int64Value(v)
	}
	if v, err := reply.LookupErr("nModified"); err == nil {
		result.ModifiedCount = int64Value(v)
	}
	result.UpdatedExisting = result.MatchedCount > 0

	if v, err := reply.LookupErr("writeErrors"); err == nil {
		result.Err, result.ErrMsg = v, v
	}
	if v, err := reply.LookupErr("lastOp"); err == nil {
		if ts, ok := v.TimestampOK(); ok {
			result.LastOp = ts
		}
	}

	return &result
}

// int64Value coerces a numeric reply value to int64. Counts arrive as int32,
// int64, or double depending on the server generation.
func int64Value(v bson.Val) int64 {
	switch v.Type() {
	case bsontype.Int32:
		return int64(v.Int32())
	case bsontype.Int64:
		return v.Int64()
	case bsontype.Double:
		return int64(v.Double())
	}
	return 0
}

// booleanValue coerces a reply's ok value, which arrives as a boolean or as a
// numeric 0/1, to a bool.
func booleanValue(v bson.Val) bool {
	if b, ok := v.BooleanOK(); ok {
		return b
	}
	return v.IsNumber() && int64Value(v) != 0
}
