// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongo

import (
	"context"

	"github.com/10gen/mongolite/mongo/writeconcern"
)

// DeleteFlags selects how many of the documents matching a selector a delete
// submission removes.
type DeleteFlags int32

// DeleteFlags known to SubmitDelete.
const (
	// DeleteNone removes every document matching the selector.
	DeleteNone DeleteFlags = 0

	// DeleteSingleRemove removes at most one matching document.
	DeleteSingleRemove DeleteFlags = 1 << 0
)

// UpdateFlags is a bitmask controlling how an update submission is applied.
// The flags combine independently: an update may be an upsert, a multi
// update, both, or neither.
type UpdateFlags int32

// UpdateFlags known to SubmitUpdate.
const (
	// UpdateNone applies the update to the first matching document only.
	UpdateNone UpdateFlags = 0

	// UpdateUpsert inserts the update document when nothing matches the
	// selector.
	UpdateUpsert UpdateFlags = 1 << 0

	// UpdateMultiUpdate applies the update to every matching document.
	UpdateMultiUpdate UpdateFlags = 1 << 1
)

// Transport is the driver boundary writes are submitted over. The document,
// selector, and update parameters are complete BSON documents. A failed
// submission is reported through an error whose message is suitable to hand
// to callers verbatim.
//
// Implementations must be safe for concurrent use. Cancellation and deadlines
// are the Transport's responsibility; the Collection passes ctx through
// untouched.
type Transport interface {
	// SubmitInsert submits an insert of document under the given write
	// concern. A nil write concern means the driver default.
	SubmitInsert(ctx context.Context, document []byte, wc *writeconcern.WriteConcern) error

	// SubmitDelete submits a delete of the documents matching selector.
	SubmitDelete(ctx context.Context, selector []byte, flags DeleteFlags, wc *writeconcern.WriteConcern) error

	// SubmitUpdate submits an update of the documents matching selector.
	SubmitUpdate(ctx context.Context, selector, update []byte, flags UpdateFlags, wc *writeconcern.WriteConcern) error

	// FetchLastOperationResult returns the result document of the most
	// recently completed operation as raw BSON.
	FetchLastOperationResult(ctx context.Context) ([]byte, error)
}
