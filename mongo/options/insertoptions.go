// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import "github.com/10gen/mongolite/mongo/writeconcern"

// InsertOptions represents all possible options for an insert operation.
type InsertOptions struct {
	WriteConcern *writeconcern.WriteConcern // The write concern the operation is acknowledged under.
}

// Insert creates a new *InsertOptions.
func Insert() *InsertOptions {
	return &InsertOptions{}
}

// SetWriteConcern sets the write concern for the operation.
func (io *InsertOptions) SetWriteConcern(wc *writeconcern.WriteConcern) *InsertOptions {
	io.WriteConcern = wc
	return io
}

// MergeInsertOptions combines the given *InsertOptions into a single
// *InsertOptions in a last one wins fashion.
func MergeInsertOptions(opts ...*InsertOptions) *InsertOptions {
	io := Insert()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if opt.WriteConcern != nil {
			io.WriteConcern = opt.WriteConcern
		}
	}

	return io
}
