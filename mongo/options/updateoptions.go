// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import "github.com/10gen/mongolite/mongo/writeconcern"

// UpdateOptions represents all possible options for an update operation.
type UpdateOptions struct {
	Multi        *bool                      // If true, every matching document is modified instead of the first.
	Upsert       *bool                      // If true, a new document is inserted when the selector matches nothing.
	WriteConcern *writeconcern.WriteConcern // The write concern the operation is acknowledged under.
}

// Update creates a new *UpdateOptions.
func Update() *UpdateOptions {
	return &UpdateOptions{}
}

// SetMulti specifies whether the update should modify every matching document.
func (uo *UpdateOptions) SetMulti(b bool) *UpdateOptions {
	uo.Multi = &b
	return uo
}

// SetUpsert specifies whether a new document should be inserted when the
// selector matches no documents.
func (uo *UpdateOptions) SetUpsert(b bool) *UpdateOptions {
	uo.Upsert = &b
	return uo
}

// SetWriteConcern sets the write concern for the operation.
func (uo *UpdateOptions) SetWriteConcern(wc *writeconcern.WriteConcern) *UpdateOptions {
	uo.WriteConcern = wc
	return uo
}

// MergeUpdateOptions combines the given *UpdateOptions into a single
// *UpdateOptions in a last one wins fashion.
func MergeUpdateOptions(opts ...*UpdateOptions) *UpdateOptions {
	uo := Update()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if opt.Multi != nil {
			uo.Multi = opt.Multi
		}
		if opt.Upsert != nil {
			uo.Upsert = opt.Upsert
		}
		if opt.WriteConcern != nil {
			uo.WriteConcern = opt.WriteConcern
		}
	}

	return uo
}
