// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import "github.com/10gen/mongolite/mongo/writeconcern"

// RemoveOptions represents all possible options for a remove operation.
type RemoveOptions struct {
	JustOne      *bool                      // If true, only the first matching document is removed.
	WriteConcern *writeconcern.WriteConcern // The write concern the operation is acknowledged under.
}

// Remove creates a new *RemoveOptions.
func Remove() *RemoveOptions {
	return &RemoveOptions{}
}

// SetJustOne specifies whether the removal should stop after the first
// matching document.
func (ro *RemoveOptions) SetJustOne(b bool) *RemoveOptions {
	ro.JustOne = &b
	return ro
}

// SetWriteConcern sets the write concern for the operation.
func (ro *RemoveOptions) SetWriteConcern(wc *writeconcern.WriteConcern) *RemoveOptions {
	ro.WriteConcern = wc
	return ro
}

// MergeRemoveOptions combines the given *RemoveOptions into a single
// *RemoveOptions in a last one wins fashion.
func MergeRemoveOptions(opts ...*RemoveOptions) *RemoveOptions {
	ro := Remove()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if opt.JustOne != nil {
			ro.JustOne = opt.JustOne
		}
		if opt.WriteConcern != nil {
			ro.WriteConcern = opt.WriteConcern
		}
	}

	return ro
}
