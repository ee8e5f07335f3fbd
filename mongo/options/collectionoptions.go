// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import (
	"github.com/10gen/mongolite/event"
	"github.com/10gen/mongolite/mongo/mongolog"
	"github.com/10gen/mongolite/mongo/writeconcern"
)

// CollectionOptions represents all possible options for configuring a Collection.
type CollectionOptions struct {
	WriteConcern *writeconcern.WriteConcern // The default write concern for operations on the collection.
	Monitor      *event.CommandMonitor      // The monitor notified of command lifecycle events.
	Logger       *mongolog.MongoLogger      // The logger command debug lines are emitted on.
}

// Collection creates a new *CollectionOptions.
func Collection() *CollectionOptions {
	return &CollectionOptions{}
}

// SetWriteConcern sets the default write concern for operations on the collection.
func (co *CollectionOptions) SetWriteConcern(wc *writeconcern.WriteConcern) *CollectionOptions {
	co.WriteConcern = wc
	return co
}

// SetMonitor sets the monitor notified of command lifecycle events.
func (co *CollectionOptions) SetMonitor(m *event.CommandMonitor) *CollectionOptions {
	co.Monitor = m
	return co
}

// SetLogger sets the logger command debug lines are emitted on.
func (co *CollectionOptions) SetLogger(l *mongolog.MongoLogger) *CollectionOptions {
	co.Logger = l
	return co
}

// MergeCollectionOptions combines the given *CollectionOptions into a single
// *CollectionOptions in a last one wins fashion.
func MergeCollectionOptions(opts ...*CollectionOptions) *CollectionOptions {
	co := Collection()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if opt.WriteConcern != nil {
			co.WriteConcern = opt.WriteConcern
		}
		if opt.Monitor != nil {
			co.Monitor = opt.Monitor
		}
		if opt.Logger != nil {
			co.Logger = opt.Logger
		}
	}

	return co
}
