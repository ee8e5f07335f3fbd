// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongolog

// Options represents options that can be used to configure a MongoLogger object
type Options struct {
	Logger            Logger
	MaxDocumentLength *int
	OutputFile        *string
	CommandLevel      *Level
	TransportLevel    *Level
}

// NewOptions creates a new Options instance
func NewOptions() *Options {
	return &Options{}
}

// SetLogger sets the underlying logger
func (mlo *Options) SetLogger(logger Logger) *Options {
	mlo.Logger = logger
	return mlo
}

// SetMaxDocumentLength sets the maximum length for extended json documents in
// log messages. If a document is longer than that it is truncated. Defaults
// to 1000.
func (mlo *Options) SetMaxDocumentLength(length int) *Options {
	mlo.MaxDocumentLength = &length
	return mlo
}

// SetMaxDocumentLengthUnlimited makes the logger print entire documents
// regardless of length.
func (mlo *Options) SetMaxDocumentLengthUnlimited() *Options {
	unlimited := 0
	mlo.MaxDocumentLength = &unlimited
	return mlo
}

// SetOutputFile sets the output file for the logs. This only applies if SetLogger is not called
func (mlo *Options) SetOutputFile(file string) *Options {
	mlo.OutputFile = &file
	return mlo
}

// SetLevel sets the log level for all components
func (mlo *Options) SetLevel(level Level) *Options {
	mlo.CommandLevel = &level
	mlo.TransportLevel = &level
	return mlo
}

// SetCommandLevel sets the log level for commands
func (mlo *Options) SetCommandLevel(level Level) *Options {
	mlo.CommandLevel = &level
	return mlo
}

// SetTransportLevel sets the log level for transport activity
func (mlo *Options) SetTransportLevel(level Level) *Options {
	mlo.TransportLevel = &level
	return mlo
}

// MergeOptions combines the given Options instances into a single Options in a last-one-wins fashion.
func MergeOptions(opts ...*Options) *Options {
	mlOpts := NewOptions()
	for _, mlo := range opts {
		if mlo == nil {
			continue
		}
		if mlo.Logger != nil {
			mlOpts.Logger = mlo.Logger
		}
		if mlo.MaxDocumentLength != nil {
			mlOpts.MaxDocumentLength = mlo.MaxDocumentLength
		}
		if mlo.OutputFile != nil {
			mlOpts.OutputFile = mlo.OutputFile
		}
		if mlo.CommandLevel != nil {
			mlOpts.CommandLevel = mlo.CommandLevel
		}
		if mlo.TransportLevel != nil {
			mlOpts.TransportLevel = mlo.TransportLevel
		}
	}

	return mlOpts
}
