// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongo

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/10gen/mongolite/bson"
)

// ErrNilDocument is returned when a nil document is passed to a write
// operation.
var ErrNilDocument = errors.New("document is nil")

// ErrNilTransport is returned when a Collection is used without a Transport.
var ErrNilTransport = errors.New("transport is nil")

// ErrUnacknowledgedWrite is returned from functions that have an
// unacknowledged write concern.
var ErrUnacknowledgedWrite = errors.New("unacknowledged write")

// WriteError is a non-write concern failure that occurred as a result of a
// write operation. The Message is the driver's message, unmodified.
type WriteError struct {
	Index   int
	Code    int
	Message string
}

func (we WriteError) Error() string { return we.Message }

// WriteErrors is a group of non-write concern failures that occurred as a
// result of a write operation.
type WriteErrors []WriteError

func (we WriteErrors) Error() string {
	var buf bytes.Buffer
	fmt.Fprint(&buf, "write errors: [")
	for idx, err := range we {
		if idx != 0 {
			fmt.Fprintf(&buf, ", ")
		}
		fmt.Fprintf(&buf, "{%s}", err)
	}
	fmt.Fprint(&buf, "]")
	return buf.String()
}

// WriteConcernError is a write concern failure that occurred as a result of a
// write operation.
type WriteConcernError struct {
	Code    int
	Message string
	Details bson.Doc
}

func (wce WriteConcernError) Error() string { return wce.Message }

// processWriteError converts an error reported by a Transport submission into
// the error surface of this package. Errors already typed by this package
// pass through unchanged; anything else becomes a WriteError carrying the
// driver's message verbatim.
func processWriteError(err error) error {
	if err == nil {
		return nil
	}
	if err == ErrUnacknowledgedWrite {
		return err
	}
	switch err.(type) {
	case WriteError, WriteErrors, WriteConcernError:
		return err
	}
	return WriteError{Message: err.Error()}
}
