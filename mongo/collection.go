// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongo

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/10gen/mongolite/bson"
	"github.com/10gen/mongolite/bson/bsoncore"
	"github.com/10gen/mongolite/bson/primitive"
	"github.com/10gen/mongolite/event"
	"github.com/10gen/mongolite/internal"
	"github.com/10gen/mongolite/mongo/mongolog"
	"github.com/10gen/mongolite/mongo/options"
	"github.com/10gen/mongolite/mongo/writeconcern"
)

// Command names attached to monitoring events and log lines.
const (
	commandInsert = "insert"
	commandDelete = "delete"
	commandUpdate = "update"
)

// globalRequestID is the source of the request ids attached to monitoring
// events.
var globalRequestID int64

func nextRequestID() int64 { return atomic.AddInt64(&globalRequestID, 1) }

// Collection performs write operations against a named collection over a
// Transport. A Collection is immutable after construction and safe for
// concurrent use by multiple goroutines.
type Collection struct {
	name         string
	transport    Transport
	writeConcern *writeconcern.WriteConcern
	monitor      *event.CommandMonitor
	logger       *mongolog.MongoLogger
}

// NewCollection creates a Collection writing to the named collection over
// transport. A write concern given through options becomes the default for
// every operation; a nil write concern leaves the choice to the driver.
func NewCollection(name string, transport Transport, opts ...*options.CollectionOptions) *Collection {
	collOpt := options.MergeCollectionOptions(opts...)

	return &Collection{
		name:         name,
		transport:    transport,
		writeConcern: collOpt.WriteConcern,
		monitor:      collOpt.Monitor,
		logger:       collOpt.Logger,
	}
}

// Name returns the name of the collection.
func (coll *Collection) Name() string { return coll.name }

// Insert inserts document into the collection. When document has no _id
// element, a copy with a freshly generated ObjectID prepended is inserted and
// document itself is left unmodified; the inserted identifier is reported
// through InsertResult.InsertedID either way.
func (coll *Collection) Insert(ctx context.Context, document bson.Doc,
	opts ...*options.InsertOptions) (*InsertResult, error) {

	if ctx == nil {
		ctx = context.Background()
	}
	if coll.transport == nil {
		return nil, ErrNilTransport
	}
	if document == nil {
		return nil, ErrNilDocument
	}

	doc, id := ensureID(document)
	raw, err := doc.MarshalBSON()
	if err != nil {
		return nil, err
	}

	insertOpts := options.MergeInsertOptions(opts...)
	wc := coll.resolveWriteConcern(insertOpts.WriteConcern)

	requestID := nextRequestID()
	coll.publishStartedEvent(ctx, commandInsert, coll.insertCommand(raw), requestID)
	start := time.Now()
	err = coll.transport.SubmitInsert(ctx, raw, wc)
	coll.publishFinishedEvent(ctx, commandInsert, requestID, time.Since(start), nil, err)
	if err != nil {
		return nil, processWriteError(err)
	}

	return &InsertResult{InsertedID: id, Acknowledged: writeconcern.AckWrite(wc)}, nil
}

// Remove deletes the documents matching criteria. Every matching document is
// deleted unless RemoveOptions.JustOne restricts the delete to a single
// document.
func (coll *Collection) Remove(ctx context.Context, criteria bson.Doc,
	opts ...*options.RemoveOptions) (*RemoveResult, error) {

	if ctx == nil {
		ctx = context.Background()
	}
	if coll.transport == nil {
		return nil, ErrNilTransport
	}
	if criteria == nil {
		return nil, ErrNilDocument
	}

	selector, err := criteria.MarshalBSON()
	if err != nil {
		return nil, err
	}

	removeOpts := options.MergeRemoveOptions(opts...)
	flags := DeleteNone
	if removeOpts.JustOne != nil && *removeOpts.JustOne {
		flags = DeleteSingleRemove
	}
	wc := coll.resolveWriteConcern(removeOpts.WriteConcern)

	requestID := nextRequestID()
	coll.publishStartedEvent(ctx, commandDelete, coll.deleteCommand(selector, flags), requestID)
	start := time.Now()
	err = coll.transport.SubmitDelete(ctx, selector, flags, wc)
	coll.publishFinishedEvent(ctx, commandDelete, requestID, time.Since(start), nil, err)
	if err != nil {
		return nil, processWriteError(err)
	}

	return &RemoveResult{Acknowledged: writeconcern.AckWrite(wc)}, nil
}

// Update applies update to the documents matching criteria. The update is
// applied to the first match only unless UpdateOptions.Multi is set; when
// UpdateOptions.Upsert is set and nothing matches, the update document is
// inserted. The two options resolve independently.
//
// After a successful submission the driver's last-operation result is
// fetched, decoded, and projected into the returned UpdateResult.
func (coll *Collection) Update(ctx context.Context, criteria, update bson.Doc,
	opts ...*options.UpdateOptions) (*UpdateResult, error) {

	if ctx == nil {
		ctx = context.Background()
	}
	if coll.transport == nil {
		return nil, ErrNilTransport
	}
	if criteria == nil || update == nil {
		return nil, ErrNilDocument
	}

	selector, err := criteria.MarshalBSON()
	if err != nil {
		return nil, err
	}
	updateDoc, err := update.MarshalBSON()
	if err != nil {
		return nil, err
	}

	updateOpts := options.MergeUpdateOptions(opts...)
	flags := UpdateNone
	if updateOpts.Upsert != nil && *updateOpts.Upsert {
		flags |= UpdateUpsert
	}
	if updateOpts.Multi != nil && *updateOpts.Multi {
		flags |= UpdateMultiUpdate
	}
	wc := coll.resolveWriteConcern(updateOpts.WriteConcern)

	requestID := nextRequestID()
	coll.publishStartedEvent(ctx, commandUpdate, coll.updateCommand(selector, updateDoc, flags), requestID)
	start := time.Now()
	err = coll.transport.SubmitUpdate(ctx, selector, updateDoc, flags, wc)
	if err != nil {
		coll.publishFinishedEvent(ctx, commandUpdate, requestID, time.Since(start), nil, err)
		return nil, processWriteError(err)
	}

	rawReply, err := coll.transport.FetchLastOperationResult(ctx)
	coll.publishFinishedEvent(ctx, commandUpdate, requestID, time.Since(start), rawReply, err)
	if err != nil {
		return nil, processWriteError(err)
	}

	reply, err := bson.ReadDoc(rawReply)
	if err != nil {
		return nil, internal.WrapError(err, "unable to decode the last operation result")
	}

	return newUpdateResult(reply), nil
}

// resolveWriteConcern picks the write concern for a single operation: the
// per-call write concern when given, the collection default otherwise.
func (coll *Collection) resolveWriteConcern(wc *writeconcern.WriteConcern) *writeconcern.WriteConcern {
	if wc != nil {
		return wc
	}
	return coll.writeConcern
}

// ensureID returns a document guaranteed to carry an _id element along with
// that element's value. When doc already has an _id it is returned as is;
// otherwise a copy with a freshly generated ObjectID prepended is returned
// and doc is not modified.
func ensureID(doc bson.Doc) (bson.Doc, bson.Val) {
	if idx := doc.IndexOf("_id"); idx >= 0 {
		return doc, doc[idx].Value
	}

	id := bson.ObjectID(primitive.NewObjectID())
	return append(bson.Doc{{Key: "_id", Value: id}}, doc...), id
}

// insertCommand renders the command document attached to monitoring events
// for an insert submission.
func (coll *Collection) insertCommand(document []byte) bsoncore.Document {
	idx, cmd := bsoncore.AppendDocumentStart(nil)
	cmd = bsoncore.AppendStringElement(cmd, commandInsert, coll.name)
	aidx, cmd := bsoncore.AppendArrayElementStart(cmd, "documents")
	cmd = bsoncore.AppendDocumentElement(cmd, "0", document)
	cmd, _ = bsoncore.AppendArrayEnd(cmd, aidx)
	cmd, _ = bsoncore.AppendDocumentEnd(cmd, idx)
	return cmd
}

// deleteCommand renders the command document attached to monitoring events
// for a delete submission.
func (coll *Collection) deleteCommand(selector []byte, flags DeleteFlags) bsoncore.Document {
	var limit int32
	if flags&DeleteSingleRemove != 0 {
		limit = 1
	}

	idx, cmd := bsoncore.AppendDocumentStart(nil)
	cmd = bsoncore.AppendStringElement(cmd, commandDelete, coll.name)
	aidx, cmd := bsoncore.AppendArrayElementStart(cmd, "deletes")
	didx, cmd := bsoncore.AppendDocumentElementStart(cmd, "0")
	cmd = bsoncore.AppendDocumentElement(cmd, "q", selector)
	cmd = bsoncore.AppendInt32Element(cmd, "limit", limit)
	cmd, _ = bsoncore.AppendDocumentEnd(cmd, didx)
	cmd, _ = bsoncore.AppendArrayEnd(cmd, aidx)
	cmd, _ = bsoncore.AppendDocumentEnd(cmd, idx)
	return cmd
}

// updateCommand renders the command document attached to monitoring events
// for an update submission.
func (coll *Collection) updateCommand(selector, update []byte, flags UpdateFlags) bsoncore.Document {
	idx, cmd := bsoncore.AppendDocumentStart(nil)
	cmd = bsoncore.AppendStringElement(cmd, commandUpdate, coll.name)
	aidx, cmd := bsoncore.AppendArrayElementStart(cmd, "updates")
	didx, cmd := bsoncore.AppendDocumentElementStart(cmd, "0")
	cmd = bsoncore.AppendDocumentElement(cmd, "q", selector)
	cmd = bsoncore.AppendDocumentElement(cmd, "u", update)
	cmd = bsoncore.AppendBooleanElement(cmd, "upsert", flags&UpdateUpsert != 0)
	cmd = bsoncore.AppendBooleanElement(cmd, "multi", flags&UpdateMultiUpdate != 0)
	cmd, _ = bsoncore.AppendDocumentEnd(cmd, didx)
	cmd, _ = bsoncore.AppendArrayEnd(cmd, aidx)
	cmd, _ = bsoncore.AppendDocumentEnd(cmd, idx)
	return cmd
}

// publishStartedEvent emits the command started log line and monitoring
// event, when a logger or monitor is configured.
func (coll *Collection) publishStartedEvent(ctx context.Context, cmdName string, cmd bsoncore.Document, requestID int64) {
	if coll.logger != nil {
		coll.logger.Log(mongolog.Command, mongolog.Debug, "Command started",
			mongolog.String("commandName", cmdName),
			mongolog.Int64("requestId", requestID),
			mongolog.String("command", coll.logger.TruncateDocument(cmd.String())),
		)
	}

	if coll.monitor == nil || coll.monitor.Started == nil {
		return
	}
	coll.monitor.Started(ctx, &event.CommandStartedEvent{
		Command:     cmd,
		CommandName: cmdName,
		RequestID:   requestID,
	})
}

// publishFinishedEvent emits the command succeeded or failed log line and
// monitoring event, when a logger or monitor is configured. Submissions that
// produce no reply document report the conventional {"ok": 1}.
func (coll *Collection) publishFinishedEvent(ctx context.Context, cmdName string, requestID int64,
	duration time.Duration, reply bsoncore.Document, cmdErr error) {

	if cmdErr != nil {
		if coll.logger != nil {
			coll.logger.Log(mongolog.Command, mongolog.Debug, "Command failed",
				mongolog.String("commandName", cmdName),
				mongolog.Int64("requestId", requestID),
				mongolog.Int64("durationMS", int64(duration/time.Millisecond)),
				mongolog.String("failure", cmdErr.Error()),
			)
		}
		if coll.monitor == nil || coll.monitor.Failed == nil {
			return
		}
		coll.monitor.Failed(ctx, &event.CommandFailedEvent{
			CommandFinishedEvent: event.CommandFinishedEvent{
				DurationNanos: duration.Nanoseconds(),
				CommandName:   cmdName,
				RequestID:     requestID,
			},
			Failure: cmdErr.Error(),
		})
		return
	}

	if len(reply) == 0 {
		reply = bsoncore.BuildDocument(nil, bsoncore.AppendInt32Element(nil, "ok", 1))
	}
	if coll.logger != nil {
		coll.logger.Log(mongolog.Command, mongolog.Debug, "Command succeeded",
			mongolog.String("commandName", cmdName),
			mongolog.Int64("requestId", requestID),
			mongolog.Int64("durationMS", int64(duration/time.Millisecond)),
			mongolog.String("reply", coll.logger.TruncateDocument(reply.String())),
		)
	}
	if coll.monitor == nil || coll.monitor.Succeeded == nil {
		return
	}
	coll.monitor.Succeeded(ctx, &event.CommandSucceededEvent{
		CommandFinishedEvent: event.CommandFinishedEvent{
			DurationNanos: duration.Nanoseconds(),
			CommandName:   cmdName,
			RequestID:     requestID,
		},
		Reply: reply,
	})
}
