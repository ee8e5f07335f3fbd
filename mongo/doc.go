// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package mongo provides write operations against MongoDB collections over a
// pluggable driver Transport.
//
// Basic usage starts with creating a Collection from a collection name and a
// Transport implementation:
//
//    coll := mongo.NewCollection("qux", transport)
//
// A Collection can then insert, update, and remove documents:
//
//    res, err := coll.Insert(context.Background(),
//        bson.Doc{{"hello", bson.String("world")}})
//    if err != nil { log.Fatal(err) }
//    id := res.InsertedID
//
// Documents are built with the bson package's Doc, Arr, and Val types and are
// encoded once per operation. Insert guarantees the submitted document
// carries an _id element, generating an ObjectID when the caller supplied
// none; the caller's document is never modified.
//
// Update reports the driver's view of what happened through UpdateResult,
// projected from the last-operation result document:
//
//    res, err := coll.Update(context.Background(), filter, update,
//        options.Update().SetMulti(true))
//    if err != nil { log.Fatal(err) }
//    fmt.Println(res.MatchedCount, res.ModifiedCount)
//
// Operations are synchronous and are never retried. Failures reported by the
// Transport surface as WriteError values carrying the driver's message.
//
// Command monitoring and logging are available through
// options.Collection().SetMonitor and SetLogger.
package mongo
