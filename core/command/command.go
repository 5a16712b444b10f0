// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package command contains the operation value objects submitted to an
// executor. Each operation is an immutable description of a single database
// command: it carries the name of the database it targets along with the
// operation specific parameters, and it knows how to build the command
// document the server expects. Operations do not know how to reach a server;
// routing, retries and wire encoding belong to the executor implementation.
package command

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// Operation is a single database command to be executed against a server.
type Operation interface {
	// Database returns the name of the database the operation targets.
	Database() string

	// CommandDocument builds the command document to be sent to the server.
	CommandDocument() (bson.Raw, error)
}

// ReadOperation is an operation submitted through an executor's read path,
// together with an explicit read preference.
type ReadOperation interface {
	Operation
	readOperation()
}

// WriteOperation is an operation submitted through an executor's write path.
type WriteOperation interface {
	Operation
	writeOperation()
}

func marshalCommand(cmd bson.D) (bson.Raw, error) {
	return bson.Marshal(cmd)
}

// appendReadConcern adds a readConcern element to cmd. A nil read concern or
// an empty level means the server default and adds nothing.
func appendReadConcern(cmd bson.D, rc *readconcern.ReadConcern) bson.D {
	if rc == nil || rc.Level == "" {
		return cmd
	}

	return append(cmd, bson.E{Key: "readConcern", Value: bson.D{{Key: "level", Value: rc.Level}}})
}

// appendWriteConcern adds a writeConcern element to cmd. A nil write concern
// means the server default and adds nothing.
func appendWriteConcern(cmd bson.D, wc *writeconcern.WriteConcern) bson.D {
	if wc == nil {
		return cmd
	}

	doc := bson.D{}
	if wc.W != nil {
		doc = append(doc, bson.E{Key: "w", Value: wc.W})
	}
	if wc.Journal != nil {
		doc = append(doc, bson.E{Key: "j", Value: *wc.Journal})
	}
	if len(doc) == 0 {
		return cmd
	}

	return append(cmd, bson.E{Key: "writeConcern", Value: doc})
}
