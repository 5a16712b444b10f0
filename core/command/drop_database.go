// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package command

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// DropDatabase represents the dropDatabase command.
//
// The dropDatabases command drops a database.
type DropDatabase struct {
	DB           string
	WriteConcern *writeconcern.WriteConcern
}

// Database returns the name of the database the command targets.
func (dd DropDatabase) Database() string { return dd.DB }

// CommandDocument builds the dropDatabase command document.
func (dd DropDatabase) CommandDocument() (bson.Raw, error) {
	cmd := bson.D{{Key: "dropDatabase", Value: int32(1)}}
	return marshalCommand(appendWriteConcern(cmd, dd.WriteConcern))
}

func (DropDatabase) writeOperation() {}
