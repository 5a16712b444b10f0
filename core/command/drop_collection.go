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

// DropCollection represents the drop command.
//
// The drop command drops a single collection from a database.
type DropCollection struct {
	DB           string
	Name         string
	WriteConcern *writeconcern.WriteConcern
}

// Database returns the name of the database the command targets.
func (dc DropCollection) Database() string { return dc.DB }

// CommandDocument builds the drop command document.
func (dc DropCollection) CommandDocument() (bson.Raw, error) {
	cmd := bson.D{{Key: "drop", Value: dc.Name}}
	return marshalCommand(appendWriteConcern(cmd, dc.WriteConcern))
}

func (DropCollection) writeOperation() {}
