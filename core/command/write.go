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

// Write represents a generic database write command.
//
// This can be used to send arbitrary write commands to the database.
type Write struct {
	DB           string
	Command      bson.Raw
	WriteConcern *writeconcern.WriteConcern
}

// Database returns the name of the database the command targets.
func (w Write) Database() string { return w.DB }

// CommandDocument builds the command document, appending the write concern
// when one is set.
func (w Write) CommandDocument() (bson.Raw, error) {
	var cmd bson.D
	if err := bson.Unmarshal(w.Command, &cmd); err != nil {
		return nil, err
	}

	return marshalCommand(appendWriteConcern(cmd, w.WriteConcern))
}

func (Write) writeOperation() {}
