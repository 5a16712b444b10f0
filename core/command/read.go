// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package command

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
)

// Read represents a generic database read command.
//
// This can be used to send arbitrary read commands to the database.
type Read struct {
	DB          string
	Command     bson.Raw
	ReadConcern *readconcern.ReadConcern
}

// Database returns the name of the database the command targets.
func (r Read) Database() string { return r.DB }

// CommandDocument builds the command document, appending the read concern
// when one is set.
func (r Read) CommandDocument() (bson.Raw, error) {
	var cmd bson.D
	if err := bson.Unmarshal(r.Command, &cmd); err != nil {
		return nil, err
	}

	return marshalCommand(appendReadConcern(cmd, r.ReadConcern))
}

func (Read) readOperation() {}
