// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package command

import (
	"go.mongodb.org/mongo-driver/bson"
)

// ListDatabases represents the listDatabases command.
//
// The listDatabases command lists the databases in a deployment. It always
// runs against the admin database.
type ListDatabases struct {
	Filter   bson.Raw
	NameOnly *bool
}

// Database returns the name of the database the command targets.
func (ListDatabases) Database() string { return "admin" }

// CommandDocument builds the listDatabases command document.
func (ld ListDatabases) CommandDocument() (bson.Raw, error) {
	cmd := bson.D{{Key: "listDatabases", Value: int32(1)}}

	if ld.Filter != nil {
		cmd = append(cmd, bson.E{Key: "filter", Value: ld.Filter})
	}
	if ld.NameOnly != nil {
		cmd = append(cmd, bson.E{Key: "nameOnly", Value: *ld.NameOnly})
	}

	return marshalCommand(cmd)
}

func (ListDatabases) readOperation() {}
