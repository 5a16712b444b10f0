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

// ListCollections represents the listCollections command.
//
// The listCollections command lists the collections in a database.
type ListCollections struct {
	DB          string
	Filter      bson.Raw
	NameOnly    *bool
	BatchSize   *int32
	ReadConcern *readconcern.ReadConcern
}

// Database returns the name of the database the command targets.
func (lc ListCollections) Database() string { return lc.DB }

// CommandDocument builds the listCollections command document.
func (lc ListCollections) CommandDocument() (bson.Raw, error) {
	cmd := bson.D{{Key: "listCollections", Value: int32(1)}}

	if lc.Filter != nil {
		cmd = append(cmd, bson.E{Key: "filter", Value: lc.Filter})
	}
	if lc.NameOnly != nil {
		cmd = append(cmd, bson.E{Key: "nameOnly", Value: *lc.NameOnly})
	}
	if lc.BatchSize != nil {
		cmd = append(cmd, bson.E{Key: "cursor", Value: bson.D{{Key: "batchSize", Value: *lc.BatchSize}}})
	}

	return marshalCommand(appendReadConcern(cmd, lc.ReadConcern))
}

func (ListCollections) readOperation() {}
