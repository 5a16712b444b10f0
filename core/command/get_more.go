// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package command

import (
	"go.mongodb.org/mongo-driver/bson"
)

// GetMore represents the getMore command.
//
// The getMore command retrieves the next batch of an open server cursor.
type GetMore struct {
	NS        Namespace
	CursorID  int64
	BatchSize *int32
}

// Database returns the name of the database the command targets.
func (gm GetMore) Database() string { return gm.NS.DB }

// CommandDocument builds the getMore command document.
func (gm GetMore) CommandDocument() (bson.Raw, error) {
	cmd := bson.D{
		{Key: "getMore", Value: gm.CursorID},
		{Key: "collection", Value: gm.NS.Collection},
	}
	if gm.BatchSize != nil {
		cmd = append(cmd, bson.E{Key: "batchSize", Value: *gm.BatchSize})
	}

	return marshalCommand(cmd)
}

func (GetMore) readOperation() {}
