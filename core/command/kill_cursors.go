// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package command

import (
	"go.mongodb.org/mongo-driver/bson"
)

// KillCursors represents the killCursors command.
//
// The killCursors command closes open server cursors. It follows the read
// path so that it reaches the same member the cursor was opened on.
type KillCursors struct {
	NS        Namespace
	CursorIDs []int64
}

// Database returns the name of the database the command targets.
func (kc KillCursors) Database() string { return kc.NS.DB }

// CommandDocument builds the killCursors command document.
func (kc KillCursors) CommandDocument() (bson.Raw, error) {
	cmd := bson.D{
		{Key: "killCursors", Value: kc.NS.Collection},
		{Key: "cursors", Value: kc.CursorIDs},
	}

	return marshalCommand(cmd)
}

func (KillCursors) readOperation() {}
