// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ikmak/mongo-dispatch/core/command"
	"github.com/ikmak/mongo-dispatch/mongo/options"
)

// testExecutor records every operation submitted to it and returns canned
// replies in order. Once the canned replies are exhausted it returns a bare
// {ok: 1} document.
type testExecutor struct {
	writes    []command.WriteOperation
	reads     []command.ReadOperation
	readPrefs []*readpref.ReadPref

	replies []bson.Raw
	err     error
}

func (e *testExecutor) ExecuteWrite(_ context.Context, op command.WriteOperation) (bson.Raw, error) {
	e.writes = append(e.writes, op)
	if e.err != nil {
		return nil, e.err
	}

	return e.nextReply(), nil
}

func (e *testExecutor) ExecuteRead(_ context.Context, op command.ReadOperation, rp *readpref.ReadPref) (bson.Raw, error) {
	e.reads = append(e.reads, op)
	e.readPrefs = append(e.readPrefs, rp)
	if e.err != nil {
		return nil, e.err
	}

	return e.nextReply(), nil
}

func (e *testExecutor) nextReply() bson.Raw {
	if len(e.replies) == 0 {
		return rawDoc(bson.D{{Key: "ok", Value: int32(1)}})
	}

	reply := e.replies[0]
	e.replies = e.replies[1:]
	return reply
}

func rawDoc(val interface{}) bson.Raw {
	b, err := bson.Marshal(val)
	if err != nil {
		panic(err)
	}

	return b
}

func setupTestClient(t *testing.T, executor OperationExecutor, opts ...*options.ClientOptions) *Client {
	t.Helper()

	client, err := NewClient(executor, opts...)
	require.NoError(t, err)
	return client
}

// cursorReply builds a cursor-bearing server reply for the given namespace.
func cursorReply(ns string, id int64, batchKey string, docs ...interface{}) bson.Raw {
	batch := bson.A{}
	for _, doc := range docs {
		batch = append(batch, doc)
	}

	return rawDoc(bson.D{
		{Key: "ok", Value: int32(1)},
		{Key: "cursor", Value: bson.D{
			{Key: "id", Value: id},
			{Key: "ns", Value: ns},
			{Key: batchKey, Value: batch},
		}},
	})
}
