// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ikmak/mongo-dispatch/core/command"
)

// Cursor iterates a stream of documents produced by a read operation.
// Documents are consumed from the current batch first; when it is exhausted
// and the server cursor is still open, the next batch is fetched with a
// getMore through the executor's read path, using the read preference the
// cursor was opened with.
//
// A Cursor is not safe for concurrent use. A typical usage:
//
//	cursor, err := db.ListCollections(ctx, bson.D{})
//	...
//	defer cursor.Close(ctx)
//	for cursor.Next(ctx) {
//		var doc bson.D
//		if err := cursor.Decode(&doc); err != nil { ... }
//	}
//	if err := cursor.Err(); err != nil { ... }
type Cursor struct {
	// Current is the BSON document the cursor is positioned on, valid until
	// the next call to Next or Close.
	Current bson.Raw

	client    *Client
	ns        command.Namespace
	id        int64
	batch     []bson.Raw
	pos       int
	batchSize *int32
	rp        *readpref.ReadPref
	registry  *bsoncodec.Registry
	err       error
}

type cursorResponse struct {
	Cursor struct {
		FirstBatch []bson.Raw `bson:"firstBatch"`
		NextBatch  []bson.Raw `bson:"nextBatch"`
		NS         string     `bson:"ns"`
		ID         int64      `bson:"id"`
	} `bson:"cursor"`
}

// newCursor builds a Cursor from a cursor-bearing server reply.
func newCursor(client *Client, response bson.Raw, rp *readpref.ReadPref, registry *bsoncodec.Registry, batchSize *int32) (*Cursor, error) {
	var res cursorResponse
	if err := bson.Unmarshal(response, &res); err != nil {
		return nil, errors.Wrap(err, "invalid cursor response document")
	}

	ns := command.ParseNamespace(res.Cursor.NS)
	if err := ns.Validate(); err != nil {
		return nil, err
	}

	if registry == nil {
		registry = bson.DefaultRegistry
	}

	return &Cursor{
		client:    client,
		ns:        ns,
		id:        res.Cursor.ID,
		batch:     res.Cursor.FirstBatch,
		batchSize: batchSize,
		rp:        rp,
		registry:  registry,
	}, nil
}

// ID returns the id of the server cursor, or 0 if it is exhausted.
func (c *Cursor) ID() int64 { return c.id }

// Next advances the cursor to the next document, fetching more batches from
// the server as needed. It returns false once the cursor is exhausted or an
// error occurred; Err distinguishes the two.
func (c *Cursor) Next(ctx context.Context) bool {
	if c.advanceCurrentBatch() {
		return true
	}
	if c.err != nil || c.id == 0 {
		return false
	}

	c.getMore(ctx)
	if c.err != nil {
		return false
	}

	return c.advanceCurrentBatch()
}

// Decode unmarshals the current document into val using the registry the
// cursor was created with.
func (c *Cursor) Decode(val interface{}) error {
	return bson.UnmarshalWithRegistry(c.registry, c.Current, val)
}

// Err returns the error status of the cursor.
func (c *Cursor) Err() error { return c.err }

// Close closes the cursor, killing the server cursor if it is still open.
// Ordinarily the server closes the cursor when it is exhausted and Close is
// a no-op.
func (c *Cursor) Close(ctx context.Context) error {
	c.batch = nil
	c.pos = 0
	c.Current = nil

	if c.id == 0 {
		return c.err
	}

	op := command.KillCursors{NS: c.ns, CursorIDs: []int64{c.id}}
	if _, err := c.client.executeRead(ctx, op, c.rp); err != nil {
		c.err = errors.Wrapf(err, "unable to kill cursor %d", c.id)
		return c.err
	}

	c.id = 0
	return c.err
}

func (c *Cursor) advanceCurrentBatch() bool {
	if c.pos < len(c.batch) {
		c.Current = c.batch[c.pos]
		c.pos++
		return true
	}

	return false
}

func (c *Cursor) getMore(ctx context.Context) {
	c.batch = nil
	c.pos = 0
	c.Current = nil

	op := command.GetMore{NS: c.ns, CursorID: c.id, BatchSize: c.batchSize}

	rdr, err := c.client.executeRead(ctx, op, c.rp)
	if err != nil {
		c.err = errors.Wrapf(err, "unable to get next batch for cursor %d", c.id)
		return
	}

	var res cursorResponse
	if err := bson.Unmarshal(rdr, &res); err != nil {
		c.err = errors.Wrapf(err, "invalid getMore response for cursor %d", c.id)
		return
	}

	c.id = res.Cursor.ID
	c.batch = res.Cursor.NextBatch
}
