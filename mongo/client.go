// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/ikmak/mongo-dispatch/core/command"
	"github.com/ikmak/mongo-dispatch/event"
	"github.com/ikmak/mongo-dispatch/mongo/options"
)

// Client is a handle representing a deployment. It is the root of the handle
// hierarchy: databases derive their configuration from it. It is safe for
// concurrent use by multiple goroutines.
type Client struct {
	executor       OperationExecutor
	readPreference *readpref.ReadPref
	readConcern    *readconcern.ReadConcern
	writeConcern   *writeconcern.WriteConcern
	registry       *bsoncodec.Registry
	monitor        *event.CommandMonitor
}

// NewClient creates a new Client that submits operations to executor.
func NewClient(executor OperationExecutor, opts ...*options.ClientOptions) (*Client, error) {
	if executor == nil {
		return nil, ErrNilExecutor
	}

	clientOpt := options.MergeClientOptions(opts...)

	client := &Client{
		executor:       executor,
		readPreference: readpref.Primary(),
		registry:       bson.DefaultRegistry,
	}

	if clientOpt.ReadPreference != nil {
		client.readPreference = clientOpt.ReadPreference
	}
	if clientOpt.ReadConcern != nil {
		client.readConcern = clientOpt.ReadConcern
	}
	if clientOpt.WriteConcern != nil {
		client.writeConcern = clientOpt.WriteConcern
	}
	if clientOpt.Registry != nil {
		client.registry = clientOpt.Registry
	}
	client.monitor = clientOpt.Monitor

	return client, nil
}

// Database returns a handle for a database with the given name configured
// with the default options of the Client, overridden per field by opts.
func (c *Client) Database(name string, opts ...*options.DatabaseOptions) *Database {
	return newDatabase(c, name, opts...)
}

// Ping verifies that the deployment is reachable. If rp is nil the Client's
// read preference is used.
func (c *Client) Ping(ctx context.Context, rp *readpref.ReadPref) error {
	if rp == nil {
		rp = c.readPreference
	}

	cmd, err := transformDocument(c.registry, bson.D{{Key: "ping", Value: int32(1)}})
	if err != nil {
		return err
	}

	_, err = c.executeRead(ctx, command.Read{DB: "admin", Command: cmd}, rp)
	return err
}

// ListDatabaseNames returns the names of the databases on the deployment that
// match filter, in the order reported by the server.
func (c *Client) ListDatabaseNames(ctx context.Context, filter interface{}) ([]string, error) {
	filterDoc, err := transformDocument(c.registry, filter)
	if err != nil {
		return nil, err
	}

	nameOnly := true
	op := command.ListDatabases{Filter: filterDoc, NameOnly: &nameOnly}

	rdr, err := c.executeRead(ctx, op, c.readPreference)
	if err != nil {
		return nil, err
	}

	var res struct {
		Databases []struct {
			Name string `bson:"name"`
		} `bson:"databases"`
	}
	if err := bson.UnmarshalWithRegistry(c.registry, rdr, &res); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(res.Databases))
	for _, spec := range res.Databases {
		names = append(names, spec.Name)
	}

	return names, nil
}
