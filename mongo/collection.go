// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/ikmak/mongo-dispatch/core/command"
	"github.com/ikmak/mongo-dispatch/mongo/options"
)

// Collection is a handle to a collection. It is safe for concurrent use by
// multiple goroutines.
type Collection struct {
	client         *Client
	db             *Database
	name           string
	readConcern    *readconcern.ReadConcern
	readPreference *readpref.ReadPref
	writeConcern   *writeconcern.WriteConcern
	registry       *bsoncodec.Registry
}

// newCollection resolves each configuration field independently: the value
// from opts if set, else the owning database's default.
func newCollection(db *Database, name string, opts ...*options.CollectionOptions) *Collection {
	collOpt := options.MergeCollectionOptions(opts...)

	coll := &Collection{
		client:         db.client,
		db:             db,
		name:           name,
		readConcern:    db.readConcern,
		readPreference: db.readPreference,
		writeConcern:   db.writeConcern,
		registry:       db.registry,
	}

	if collOpt.ReadConcern != nil {
		coll.readConcern = collOpt.ReadConcern
	}
	if collOpt.ReadPreference != nil {
		coll.readPreference = collOpt.ReadPreference
	}
	if collOpt.WriteConcern != nil {
		coll.writeConcern = collOpt.WriteConcern
	}
	if collOpt.Registry != nil {
		coll.registry = collOpt.Registry
	}

	return coll
}

// Clone creates a copy of the Collection with the given options applied on
// top of the current configuration.
func (coll *Collection) Clone(opts ...*options.CollectionOptions) *Collection {
	copied := *coll

	collOpt := options.MergeCollectionOptions(opts...)
	if collOpt.ReadConcern != nil {
		copied.readConcern = collOpt.ReadConcern
	}
	if collOpt.ReadPreference != nil {
		copied.readPreference = collOpt.ReadPreference
	}
	if collOpt.WriteConcern != nil {
		copied.writeConcern = collOpt.WriteConcern
	}
	if collOpt.Registry != nil {
		copied.registry = collOpt.Registry
	}

	return &copied
}

// Name returns the name of the collection.
func (coll *Collection) Name() string {
	return coll.name
}

// Database returns the Database the collection was created from.
func (coll *Collection) Database() *Database {
	return coll.db
}

func (coll *Collection) namespace() command.Namespace {
	return command.NewNamespace(coll.db.name, coll.name)
}

// Drop drops the collection.
func (coll *Collection) Drop(ctx context.Context) error {
	op := command.DropCollection{
		DB:           coll.db.name,
		Name:         coll.name,
		WriteConcern: coll.writeConcern,
	}

	_, err := coll.client.executeWrite(ctx, op)
	return err
}
