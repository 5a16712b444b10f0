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
	"github.com/ikmak/mongo-dispatch/mongo/options"
)

// Database is a handle to a database. Every operation it constructs carries
// exactly the database name the handle was created with. It is safe for
// concurrent use by multiple goroutines.
type Database struct {
	client         *Client
	name           string
	readConcern    *readconcern.ReadConcern
	readPreference *readpref.ReadPref
	writeConcern   *writeconcern.WriteConcern
	registry       *bsoncodec.Registry
}

func newDatabase(client *Client, name string, opts ...*options.DatabaseOptions) *Database {
	dbOpt := options.MergeDatabaseOptions(opts...)

	db := &Database{
		client:         client,
		name:           name,
		readConcern:    client.readConcern,
		readPreference: client.readPreference,
		writeConcern:   client.writeConcern,
		registry:       client.registry,
	}

	if dbOpt.ReadConcern != nil {
		db.readConcern = dbOpt.ReadConcern
	}
	if dbOpt.ReadPreference != nil {
		db.readPreference = dbOpt.ReadPreference
	}
	if dbOpt.WriteConcern != nil {
		db.writeConcern = dbOpt.WriteConcern
	}
	if dbOpt.Registry != nil {
		db.registry = dbOpt.Registry
	}

	return db
}

// Client returns the Client the database was created from.
func (db *Database) Client() *Client {
	return db.client
}

// Name returns the name of the database.
func (db *Database) Name() string {
	return db.name
}

// ReadConcern returns the read concern of the database.
func (db *Database) ReadConcern() *readconcern.ReadConcern {
	return db.readConcern
}

// ReadPreference returns the read preference of the database.
func (db *Database) ReadPreference() *readpref.ReadPref {
	return db.readPreference
}

// WriteConcern returns the write concern of the database.
func (db *Database) WriteConcern() *writeconcern.WriteConcern {
	return db.writeConcern
}

// Collection gets a handle for a collection with the given name configured
// with the default options of the Database, overridden per field by opts.
// Collection performs no server communication.
func (db *Database) Collection(name string, opts ...*options.CollectionOptions) *Collection {
	return newCollection(db, name, opts...)
}

// RunCommand executes the given command against the database and returns its
// result as a SingleResult.
//
// Without a read preference in opts the command is submitted through the
// write path. With one, it is submitted through the read path and the given
// preference is passed to the executor unchanged; the database default is
// never merged in.
func (db *Database) RunCommand(ctx context.Context, runCommand interface{}, opts ...*options.RunCmdOptions) *SingleResult {
	doc, err := transformDocument(db.registry, runCommand)
	if err != nil {
		return &SingleResult{err: err}
	}

	runCmdOpt := options.MergeRunCmdOptions(opts...)

	var rdr bson.Raw
	if runCmdOpt.ReadPreference != nil {
		rdr, err = db.client.executeRead(ctx, command.Read{DB: db.name, Command: doc}, runCmdOpt.ReadPreference)
	} else {
		rdr, err = db.client.executeWrite(ctx, command.Write{DB: db.name, Command: doc})
	}

	return &SingleResult{rdr: rdr, err: err, registry: db.registry}
}

// Drop drops the database.
func (db *Database) Drop(ctx context.Context) error {
	op := command.DropDatabase{DB: db.name, WriteConcern: db.writeConcern}

	_, err := db.client.executeWrite(ctx, op)
	return err
}

// ListCollections returns a cursor over the collections of the database that
// match filter, using the database's read preference.
func (db *Database) ListCollections(ctx context.Context, filter interface{}, opts ...*options.ListCollectionsOptions) (*Cursor, error) {
	filterDoc, err := transformDocument(db.registry, filter)
	if err != nil {
		return nil, err
	}

	lcOpt := options.MergeListCollectionsOptions(opts...)

	op := command.ListCollections{
		DB:          db.name,
		Filter:      filterDoc,
		NameOnly:    lcOpt.NameOnly,
		BatchSize:   lcOpt.BatchSize,
		ReadConcern: db.readConcern,
	}

	rdr, err := db.client.executeRead(ctx, op, db.readPreference)
	if err != nil {
		return nil, err
	}

	return newCursor(db.client, rdr, db.readPreference, db.registry, lcOpt.BatchSize)
}

// ListCollectionNames returns the names of the collections of the database
// that match filter, in the order the server yields them. The underlying
// cursor is fully drained and closed before returning.
func (db *Database) ListCollectionNames(ctx context.Context, filter interface{}, opts ...*options.ListCollectionsOptions) ([]string, error) {
	opts = append(opts, options.ListCollections().SetNameOnly(true))

	cursor, err := db.ListCollections(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	names := make([]string, 0)
	for cursor.Next(ctx) {
		name, err := cursor.Current.LookupErr("name")
		if err != nil {
			return nil, err
		}

		nameStr, ok := name.StringValueOK()
		if !ok {
			continue
		}
		names = append(names, nameStr)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return names, nil
}

// CreateCollection explicitly creates a collection with the given name and
// creation options.
func (db *Database) CreateCollection(ctx context.Context, name string, opts ...*options.CreateCollectionOptions) error {
	ccOpt := options.MergeCreateCollectionOptions(opts...)

	op := command.CreateCollection{
		DB:               db.name,
		Name:             name,
		AutoIndexID:      ccOpt.AutoIndexID,
		Capped:           ccOpt.Capped,
		UsePowerOf2Sizes: ccOpt.UsePowerOf2Sizes,
		MaxDocuments:     ccOpt.MaxDocuments,
		SizeInBytes:      ccOpt.SizeInBytes,
		WriteConcern:     db.writeConcern,
	}

	if ccOpt.StorageEngine != nil {
		doc, err := transformDocument(db.registry, ccOpt.StorageEngine)
		if err != nil {
			return err
		}
		op.StorageEngine = doc
	}

	_, err := db.client.executeWrite(ctx, op)
	return err
}
