// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package options defines the optional configuration accepted by the handle
// constructors and operations. Options instances are built with chainable
// Set* methods and resolved per-field by the Merge* functions: a later
// non-nil value wins, an unset field falls through to the owner's default.
package options

import (
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/ikmak/mongo-dispatch/event"
)

// ClientOptions represents options that can be used to configure a Client.
type ClientOptions struct {
	// ReadConcern is the read concern to use for read operations executed on the Client. The
	// default value is nil, which means the server's default will be used.
	ReadConcern *readconcern.ReadConcern

	// ReadPreference is the read preference to use for read operations executed on the Client.
	// The default value is readpref.Primary().
	ReadPreference *readpref.ReadPref

	// WriteConcern is the write concern to use for write operations executed on the Client. The
	// default value is nil, which means the server's default will be used.
	WriteConcern *writeconcern.WriteConcern

	// Registry is the BSON registry to marshal and unmarshal documents for operations executed on
	// the Client. The default value is bson.DefaultRegistry.
	Registry *bsoncodec.Registry

	// Monitor is the monitor notified of every operation submitted through the Client. The
	// default value is nil, meaning no events are published.
	Monitor *event.CommandMonitor
}

// Client creates a new ClientOptions instance.
func Client() *ClientOptions {
	return &ClientOptions{}
}

// SetReadConcern sets the value for the ReadConcern field.
func (c *ClientOptions) SetReadConcern(rc *readconcern.ReadConcern) *ClientOptions {
	c.ReadConcern = rc
	return c
}

// SetReadPreference sets the value for the ReadPreference field.
func (c *ClientOptions) SetReadPreference(rp *readpref.ReadPref) *ClientOptions {
	c.ReadPreference = rp
	return c
}

// SetWriteConcern sets the value for the WriteConcern field.
func (c *ClientOptions) SetWriteConcern(wc *writeconcern.WriteConcern) *ClientOptions {
	c.WriteConcern = wc
	return c
}

// SetRegistry sets the value for the Registry field.
func (c *ClientOptions) SetRegistry(r *bsoncodec.Registry) *ClientOptions {
	c.Registry = r
	return c
}

// SetMonitor sets the value for the Monitor field.
func (c *ClientOptions) SetMonitor(m *event.CommandMonitor) *ClientOptions {
	c.Monitor = m
	return c
}

// MergeClientOptions combines the given ClientOptions instances into a single
// ClientOptions in a last-one-wins fashion.
func MergeClientOptions(opts ...*ClientOptions) *ClientOptions {
	c := Client()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if opt.ReadConcern != nil {
			c.ReadConcern = opt.ReadConcern
		}
		if opt.ReadPreference != nil {
			c.ReadPreference = opt.ReadPreference
		}
		if opt.WriteConcern != nil {
			c.WriteConcern = opt.WriteConcern
		}
		if opt.Registry != nil {
			c.Registry = opt.Registry
		}
		if opt.Monitor != nil {
			c.Monitor = opt.Monitor
		}
	}

	return c
}
