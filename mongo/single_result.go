// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
)

// SingleResult represents a single document returned from an operation. If
// the operation returned an error, the Err method of SingleResult will
// return that error.
type SingleResult struct {
	err      error
	rdr      bson.Raw
	registry *bsoncodec.Registry
}

// Decode unmarshals the document represented by this SingleResult into val.
// The registry the handle was configured with selects the decoders used for
// val and its nested fields. If the operation returned an error, that error
// is returned and val is left untouched. If the operation returned no
// document, Decode returns ErrNoDocuments.
func (sr *SingleResult) Decode(val interface{}) error {
	if sr.err != nil {
		return sr.err
	}
	if sr.rdr == nil {
		return ErrNoDocuments
	}

	registry := sr.registry
	if registry == nil {
		registry = bson.DefaultRegistry
	}

	return bson.UnmarshalWithRegistry(registry, sr.rdr, val)
}

// Raw returns the document represented by this SingleResult as a bson.Raw.
func (sr *SingleResult) Raw() (bson.Raw, error) {
	if sr.err != nil {
		return nil, sr.err
	}
	if sr.rdr == nil {
		return nil, ErrNoDocuments
	}

	return sr.rdr, nil
}

// Err returns the error from the operation that created this SingleResult.
func (sr *SingleResult) Err() error { return sr.err }
