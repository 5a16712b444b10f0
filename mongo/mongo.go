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

// transformDocument marshals val into a raw document using the given
// registry. bson.Raw values pass through untouched.
func transformDocument(registry *bsoncodec.Registry, val interface{}) (bson.Raw, error) {
	if registry == nil {
		registry = bson.DefaultRegistry
	}
	if val == nil {
		return nil, ErrNilDocument
	}
	if raw, ok := val.(bson.Raw); ok {
		return raw, nil
	}

	b, err := bson.MarshalWithRegistry(registry, val)
	if err != nil {
		return nil, MarshalError{Value: val, Err: err}
	}

	return b, nil
}

// commandName returns the name of the command encoded in doc, which is the
// key of its first element.
func commandName(doc bson.Raw) string {
	elems, err := doc.Elements()
	if err != nil || len(elems) == 0 {
		return ""
	}

	return elems[0].Key()
}
