// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/ikmak/mongo-dispatch/core/command"
	"github.com/ikmak/mongo-dispatch/mongo/options"
)

func TestCollection_initialize(t *testing.T) {
	t.Parallel()

	db := setupTestClient(t, &testExecutor{}).Database("foo")
	coll := db.Collection("bar")

	assert.Equal(t, "bar", coll.Name())
	assert.Same(t, db, coll.Database())
	assert.Equal(t, command.NewNamespace("foo", "bar"), coll.namespace())
}

func TestCollection_Clone(t *testing.T) {
	t.Parallel()

	rp := readpref.Secondary()
	db := setupTestClient(t, &testExecutor{}).Database("foo")
	coll := db.Collection("bar")

	cloned := coll.Clone(options.Collection().SetReadPreference(rp))

	assert.Same(t, rp, cloned.readPreference)
	assert.Same(t, coll.writeConcern, cloned.writeConcern)
	assert.Same(t, coll.registry, cloned.registry)
	assert.Equal(t, coll.name, cloned.name)

	// the original handle is untouched
	assert.NotSame(t, rp, coll.readPreference)
}

func TestCollection_Drop(t *testing.T) {
	t.Parallel()

	wc := &writeconcern.WriteConcern{W: 2}
	executor := &testExecutor{}
	db := setupTestClient(t, executor).Database("foo")

	coll := db.Collection("bar", options.Collection().SetWriteConcern(wc))
	err := coll.Drop(context.Background())
	require.NoError(t, err)

	require.Len(t, executor.writes, 1)
	assert.Equal(t, command.DropCollection{DB: "foo", Name: "bar", WriteConcern: wc}, executor.writes[0])
}
