// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

func TestMergeDatabaseOptions(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		merged := MergeDatabaseOptions()
		assert.Nil(t, merged.ReadConcern)
		assert.Nil(t, merged.ReadPreference)
		assert.Nil(t, merged.WriteConcern)
		assert.Nil(t, merged.Registry)
	})
	t.Run("nil instances skipped", func(t *testing.T) {
		rp := readpref.Secondary()
		merged := MergeDatabaseOptions(nil, Database().SetReadPreference(rp), nil)
		assert.Same(t, rp, merged.ReadPreference)
	})
	t.Run("last one wins per field", func(t *testing.T) {
		rp1 := readpref.Primary()
		rp2 := readpref.Secondary()
		wc := &writeconcern.WriteConcern{W: 2}

		merged := MergeDatabaseOptions(
			Database().SetReadPreference(rp1).SetWriteConcern(wc),
			Database().SetReadPreference(rp2))

		assert.Same(t, rp2, merged.ReadPreference)
		assert.Same(t, wc, merged.WriteConcern, "unset fields fall through to the earlier instance")
	})
}

func TestMergeCollectionOptions(t *testing.T) {
	t.Parallel()

	rc := readconcern.Majority()
	reg := bson.NewRegistry()

	merged := MergeCollectionOptions(
		Collection().SetReadConcern(readconcern.Local()),
		Collection().SetReadConcern(rc).SetRegistry(reg))

	assert.Same(t, rc, merged.ReadConcern)
	assert.Same(t, reg, merged.Registry)
	assert.Nil(t, merged.WriteConcern)
	assert.Nil(t, merged.ReadPreference)
}

func TestMergeClientOptions(t *testing.T) {
	t.Parallel()

	rp := readpref.Nearest()
	wc := &writeconcern.WriteConcern{W: "majority"}

	merged := MergeClientOptions(nil,
		Client().SetReadPreference(readpref.Primary()),
		Client().SetReadPreference(rp).SetWriteConcern(wc))

	assert.Same(t, rp, merged.ReadPreference)
	assert.Same(t, wc, merged.WriteConcern)
	assert.Nil(t, merged.Monitor)
}

func TestCreateCollectionOptions(t *testing.T) {
	t.Parallel()

	opts := CreateCollection().
		SetAutoIndexID(false).
		SetCapped(true).
		SetUsePowerOf2Sizes(true).
		SetMaxDocuments(100).
		SetSizeInBytes(1000).
		SetStorageEngine(bson.D{{Key: "wiredTiger", Value: bson.D{}}})

	require.NotNil(t, opts.AutoIndexID)
	assert.False(t, *opts.AutoIndexID)
	require.NotNil(t, opts.Capped)
	assert.True(t, *opts.Capped)
	require.NotNil(t, opts.UsePowerOf2Sizes)
	assert.True(t, *opts.UsePowerOf2Sizes)
	require.NotNil(t, opts.MaxDocuments)
	assert.EqualValues(t, 100, *opts.MaxDocuments)
	require.NotNil(t, opts.SizeInBytes)
	assert.EqualValues(t, 1000, *opts.SizeInBytes)
	assert.NotNil(t, opts.StorageEngine)

	t.Run("merge", func(t *testing.T) {
		max := int64(5)
		merged := MergeCreateCollectionOptions(opts, CreateCollection().SetMaxDocuments(max))

		assert.Equal(t, &max, merged.MaxDocuments)
		assert.Equal(t, opts.Capped, merged.Capped)
	})
}

func TestMergeRunCmdOptions(t *testing.T) {
	t.Parallel()

	t.Run("unset", func(t *testing.T) {
		assert.Nil(t, MergeRunCmdOptions().ReadPreference)
	})
	t.Run("set", func(t *testing.T) {
		rp := readpref.SecondaryPreferred()
		merged := MergeRunCmdOptions(RunCmd(), RunCmd().SetReadPreference(rp))
		assert.Same(t, rp, merged.ReadPreference)
	})
}

func TestMergeListCollectionsOptions(t *testing.T) {
	t.Parallel()

	merged := MergeListCollectionsOptions(
		ListCollections().SetNameOnly(false),
		ListCollections().SetNameOnly(true).SetBatchSize(4))

	require.NotNil(t, merged.NameOnly)
	assert.True(t, *merged.NameOnly)
	require.NotNil(t, merged.BatchSize)
	assert.EqualValues(t, 4, *merged.BatchSize)
}
