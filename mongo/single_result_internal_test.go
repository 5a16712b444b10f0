// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSingleResult_Decode(t *testing.T) {
	t.Parallel()

	t.Run("document", func(t *testing.T) {
		sr := &SingleResult{rdr: rawDoc(bson.D{{Key: "ok", Value: int32(1)}, {Key: "n", Value: int32(42)}})}

		var res struct {
			N int32 `bson:"n"`
		}
		require.NoError(t, sr.Decode(&res))
		assert.EqualValues(t, 42, res.N)
	})
	t.Run("error passthrough", func(t *testing.T) {
		sr := &SingleResult{err: assert.AnError}

		var res bson.D
		assert.Equal(t, assert.AnError, sr.Decode(&res))
		assert.Equal(t, assert.AnError, sr.Err())
	})
	t.Run("no documents", func(t *testing.T) {
		sr := &SingleResult{}

		var res bson.D
		assert.Equal(t, ErrNoDocuments, sr.Decode(&res))

		_, err := sr.Raw()
		assert.Equal(t, ErrNoDocuments, err)
	})
}

func TestSingleResult_Raw(t *testing.T) {
	t.Parallel()

	doc := rawDoc(bson.D{{Key: "ok", Value: int32(1)}})
	sr := &SingleResult{rdr: doc}

	raw, err := sr.Raw()
	require.NoError(t, err)
	assert.Equal(t, doc, raw)
}
