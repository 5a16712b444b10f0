// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ikmak/mongo-dispatch/core/command"
)

// OperationExecutor executes operations against a deployment. Implementations
// own server selection, connection handling, wire encoding, blocking and
// cancellation behavior; this package only constructs operations and chooses
// the submission path.
type OperationExecutor interface {
	// ExecuteWrite executes a write operation and returns the server reply.
	ExecuteWrite(ctx context.Context, op command.WriteOperation) (bson.Raw, error)

	// ExecuteRead executes a read operation against a server eligible under
	// the given read preference and returns the server reply.
	ExecuteRead(ctx context.Context, op command.ReadOperation, rp *readpref.ReadPref) (bson.Raw, error)
}
