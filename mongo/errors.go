// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongo

import (
	"errors"
	"fmt"
)

// ErrNilDocument is returned when a nil document is passed to an operation.
var ErrNilDocument = errors.New("document is nil")

// ErrNilExecutor is returned when a Client is constructed without an executor.
var ErrNilExecutor = errors.New("operation executor is nil")

// ErrNoDocuments is returned by SingleResult methods when the operation that
// created the SingleResult did not return any documents.
var ErrNoDocuments = errors.New("no documents in result")

// MarshalError is returned when attempting to transform a value into a
// document results in an error.
type MarshalError struct {
	Value interface{}
	Err   error
}

// Error implements the error interface.
func (me MarshalError) Error() string {
	return fmt.Sprintf("cannot transform type %T to a BSON document: %v", me.Value, me.Err)
}

// Unwrap returns the underlying error.
func (me MarshalError) Unwrap() error { return me.Err }
