// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package command

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// CreateCollection represents the create command.
//
// The create command explicitly creates a collection. Optional fields are
// omitted from the command document when unset, leaving the server defaults
// in effect.
type CreateCollection struct {
	DB               string
	Name             string
	AutoIndexID      *bool
	Capped           *bool
	UsePowerOf2Sizes *bool
	MaxDocuments     *int64
	SizeInBytes      *int64
	StorageEngine    bson.Raw
	WriteConcern     *writeconcern.WriteConcern
}

// Database returns the name of the database the command targets.
func (cc CreateCollection) Database() string { return cc.DB }

// CommandDocument builds the create command document.
func (cc CreateCollection) CommandDocument() (bson.Raw, error) {
	cmd := bson.D{{Key: "create", Value: cc.Name}}

	if cc.Capped != nil {
		cmd = append(cmd, bson.E{Key: "capped", Value: *cc.Capped})
	}
	if cc.AutoIndexID != nil {
		cmd = append(cmd, bson.E{Key: "autoIndexId", Value: *cc.AutoIndexID})
	}
	if cc.MaxDocuments != nil {
		cmd = append(cmd, bson.E{Key: "max", Value: *cc.MaxDocuments})
	}
	if cc.SizeInBytes != nil {
		cmd = append(cmd, bson.E{Key: "size", Value: *cc.SizeInBytes})
	}
	if cc.UsePowerOf2Sizes != nil {
		cmd = append(cmd, bson.E{Key: "usePowerOf2Sizes", Value: *cc.UsePowerOf2Sizes})
	}
	if cc.StorageEngine != nil {
		cmd = append(cmd, bson.E{Key: "storageEngine", Value: cc.StorageEngine})
	}

	return marshalCommand(appendWriteConcern(cmd, cc.WriteConcern))
}

func (CreateCollection) writeOperation() {}
