// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

// CreateCollectionOptions represents options that can be used to configure a
// CreateCollection operation.
type CreateCollectionOptions struct {
	// AutoIndexID specifies whether an index on _id is created automatically. The default value
	// is nil, leaving the decision to the server.
	AutoIndexID *bool

	// Capped specifies whether the collection is capped. If true, SizeInBytes must also be set.
	Capped *bool

	// UsePowerOf2Sizes specifies whether the collection allocates record space in powers of two.
	// Only meaningful on storage engines that support it.
	UsePowerOf2Sizes *bool

	// MaxDocuments specifies the maximum number of documents allowed in a capped collection.
	MaxDocuments *int64

	// SizeInBytes specifies the maximum size in bytes of a capped collection.
	SizeInBytes *int64

	// StorageEngine specifies a configuration to the storage engine on a per-collection basis when
	// creating the collection. The value must be a document in the form
	// {<storage engine name>: <options>}.
	StorageEngine interface{}
}

// CreateCollection creates a new CreateCollectionOptions instance.
func CreateCollection() *CreateCollectionOptions {
	return &CreateCollectionOptions{}
}

// SetAutoIndexID sets the value for the AutoIndexID field.
func (c *CreateCollectionOptions) SetAutoIndexID(b bool) *CreateCollectionOptions {
	c.AutoIndexID = &b
	return c
}

// SetCapped sets the value for the Capped field.
func (c *CreateCollectionOptions) SetCapped(b bool) *CreateCollectionOptions {
	c.Capped = &b
	return c
}

// SetUsePowerOf2Sizes sets the value for the UsePowerOf2Sizes field.
func (c *CreateCollectionOptions) SetUsePowerOf2Sizes(b bool) *CreateCollectionOptions {
	c.UsePowerOf2Sizes = &b
	return c
}

// SetMaxDocuments sets the value for the MaxDocuments field.
func (c *CreateCollectionOptions) SetMaxDocuments(max int64) *CreateCollectionOptions {
	c.MaxDocuments = &max
	return c
}

// SetSizeInBytes sets the value for the SizeInBytes field.
func (c *CreateCollectionOptions) SetSizeInBytes(size int64) *CreateCollectionOptions {
	c.SizeInBytes = &size
	return c
}

// SetStorageEngine sets the value for the StorageEngine field.
func (c *CreateCollectionOptions) SetStorageEngine(storageEngine interface{}) *CreateCollectionOptions {
	c.StorageEngine = storageEngine
	return c
}

// MergeCreateCollectionOptions combines the given CreateCollectionOptions
// instances into a single CreateCollectionOptions in a last-one-wins fashion.
func MergeCreateCollectionOptions(opts ...*CreateCollectionOptions) *CreateCollectionOptions {
	c := CreateCollection()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if opt.AutoIndexID != nil {
			c.AutoIndexID = opt.AutoIndexID
		}
		if opt.Capped != nil {
			c.Capped = opt.Capped
		}
		if opt.UsePowerOf2Sizes != nil {
			c.UsePowerOf2Sizes = opt.UsePowerOf2Sizes
		}
		if opt.MaxDocuments != nil {
			c.MaxDocuments = opt.MaxDocuments
		}
		if opt.SizeInBytes != nil {
			c.SizeInBytes = opt.SizeInBytes
		}
		if opt.StorageEngine != nil {
			c.StorageEngine = opt.StorageEngine
		}
	}

	return c
}
