// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

// ListCollectionsOptions represents options that can be used to configure a
// ListCollections operation.
type ListCollectionsOptions struct {
	// NameOnly specifies whether the server should return only the collection names.
	NameOnly *bool

	// BatchSize specifies the maximum number of documents per server batch.
	BatchSize *int32
}

// ListCollections creates a new ListCollectionsOptions instance.
func ListCollections() *ListCollectionsOptions {
	return &ListCollectionsOptions{}
}

// SetNameOnly sets the value for the NameOnly field.
func (lc *ListCollectionsOptions) SetNameOnly(b bool) *ListCollectionsOptions {
	lc.NameOnly = &b
	return lc
}

// SetBatchSize sets the value for the BatchSize field.
func (lc *ListCollectionsOptions) SetBatchSize(size int32) *ListCollectionsOptions {
	lc.BatchSize = &size
	return lc
}

// MergeListCollectionsOptions combines the given ListCollectionsOptions
// instances into a single ListCollectionsOptions in a last-one-wins fashion.
func MergeListCollectionsOptions(opts ...*ListCollectionsOptions) *ListCollectionsOptions {
	lc := ListCollections()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if opt.NameOnly != nil {
			lc.NameOnly = opt.NameOnly
		}
		if opt.BatchSize != nil {
			lc.BatchSize = opt.BatchSize
		}
	}

	return lc
}
