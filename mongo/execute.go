// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ikmak/mongo-dispatch/core/command"
	"github.com/ikmak/mongo-dispatch/event"
	"github.com/ikmak/mongo-dispatch/internal"
)

// executeWrite submits op through the executor's write path, publishing
// command events when a monitor is configured.
func (c *Client) executeWrite(ctx context.Context, op command.WriteOperation) (bson.Raw, error) {
	if c.monitor == nil {
		return c.executor.ExecuteWrite(ctx, op)
	}

	requestID := c.publishStarted(ctx, op)
	started := time.Now()

	rdr, err := c.executor.ExecuteWrite(ctx, op)

	c.publishFinished(ctx, op, requestID, started, rdr, err)
	return rdr, err
}

// executeRead submits op through the executor's read path with the given
// read preference, publishing command events when a monitor is configured.
func (c *Client) executeRead(ctx context.Context, op command.ReadOperation, rp *readpref.ReadPref) (bson.Raw, error) {
	if c.monitor == nil {
		return c.executor.ExecuteRead(ctx, op, rp)
	}

	requestID := c.publishStarted(ctx, op)
	started := time.Now()

	rdr, err := c.executor.ExecuteRead(ctx, op, rp)

	c.publishFinished(ctx, op, requestID, started, rdr, err)
	return rdr, err
}

func (c *Client) publishStarted(ctx context.Context, op command.Operation) int64 {
	requestID := internal.NextRequestID()

	if c.monitor.Started == nil {
		return requestID
	}

	// An unencodable command still surfaces through the executor; the started
	// event then carries an empty command document.
	cmd, err := op.CommandDocument()
	if err != nil {
		cmd = nil
	}

	c.monitor.Started(ctx, &event.CommandStartedEvent{
		Command:      cmd,
		DatabaseName: op.Database(),
		CommandName:  commandName(cmd),
		RequestID:    requestID,
	})

	return requestID
}

func (c *Client) publishFinished(ctx context.Context, op command.Operation, requestID int64, started time.Time, reply bson.Raw, err error) {
	finished := event.CommandFinishedEvent{
		DurationNanos: time.Since(started).Nanoseconds(),
		CommandName:   commandNameOf(op),
		RequestID:     requestID,
	}

	if err != nil {
		if c.monitor.Failed != nil {
			c.monitor.Failed(ctx, &event.CommandFailedEvent{
				CommandFinishedEvent: finished,
				Failure:              err.Error(),
			})
		}
		return
	}

	if c.monitor.Succeeded != nil {
		c.monitor.Succeeded(ctx, &event.CommandSucceededEvent{
			CommandFinishedEvent: finished,
			Reply:                reply,
		})
	}
}

func commandNameOf(op command.Operation) string {
	cmd, err := op.CommandDocument()
	if err != nil {
		return ""
	}

	return commandName(cmd)
}
