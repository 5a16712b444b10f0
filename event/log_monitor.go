// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package event

import (
	"context"

	"github.com/sirupsen/logrus"
)

// NewLogMonitor returns a CommandMonitor that logs the command lifecycle to
// logger at debug level. Wrap it with custom callbacks to combine logging
// with application monitoring.
func NewLogMonitor(logger *logrus.Logger) *CommandMonitor {
	return &CommandMonitor{
		Started: func(_ context.Context, evt *CommandStartedEvent) {
			logger.WithFields(logrus.Fields{
				"commandName":  evt.CommandName,
				"databaseName": evt.DatabaseName,
				"requestId":    evt.RequestID,
				"command":      evt.Command.String(),
			}).Debug("Command started")
		},
		Succeeded: func(_ context.Context, evt *CommandSucceededEvent) {
			logger.WithFields(logrus.Fields{
				"commandName":   evt.CommandName,
				"requestId":     evt.RequestID,
				"durationNanos": evt.DurationNanos,
				"reply":         evt.Reply.String(),
			}).Debug("Command succeeded")
		},
		Failed: func(_ context.Context, evt *CommandFailedEvent) {
			logger.WithFields(logrus.Fields{
				"commandName":   evt.CommandName,
				"requestId":     evt.RequestID,
				"durationNanos": evt.DurationNanos,
				"failure":       evt.Failure,
			}).Debug("Command failed")
		},
	}
}
