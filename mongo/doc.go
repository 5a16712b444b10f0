// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package mongo provides immutable client, database and collection handles
// that translate method calls into operation value objects and submit them
// to an OperationExecutor.
//
// Handles hold only immutable configuration (read preference, read concern,
// write concern, BSON registry) and may be shared freely between goroutines.
// All mutable state lives behind the executor; handle methods block only for
// the duration of the executor call and impose no timeouts or retries of
// their own. Executor failures are surfaced to the caller unmodified.
//
// The executor is pluggable: production implementations wrap a transport and
// topology, while tests substitute a recording double.
package mongo
