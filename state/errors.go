// Copyright 2016 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package state

import "errors"

// Failure modes of the Database interface, per spec.md §4.4.
var (
	// ErrNotFound is returned by RevertToSnapshot/CommitSnapshot for a
	// snapshot id that is negative or beyond the journal's current length.
	// An id that was already reverted to is not rejected: reverting to it
	// again succeeds and undoes whatever was journaled since.
	ErrNotFound = errors.New("state: not found")

	// ErrResourceError is returned by CommitBatch/RollbackBatch when no
	// batch is open.
	ErrResourceError = errors.New("state: no open batch")

	// ErrExecutionFailed wraps a database-layer failure surfaced to the
	// executor, which reports it as a failed transaction without panicking.
	ErrExecutionFailed = errors.New("state: execution failed")
)
