// Copyright 2015 The go-ethereum Authors
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

import (
	"github.com/evmts/Guillotine/primitives"
	"github.com/holiman/uint256"
)

// SnapshotID names a point-in-time checkpoint created by CreateSnapshot.
// It is opaque to callers; the only valid uses are CommitSnapshot and
// RevertToSnapshot.
type SnapshotID int

// Database is the world-state interface the execution core is written
// against — spec.md §4.4/§6's external collaborator. The interpreter and
// executor never see a concrete storage engine, only this interface, so a
// disk-backed or trie-backed implementation can be substituted without
// touching vm or precompiles.
//
// Database is not safe for concurrent use: exactly one Executor may hold a
// mutable reference to it at a time (spec.md §5).
type Database interface {
	// Accounts.
	Exists(addr primitives.Address) bool
	GetAccount(addr primitives.Address) (Account, bool)
	SetAccount(addr primitives.Address, acc Account)
	DeleteAccount(addr primitives.Address)

	// Storage.
	GetStorage(addr primitives.Address, key primitives.Hash) uint256.Int
	SetStorage(addr primitives.Address, key primitives.Hash, value uint256.Int)

	// Code, content-addressed by Keccak256.
	GetCode(hash primitives.Hash) []byte
	SetCode(code []byte) primitives.Hash

	// Transient storage (EIP-1153): never persisted, cleared at end of
	// transaction by ClearTransientStorage.
	GetTransient(addr primitives.Address, key primitives.Hash) uint256.Int
	SetTransient(addr primitives.Address, key primitives.Hash, value uint256.Int)
	ClearTransientStorage()

	// Access list (EIP-2929), scoped to the lifetime of one transaction.
	MarkAddressWarm(addr primitives.Address) (wasCold bool)
	MarkSlotWarm(addr primitives.Address, key primitives.Hash) (wasCold bool)
	IsAddressWarm(addr primitives.Address) bool
	IsSlotWarm(addr primitives.Address, key primitives.Hash) bool
	ResetAccessList()

	// Logs, appended only, reverted with their enclosing snapshot.
	AddLog(entry Log)
	Logs() []Log

	// SELFDESTRUCT bookkeeping: the beneficiary transfer happens through
	// SetAccount/DeleteAccount; this just records which addresses were
	// marked, and separately which accounts were created earlier in the
	// same transaction (post-Cancun, SELFDESTRUCT only deletes the account
	// in that case; otherwise it just transfers the balance).
	MarkSelfDestruct(addr primitives.Address)
	SelfDestructs() []primitives.Address
	MarkCreatedThisTx(addr primitives.Address)
	WasCreatedThisTx(addr primitives.Address) bool

	// Refund counter, transaction-scoped.
	AddRefund(amount uint64)
	SubRefund(amount uint64)
	Refund() uint64

	// BeginTransaction resets every transaction-scoped structure: the
	// refund counter, self-destruct set, created-this-tx set, transient
	// storage and access list. Callers re-warm the access list afterwards.
	BeginTransaction()

	// Snapshots: the executor's per-call revert mechanism.
	CreateSnapshot() SnapshotID
	CommitSnapshot(id SnapshotID) error
	RevertToSnapshot(id SnapshotID) error

	// Batches: a user-visible staging area, orthogonal to snapshots. Not
	// driven by the interpreter itself (see DESIGN.md's Open Question).
	BeginBatch()
	CommitBatch() error
	RollbackBatch() error

	// Roots.
	GetStateRoot() primitives.Hash
	CommitChanges() primitives.Hash
}

// Log is a single LOG0..LOG4 entry, per spec.md §3.
type Log struct {
	Address primitives.Address
	Topics  []primitives.Hash
	Data    []byte
}
