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
	"sort"

	"github.com/evmts/Guillotine/crypto"
	"github.com/evmts/Guillotine/primitives"
	"github.com/holiman/uint256"
)

// MemoryDatabase is the in-memory Database implementation the interpreter
// is exercised against. There is no disk persistence (spec.md §1
// Non-goals); GetStateRoot/CommitChanges fold the live maps into a single
// Keccak256 digest rather than a Merkle-Patricia trie root, since trie
// hashing is an explicit external collaborator.
type MemoryDatabase struct {
	accounts  map[primitives.Address]Account
	storage   map[primitives.Address]map[primitives.Hash]uint256.Int
	code      map[primitives.Hash][]byte
	transient map[primitives.Address]map[primitives.Hash]uint256.Int

	warmAddresses map[primitives.Address]struct{}
	warmSlots     map[primitives.Address]map[primitives.Hash]struct{}

	logs          []Log
	selfDestructs map[primitives.Address]struct{}
	createdThisTx map[primitives.Address]struct{}
	refund        uint64

	journal    journal
	batchStack []SnapshotID
}

// NewMemoryDatabase returns an empty MemoryDatabase, ready for use.
func NewMemoryDatabase() *MemoryDatabase {
	return &MemoryDatabase{
		accounts:      make(map[primitives.Address]Account),
		storage:       make(map[primitives.Address]map[primitives.Hash]uint256.Int),
		code:          make(map[primitives.Hash][]byte),
		transient:     make(map[primitives.Address]map[primitives.Hash]uint256.Int),
		warmAddresses: make(map[primitives.Address]struct{}),
		warmSlots:     make(map[primitives.Address]map[primitives.Hash]struct{}),
		selfDestructs: make(map[primitives.Address]struct{}),
		createdThisTx: make(map[primitives.Address]struct{}),
	}
}

var _ Database = (*MemoryDatabase)(nil)

// --- accounts ---

func (db *MemoryDatabase) Exists(addr primitives.Address) bool {
	_, ok := db.accounts[addr]
	return ok
}

func (db *MemoryDatabase) GetAccount(addr primitives.Address) (Account, bool) {
	acc, ok := db.accounts[addr]
	return acc, ok
}

func (db *MemoryDatabase) SetAccount(addr primitives.Address, acc Account) {
	prev, existed := db.accounts[addr]
	db.journal.append(&setAccountChange{addr: addr, prev: prev, existed: existed})
	db.accounts[addr] = acc.Copy()
}

func (db *MemoryDatabase) DeleteAccount(addr primitives.Address) {
	prev, existed := db.accounts[addr]
	if !existed {
		return
	}
	db.journal.append(&setAccountChange{addr: addr, prev: prev, existed: true})
	delete(db.accounts, addr)
}

// --- storage ---

func (db *MemoryDatabase) GetStorage(addr primitives.Address, key primitives.Hash) uint256.Int {
	if slots, ok := db.storage[addr]; ok {
		return slots[key]
	}
	return uint256.Int{}
}

func (db *MemoryDatabase) SetStorage(addr primitives.Address, key primitives.Hash, value uint256.Int) {
	slots, ok := db.storage[addr]
	if !ok {
		slots = make(map[primitives.Hash]uint256.Int)
		db.storage[addr] = slots
	}
	prev, existed := slots[key]
	db.journal.append(&storageChange{addr: addr, key: key, prev: prev, existed: existed})
	slots[key] = value
}

// --- code ---

func (db *MemoryDatabase) GetCode(hash primitives.Hash) []byte {
	return db.code[hash]
}

// SetCode registers code content-addressed by its Keccak256 hash. Code
// registration is idempotent (the same bytes always hash to the same key),
// so it is deliberately not journaled: reverting a snapshot never needs to
// "unregister" a code blob, it only needs to stop referencing it via an
// account's CodeHash, which SetAccount/DeleteAccount already journal.
func (db *MemoryDatabase) SetCode(code []byte) primitives.Hash {
	if len(code) == 0 {
		return crypto.EmptyCodeHash
	}
	hash := crypto.Keccak256Hash(code)
	if _, ok := db.code[hash]; !ok {
		stored := make([]byte, len(code))
		copy(stored, code)
		db.code[hash] = stored
	}
	return hash
}

// --- transient storage (EIP-1153) ---

func (db *MemoryDatabase) GetTransient(addr primitives.Address, key primitives.Hash) uint256.Int {
	if slots, ok := db.transient[addr]; ok {
		return slots[key]
	}
	return uint256.Int{}
}

func (db *MemoryDatabase) SetTransient(addr primitives.Address, key primitives.Hash, value uint256.Int) {
	slots, ok := db.transient[addr]
	if !ok {
		slots = make(map[primitives.Hash]uint256.Int)
		db.transient[addr] = slots
	}
	prev, existed := slots[key]
	db.journal.append(&transientChange{addr: addr, key: key, prev: prev, existed: existed})
	slots[key] = value
}

func (db *MemoryDatabase) ClearTransientStorage() {
	db.transient = make(map[primitives.Address]map[primitives.Hash]uint256.Int)
}

// --- access list (EIP-2929) ---

func (db *MemoryDatabase) MarkAddressWarm(addr primitives.Address) bool {
	if _, ok := db.warmAddresses[addr]; ok {
		return false
	}
	db.warmAddresses[addr] = struct{}{}
	db.journal.append(&accessListAddrChange{addr: addr})
	return true
}

func (db *MemoryDatabase) MarkSlotWarm(addr primitives.Address, key primitives.Hash) bool {
	slots, ok := db.warmSlots[addr]
	if !ok {
		slots = make(map[primitives.Hash]struct{})
		db.warmSlots[addr] = slots
	}
	if _, ok := slots[key]; ok {
		return false
	}
	slots[key] = struct{}{}
	db.journal.append(&accessListSlotChange{addr: addr, key: key})
	return true
}

func (db *MemoryDatabase) IsAddressWarm(addr primitives.Address) bool {
	_, ok := db.warmAddresses[addr]
	return ok
}

func (db *MemoryDatabase) IsSlotWarm(addr primitives.Address, key primitives.Hash) bool {
	slots, ok := db.warmSlots[addr]
	if !ok {
		return false
	}
	_, ok = slots[key]
	return ok
}

func (db *MemoryDatabase) ResetAccessList() {
	db.warmAddresses = make(map[primitives.Address]struct{})
	db.warmSlots = make(map[primitives.Address]map[primitives.Hash]struct{})
}

// --- logs ---

func (db *MemoryDatabase) AddLog(entry Log) {
	db.logs = append(db.logs, entry)
	db.journal.append(&logChange{})
}

func (db *MemoryDatabase) Logs() []Log {
	return db.logs
}

// --- selfdestruct / created-this-tx ---

func (db *MemoryDatabase) MarkSelfDestruct(addr primitives.Address) {
	_, existed := db.selfDestructs[addr]
	if existed {
		return
	}
	db.journal.append(&selfDestructChange{addr: addr, existed: false})
	db.selfDestructs[addr] = struct{}{}
}

func (db *MemoryDatabase) SelfDestructs() []primitives.Address {
	out := make([]primitives.Address, 0, len(db.selfDestructs))
	for a := range db.selfDestructs {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Cmp(out[j]) < 0 })
	return out
}

func (db *MemoryDatabase) MarkCreatedThisTx(addr primitives.Address) {
	_, existed := db.createdThisTx[addr]
	if existed {
		return
	}
	db.journal.append(&createdThisTxChange{addr: addr, existed: false})
	db.createdThisTx[addr] = struct{}{}
}

func (db *MemoryDatabase) WasCreatedThisTx(addr primitives.Address) bool {
	_, ok := db.createdThisTx[addr]
	return ok
}

// --- refund counter ---

func (db *MemoryDatabase) AddRefund(amount uint64) {
	db.journal.append(&refundChange{prev: db.refund})
	db.refund += amount
}

func (db *MemoryDatabase) SubRefund(amount uint64) {
	db.journal.append(&refundChange{prev: db.refund})
	if amount > db.refund {
		// A handler asking to claw back more refund than outstanding is an
		// interpreter bug, not a user-triggerable condition; clamp rather
		// than underflow the counter.
		db.refund = 0
		return
	}
	db.refund -= amount
}

func (db *MemoryDatabase) Refund() uint64 {
	return db.refund
}

func (db *MemoryDatabase) BeginTransaction() {
	db.refund = 0
	db.selfDestructs = make(map[primitives.Address]struct{})
	db.createdThisTx = make(map[primitives.Address]struct{})
	db.ClearTransientStorage()
	db.ResetAccessList()
	db.logs = nil
	db.journal = journal{}
	db.batchStack = nil
}

// --- snapshots ---

func (db *MemoryDatabase) CreateSnapshot() SnapshotID {
	return SnapshotID(db.journal.length())
}

func (db *MemoryDatabase) CommitSnapshot(id SnapshotID) error {
	if int(id) > db.journal.length() || id < 0 {
		return ErrNotFound
	}
	return nil
}

func (db *MemoryDatabase) RevertToSnapshot(id SnapshotID) error {
	return db.journal.revertTo(db, id)
}

// --- batches ---

func (db *MemoryDatabase) BeginBatch() {
	db.batchStack = append(db.batchStack, db.CreateSnapshot())
}

func (db *MemoryDatabase) CommitBatch() error {
	if len(db.batchStack) == 0 {
		return ErrResourceError
	}
	db.batchStack = db.batchStack[:len(db.batchStack)-1]
	return nil
}

func (db *MemoryDatabase) RollbackBatch() error {
	if len(db.batchStack) == 0 {
		return ErrResourceError
	}
	id := db.batchStack[len(db.batchStack)-1]
	db.batchStack = db.batchStack[:len(db.batchStack)-1]
	return db.RevertToSnapshot(id)
}

// --- roots ---

// GetStateRoot folds the live account set (and each account's storage) into
// a single Keccak256 digest. It is a content hash, not a Merkle-Patricia
// trie root — trie hashing is an external collaborator per spec.md §1 — but
// it satisfies the testable property that revert_to_snapshot(s) restores
// byte-identical equality with the root captured at s.
func (db *MemoryDatabase) GetStateRoot() primitives.Hash {
	addrs := make([]primitives.Address, 0, len(db.accounts))
	for a := range db.accounts {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i].Cmp(addrs[j]) < 0 })

	var buf []byte
	for _, a := range addrs {
		acc := db.accounts[a]
		buf = append(buf, a.Bytes()...)
		if acc.Balance != nil {
			b := acc.Balance.Bytes32()
			buf = append(buf, b[:]...)
		}
		var nonceBuf [8]byte
		for i := 0; i < 8; i++ {
			nonceBuf[i] = byte(acc.Nonce >> (56 - 8*i))
		}
		buf = append(buf, nonceBuf[:]...)
		buf = append(buf, acc.CodeHash.Bytes()...)

		slots := db.storage[a]
		keys := make([]primitives.Hash, 0, len(slots))
		for k := range slots {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return less32(keys[i], keys[j]) })
		for _, k := range keys {
			v := slots[k]
			if v.IsZero() {
				continue
			}
			buf = append(buf, k.Bytes()...)
			vb := v.Bytes32()
			buf = append(buf, vb[:]...)
		}
	}
	return crypto.Keccak256Hash(buf)
}

// CommitChanges finalizes the current state as authoritative: it returns
// the same digest as GetStateRoot, then discards the journal so that no
// snapshot taken before this point can be reverted to again. This mirrors
// a transaction boundary: once a transaction's changes are committed,
// there is nothing earlier to roll back to.
func (db *MemoryDatabase) CommitChanges() primitives.Hash {
	root := db.GetStateRoot()
	db.journal = journal{}
	db.batchStack = nil
	return root
}

func less32(a, b primitives.Hash) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
