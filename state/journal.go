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

import (
	"github.com/evmts/Guillotine/primitives"
	"github.com/holiman/uint256"
)

// journalEntry is one inverse operation in the write-ahead journal that
// backs CreateSnapshot/RevertToSnapshot (spec.md §9's "State journaling"
// design note): every mutation appends an entry capable of undoing itself.
type journalEntry interface {
	undo(db *MemoryDatabase)
}

// journal is an append-only log of journalEntry, indexed by SnapshotID.
// Because entries only ever grow, a SnapshotID is simply the journal's
// length at the moment the snapshot was taken; reverting replays entries
// back to front down to that length and truncates.
type journal struct {
	entries []journalEntry
}

func (j *journal) append(e journalEntry) {
	j.entries = append(j.entries, e)
}

func (j *journal) length() int { return len(j.entries) }

func (j *journal) revertTo(db *MemoryDatabase, id SnapshotID) error {
	if int(id) > len(j.entries) || id < 0 {
		return ErrNotFound
	}
	for i := len(j.entries) - 1; i >= int(id); i-- {
		j.entries[i].undo(db)
	}
	j.entries = j.entries[:id]
	return nil
}

type setAccountChange struct {
	addr    primitives.Address
	prev    Account
	existed bool
}

func (c *setAccountChange) undo(db *MemoryDatabase) {
	if c.existed {
		db.accounts[c.addr] = c.prev
	} else {
		delete(db.accounts, c.addr)
	}
}

type storageChange struct {
	addr    primitives.Address
	key     primitives.Hash
	prev    uint256.Int
	existed bool
}

func (c *storageChange) undo(db *MemoryDatabase) {
	slots := db.storage[c.addr]
	if slots == nil {
		return
	}
	if c.existed {
		slots[c.key] = c.prev
	} else {
		delete(slots, c.key)
	}
}

type transientChange struct {
	addr    primitives.Address
	key     primitives.Hash
	prev    uint256.Int
	existed bool
}

func (c *transientChange) undo(db *MemoryDatabase) {
	slots := db.transient[c.addr]
	if slots == nil {
		return
	}
	if c.existed {
		slots[c.key] = c.prev
	} else {
		delete(slots, c.key)
	}
}

type accessListAddrChange struct {
	addr primitives.Address
}

func (c *accessListAddrChange) undo(db *MemoryDatabase) {
	delete(db.warmAddresses, c.addr)
}

type accessListSlotChange struct {
	addr primitives.Address
	key  primitives.Hash
}

func (c *accessListSlotChange) undo(db *MemoryDatabase) {
	if slots := db.warmSlots[c.addr]; slots != nil {
		delete(slots, c.key)
	}
}

type logChange struct{}

func (c *logChange) undo(db *MemoryDatabase) {
	db.logs = db.logs[:len(db.logs)-1]
}

type selfDestructChange struct {
	addr    primitives.Address
	existed bool
}

func (c *selfDestructChange) undo(db *MemoryDatabase) {
	if !c.existed {
		delete(db.selfDestructs, c.addr)
	}
}

type createdThisTxChange struct {
	addr    primitives.Address
	existed bool
}

func (c *createdThisTxChange) undo(db *MemoryDatabase) {
	if !c.existed {
		delete(db.createdThisTx, c.addr)
	}
}

type refundChange struct {
	prev uint64
}

func (c *refundChange) undo(db *MemoryDatabase) {
	db.refund = c.prev
}
