// Copyright 2024 The go-ethereum Authors
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
	"testing"

	"github.com/evmts/Guillotine/primitives"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestRevertToSnapshotRestoresStateRoot(t *testing.T) {
	db := NewMemoryDatabase()
	addr := primitives.BytesToAddress([]byte{0x01})
	db.SetAccount(addr, Account{Balance: uint256.NewInt(100), Nonce: 1})

	root := db.GetStateRoot()
	snap := db.CreateSnapshot()

	db.SetStorage(addr, primitives.Hash{0x01}, *uint256.NewInt(42))
	db.SetAccount(addr, Account{Balance: uint256.NewInt(999), Nonce: 5})

	require.NotEqual(t, root, db.GetStateRoot())
	require.NoError(t, db.RevertToSnapshot(snap))
	require.Equal(t, root, db.GetStateRoot())
}

func TestRevertToSnapshotUnknownIDFails(t *testing.T) {
	db := NewMemoryDatabase()
	err := db.RevertToSnapshot(SnapshotID(5))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestNestedSnapshotsUndoInOrder(t *testing.T) {
	db := NewMemoryDatabase()
	addr := primitives.BytesToAddress([]byte{0x02})

	db.SetAccount(addr, Account{Balance: uint256.NewInt(1)})
	outer := db.CreateSnapshot()

	db.SetAccount(addr, Account{Balance: uint256.NewInt(2)})
	inner := db.CreateSnapshot()

	db.SetAccount(addr, Account{Balance: uint256.NewInt(3)})
	require.NoError(t, db.RevertToSnapshot(inner))
	acc, _ := db.GetAccount(addr)
	require.Equal(t, uint64(2), acc.Balance.Uint64())

	require.NoError(t, db.RevertToSnapshot(outer))
	acc, _ = db.GetAccount(addr)
	require.Equal(t, uint64(1), acc.Balance.Uint64())
}

func TestAccessListWarmCold(t *testing.T) {
	db := NewMemoryDatabase()
	addr := primitives.BytesToAddress([]byte{0x03})
	slot := primitives.Hash{0x01}

	require.True(t, db.MarkSlotWarm(addr, slot), "first touch is cold")
	require.False(t, db.MarkSlotWarm(addr, slot), "second touch is warm")
	require.True(t, db.IsSlotWarm(addr, slot))
}

func TestBatchRollbackUndoesSnapshot(t *testing.T) {
	db := NewMemoryDatabase()
	addr := primitives.BytesToAddress([]byte{0x04})
	db.SetAccount(addr, Account{Balance: uint256.NewInt(10)})

	db.BeginBatch()
	db.SetAccount(addr, Account{Balance: uint256.NewInt(20)})
	require.NoError(t, db.RollbackBatch())

	acc, _ := db.GetAccount(addr)
	require.Equal(t, uint64(10), acc.Balance.Uint64())

	require.ErrorIs(t, db.RollbackBatch(), ErrResourceError)
	require.ErrorIs(t, db.CommitBatch(), ErrResourceError)
}

func TestTransientStorageClearedBetweenTransactions(t *testing.T) {
	db := NewMemoryDatabase()
	addr := primitives.BytesToAddress([]byte{0x05})
	key := primitives.Hash{0x01}
	db.SetTransient(addr, key, *uint256.NewInt(7))
	before := db.GetTransient(addr, key)
	require.Equal(t, uint64(7), before.Uint64())

	db.BeginTransaction()
	after := db.GetTransient(addr, key)
	require.True(t, after.IsZero())
}
