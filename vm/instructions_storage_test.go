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

package vm

import (
	"testing"

	"github.com/evmts/Guillotine/params"
	"github.com/evmts/Guillotine/primitives"
	"github.com/evmts/Guillotine/state"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func newStorageTestEnv() (*callEnv, *Frame) {
	db := state.NewMemoryDatabase()
	db.BeginTransaction()
	env := newCallEnv(db, params.MainnetChainConfig, BlockContext{}, TxContext{})
	addr := primitives.BytesToAddress([]byte{0xAA})
	f := NewFrame(addr, addr, nil, primitives.Hash{}, 1_000_000, new(uint256.Int), nil, 0, false, false)
	return env, f
}

func TestSstoreThenSloadRoundTrips(t *testing.T) {
	env, f := newStorageTestEnv()
	defer f.Release()

	require.NoError(t, f.Stack.Push(*uint256.NewInt(42)))  // value
	require.NoError(t, f.Stack.Push(*uint256.NewInt(1)))    // key
	var pc uint64
	_, err := opSstore(&pc, env, f)
	require.NoError(t, err)

	require.NoError(t, f.Stack.Push(*uint256.NewInt(1))) // key
	_, err = opSload(&pc, env, f)
	require.NoError(t, err)
	require.Equal(t, uint64(42), f.Stack.pop1().Uint64())
}

func TestSloadUnwrittenSlotIsZero(t *testing.T) {
	env, f := newStorageTestEnv()
	defer f.Release()

	require.NoError(t, f.Stack.Push(*uint256.NewInt(99)))
	var pc uint64
	_, err := opSload(&pc, env, f)
	require.NoError(t, err)
	require.True(t, f.Stack.pop1().IsZero())
}

func TestSlotWarmingIsColdOnFirstTouch(t *testing.T) {
	db := state.NewMemoryDatabase()
	db.BeginTransaction()
	addr := primitives.BytesToAddress([]byte{0xBB})
	key := primitives.Hash{0x01}

	require.True(t, db.MarkSlotWarm(addr, key))
	require.False(t, db.MarkSlotWarm(addr, key))
}

func TestTstoreThenTloadRoundTripsAndIsTransactionScoped(t *testing.T) {
	env, f := newStorageTestEnv()
	defer f.Release()

	require.NoError(t, f.Stack.Push(*uint256.NewInt(7)))
	require.NoError(t, f.Stack.Push(*uint256.NewInt(3)))
	var pc uint64
	_, err := opTstore(&pc, env, f)
	require.NoError(t, err)

	require.NoError(t, f.Stack.Push(*uint256.NewInt(3)))
	_, err = opTload(&pc, env, f)
	require.NoError(t, err)
	require.Equal(t, uint64(7), f.Stack.pop1().Uint64())

	env.db.(*state.MemoryDatabase).BeginTransaction()
	require.NoError(t, f.Stack.Push(*uint256.NewInt(3)))
	_, err = opTload(&pc, env, f)
	require.NoError(t, err)
	require.True(t, f.Stack.pop1().IsZero())
}

// EIP-2200's sentry: a call running on nothing but the 2300 gas stipend must
// fail SSTORE outright rather than have it priced.
func TestGasSStoreRejectsCallsAtOrBelowTheSentry(t *testing.T) {
	env, f := newStorageTestEnv()
	defer f.Release()

	require.NoError(t, f.Stack.Push(*uint256.NewInt(1))) // value
	require.NoError(t, f.Stack.Push(*uint256.NewInt(1))) // key
	f.Gas = params.SstoreSentryGasEIP2200
	_, err := gasSStore(env, f, 0)
	require.ErrorIs(t, err, ErrOutOfGas)
}

func TestGasSStoreAllowsSpendingAboveTheSentry(t *testing.T) {
	env, f := newStorageTestEnv()
	defer f.Release()

	require.NoError(t, f.Stack.Push(*uint256.NewInt(1))) // value
	require.NoError(t, f.Stack.Push(*uint256.NewInt(1))) // key
	f.Gas = params.SstoreSentryGasEIP2200 + 1
	_, err := gasSStore(env, f, 0)
	require.NoError(t, err)
}
