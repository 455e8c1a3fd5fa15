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
	"reflect"
	"testing"

	"github.com/evmts/Guillotine/params"
	"github.com/stretchr/testify/require"
)

func executePtr(fn executionFunc) uintptr { return reflect.ValueOf(fn).Pointer() }
func opUndefinedPtr() uintptr             { return reflect.ValueOf(executionFunc(opUndefined)).Pointer() }

func TestEveryInstructionSetEntryHasAnOperation(t *testing.T) {
	builders := []func() JumpTable{
		newFrontierInstructionSet, newHomesteadInstructionSet,
		newTangerineWhistleInstructionSet, newByzantiumInstructionSet,
		newConstantinopleInstructionSet, newIstanbulInstructionSet,
		newBerlinInstructionSet, newLondonInstructionSet,
		newMergeInstructionSet, newShanghaiInstructionSet,
		newCancunInstructionSet,
	}
	for _, build := range builders {
		tbl := build()
		for i := 0; i < 256; i++ {
			op := tbl[i]
			require.NotNil(t, op, "opcode 0x%02x has no operation entry", i)
			require.NotNil(t, op.execute, "opcode 0x%02x has no execute func", i)
		}
	}
}

func TestPush0OnlyAvailableFromShanghai(t *testing.T) {
	require.Equal(t, opUndefinedPtr(), executePtr(newLondonInstructionSet()[PUSH0].execute))
	require.NotEqual(t, opUndefinedPtr(), executePtr(newShanghaiInstructionSet()[PUSH0].execute))
}

func TestChainIDOnlyAvailableFromIstanbul(t *testing.T) {
	require.Equal(t, opUndefinedPtr(), executePtr(newByzantiumInstructionSet()[CHAINID].execute))
	require.NotEqual(t, opUndefinedPtr(), executePtr(newIstanbulInstructionSet()[CHAINID].execute))
}

func TestNewInstructionSetDispatchesOnHighestActiveFork(t *testing.T) {
	rules := params.Rules{IsCancun: true, IsShanghai: true, IsLondon: true, IsBerlin: true, IsIstanbul: true, IsByzantium: true, IsHomestead: true, IsTangerineWhistle: true}
	tbl := newInstructionSet(rules)
	require.NotEqual(t, opUndefinedPtr(), executePtr(tbl[TLOAD].execute), "Cancun rules should select the Cancun instruction set")
}

func TestNewInstructionSetFallsBackToFrontier(t *testing.T) {
	tbl := newInstructionSet(params.Rules{})
	require.NotNil(t, tbl[ADD])
	require.Equal(t, opUndefinedPtr(), executePtr(tbl[CHAINID].execute))
}

func TestFillUndefinedCoversEveryUnmappedOpcode(t *testing.T) {
	tbl := newFrontierInstructionSet()
	fillUndefined(&tbl)
	for i := 0; i < 256; i++ {
		require.NotNil(t, tbl[i])
		require.NotNil(t, tbl[i].execute)
	}
}

// Memory is frame-local, not world state: a STATICCALL must still be able
// to MSTORE/MSTORE8/MCOPY into its own scratch space while writing to
// storage, logs, and balances stays forbidden.
func TestMemoryOpsAreNotFlaggedAsWrites(t *testing.T) {
	tbl := newCancunInstructionSet()
	require.False(t, tbl[MSTORE].writes)
	require.False(t, tbl[MSTORE8].writes)
	require.False(t, tbl[MCOPY].writes)
}

func TestStateMutatingOpsAreFlaggedAsWrites(t *testing.T) {
	tbl := newCancunInstructionSet()
	require.True(t, tbl[SSTORE].writes)
	require.True(t, tbl[TSTORE].writes)
	require.True(t, tbl[LOG0].writes)
	require.True(t, tbl[CREATE].writes)
	require.True(t, tbl[CREATE2].writes)
	require.True(t, tbl[SELFDESTRUCT].writes)
}
