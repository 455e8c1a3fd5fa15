// Copyright 2023 The go-ethereum Authors
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

func TestTracerObservesEveryOpcodeAndGasChange(t *testing.T) {
	db := state.NewMemoryDatabase()
	contractAddr := primitives.BytesToAddress([]byte{0x05})
	code := concatCode(pushU64(3), pushU64(4), []byte{byte(ADD)}, []byte{byte(STOP)})
	deployAccount(db, contractAddr, code)

	var opcodes []OpCode
	var gasChanges int
	hooks := &Hooks{
		OnOpcode:    func(pc uint64, op OpCode, gas, cost uint64, depth int, err error) { opcodes = append(opcodes, op) },
		OnGasChange: func(old, new uint64) { gasChanges++ },
	}

	exec := NewExecutor(params.MainnetChainConfig)
	exec.SetTracer(hooks)
	msg := Message{
		From:     primitives.BytesToAddress([]byte{0xFF}),
		To:       &contractAddr,
		Value:    new(uint256.Int),
		GasLimit: 1_000_000,
		GasPrice: new(uint256.Int),
	}
	result := exec.Execute(db, msg, BlockContext{})
	require.NoError(t, result.Err)
	require.Equal(t, []OpCode{PUSH8, PUSH8, ADD, STOP}, opcodes)
	// STOP costs no gas, so only the two PUSH8s and ADD change it.
	require.Equal(t, 3, gasChanges)
}

func TestTracerOnFaultFiresOnStackUnderflowWithoutOnOpcode(t *testing.T) {
	db := state.NewMemoryDatabase()
	contractAddr := primitives.BytesToAddress([]byte{0x06})
	// ADD with nothing on the stack underflows before dispatch.
	code := []byte{byte(ADD)}
	deployAccount(db, contractAddr, code)

	var faults, opcodes int
	hooks := &Hooks{
		OnOpcode: func(pc uint64, op OpCode, gas, cost uint64, depth int, err error) { opcodes++ },
		OnFault:  func(pc uint64, op OpCode, gas, cost uint64, depth int, err error) { faults++ },
	}

	exec := NewExecutor(params.MainnetChainConfig)
	exec.SetTracer(hooks)
	msg := Message{
		From:     primitives.BytesToAddress([]byte{0xFF}),
		To:       &contractAddr,
		Value:    new(uint256.Int),
		GasLimit: 1_000_000,
		GasPrice: new(uint256.Int),
	}
	result := exec.Execute(db, msg, BlockContext{})
	require.ErrorIs(t, result.Err, ErrStackUnderflow)
	require.Equal(t, 1, faults)
	require.Zero(t, opcodes)
}
