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

package vm

import (
	"github.com/evmts/Guillotine/primitives"
	"github.com/holiman/uint256"
)

// Frame is one entry in the call stack: the running code, its gas meter,
// the Stack/Memory scratch space it owns, and the addressing context the
// CALL family and environment opcodes read from. It is go-ethereum's
// Contract and ScopeContext merged into a single allocation, since nothing
// in this interpreter needs to share a ScopeContext across two Frames.
type Frame struct {
	Code     []byte
	CodeHash primitives.Hash
	Gas      uint64

	Stack  *Stack
	Memory *Memory

	Caller   primitives.Address
	Address  primitives.Address // the executing contract's own address
	CallValue *uint256.Int
	Input    []byte

	ReturnData []byte // data from the most recently completed child call

	Depth    int
	IsStatic bool
	IsCreate bool

	validJumpdest *bitvec
	gasUsed       uint64
}

// NewFrame builds a fresh Frame. The Stack and Memory are pulled from their
// pools; callers must call Release when the frame is done executing.
func NewFrame(caller, address primitives.Address, code []byte, codeHash primitives.Hash, gas uint64, value *uint256.Int, input []byte, depth int, isStatic, isCreate bool) *Frame {
	return &Frame{
		Code:      code,
		CodeHash:  codeHash,
		Gas:       gas,
		Stack:     newStack(),
		Memory:    newMemory(),
		Caller:    caller,
		Address:   address,
		CallValue: value,
		Input:     input,
		Depth:     depth,
		IsStatic:  isStatic,
		IsCreate:  isCreate,
	}
}

// Release returns the Frame's Stack to its pool. Memory is not pooled: its
// backing array size varies too widely across calls to make reuse worthwhile.
func (f *Frame) Release() {
	if f.Stack != nil {
		returnStack(f.Stack)
		f.Stack = nil
	}
}

// UseGas deducts amount from the frame's remaining gas, failing with
// ErrOutOfGas rather than underflowing.
func (f *Frame) UseGas(amount uint64) error {
	if f.Gas < amount {
		return ErrOutOfGas
	}
	f.Gas -= amount
	f.gasUsed += amount
	return nil
}

// RefundGas credits amount back to the frame, used by the CALL and CREATE
// families to return a child's unused gas.
func (f *Frame) RefundGas(amount uint64) {
	f.Gas += amount
}

// GasUsed reports the cumulative amount charged against this frame through
// UseGas; RefundGas does not reduce it.
func (f *Frame) GasUsed() uint64 { return f.gasUsed }

// CodeAt returns the byte at pc, or STOP past the end of code — matching
// go-ethereum's convention that execution past the final instruction halts
// rather than faults.
func (f *Frame) CodeAt(pc uint64) OpCode {
	if pc >= uint64(len(f.Code)) {
		return STOP
	}
	return OpCode(f.Code[pc])
}
