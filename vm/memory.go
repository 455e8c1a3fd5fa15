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
	"github.com/evmts/Guillotine/params"
	"github.com/holiman/uint256"
)

// Memory is the EVM's byte-addressable, word-granular scratch space.
// Its committed size is always a multiple of 32 bytes; growth is charged
// for quadratically via memoryGasCost before the backing slice is resized.
type Memory struct {
	store []byte
}

func newMemory() *Memory {
	return &Memory{}
}

// Len returns the number of committed bytes.
func (m *Memory) Len() int { return len(m.store) }

// Resize grows the backing store to exactly size bytes, zero-filling the
// new region. Callers must have already charged for the expansion via
// memoryGasCost; Resize itself never shrinks and never charges gas.
func (m *Memory) Resize(size uint64) {
	if uint64(len(m.store)) >= size {
		return
	}
	m.store = append(m.store, make([]byte, size-uint64(len(m.store)))...)
}

// Set1 writes a single byte at offset (MSTORE8).
func (m *Memory) Set1(offset uint64, val byte) {
	m.store[offset] = val
}

// Set32 writes val as a 32-byte big-endian word at offset (MSTORE).
func (m *Memory) Set32(offset uint64, val *uint256.Int) {
	b := val.Bytes32()
	copy(m.store[offset:offset+32], b[:])
}

// Set writes len(value) bytes at offset (CODECOPY/CALLDATACOPY/RETURNDATACOPY
// destination writes, and CREATE's initial value of the frame's input).
func (m *Memory) Set(offset uint64, value []byte) {
	if len(value) > 0 {
		copy(m.store[offset:offset+uint64(len(value))], value)
	}
}

// GetCopy returns an owned copy of the size bytes starting at offset
// (e.g. RETURN/REVERT's output buffer, where the memory may be mutated
// after the copy is taken).
func (m *Memory) GetCopy(offset, size uint64) []byte {
	if size == 0 {
		return nil
	}
	out := make([]byte, size)
	copy(out, m.store[offset:offset+size])
	return out
}

// GetPtr returns a slice aliasing the backing store — safe only when the
// caller will not retain it past the next mutating memory operation
// (KECCAK256's input window, LOG's data window).
func (m *Memory) GetPtr(offset, size uint64) []byte {
	if size == 0 {
		return nil
	}
	return m.store[offset : offset+size]
}

// Load32 reads a 32-byte big-endian word at offset. It does not pad: the
// whole word must already lie within the committed size, as it does for
// MLOAD once expansion has been charged and applied by the caller.
func (m *Memory) Load32(offset uint64) *uint256.Int {
	return new(uint256.Int).SetBytes(m.GetPtr(offset, 32))
}

// Data returns the entire committed backing store.
func (m *Memory) Data() []byte { return m.store }

// calcMemSize64 computes offset+length as a uint64, reporting overflow —
// the first step of every memory-touching opcode's size calculation.
func calcMemSize64(off, length *uint256.Int) (uint64, bool) {
	if length.IsZero() {
		return 0, false
	}
	if !length.IsUint64() {
		return 0, true
	}
	if !off.IsUint64() {
		return 0, true
	}
	offU64 := off.Uint64()
	lenU64 := length.Uint64()
	sum := offU64 + lenU64
	return sum, sum < offU64
}

// calcMemSize64WithUint is calcMemSize64 for a length that is already a
// concrete uint64 (EXTCODECOPY's code length, for instance).
func calcMemSize64WithUint(off *uint256.Int, length uint64) (uint64, bool) {
	if length == 0 {
		return 0, false
	}
	if !off.IsUint64() {
		return 0, true
	}
	offU64 := off.Uint64()
	sum := offU64 + length
	return sum, sum < offU64
}

// memorySizeCeil rounds a required byte size up to the next word boundary,
// matching the memory's invariant that its committed size is always a
// multiple of 32.
func memorySizeCeil(size uint64, overflow bool) (uint64, error) {
	const maxMemSize = 0x1FFFFFFFE0 // keeps the subsequent gas computation in uint64 range
	if overflow || size > maxMemSize {
		return 0, ErrGasUintOverflow
	}
	return toWordSize(size) * 32, nil
}

func toWordSize(size uint64) uint64 {
	if size > 0xFFFFFFFFFFFFFFFF-31 {
		return 0xFFFFFFFFFFFFFFFF/32 + 1
	}
	return (size + 31) / 32
}

// memoryGasCost implements spec.md §3's expansion_cost formula:
// C(new_w) - C(old_w) with C(w) = 3*w + floor(w^2/512), charged only when
// the new size exceeds the memory's current committed size.
func memoryGasCost(mem *Memory, newSize uint64) (uint64, error) {
	if newSize == 0 {
		return 0, nil
	}
	newSize, err := memorySizeCeil(newSize, false)
	if err != nil {
		return 0, err
	}
	if uint64(mem.Len()) >= newSize {
		return 0, nil
	}
	newWords := toWordSize(newSize)
	oldWords := toWordSize(uint64(mem.Len()))

	newCost := memWordCost(newWords)
	oldCost := memWordCost(oldWords)
	if newCost < oldCost {
		return 0, ErrGasUintOverflow
	}
	return newCost - oldCost, nil
}

func memWordCost(words uint64) uint64 {
	square := words * words
	linCoef := words * params.MemoryGas
	quadCoef := square / params.QuadCoeffDiv
	return linCoef + quadCoef
}
