// Copyright 2014 The go-ethereum Authors
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
	"sync"

	"github.com/holiman/uint256"
)

// stackLimit is the maximum number of items the stack may hold at once,
// per spec.md §3: push fails with StackOverflow at 1025.
const stackLimit = 1024

// Stack is the EVM's 1024-slot LIFO of 256-bit words. Handlers reached by
// the dispatcher after its min/max-stack precondition check use the
// unchecked pop/push/dup/swap helpers; Push/Pop/Peek stay bounds-checked
// for callers outside that guarantee (tests, tooling).
type Stack struct {
	data []uint256.Int
}

var stackPool = sync.Pool{
	New: func() any { return &Stack{data: make([]uint256.Int, 0, 16)} },
}

func newStack() *Stack {
	return stackPool.Get().(*Stack)
}

func returnStack(s *Stack) {
	s.data = s.data[:0]
	stackPool.Put(s)
}

func (s *Stack) Len() int { return len(s.data) }

// Push appends a value, checked against the 1024-item limit.
func (s *Stack) Push(v uint256.Int) error {
	if len(s.data) >= stackLimit {
		return ErrStackOverflow
	}
	s.data = append(s.data, v)
	return nil
}

// Pop removes and returns the top value, checked against underflow.
func (s *Stack) Pop() (uint256.Int, error) {
	if len(s.data) == 0 {
		return uint256.Int{}, ErrStackUnderflow
	}
	v := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return v, nil
}

// Peek returns the value `depth` items from the top (0 = top) without
// popping it.
func (s *Stack) Peek(depth int) (*uint256.Int, error) {
	if depth < 0 || depth >= len(s.data) {
		return nil, ErrStackUnderflow
	}
	return &s.data[len(s.data)-1-depth], nil
}

// push is the unchecked fast path: legal only once the dispatcher has
// already verified maxStack won't be exceeded.
func (s *Stack) push(v *uint256.Int) {
	s.data = append(s.data, *v)
}

// pop is the unchecked fast path paired with push.
func (s *Stack) pop() uint256.Int {
	v := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return v
}

// back returns a pointer to the n-th item from the top (0 = top) for
// in-place mutation, e.g. opAdd accumulates its result into the second
// operand instead of pushing a fresh value.
func (s *Stack) back(n int) *uint256.Int {
	return &s.data[len(s.data)-1-n]
}

// pop1 pops exactly one operand — the common shape for unary opcodes.
func (s *Stack) pop1() *uint256.Int {
	x := &s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return x
}

// pop2 pops two operands without a push/pop round trip and returns pointers
// to both, second returned directly from the backing array so the caller
// can accumulate the result into it before the final append — mirrors
// go-ethereum's instructions.go convention for binary opcodes.
func (s *Stack) pop2() (x, y *uint256.Int) {
	n := len(s.data)
	x, y = &s.data[n-2], &s.data[n-1]
	s.data = s.data[:n-2]
	return x, y
}

// pop3 pops three operands for ternary opcodes (ADDMOD, MULMOD).
func (s *Stack) pop3() (x, y, z *uint256.Int) {
	n := len(s.data)
	x, y, z = &s.data[n-3], &s.data[n-2], &s.data[n-1]
	s.data = s.data[:n-3]
	return x, y, z
}

// dup pushes a copy of the n-th item from the top (1 = top).
func (s *Stack) dup(n int) {
	s.data = append(s.data, s.data[len(s.data)-n])
}

// swap exchanges the top item with the n-th item from the top (1 = next).
func (s *Stack) swap(n int) {
	top := len(s.data) - 1
	s.data[top], s.data[top-n] = s.data[top-n], s.data[top]
}

// Data exposes the backing slice, top-of-stack last — used by tracers and
// tests that want to inspect the whole stack without popping it.
func (s *Stack) Data() []uint256.Int { return s.data }
