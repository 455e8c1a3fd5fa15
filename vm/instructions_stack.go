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
	"github.com/evmts/Guillotine/primitives"
	"github.com/evmts/Guillotine/state"
	"github.com/holiman/uint256"
)

// opPush handles PUSH1..PUSH32: it reads n immediate bytes following the
// opcode, zero-extends them to 256 bits, and advances pc itself (1 + n)
// since the interpreter's auto-advance only ever adds one.
func opPush(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	n := int(f.CodeAt(*pc)) - int(PUSH0)
	start := *pc + 1
	end := start + uint64(n)
	var buf [32]byte
	if end > uint64(len(f.Code)) {
		end = uint64(len(f.Code))
	}
	if start < end {
		copy(buf[32-n:], f.Code[start:end])
	}
	f.Stack.push(new(uint256.Int).SetBytes(buf[:]))
	*pc += uint64(n) + 1
	return nil, nil
}

func opPush0(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	f.Stack.push(new(uint256.Int))
	*pc++
	return nil, nil
}

func makeDup(n int) executionFunc {
	return func(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
		f.Stack.dup(n)
		return nil, nil
	}
}

func makeSwap(n int) executionFunc {
	return func(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
		f.Stack.swap(n)
		return nil, nil
	}
}

func makeLog(n int) executionFunc {
	return func(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
		if f.IsStatic {
			return nil, ErrWriteProtection
		}
		offset, size := f.Stack.pop1(), f.Stack.pop1()
		topics := make([]primitives.Hash, n)
		for i := 0; i < n; i++ {
			t := f.Stack.pop1()
			topics[i] = primitives.Uint256ToHash(t)
		}
		data := f.Memory.GetCopy(offset.Uint64(), size.Uint64())
		env.db.AddLog(state.Log{Address: f.Address, Topics: topics, Data: data})
		return nil, nil
	}
}
