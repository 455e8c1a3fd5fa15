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

import "github.com/holiman/uint256"

func opJump(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	dest := f.Stack.pop1()
	if !dest.IsUint64() || !validJumpdest(f, dest.Uint64()) {
		return nil, ErrInvalidJump
	}
	*pc = dest.Uint64()
	return nil, nil
}

func opJumpi(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	dest, cond := f.Stack.pop1(), f.Stack.pop1()
	if cond.IsZero() {
		*pc++
		return nil, nil
	}
	if !dest.IsUint64() || !validJumpdest(f, dest.Uint64()) {
		return nil, ErrInvalidJump
	}
	*pc = dest.Uint64()
	return nil, nil
}

func opPc(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	f.Stack.push(new(uint256.Int).SetUint64(*pc))
	return nil, nil
}

func opGas(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	f.Stack.push(new(uint256.Int).SetUint64(f.Gas))
	return nil, nil
}

func opJumpdest(pc *uint64, env *callEnv, f *Frame) ([]byte, error) { return nil, nil }

func opInvalid(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	return nil, ErrInvalidOpcode
}

func opUndefined(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	return nil, &InvalidOpCodeError{Opcode: f.CodeAt(*pc)}
}
