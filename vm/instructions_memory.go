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

func opPop(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	f.Stack.pop()
	return nil, nil
}

func opMload(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	offset := f.Stack.pop1()
	offset.SetBytes(f.Memory.GetPtr(offset.Uint64(), 32))
	f.Stack.push(offset)
	return nil, nil
}

func opMstore(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	val, offset := f.Stack.pop2()
	f.Memory.Set32(offset.Uint64(), val)
	return nil, nil
}

func opMstore8(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	val, offset := f.Stack.pop2()
	f.Memory.Set1(offset.Uint64(), byte(val.Uint64()))
	return nil, nil
}

func opMsize(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	f.Stack.push(new(uint256.Int).SetUint64(uint64(f.Memory.Len())))
	return nil, nil
}

func opMcopy(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	dst, src, length := f.Stack.pop1(), f.Stack.pop1(), f.Stack.pop1()
	if length.IsZero() {
		return nil, nil
	}
	data := f.Memory.GetCopy(src.Uint64(), length.Uint64())
	f.Memory.Set(dst.Uint64(), data)
	return nil, nil
}
