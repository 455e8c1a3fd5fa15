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
	"github.com/holiman/uint256"
)

func opAddress(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	f.Stack.push(f.Address.Uint256())
	return nil, nil
}

func opBalance(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	addr := primitives.AddressFromUint256(f.Stack.pop1())
	acc, ok := env.db.GetAccount(addr)
	if !ok || acc.Balance == nil {
		f.Stack.push(new(uint256.Int))
		return nil, nil
	}
	f.Stack.push(acc.Balance)
	return nil, nil
}

func opSelfBalance(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	acc, ok := env.db.GetAccount(f.Address)
	if !ok || acc.Balance == nil {
		f.Stack.push(new(uint256.Int))
		return nil, nil
	}
	f.Stack.push(acc.Balance)
	return nil, nil
}

func opOrigin(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	f.Stack.push(env.tx.Origin.Uint256())
	return nil, nil
}

func opCaller(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	f.Stack.push(f.Caller.Uint256())
	return nil, nil
}

func opCallValue(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	v := f.CallValue
	if v == nil {
		v = new(uint256.Int)
	}
	f.Stack.push(v)
	return nil, nil
}

func opCallDataLoad(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	x := f.Stack.pop1()
	if !x.IsUint64() {
		x.Clear()
		f.Stack.push(x)
		return nil, nil
	}
	offset := x.Uint64()
	var buf [32]byte
	if offset < uint64(len(f.Input)) {
		end := offset + 32
		if end > uint64(len(f.Input)) {
			end = uint64(len(f.Input))
		}
		copy(buf[:], f.Input[offset:end])
	}
	x.SetBytes(buf[:])
	f.Stack.push(x)
	return nil, nil
}

func opCallDataSize(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	f.Stack.push(new(uint256.Int).SetUint64(uint64(len(f.Input))))
	return nil, nil
}

func opCallDataCopy(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	memOffset, dataOffset, length := f.Stack.pop1(), f.Stack.pop1(), f.Stack.pop1()
	data := getDataSlice(f.Input, dataOffset, length)
	f.Memory.Set(memOffset.Uint64(), data)
	return nil, nil
}

func opCodeSize(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	f.Stack.push(new(uint256.Int).SetUint64(uint64(len(f.Code))))
	return nil, nil
}

func opCodeCopy(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	memOffset, codeOffset, length := f.Stack.pop1(), f.Stack.pop1(), f.Stack.pop1()
	data := getDataSlice(f.Code, codeOffset, length)
	f.Memory.Set(memOffset.Uint64(), data)
	return nil, nil
}

func opExtCodeSize(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	addr := primitives.AddressFromUint256(f.Stack.pop1())
	acc, ok := env.db.GetAccount(addr)
	if !ok {
		f.Stack.push(new(uint256.Int))
		return nil, nil
	}
	code := env.db.GetCode(acc.CodeHash)
	f.Stack.push(new(uint256.Int).SetUint64(uint64(len(code))))
	return nil, nil
}

func opExtCodeCopy(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	addr := primitives.AddressFromUint256(f.Stack.pop1())
	memOffset, codeOffset, length := f.Stack.pop1(), f.Stack.pop1(), f.Stack.pop1()
	var code []byte
	if acc, ok := env.db.GetAccount(addr); ok {
		code = env.db.GetCode(acc.CodeHash)
	}
	data := getDataSlice(code, codeOffset, length)
	f.Memory.Set(memOffset.Uint64(), data)
	return nil, nil
}

func opExtCodeHash(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	addr := primitives.AddressFromUint256(f.Stack.pop1())
	acc, ok := env.db.GetAccount(addr)
	if !ok || acc.IsEmpty() {
		f.Stack.push(new(uint256.Int))
		return nil, nil
	}
	f.Stack.push(acc.CodeHash.Uint256())
	return nil, nil
}

func opReturnDataSize(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	f.Stack.push(new(uint256.Int).SetUint64(uint64(len(f.ReturnData))))
	return nil, nil
}

func opReturnDataCopy(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	memOffset, dataOffset, length := f.Stack.pop1(), f.Stack.pop1(), f.Stack.pop1()
	end := new(uint256.Int).Add(dataOffset, length)
	if !end.IsUint64() || uint64(len(f.ReturnData)) < end.Uint64() {
		return nil, ErrReturnDataOutOfBounds
	}
	data := f.ReturnData[dataOffset.Uint64():end.Uint64()]
	f.Memory.Set(memOffset.Uint64(), data)
	return nil, nil
}

func opGasPrice(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	p := env.tx.GasPrice
	if p == nil {
		p = new(uint256.Int)
	}
	f.Stack.push(p)
	return nil, nil
}

func opChainID(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	f.Stack.push(new(uint256.Int).SetUint64(env.rules.ChainID))
	return nil, nil
}

func opBaseFee(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	bf := env.block.BaseFee
	if bf == nil {
		bf = new(uint256.Int)
	}
	f.Stack.push(bf)
	return nil, nil
}

func opBlobHash(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	idx := f.Stack.pop1()
	if idx.IsUint64() && idx.Uint64() < uint64(len(env.tx.BlobHashes)) {
		f.Stack.push(env.tx.BlobHashes[idx.Uint64()].Uint256())
		return nil, nil
	}
	idx.Clear()
	f.Stack.push(idx)
	return nil, nil
}

func opBlobBaseFee(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	bf := env.block.BlobBaseFee
	if bf == nil {
		bf = new(uint256.Int)
	}
	f.Stack.push(bf)
	return nil, nil
}

// getDataSlice returns length bytes from data starting at offset,
// zero-padding past data's end — the shared semantics behind
// CALLDATACOPY/CODECOPY/EXTCODECOPY's source read.
func getDataSlice(data []byte, offsetU256, lengthU256 *uint256.Int) []byte {
	if !lengthU256.IsUint64() {
		return make([]byte, 0)
	}
	length := lengthU256.Uint64()
	if length == 0 {
		return nil
	}
	if !offsetU256.IsUint64() {
		return make([]byte, length)
	}
	offset := offsetU256.Uint64()
	if offset >= uint64(len(data)) {
		return make([]byte, length)
	}
	end := offset + length
	if end > uint64(len(data)) {
		out := make([]byte, length)
		copy(out, data[offset:])
		return out
	}
	return data[offset:end]
}
