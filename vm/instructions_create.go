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
	"github.com/evmts/Guillotine/crypto"
	"github.com/evmts/Guillotine/primitives"
	"github.com/holiman/uint256"
)

func opCreate(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	value := f.Stack.pop1()
	offset, size := f.Stack.pop1(), f.Stack.pop1()
	initCode := f.Memory.GetCopy(offset.Uint64(), size.Uint64())

	callerAcc, _ := env.db.GetAccount(f.Address)
	newAddr := crypto.CreateAddress(f.Address, callerAcc.Nonce)

	gas := callGasStipend(f.Gas, f.Gas)
	if err := f.UseGas(gas); err != nil {
		return nil, err
	}

	out, leftover, err := env.create(f.Address, newAddr, value, initCode, gas, f.Depth+1, f.IsStatic)
	f.ReturnData = out
	f.RefundGas(leftover)

	pushCreateResult(f, newAddr, err)
	return nil, nil
}

func opCreate2(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	value := f.Stack.pop1()
	offset, size := f.Stack.pop1(), f.Stack.pop1()
	saltWord := f.Stack.pop1()
	initCode := f.Memory.GetCopy(offset.Uint64(), size.Uint64())
	salt := primitives.Uint256ToHash(saltWord)

	newAddr := create2Address(f.Address, salt, initCode)

	gas := callGasStipend(f.Gas, f.Gas)
	if err := f.UseGas(gas); err != nil {
		return nil, err
	}

	out, leftover, err := env.create(f.Address, newAddr, value, initCode, gas, f.Depth+1, f.IsStatic)
	f.ReturnData = out
	f.RefundGas(leftover)

	pushCreateResult(f, newAddr, err)
	return nil, nil
}

// pushCreateResult pushes the zero word on failure, the deployed address on
// success, matching CREATE/CREATE2's shared outcome convention.
func pushCreateResult(f *Frame, addr primitives.Address, err error) {
	if err != nil {
		f.Stack.push(new(uint256.Int))
		return
	}
	f.Stack.push(addr.Uint256())
}
