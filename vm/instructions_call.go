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
	"github.com/evmts/Guillotine/params"
	"github.com/evmts/Guillotine/primitives"
	"github.com/holiman/uint256"
)

func opCall(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	requestedGas := f.Stack.pop1()
	addr := primitives.AddressFromUint256(f.Stack.pop1())
	value := f.Stack.pop1()
	argsOffset, argsLen := f.Stack.pop1(), f.Stack.pop1()
	retOffset, retLen := f.Stack.pop1(), f.Stack.pop1()

	if f.IsStatic && !value.IsZero() {
		return nil, ErrWriteProtection
	}

	args := f.Memory.GetCopy(argsOffset.Uint64(), argsLen.Uint64())
	capped := callGasStipend(f.Gas, clampToUint64(requestedGas))
	if err := f.UseGas(capped); err != nil {
		return nil, err
	}
	calleeGas := capped
	if !value.IsZero() {
		calleeGas += params.CallStipend
	}

	out, leftover, err := env.call(f.Address, addr, value, args, calleeGas, f.Depth+1, f.IsStatic)
	f.ReturnData = out
	f.RefundGas(leftover)

	writeCallResult(f, retOffset.Uint64(), retLen.Uint64(), out)
	pushCallSuccess(f, err)
	return nil, nil
}

func opCallCode(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	requestedGas := f.Stack.pop1()
	addr := primitives.AddressFromUint256(f.Stack.pop1())
	value := f.Stack.pop1()
	argsOffset, argsLen := f.Stack.pop1(), f.Stack.pop1()
	retOffset, retLen := f.Stack.pop1(), f.Stack.pop1()

	args := f.Memory.GetCopy(argsOffset.Uint64(), argsLen.Uint64())
	capped := callGasStipend(f.Gas, clampToUint64(requestedGas))
	if err := f.UseGas(capped); err != nil {
		return nil, err
	}
	calleeGas := capped
	if !value.IsZero() {
		calleeGas += params.CallStipend
	}

	out, leftover, err := env.callCode(f.Address, addr, value, args, calleeGas, f.Depth+1, f.IsStatic)
	f.ReturnData = out
	f.RefundGas(leftover)

	writeCallResult(f, retOffset.Uint64(), retLen.Uint64(), out)
	pushCallSuccess(f, err)
	return nil, nil
}

func opDelegateCall(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	requestedGas := f.Stack.pop1()
	addr := primitives.AddressFromUint256(f.Stack.pop1())
	argsOffset, argsLen := f.Stack.pop1(), f.Stack.pop1()
	retOffset, retLen := f.Stack.pop1(), f.Stack.pop1()

	args := f.Memory.GetCopy(argsOffset.Uint64(), argsLen.Uint64())
	gas := callGasStipend(f.Gas, clampToUint64(requestedGas))
	if err := f.UseGas(gas); err != nil {
		return nil, err
	}

	out, leftover, err := env.delegateCall(f, addr, args, gas, f.Depth+1, f.IsStatic)
	f.ReturnData = out
	f.RefundGas(leftover)

	writeCallResult(f, retOffset.Uint64(), retLen.Uint64(), out)
	pushCallSuccess(f, err)
	return nil, nil
}

func opStaticCall(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	requestedGas := f.Stack.pop1()
	addr := primitives.AddressFromUint256(f.Stack.pop1())
	argsOffset, argsLen := f.Stack.pop1(), f.Stack.pop1()
	retOffset, retLen := f.Stack.pop1(), f.Stack.pop1()

	args := f.Memory.GetCopy(argsOffset.Uint64(), argsLen.Uint64())
	gas := callGasStipend(f.Gas, clampToUint64(requestedGas))
	if err := f.UseGas(gas); err != nil {
		return nil, err
	}

	out, leftover, err := env.staticCall(f.Address, addr, args, gas, f.Depth+1)
	f.ReturnData = out
	f.RefundGas(leftover)

	writeCallResult(f, retOffset.Uint64(), retLen.Uint64(), out)
	pushCallSuccess(f, err)
	return nil, nil
}

func clampToUint64(v *uint256.Int) uint64 {
	if !v.IsUint64() {
		return ^uint64(0)
	}
	return v.Uint64()
}

func b2u(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// writeCallResult copies at most retLen bytes of the callee's output into
// the caller's memory at retOffset, matching CALL/CALLCODE/DELEGATECALL/
// STATICCALL's shared "truncate, never pad" return-data convention.
func writeCallResult(f *Frame, retOffset, retLen uint64, out []byte) {
	if retLen == 0 {
		return
	}
	n := retLen
	if uint64(len(out)) < n {
		n = uint64(len(out))
	}
	f.Memory.Set(retOffset, out[:n])
}

func pushCallSuccess(f *Frame, err error) {
	result := new(uint256.Int)
	if err == nil {
		result.SetOne()
	}
	f.Stack.push(result)
}
