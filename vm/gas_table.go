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
	"github.com/evmts/Guillotine/primitives"
	"github.com/holiman/uint256"
)

// gasFunc computes the dynamic portion of an opcode's cost from the stack
// as it stands before the handler pops anything.
type gasFunc func(env *callEnv, f *Frame, memSize uint64) (uint64, error)

// memorySizeFunc computes the memory size (in bytes, pre-word-rounding) an
// instruction needs, read off the stack before any values are popped.
type memorySizeFunc func(s *Stack) (uint64, bool)

var (
	memSizeOne  = uint256.NewInt(1)
	memSizeWord = uint256.NewInt(32)
)

func memSizeKeccak(s *Stack) (uint64, bool)          { return calcMemSize64(s.back(0), s.back(1)) }
func memSizeCallDataCopy(s *Stack) (uint64, bool)    { return calcMemSize64(s.back(0), s.back(2)) }
func memSizeCodeCopy(s *Stack) (uint64, bool)        { return calcMemSize64(s.back(0), s.back(2)) }
func memSizeExtCodeCopy(s *Stack) (uint64, bool)     { return calcMemSize64(s.back(1), s.back(3)) }
func memSizeReturnDataCopy(s *Stack) (uint64, bool)  { return calcMemSize64(s.back(0), s.back(2)) }
func memSizeMLoad(s *Stack) (uint64, bool)           { return calcMemSize64(s.back(0), memSizeWord) }
func memSizeMStore(s *Stack) (uint64, bool)          { return calcMemSize64(s.back(0), memSizeWord) }
func memSizeMStore8(s *Stack) (uint64, bool)         { return calcMemSize64(s.back(0), memSizeOne) }
func memSizeReturn(s *Stack) (uint64, bool)          { return calcMemSize64(s.back(0), s.back(1)) }
func memSizeCreate(s *Stack) (uint64, bool)          { return calcMemSize64(s.back(1), s.back(2)) }
func memSizeCreate2(s *Stack) (uint64, bool)         { return calcMemSize64(s.back(1), s.back(2)) }
func memSizeLog(s *Stack) (uint64, bool)             { return calcMemSize64(s.back(0), s.back(1)) }

func memSizeMCopy(s *Stack) (uint64, bool) {
	a, aOv := calcMemSize64(s.back(0), s.back(2))
	b, bOv := calcMemSize64(s.back(1), s.back(2))
	if aOv || bOv {
		return 0, true
	}
	if b > a {
		return b, false
	}
	return a, false
}

func memSizeCall(s *Stack) (uint64, bool) {
	x, overflow := calcMemSize64(s.back(3), s.back(4))
	if overflow {
		return 0, true
	}
	y, overflow := calcMemSize64(s.back(5), s.back(6))
	if overflow {
		return 0, true
	}
	if x > y {
		return x, false
	}
	return y, false
}

func memSizeCallNoValue(s *Stack) (uint64, bool) {
	x, overflow := calcMemSize64(s.back(2), s.back(3))
	if overflow {
		return 0, true
	}
	y, overflow := calcMemSize64(s.back(4), s.back(5))
	if overflow {
		return 0, true
	}
	if x > y {
		return x, false
	}
	return y, false
}

// gasSStore implements EIP-2200/EIP-2929/EIP-3529 net-metered storage
// pricing. The cold-access surcharge is always paid on top of whichever
// write-price bucket the value transition falls into; the dirty/clean-slot
// refund bookkeeping mirrors go-ethereum's gasSStoreEIP2929.
func gasSStore(env *callEnv, f *Frame, memSize uint64) (uint64, error) {
	if f.IsStatic {
		return 0, ErrWriteProtection
	}
	// EIP-2200's sentry: a call running on nothing but the 2300 gas stipend
	// must not be able to SSTORE at all, regardless of what it would cost.
	if f.Gas <= params.SstoreSentryGasEIP2200 {
		return 0, ErrOutOfGas
	}
	loc := f.Stack.back(0)
	val := f.Stack.back(1)

	key := primitives.Uint256ToHash(loc)
	var cost uint64

	if env.db.MarkSlotWarm(f.Address, key) {
		cost = params.ColdSloadCostEIP2929
	}

	current := env.db.GetStorage(f.Address, key)
	if current.Eq(val) {
		return cost + params.WarmStorageReadCostEIP2929, nil
	}

	original := env.originalStorage(f.Address, key)
	if original.Eq(&current) {
		if original.IsZero() {
			return cost + params.SstoreSetGasEIP2200, nil
		}
		if val.IsZero() {
			env.db.AddRefund(params.SstoreClearsScheduleRefundEIP3529)
		}
		return cost + params.SstoreResetGasEIP2200 - params.ColdSloadCostEIP2929, nil
	}

	if !original.IsZero() {
		if current.IsZero() {
			env.db.SubRefund(params.SstoreClearsScheduleRefundEIP3529)
		}
		if val.IsZero() {
			env.db.AddRefund(params.SstoreClearsScheduleRefundEIP3529)
		}
	}
	if original.Eq(val) {
		if original.IsZero() {
			env.db.AddRefund(params.SstoreSetGasEIP2200 - params.WarmStorageReadCostEIP2929)
		} else {
			env.db.AddRefund(params.SstoreResetGasEIP2200 - params.ColdSloadCostEIP2929 - params.WarmStorageReadCostEIP2929)
		}
	}
	return cost + params.WarmStorageReadCostEIP2929, nil
}

func gasSLoad(env *callEnv, f *Frame, memSize uint64) (uint64, error) {
	key := primitives.Uint256ToHash(f.Stack.back(0))
	if env.db.MarkSlotWarm(f.Address, key) {
		return params.ColdSloadCostEIP2929, nil
	}
	return params.WarmStorageReadCostEIP2929, nil
}

func gasExtCodeCopy(env *callEnv, f *Frame, memSize uint64) (uint64, error) {
	words := toWordSize(memSize)
	addr := primitives.AddressFromUint256(f.Stack.back(0))
	var accessCost uint64
	if env.db.MarkAddressWarm(addr) {
		accessCost = params.ColdAccountAccessCostEIP2929
	}
	return accessCost + words*params.CopyGas, nil
}

func gasBalance(env *callEnv, f *Frame, memSize uint64) (uint64, error) {
	addr := primitives.AddressFromUint256(f.Stack.back(0))
	if env.db.MarkAddressWarm(addr) {
		return params.ColdAccountAccessCostEIP2929, nil
	}
	return 0, nil
}

func gasExtCodeSize(env *callEnv, f *Frame, memSize uint64) (uint64, error) {
	addr := primitives.AddressFromUint256(f.Stack.back(0))
	if env.db.MarkAddressWarm(addr) {
		return params.ColdAccountAccessCostEIP2929, nil
	}
	return 0, nil
}

func gasExtCodeHash(env *callEnv, f *Frame, memSize uint64) (uint64, error) {
	addr := primitives.AddressFromUint256(f.Stack.back(0))
	if env.db.MarkAddressWarm(addr) {
		return params.ColdAccountAccessCostEIP2929, nil
	}
	return 0, nil
}

// gasCallVariants computes the access-list and value-transfer surcharges
// shared by CALL/CALLCODE/DELEGATECALL/STATICCALL. The 63/64-rule gas split
// happens in the call-family opcode handlers themselves, not here.
func gasCallVariants(env *callEnv, addr primitives.Address, value *uint256.Int, isCall bool) uint64 {
	var cost uint64
	if env.db.MarkAddressWarm(addr) {
		cost += params.ColdAccountAccessCostEIP2929
	}
	if isCall && value != nil && !value.IsZero() {
		cost += params.CallValueTransferGas
		if !env.db.Exists(addr) {
			cost += params.CallNewAccountGas
		}
	}
	return cost
}

func gasLog(n int) gasFunc {
	return func(env *callEnv, f *Frame, memSize uint64) (uint64, error) {
		size := f.Stack.back(1)
		if !size.IsUint64() {
			return 0, ErrGasUintOverflow
		}
		topicCost := params.LogTopicGas * uint64(n)
		dataCost := params.LogDataGas * size.Uint64()
		return topicCost + dataCost, nil
	}
}

func gasExp(isEIP160 bool) gasFunc {
	return func(env *callEnv, f *Frame, memSize uint64) (uint64, error) {
		exp := f.Stack.back(1)
		byteLen := primitives.ByteLen(exp)
		perByte := params.ExpByteGas
		if isEIP160 {
			perByte = params.ExpByteGasEIP160
		}
		return uint64(byteLen) * perByte, nil
	}
}

func gasKeccak256(env *callEnv, f *Frame, memSize uint64) (uint64, error) {
	size := f.Stack.back(1)
	if !size.IsUint64() {
		return 0, ErrGasUintOverflow
	}
	words := toWordSize(size.Uint64())
	return words * params.Keccak256WordGas, nil
}

func gasCreate(env *callEnv, f *Frame, memSize uint64) (uint64, error) {
	size := f.Stack.back(2)
	if !size.IsUint64() || size.Uint64() > params.MaxInitCodeSize {
		return 0, ErrMaxInitCodeSizeExceeded
	}
	words := toWordSize(size.Uint64())
	return words * params.InitCodeWordGas, nil
}

func gasCreate2(env *callEnv, f *Frame, memSize uint64) (uint64, error) {
	size := f.Stack.back(2)
	if !size.IsUint64() || size.Uint64() > params.MaxInitCodeSize {
		return 0, ErrMaxInitCodeSizeExceeded
	}
	words := toWordSize(size.Uint64())
	return words*params.Keccak256WordGas + words*params.InitCodeWordGas, nil
}

func gasSelfdestruct(env *callEnv, f *Frame, memSize uint64) (uint64, error) {
	beneficiary := primitives.AddressFromUint256(f.Stack.back(0))
	var cost uint64
	if env.db.MarkAddressWarm(beneficiary) {
		cost = params.ColdAccountAccessCostEIP2929
	}
	if acc, ok := env.db.GetAccount(f.Address); ok && !acc.Balance.IsZero() && !env.db.Exists(beneficiary) {
		cost += params.CallNewAccountGas
	}
	return cost, nil
}

func gasTLoad(env *callEnv, f *Frame, memSize uint64) (uint64, error) {
	return params.WarmStorageReadCostTLoadTStore, nil
}

func gasTStore(env *callEnv, f *Frame, memSize uint64) (uint64, error) {
	if f.IsStatic {
		return 0, ErrWriteProtection
	}
	return params.WarmStorageReadCostTLoadTStore, nil
}

func gasMCopyFull(env *callEnv, f *Frame, memSize uint64) (uint64, error) {
	size := f.Stack.back(2)
	if !size.IsUint64() {
		return 0, ErrGasUintOverflow
	}
	words := toWordSize(size.Uint64())
	return words * params.CopyGas, nil
}

// callGasStipend implements EIP-150's 63/64 retention rule: the caller may
// forward at most all-but-one-64th of its remaining gas to the callee,
// clamped further by whatever the instruction explicitly requested.
func callGasStipend(available, requested uint64) uint64 {
	capped := available - available/64
	if requested > capped {
		return capped
	}
	return requested
}

// memExpansionGas is the dynamic-gas hook for opcodes whose only dynamic
// cost is memory expansion (MLOAD/MSTORE/MSTORE8/RETURN/REVERT).
func memExpansionGas(env *callEnv, f *Frame, memSize uint64) (uint64, error) {
	return memoryGasCost(f.Memory, memSize)
}

// memCopierGas is the dynamic-gas hook for pre-Berlin *COPY opcodes: memory
// expansion plus a flat per-word copy cost, with no access-list surcharge.
func memCopierGas() gasFunc {
	return func(env *callEnv, f *Frame, memSize uint64) (uint64, error) {
		expansion, err := memoryGasCost(f.Memory, memSize)
		if err != nil {
			return 0, err
		}
		sizeWord := f.Stack.back(2)
		if !sizeWord.IsUint64() {
			return 0, ErrGasUintOverflow
		}
		words := toWordSize(sizeWord.Uint64())
		return expansion + words*params.CopyGas, nil
	}
}

// memCopierGasAccess is memCopierGas for EXTCODECOPY's pre-Berlin shape,
// whose length operand sits one stack slot deeper (address, dest, offset, len).
func memCopierGasAccess() gasFunc {
	return func(env *callEnv, f *Frame, memSize uint64) (uint64, error) {
		expansion, err := memoryGasCost(f.Memory, memSize)
		if err != nil {
			return 0, err
		}
		sizeWord := f.Stack.back(3)
		if !sizeWord.IsUint64() {
			return 0, ErrGasUintOverflow
		}
		words := toWordSize(sizeWord.Uint64())
		return expansion + words*params.CopyGas, nil
	}
}

// gasSStoreFrontier is the pre-Istanbul SSTORE pricing: no access list, no
// net-metering against the transaction-original value, just current-vs-new.
func gasSStoreFrontier(env *callEnv, f *Frame, memSize uint64) (uint64, error) {
	if f.IsStatic {
		return 0, ErrWriteProtection
	}
	key := primitives.Uint256ToHash(f.Stack.back(0))
	val := f.Stack.back(1)
	current := env.db.GetStorage(f.Address, key)
	switch {
	case current.IsZero() && !val.IsZero():
		return params.SstoreSetGasEIP2200, nil
	case !current.IsZero() && val.IsZero():
		env.db.AddRefund(params.SstoreClearsScheduleRefundEIP2200)
		return params.SstoreResetGasEIP2200, nil
	default:
		return params.SstoreResetGasEIP2200, nil
	}
}

// gasCallFrontier/gasCallCodeFrontier/gasDelegateCallFrontier add the
// pre-EIP150/pre-2929 memory expansion plus value-transfer surcharge; there
// is no access-list cold/warm distinction before Berlin.
func gasCallFrontier(env *callEnv, f *Frame, memSize uint64) (uint64, error) {
	expansion, err := memoryGasCost(f.Memory, memSize)
	if err != nil {
		return 0, err
	}
	value := f.Stack.back(2)
	addr := primitives.AddressFromUint256(f.Stack.back(1))
	var cost uint64
	if !value.IsZero() {
		cost += params.CallValueTransferGas
		if !env.db.Exists(addr) {
			cost += params.CallNewAccountGas
		}
	}
	return expansion + cost, nil
}

func gasCallCodeFrontier(env *callEnv, f *Frame, memSize uint64) (uint64, error) {
	expansion, err := memoryGasCost(f.Memory, memSize)
	if err != nil {
		return 0, err
	}
	value := f.Stack.back(2)
	var cost uint64
	if !value.IsZero() {
		cost += params.CallValueTransferGas
	}
	return expansion + cost, nil
}

func gasDelegateCallFrontier(env *callEnv, f *Frame, memSize uint64) (uint64, error) {
	return memoryGasCost(f.Memory, memSize)
}

func gasStaticCall(env *callEnv, f *Frame, memSize uint64) (uint64, error) {
	return memoryGasCost(f.Memory, memSize)
}

// gasCallEIP2929/gasCallCodeEIP2929/gasDelegateCallEIP2929/gasStaticCallEIP2929
// add the Berlin access-list cold-account surcharge on top of the same
// memory-expansion and value-transfer accounting as their Frontier
// counterparts.
func gasCallEIP2929(env *callEnv, f *Frame, memSize uint64) (uint64, error) {
	expansion, err := memoryGasCost(f.Memory, memSize)
	if err != nil {
		return 0, err
	}
	addr := primitives.AddressFromUint256(f.Stack.back(1))
	value := f.Stack.back(2)
	return expansion + gasCallVariants(env, addr, value, true), nil
}

func gasCallCodeEIP2929(env *callEnv, f *Frame, memSize uint64) (uint64, error) {
	expansion, err := memoryGasCost(f.Memory, memSize)
	if err != nil {
		return 0, err
	}
	addr := primitives.AddressFromUint256(f.Stack.back(1))
	value := f.Stack.back(2)
	var cost uint64
	if env.db.MarkAddressWarm(addr) {
		cost += params.ColdAccountAccessCostEIP2929
	}
	if !value.IsZero() {
		cost += params.CallValueTransferGas
	}
	return expansion + cost, nil
}

func gasDelegateCallEIP2929(env *callEnv, f *Frame, memSize uint64) (uint64, error) {
	expansion, err := memoryGasCost(f.Memory, memSize)
	if err != nil {
		return 0, err
	}
	addr := primitives.AddressFromUint256(f.Stack.back(1))
	var cost uint64
	if env.db.MarkAddressWarm(addr) {
		cost += params.ColdAccountAccessCostEIP2929
	}
	return expansion + cost, nil
}

func gasStaticCallEIP2929(env *callEnv, f *Frame, memSize uint64) (uint64, error) {
	expansion, err := memoryGasCost(f.Memory, memSize)
	if err != nil {
		return 0, err
	}
	addr := primitives.AddressFromUint256(f.Stack.back(1))
	var cost uint64
	if env.db.MarkAddressWarm(addr) {
		cost += params.ColdAccountAccessCostEIP2929
	}
	return expansion + cost, nil
}
