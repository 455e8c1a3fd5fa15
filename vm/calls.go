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
	"github.com/evmts/Guillotine/params"
	"github.com/evmts/Guillotine/precompiles"
	"github.com/evmts/Guillotine/primitives"
	"github.com/evmts/Guillotine/state"
	"github.com/holiman/uint256"
)

// transfer moves value from one account's balance to another, creating the
// recipient account (with zero nonce/code) if it did not already exist.
// Callers must have already verified the sender can afford it.
func transfer(db state.Database, from, to primitives.Address, value *uint256.Int) {
	if value.IsZero() {
		return
	}
	fromAcc, _ := db.GetAccount(from)
	fromAcc.Balance = new(uint256.Int).Sub(fromAcc.Balance, value)
	db.SetAccount(from, fromAcc)

	toAcc, ok := db.GetAccount(to)
	if !ok {
		toAcc = state.EmptyAccount()
	}
	if toAcc.Balance == nil {
		toAcc.Balance = new(uint256.Int)
	}
	toAcc.Balance = new(uint256.Int).Add(toAcc.Balance, value)
	db.SetAccount(to, toAcc)
}

func canTransfer(db state.Database, addr primitives.Address, value *uint256.Int) bool {
	acc, ok := db.GetAccount(addr)
	if !ok || acc.Balance == nil {
		return value.IsZero()
	}
	return acc.Balance.Cmp(value) >= 0
}

// runAccountCode dispatches to a precompile if codeAddr names one under the
// active rules/chain type, otherwise loads and interprets the account's
// stored code.
func (env *callEnv) runAccountCode(f *Frame, codeAddr primitives.Address) ([]byte, error) {
	if p, ok := precompiles.Lookup(codeAddr, precompiles.Rules{
		IsByzantium: env.rules.IsByzantium,
		IsIstanbul:  env.rules.IsIstanbul,
		IsBerlin:    env.rules.IsBerlin,
		IsCancun:    env.rules.IsCancun,
		ChainType:   int(env.chainConfig.ChainType),
	}); ok {
		cost := p.RequiredGas(f.Input)
		if err := f.UseGas(cost); err != nil {
			return nil, err
		}
		return p.Run(f.Input)
	}
	acc, ok := env.db.GetAccount(codeAddr)
	if !ok {
		return nil, nil
	}
	code := env.db.GetCode(acc.CodeHash)
	if len(code) == 0 {
		return nil, nil
	}
	f.Code = code
	f.CodeHash = acc.CodeHash
	return env.run(f)
}

// call implements CALL: value transfer, a fresh address/storage context,
// and the callee's own static-ness ORed onto the caller's.
func (env *callEnv) call(caller, addr primitives.Address, value *uint256.Int, input []byte, gas uint64, depth int, static bool) ([]byte, uint64, error) {
	if depth > int(params.CallCreateDepth) {
		return nil, gas, ErrDepthExceeded
	}
	if !value.IsZero() && !canTransfer(env.db, caller, value) {
		return nil, gas, ErrInsufficientBalance
	}

	snap := env.db.CreateSnapshot()
	if static && !value.IsZero() {
		return nil, gas, ErrWriteProtection
	}
	if !env.db.Exists(addr) && !value.IsZero() {
		// Touching a fresh account with a value transfer still creates it,
		// even if its code (if any) never runs.
		env.db.SetAccount(addr, state.EmptyAccount())
	}
	transfer(env.db, caller, addr, value)

	f := NewFrame(caller, addr, nil, primitives.Hash{}, gas, value, input, depth, static, false)
	defer f.Release()

	out, err := env.runAccountCode(f, addr)
	return env.finishCall(snap, f, out, err)
}

// callCode runs addr's code but in the caller's own storage/address context
// — the value transfer still happens against the caller's own balance.
func (env *callEnv) callCode(caller primitives.Address, addr primitives.Address, value *uint256.Int, input []byte, gas uint64, depth int, static bool) ([]byte, uint64, error) {
	if depth > int(params.CallCreateDepth) {
		return nil, gas, ErrDepthExceeded
	}
	if !value.IsZero() && !canTransfer(env.db, caller, value) {
		return nil, gas, ErrInsufficientBalance
	}
	snap := env.db.CreateSnapshot()

	f := NewFrame(caller, caller, nil, primitives.Hash{}, gas, value, input, depth, static, false)
	defer f.Release()

	out, err := env.runAccountCode(f, addr)
	return env.finishCall(snap, f, out, err)
}

// delegateCall runs addr's code in the caller's storage/address/value
// context, keeping the grandcaller's CALLER and CALLVALUE unchanged.
func (env *callEnv) delegateCall(callerFrame *Frame, addr primitives.Address, input []byte, gas uint64, depth int, static bool) ([]byte, uint64, error) {
	if depth > int(params.CallCreateDepth) {
		return nil, gas, ErrDepthExceeded
	}
	snap := env.db.CreateSnapshot()

	f := NewFrame(callerFrame.Caller, callerFrame.Address, nil, primitives.Hash{}, gas, callerFrame.CallValue, input, depth, static, false)
	defer f.Release()

	out, err := env.runAccountCode(f, addr)
	return env.finishCall(snap, f, out, err)
}

// staticCall runs addr's code with writes forbidden for the entire nested
// call tree beneath it.
func (env *callEnv) staticCall(caller, addr primitives.Address, input []byte, gas uint64, depth int) ([]byte, uint64, error) {
	if depth > int(params.CallCreateDepth) {
		return nil, gas, ErrDepthExceeded
	}
	snap := env.db.CreateSnapshot()

	f := NewFrame(caller, addr, nil, primitives.Hash{}, gas, new(uint256.Int), input, depth, true, false)
	defer f.Release()

	out, err := env.runAccountCode(f, addr)
	return env.finishCall(snap, f, out, err)
}

func (env *callEnv) finishCall(snap state.SnapshotID, f *Frame, out []byte, err error) ([]byte, uint64, error) {
	if err != nil {
		env.db.RevertToSnapshot(snap)
		if err == ErrExecutionReverted {
			return out, f.Gas, err
		}
		return nil, 0, err
	}
	env.db.CommitSnapshot(snap)
	return out, f.Gas, nil
}

// create implements CREATE/CREATE2: initcode-size and deployed-code-size
// limits, the 0xEF deployed-code prefix rejection, and nonce bumping.
func (env *callEnv) create(caller, newAddr primitives.Address, value *uint256.Int, initCode []byte, gas uint64, depth int, static bool) ([]byte, uint64, error) {
	if static {
		return nil, gas, ErrWriteProtection
	}
	if depth > int(params.CallCreateDepth) {
		return nil, gas, ErrDepthExceeded
	}
	if env.rules.IsShanghai && uint64(len(initCode)) > params.MaxInitCodeSize {
		return nil, gas, ErrMaxInitCodeSizeExceeded
	}
	if !value.IsZero() && !canTransfer(env.db, caller, value) {
		return nil, gas, ErrInsufficientBalance
	}

	callerAcc, _ := env.db.GetAccount(caller)
	if callerAcc.Nonce == ^uint64(0) {
		return nil, gas, ErrNonceUintOverflow
	}
	callerAcc.Nonce++
	env.db.SetAccount(caller, callerAcc)

	if env.db.Exists(newAddr) {
		if existing, ok := env.db.GetAccount(newAddr); ok && (existing.Nonce != 0 || len(env.db.GetCode(existing.CodeHash)) != 0) {
			return nil, gas, ErrContractAddressCollision
		}
	}

	snap := env.db.CreateSnapshot()
	env.db.MarkCreatedThisTx(newAddr)
	if !env.db.Exists(newAddr) {
		env.db.SetAccount(newAddr, state.EmptyAccount())
	}
	transfer(env.db, caller, newAddr, value)

	initAcc, _ := env.db.GetAccount(newAddr)
	initAcc.Nonce = 1
	env.db.SetAccount(newAddr, initAcc)

	f := NewFrame(caller, newAddr, initCode, crypto.Keccak256Hash(initCode), gas, value, nil, depth, static, true)
	defer f.Release()

	out, err := env.run(f)
	if err != nil {
		env.db.RevertToSnapshot(snap)
		if err == ErrExecutionReverted {
			return out, f.Gas, err
		}
		return nil, 0, err
	}

	if env.rules.IsSpuriousDragon && uint64(len(out)) > params.MaxCodeSize {
		env.db.RevertToSnapshot(snap)
		return nil, 0, ErrMaxCodeSizeExceeded
	}
	if env.rules.IsLondon && len(out) > 0 && out[0] == 0xEF {
		env.db.RevertToSnapshot(snap)
		return nil, 0, ErrInvalidCodeEntry
	}

	codeDepositCost := uint64(len(out)) * params.CreateDataGas
	if err := f.UseGas(codeDepositCost); err != nil {
		env.db.RevertToSnapshot(snap)
		return nil, 0, err
	}

	codeHash := env.db.SetCode(out)
	finalAcc, _ := env.db.GetAccount(newAddr)
	finalAcc.CodeHash = codeHash
	env.db.SetAccount(newAddr, finalAcc)

	env.db.CommitSnapshot(snap)
	return nil, f.Gas, nil
}

func create2Address(caller primitives.Address, salt primitives.Hash, initCode []byte) primitives.Address {
	hash := crypto.Keccak256(initCode)
	return crypto.CreateAddress2(caller, [32]byte(salt), hash)
}
