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
	"github.com/evmts/Guillotine/state"
	"github.com/holiman/uint256"
)

func opReturn(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	offset, size := f.Stack.pop1(), f.Stack.pop1()
	return f.Memory.GetCopy(offset.Uint64(), size.Uint64()), nil
}

func opRevert(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	offset, size := f.Stack.pop1(), f.Stack.pop1()
	return f.Memory.GetCopy(offset.Uint64(), size.Uint64()), ErrExecutionReverted
}

// opSelfdestruct transfers the account's entire balance to the beneficiary
// and marks it for deletion. Post-Cancun (EIP-6780) the account is only
// actually deleted if it was created earlier in the same transaction;
// otherwise SELFDESTRUCT degrades to a plain balance transfer. The gas
// refund it used to grant was removed by EIP-3529 (London).
func opSelfdestruct(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	beneficiary := primitives.AddressFromUint256(f.Stack.pop1())

	acc, ok := env.db.GetAccount(f.Address)
	if ok && acc.Balance != nil && !acc.Balance.IsZero() {
		benAcc, exists := env.db.GetAccount(beneficiary)
		if !exists {
			benAcc = state.EmptyAccount()
		}
		if benAcc.Balance == nil {
			benAcc.Balance = new(uint256.Int)
		}
		benAcc.Balance = new(uint256.Int).Add(benAcc.Balance, acc.Balance)
		env.db.SetAccount(beneficiary, benAcc)

		acc.Balance = new(uint256.Int)
		env.db.SetAccount(f.Address, acc)
	}

	if !env.rules.IsCancun || env.db.WasCreatedThisTx(f.Address) {
		env.db.MarkSelfDestruct(f.Address)
		if !env.rules.IsLondon {
			env.db.AddRefund(params.SelfdestructRefundGas)
		}
	}
	return nil, nil
}
