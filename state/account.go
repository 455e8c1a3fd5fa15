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

// Package state implements the world-state collaborator the execution core
// depends on: accounts, storage, code, transient storage, the EIP-2929
// access list, and the executor's snapshot/batch mechanics.
package state

import (
	"github.com/evmts/Guillotine/crypto"
	"github.com/evmts/Guillotine/primitives"
	"github.com/holiman/uint256"
)

// Account is the persistent record the database keeps per address.
type Account struct {
	Balance     *uint256.Int
	Nonce       uint64
	CodeHash    primitives.Hash
	StorageRoot primitives.Hash
}

// EmptyAccount returns a fresh, empty account: zero balance, zero nonce,
// empty code hash.
func EmptyAccount() Account {
	return Account{
		Balance:  new(uint256.Int),
		CodeHash: crypto.EmptyCodeHash,
	}
}

// IsEmpty reports whether the account is "empty" per spec.md §3: zero
// balance, zero nonce, and the code hash of the empty byte string.
func (a Account) IsEmpty() bool {
	return (a.Balance == nil || a.Balance.IsZero()) && a.Nonce == 0 && a.CodeHash == crypto.EmptyCodeHash
}

// Copy returns a deep copy of the account, safe to journal by value.
func (a Account) Copy() Account {
	b := a
	if a.Balance != nil {
		b.Balance = new(uint256.Int).Set(a.Balance)
	} else {
		b.Balance = new(uint256.Int)
	}
	return b
}
