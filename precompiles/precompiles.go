// Copyright 2016 The go-ethereum Authors
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

// Package precompiles implements the ten reserved-address contracts
// (0x01..0x0A) that the interpreter bypasses in favor of a native
// implementation, per spec.md §4.5.
package precompiles

import "github.com/evmts/Guillotine/primitives"

// Contract is the two-method shape every precompile implements, mirroring
// go-ethereum's PrecompiledContract: a pure function of the gas schedule
// from input size, and the computation itself.
type Contract interface {
	RequiredGas(input []byte) uint64
	Run(input []byte) ([]byte, error)
}

// Rules selects which precompile set and pricing applies. ChainType lets an
// L2 chain config swap in its own reserved-address set in the future; this
// package only dispatches the mainnet ten (see DESIGN.md's Open Question on
// L2 precompiles).
type Rules struct {
	IsByzantium bool
	IsIstanbul  bool
	IsBerlin    bool
	IsCancun    bool
	ChainType   int
}

var (
	frontierSet = map[primitives.Address]Contract{
		addr(1): &ecrecover{},
		addr(2): &sha256hash{},
		addr(3): &ripemd160hash{},
		addr(4): &identity{},
	}
	byzantiumSet = map[primitives.Address]Contract{
		addr(5): &bigModExp{eip2565: false},
		addr(6): &bn256Add{},
		addr(7): &bn256ScalarMul{},
		addr(8): &bn256Pairing{},
	}
	berlinSet = map[primitives.Address]Contract{
		addr(5): &bigModExp{eip2565: true},
	}
	istanbulSet = map[primitives.Address]Contract{
		addr(9): &blake2F{},
	}
	cancunSet = map[primitives.Address]Contract{
		addr(10): &kzgPointEvaluation{},
	}
)

func addr(last byte) primitives.Address {
	var a primitives.Address
	a[len(a)-1] = last
	return a
}

// ActiveAddresses returns every reserved address resolvable under rules, for
// EIP-2929's "all precompiles start warm" pre-warming at transaction start.
func ActiveAddresses(rules Rules) []primitives.Address {
	var out []primitives.Address
	for last := byte(1); last <= 10; last++ {
		a := addr(last)
		if _, ok := Lookup(a, rules); ok {
			out = append(out, a)
		}
	}
	return out
}

// Lookup returns the precompile bound to addr under the given rules, if
// any. Higher-fork sets override earlier ones at the same address (MODEXP
// at 0x05 gets EIP-2565 pricing from Berlin onward).
func Lookup(address primitives.Address, rules Rules) (Contract, bool) {
	if p, ok := frontierSet[address]; ok {
		return p, true
	}
	if rules.IsByzantium {
		if rules.IsBerlin {
			if p, ok := berlinSet[address]; ok {
				return p, true
			}
		}
		if p, ok := byzantiumSet[address]; ok {
			return p, true
		}
	}
	if rules.IsIstanbul {
		if p, ok := istanbulSet[address]; ok {
			return p, true
		}
	}
	if rules.IsCancun {
		if p, ok := cancunSet[address]; ok {
			return p, true
		}
	}
	return nil, false
}
