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

package precompiles

import (
	"crypto/sha256"

	"github.com/evmts/Guillotine/params"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required for the 0x03 precompile, no replacement exists
)

func wordCount(n int) uint64 {
	return (uint64(n) + 31) / 32
}

// sha256hash is precompile 0x02.
type sha256hash struct{}

func (c *sha256hash) RequiredGas(input []byte) uint64 {
	return params.Sha256BaseGas + wordCount(len(input))*params.Sha256PerWordGas
}

func (c *sha256hash) Run(input []byte) ([]byte, error) {
	h := sha256.Sum256(input)
	return h[:], nil
}

// ripemd160hash is precompile 0x03. Its 32-byte output left-pads a 20-byte
// digest, matching the EVM ABI convention for address-shaped return values.
type ripemd160hash struct{}

func (c *ripemd160hash) RequiredGas(input []byte) uint64 {
	return params.Ripemd160BaseGas + wordCount(len(input))*params.Ripemd160PerWordGas
}

func (c *ripemd160hash) Run(input []byte) ([]byte, error) {
	h := ripemd160.New()
	h.Write(input)
	out := make([]byte, 32)
	copy(out[12:], h.Sum(nil))
	return out, nil
}

// identity is precompile 0x04: returns its input unchanged.
type identity struct{}

func (c *identity) RequiredGas(input []byte) uint64 {
	return params.IdentityBaseGas + wordCount(len(input))*params.IdentityPerWordGas
}

func (c *identity) Run(input []byte) ([]byte, error) {
	out := make([]byte, len(input))
	copy(out, input)
	return out, nil
}
