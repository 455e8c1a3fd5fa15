// Copyright 2019 The go-ethereum Authors
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
	"encoding/binary"
	"errors"

	"github.com/evmts/Guillotine/params"
	"golang.org/x/crypto/blake2b"
)

// blake2F is precompile 0x09 (EIP-152): the raw BLAKE2b compression
// function, exposed so zcash-interop contracts can verify Equihash-style
// proofs without re-deriving the permutation in EVM bytecode.
type blake2F struct{}

const blake2fInputLen = 213

func (c *blake2F) RequiredGas(input []byte) uint64 {
	if len(input) != blake2fInputLen {
		return 0
	}
	rounds := binary.BigEndian.Uint32(input[0:4])
	return uint64(rounds) * params.Blake2FAluminumGasPerRound
}

func (c *blake2F) Run(input []byte) ([]byte, error) {
	if len(input) != blake2fInputLen {
		return nil, errors.New("invalid blake2f input length")
	}
	final := input[212]
	if final != 0 && final != 1 {
		return nil, errors.New("invalid blake2f final flag")
	}

	rounds := binary.BigEndian.Uint32(input[0:4])

	var h [8]uint64
	for i := 0; i < 8; i++ {
		h[i] = binary.LittleEndian.Uint64(input[4+i*8:])
	}
	var m [16]uint64
	for i := 0; i < 16; i++ {
		m[i] = binary.LittleEndian.Uint64(input[68+i*8:])
	}
	t0 := binary.LittleEndian.Uint64(input[196:204])
	t1 := binary.LittleEndian.Uint64(input[204:212])

	blake2b.F(&h, m, [2]uint64{t0, t1}, final == 1, uint64(rounds))

	out := make([]byte, 64)
	for i := 0; i < 8; i++ {
		binary.LittleEndian.PutUint64(out[i*8:], h[i])
	}
	return out, nil
}
