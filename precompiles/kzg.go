// Copyright 2023 The go-ethereum Authors
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
	"bytes"
	"crypto/sha256"
	"errors"

	gokzg4844 "github.com/crate-crypto/go-kzg-4844"
	"github.com/evmts/Guillotine/params"
)

// blsModulus is the BLS12-381 scalar field modulus, returned verbatim as
// part of a successful point-evaluation result per EIP-4844.
var blsModulus = mustHex("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001")

func mustHex(s string) []byte {
	b := make([]byte, len(s)/2)
	for i := 0; i < len(b); i++ {
		b[i] = hexNibble(s[2*i])<<4 | hexNibble(s[2*i+1])
	}
	return b
}

func hexNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

var kzgContext, _ = gokzg4844.NewContext4096Secure()

// kzgPointEvaluation is precompile 0x0A (EIP-4844): verify that a KZG
// commitment opens to a claimed value at a claimed point, returning the
// field/modulus constants blob-carrying transactions need to cross-check.
type kzgPointEvaluation struct{}

func (c *kzgPointEvaluation) RequiredGas(input []byte) uint64 {
	return params.PointEvaluationGas
}

func (c *kzgPointEvaluation) Run(input []byte) ([]byte, error) {
	if len(input) != 192 {
		return nil, errors.New("invalid point evaluation input length")
	}
	var versionedHash [32]byte
	copy(versionedHash[:], input[0:32])
	var z, y [32]byte
	copy(z[:], input[32:64])
	copy(y[:], input[64:96])
	var commitment [48]byte
	copy(commitment[:], input[96:144])
	var proof [48]byte
	copy(proof[:], input[144:192])

	if !bytes.Equal(versionedHash[:], kzgToVersionedHash(commitment)) {
		return nil, errors.New("commitment does not match versioned hash")
	}

	if err := kzgContext.VerifyKZGProof(commitment, z, y, proof); err != nil {
		return nil, errors.New("invalid kzg proof")
	}

	out := make([]byte, 64)
	copy(out[0:32], fieldElementsPerBlob())
	copy(out[32:64], blsModulus)
	return out, nil
}

func fieldElementsPerBlob() []byte {
	out := make([]byte, 32)
	out[31] = 4096 & 0xff
	out[30] = 4096 >> 8
	return out
}

func kzgToVersionedHash(commitment [48]byte) []byte {
	h := sha256.Sum256(commitment[:])
	out := make([]byte, 32)
	copy(out, h[:])
	out[0] = 0x01 // blob-versioned hash version byte, EIP-4844
	return out
}
