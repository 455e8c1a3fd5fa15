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
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/evmts/Guillotine/crypto"
	"github.com/evmts/Guillotine/params"
)

// ecrecover is precompile 0x01: recover the signer address from a
// (hash, v, r, s) tuple. Input is 128 bytes: hash(32) || v(32) || r(32) ||
// s(32), all big-endian, v in {27, 28}. On any malformed input or
// unrecoverable signature it returns an empty result rather than an error
// (matching go-ethereum: a failed recovery just yields no output, not a
// reverted call).
type ecrecover struct{}

func (e *ecrecover) RequiredGas(input []byte) uint64 {
	return params.EcrecoverGas
}

func (e *ecrecover) Run(input []byte) ([]byte, error) {
	const inputLen = 128
	var buf [inputLen]byte
	copy(buf[:], input)

	hash := buf[:32]
	v := buf[63]
	r := buf[64:96]
	s := buf[96:128]

	if v != 27 && v != 28 {
		return nil, nil
	}
	if !validSignatureValues(r, s) {
		return nil, nil
	}

	sig := make([]byte, 65)
	sig[0] = v - 27 + 27 // decred's compact format expects 27+recid
	copy(sig[1:33], r)
	copy(sig[33:65], s)

	pubKey, _, err := ecdsa.RecoverCompact(sig, hash)
	if err != nil {
		return nil, nil
	}

	uncompressed := pubKey.SerializeUncompressed()
	addrHash := crypto.Keccak256(uncompressed[1:])
	out := make([]byte, 32)
	copy(out[12:], addrHash[12:])
	return out, nil
}

func validSignatureValues(r, s []byte) bool {
	return !isZero(r) && !isZero(s)
}

func isZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
