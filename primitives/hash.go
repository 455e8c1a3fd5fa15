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

package primitives

import (
	"encoding/hex"

	"github.com/holiman/uint256"
)

// HashLength is the expected length of a hash, in bytes.
const HashLength = 32

// Hash represents a 32-byte keccak256 hash or a 256-bit word, depending on
// context (storage key, code hash, state root, topic).
type Hash [HashLength]byte

// BytesToHash returns Hash with value b. If b is larger than len(h), b will
// be cropped from the left.
func BytesToHash(b []byte) Hash {
	var h Hash
	h.SetBytes(b)
	return h
}

// SetBytes sets the hash to the value of b.
func (h *Hash) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
}

// Bytes returns the raw bytes of the hash.
func (h Hash) Bytes() []byte { return h[:] }

// Hex returns the 0x-prefixed hex encoding of the hash.
func (h Hash) Hex() string { return "0x" + hex.EncodeToString(h[:]) }

func (h Hash) String() string { return h.Hex() }

// IsZero reports whether h is the zero hash.
func (h Hash) IsZero() bool {
	for _, b := range h {
		if b != 0 {
			return false
		}
	}
	return true
}

// Uint256ToHash packs a u256 value into a 32-byte big-endian hash, as used
// for storage keys derived from stack values (SLOAD/SSTORE/TLOAD/TSTORE).
func Uint256ToHash(x *uint256.Int) Hash {
	return Hash(x.Bytes32())
}

// Uint256 interprets the hash as a big-endian 256-bit integer.
func (h Hash) Uint256() *uint256.Int {
	return new(uint256.Int).SetBytes(h[:])
}
