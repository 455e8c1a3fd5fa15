// Copyright 2021 The go-ethereum Authors
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

import "github.com/holiman/uint256"

// U256 is the EVM's native 256-bit unsigned integer. All arithmetic wraps
// modulo 2**256; every opcode output is reduced into this range by
// construction of uint256.Int's fixed [4]uint64 representation.
type U256 = uint256.Int

// Zero, One and MaxU256 are convenience constructors mirroring the constants
// the interpreter reaches for on nearly every opcode.
func Zero() *U256 { return new(U256) }

func One() *U256 { return new(U256).SetOne() }

func MaxU256() *U256 {
	return new(U256).SetAllOne()
}

// FromUint64 builds a U256 from a machine word.
func FromUint64(v uint64) *U256 { return new(U256).SetUint64(v) }

// ByteLen returns the number of bytes needed to represent x without leading
// zero bytes (0 for x == 0). Used by the EXP opcode's dynamic gas cost,
// which is priced per byte of the exponent's big-endian representation.
func ByteLen(x *U256) int {
	bitlen := x.BitLen()
	return (bitlen + 7) / 8
}

// ExtractByte returns byte i counting from the most significant byte of x's
// 32-byte big-endian representation, or 0 if i >= 32. This is the BYTE
// opcode's semantics, exposed standalone for reuse/testing.
func ExtractByte(x *U256, i uint64) byte {
	if i >= 32 {
		return 0
	}
	b := x.Bytes32()
	return b[i]
}
