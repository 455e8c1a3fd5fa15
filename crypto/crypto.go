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

// Package crypto provides the hash primitives the execution core needs:
// KECCAK256 (the opcode, code addressing, CREATE address derivation) and
// address derivation for CREATE/CREATE2, with a minimal local RLP encoder
// for CREATE's (sender, nonce) list.
package crypto

import (
	"sync"

	"github.com/evmts/Guillotine/primitives"
	"golang.org/x/crypto/sha3"
)

// hasherPool amortizes the cost of allocating a keccak sponge across the
// millions of KECCAK256 opcodes a block's worth of execution can issue.
var hasherPool = sync.Pool{
	New: func() any { return sha3.NewLegacyKeccak256() },
}

// Keccak256 returns the Keccak256 digest of the concatenation of data.
func Keccak256(data ...[]byte) []byte {
	d := hasherPool.Get().(interface {
		Write([]byte) (int, error)
		Sum([]byte) []byte
		Reset()
	})
	defer func() {
		d.Reset()
		hasherPool.Put(d)
	}()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}

// Keccak256Hash returns the Keccak256 digest of data as a primitives.Hash.
func Keccak256Hash(data ...[]byte) primitives.Hash {
	return primitives.BytesToHash(Keccak256(data...))
}

// EmptyCodeHash is the Keccak256 hash of the empty byte string, the
// code_hash of every externally-owned account and of any account that has
// never had code deployed to it.
var EmptyCodeHash = Keccak256Hash(nil)

// CreateAddress derives the address of a contract created by CREATE: the
// low 20 bytes of keccak256(rlp([sender, nonce])).
//
// The execution core is explicitly decoupled from the RLP encoder (RLP
// encoding is an external collaborator per the purpose & scope of this
// module), so the short RLP list of (address, nonce) is hand-rolled here —
// it is fixed-shape and does not warrant pulling in a general encoder.
func CreateAddress(sender primitives.Address, nonce uint64) primitives.Address {
	nonceBytes := rlpUint64(nonce)
	payload := append(rlpBytes(sender.Bytes()), nonceBytes...)
	list := rlpList(payload)
	return primitives.BytesToAddress(Keccak256(list))
}

// CreateAddress2 derives the address of a contract created by CREATE2:
// keccak256(0xff ++ sender ++ salt ++ keccak256(initcode))[12:].
func CreateAddress2(sender primitives.Address, salt [32]byte, initCodeHash []byte) primitives.Address {
	input := make([]byte, 0, 1+20+32+32)
	input = append(input, 0xff)
	input = append(input, sender.Bytes()...)
	input = append(input, salt[:]...)
	input = append(input, initCodeHash...)
	return primitives.BytesToAddress(Keccak256(input))
}

// --- minimal RLP helpers, scoped to (address, nonce) list encoding only ---

func rlpBytes(b []byte) []byte {
	if len(b) == 1 && b[0] < 0x80 {
		return b
	}
	return append(rlpLength(0x80, len(b)), b...)
}

func rlpUint64(v uint64) []byte {
	if v == 0 {
		return []byte{0x80}
	}
	var buf [8]byte
	n := 8
	for n > 0 && v > 0 {
		n--
		buf[n] = byte(v)
		v >>= 8
	}
	return rlpBytes(buf[n:])
}

func rlpLength(offset byte, l int) []byte {
	if l < 56 {
		return []byte{offset + byte(l)}
	}
	raw := minimalBigEndian(uint64(l))
	return append([]byte{offset + 55 + byte(len(raw))}, raw...)
}

func minimalBigEndian(v uint64) []byte {
	var buf [8]byte
	n := 8
	for n > 0 && v > 0 {
		n--
		buf[n] = byte(v)
		v >>= 8
	}
	if n == 8 {
		return []byte{0}
	}
	return buf[n:]
}

func rlpList(payload []byte) []byte {
	return append(rlpLength(0xc0, len(payload)), payload...)
}
