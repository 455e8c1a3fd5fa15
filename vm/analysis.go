// Copyright 2017 The go-ethereum Authors
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
	"sync"

	"github.com/evmts/Guillotine/primitives"
)

// bitvec is a packed bitmap with one bit per code byte, set where that byte
// starts an instruction (is not inside a PUSH immediate's data), whatever
// opcode it holds; validJumpdest checks the JUMPDEST byte separately.
type bitvec []byte

func (bits bitvec) set(pos uint64) {
	bits[pos/8] |= 0x80 >> (pos % 8)
}

func (bits bitvec) codeSegment(pos uint64) bool {
	return bits[pos/8]&(0x80>>(pos%8)) != 0
}

// codeBitmap walks code once, marking every byte that is NOT inside a PUSH
// immediate. JUMP/JUMPI later consult this to reject a destination that
// lands on a byte that is only a JUMPDEST value (0x5b) because it happens
// to sit inside some PUSH's pushed data, per spec.md §8's JUMPDEST-inside-
// PUSH-data scenario.
func codeBitmap(code []byte) bitvec {
	bits := make(bitvec, len(code)/8+1+4)
	for pc := uint64(0); pc < uint64(len(code)); {
		op := OpCode(code[pc])
		bits.set(pc)
		if op.IsPush() {
			n := uint64(op.PushSize())
			pc += n + 1
			continue
		}
		pc++
	}
	return bits
}

var (
	analysisCacheMu sync.Mutex
	analysisCache   = make(map[primitives.Hash]bitvec)
)

// jumpdestAnalysis returns the cached bitmap for codeHash, computing and
// caching it on first use. The cache is keyed by content hash, so code
// shared across many accounts (a common ERC-20 implementation, say) is
// only analyzed once for the lifetime of the process.
func jumpdestAnalysis(codeHash primitives.Hash, code []byte) bitvec {
	analysisCacheMu.Lock()
	if bits, ok := analysisCache[codeHash]; ok {
		analysisCacheMu.Unlock()
		return bits
	}
	analysisCacheMu.Unlock()

	bits := codeBitmap(code)

	analysisCacheMu.Lock()
	analysisCache[codeHash] = bits
	analysisCacheMu.Unlock()
	return bits
}

// validJumpdest reports whether dest is in range, lands on a JUMPDEST byte,
// and is not inside a PUSH immediate's data.
func validJumpdest(f *Frame, dest uint64) bool {
	if dest >= uint64(len(f.Code)) {
		return false
	}
	if OpCode(f.Code[dest]) != JUMPDEST {
		return false
	}
	if f.validJumpdest == nil {
		bits := jumpdestAnalysis(f.CodeHash, f.Code)
		f.validJumpdest = &bits
	}
	return f.validJumpdest.codeSegment(dest)
}
