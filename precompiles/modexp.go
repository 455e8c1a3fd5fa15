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

package precompiles

import "math/big"

// bigModExp is precompile 0x05. Its operand lengths are attacker-controlled
// and can exceed 256 bits, so it works in math/big rather than uint256 —
// see DESIGN.md for why no wired third-party bigint type covers this.
//
// eip2565 selects Berlin's cheaper gas formula; pre-Berlin uses the
// original, much pricier one.
type bigModExp struct {
	eip2565 bool
}

var (
	big0 = big.NewInt(0)
	big1 = big.NewInt(1)
)

func (c *bigModExp) RequiredGas(input []byte) uint64 {
	var (
		baseLen = lengthOf(input, 0)
		expLen  = lengthOf(input, 32)
		modLen  = lengthOf(input, 64)
	)

	maxLen := baseLen
	if modLen > maxLen {
		maxLen = modLen
	}
	words := (maxLen + 7) / 8
	multiplicationComplexity := words * words

	expHead := new(big.Int)
	if uint64(len(input)) > 96+baseLen {
		expStart := 96 + baseLen
		expBytes := input[expStart:]
		if uint64(len(expBytes)) > expLen {
			expBytes = expBytes[:expLen]
		}
		headLen := expLen
		if headLen > 32 {
			headLen = 32
		}
		if uint64(len(expBytes)) < headLen {
			headLen = uint64(len(expBytes))
		}
		expHead.SetBytes(expBytes[:headLen])
	}

	iterationCount := adjustedExpLen(expLen, expHead)
	if iterationCount == 0 {
		iterationCount = 1
	}

	gas := multiplicationComplexity * iterationCount
	if c.eip2565 {
		gas /= 3
		if gas < 200 {
			gas = 200
		}
	} else {
		// EIP-198: complexity is priced on byte length, not 8-byte words.
		x := maxLen
		var complexity uint64
		switch {
		case x <= 64:
			complexity = x * x
		case x <= 1024:
			complexity = x*x/4 + 96*x - 3072
		default:
			complexity = x*x/16 + 480*x - 199680
		}
		gas = complexity * iterationCount / 20
	}
	return gas
}

func adjustedExpLen(expLen uint64, expHead *big.Int) uint64 {
	var bitLen int
	if expHead.Sign() != 0 {
		bitLen = expHead.BitLen()
	}
	if expLen <= 32 {
		if bitLen == 0 {
			return 0
		}
		return uint64(bitLen - 1)
	}
	adjusted := uint64(8 * (expLen - 32))
	if bitLen > 1 {
		adjusted += uint64(bitLen - 1)
	}
	return adjusted
}

func lengthOf(input []byte, offset int) uint64 {
	if offset+32 > len(input) {
		return 0
	}
	return new(big.Int).SetBytes(input[offset : offset+32]).Uint64()
}

func (c *bigModExp) Run(input []byte) ([]byte, error) {
	baseLen := lengthOf(input, 0)
	expLen := lengthOf(input, 32)
	modLen := lengthOf(input, 64)

	if baseLen == 0 && modLen == 0 {
		return []byte{}, nil
	}

	pos := uint64(96)
	base := readBig(input, pos, baseLen)
	pos += baseLen
	exp := readBig(input, pos, expLen)
	pos += expLen
	mod := readBig(input, pos, modLen)

	out := make([]byte, modLen)
	if mod.Cmp(big0) == 0 {
		return out, nil
	}
	result := new(big.Int).Exp(base, exp, mod)
	result.FillBytes(out)
	return out, nil
}

func readBig(input []byte, offset, length uint64) *big.Int {
	end := offset + length
	if offset >= uint64(len(input)) {
		return new(big.Int)
	}
	if end > uint64(len(input)) {
		end = uint64(len(input))
	}
	return new(big.Int).SetBytes(input[offset:end])
}
