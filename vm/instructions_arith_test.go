// Copyright 2024 The go-ethereum Authors
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
	"math"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

// newArithFrame builds a bare Frame with just a Stack, sufficient for
// exercising handlers that never touch Memory or callEnv.
func newArithFrame() *Frame {
	return &Frame{Stack: newStack()}
}

// pushValues pushes each value bottom-to-top, so the last argument ends up
// on top of stack (μs[0]).
func pushValues(t *testing.T, f *Frame, vals ...uint64) {
	t.Helper()
	for _, v := range vals {
		require.NoError(t, f.Stack.Push(*uint256.NewInt(v)))
	}
}

func TestOpSubNonCommutative(t *testing.T) {
	f := newArithFrame()
	pushValues(t, f, 3, 10) // μs[1]=3, μs[0]=10
	var pc uint64
	_, err := opSub(&pc, nil, f)
	require.NoError(t, err)
	require.Equal(t, uint64(7), f.Stack.pop1().Uint64())
}

func TestOpDivTruncatesTowardZero(t *testing.T) {
	f := newArithFrame()
	pushValues(t, f, 3, 20) // 20 / 3
	var pc uint64
	_, err := opDiv(&pc, nil, f)
	require.NoError(t, err)
	require.Equal(t, uint64(6), f.Stack.pop1().Uint64())
}

func TestOpDivByZeroYieldsZero(t *testing.T) {
	f := newArithFrame()
	pushValues(t, f, 0, 5)
	var pc uint64
	_, err := opDiv(&pc, nil, f)
	require.NoError(t, err)
	require.True(t, f.Stack.pop1().IsZero())
}

func TestOpModWrapsCorrectOperand(t *testing.T) {
	f := newArithFrame()
	pushValues(t, f, 5, 17) // 17 mod 5
	var pc uint64
	_, err := opMod(&pc, nil, f)
	require.NoError(t, err)
	require.Equal(t, uint64(2), f.Stack.pop1().Uint64())
}

func TestOpAddmodUsesTopOperandAsModulus(t *testing.T) {
	f := newArithFrame()
	pushValues(t, f, 8, 10, 10) // (10 + 10) mod 8
	var pc uint64
	_, err := opAddmod(&pc, nil, f)
	require.NoError(t, err)
	require.Equal(t, uint64(4), f.Stack.pop1().Uint64())
}

func TestOpMulmodOverflowsBeforeReducing(t *testing.T) {
	f := newArithFrame()
	max := new(uint256.Int).SetAllOne()
	require.NoError(t, f.Stack.Push(*uint256.NewInt(6)))  // modulus, μs[2]
	require.NoError(t, f.Stack.Push(*max))                // μs[1]
	require.NoError(t, f.Stack.Push(*uint256.NewInt(2)))  // μs[0]
	var pc uint64
	_, err := opMulmod(&pc, nil, f)
	require.NoError(t, err)
	// The unwrapped product is 2^257 - 2; 2^257 mod 6 = 2, so the result is 0.
	// Wrapping the product to 256 bits first would give 2 instead.
	want := uint64(0)
	require.Equal(t, want, f.Stack.pop1().Uint64())
}

func TestOpExpBaseAndExponentOrder(t *testing.T) {
	f := newArithFrame()
	pushValues(t, f, 10, 2) // base=2 (top), exponent=10 (second)
	var pc uint64
	_, err := opExp(&pc, nil, f)
	require.NoError(t, err)
	require.Equal(t, uint64(1024), f.Stack.pop1().Uint64())
}

func TestOpSignExtendNegativeByte(t *testing.T) {
	f := newArithFrame()
	pushValues(t, f, 0xFF, 0) // value=0xFF (second), byte index=0 (top)
	var pc uint64
	_, err := opSignExtend(&pc, nil, f)
	require.NoError(t, err)
	result := f.Stack.pop1()
	require.True(t, result.Eq(new(uint256.Int).SetAllOne()))
}

func TestOpSignExtendPositiveByteIsNoop(t *testing.T) {
	f := newArithFrame()
	pushValues(t, f, 0x7F, 0)
	var pc uint64
	_, err := opSignExtend(&pc, nil, f)
	require.NoError(t, err)
	require.Equal(t, uint64(0x7F), f.Stack.pop1().Uint64())
}

func TestOpLtOperandOrder(t *testing.T) {
	f := newArithFrame()
	pushValues(t, f, 5, 3) // μs[1]=5, μs[0]=3: 3 < 5
	var pc uint64
	_, err := opLt(&pc, nil, f)
	require.NoError(t, err)
	require.Equal(t, uint64(1), f.Stack.pop1().Uint64())
}

func TestOpGtOperandOrder(t *testing.T) {
	f := newArithFrame()
	pushValues(t, f, 5, 3) // 3 > 5 is false
	var pc uint64
	_, err := opGt(&pc, nil, f)
	require.NoError(t, err)
	require.True(t, f.Stack.pop1().IsZero())
}

func TestOpByteExtractsFromMostSignificantEnd(t *testing.T) {
	f := newArithFrame()
	pushValues(t, f, 0xFF, 31) // value=0xFF (second), index=31 (top, last byte)
	var pc uint64
	_, err := opByte(&pc, nil, f)
	require.NoError(t, err)
	require.Equal(t, uint64(0xFF), f.Stack.pop1().Uint64())
}

func TestOpByteOutOfRangeIsZero(t *testing.T) {
	f := newArithFrame()
	pushValues(t, f, 0xFF, 32)
	var pc uint64
	_, err := opByte(&pc, nil, f)
	require.NoError(t, err)
	require.True(t, f.Stack.pop1().IsZero())
}

func TestOpShlUsesTopAsShiftAmount(t *testing.T) {
	f := newArithFrame()
	pushValues(t, f, 1, 4) // value=1 (second), shift=4 (top)
	var pc uint64
	_, err := opShl(&pc, nil, f)
	require.NoError(t, err)
	require.Equal(t, uint64(16), f.Stack.pop1().Uint64())
}

func TestOpShrUsesTopAsShiftAmount(t *testing.T) {
	f := newArithFrame()
	pushValues(t, f, 16, 4)
	var pc uint64
	_, err := opShr(&pc, nil, f)
	require.NoError(t, err)
	require.Equal(t, uint64(1), f.Stack.pop1().Uint64())
}

func TestOpSarPreservesSignOnOverflowShift(t *testing.T) {
	f := newArithFrame()
	negOne := new(uint256.Int).SetAllOne()
	require.NoError(t, f.Stack.Push(*negOne))
	require.NoError(t, f.Stack.Push(*uint256.NewInt(math.MaxUint32)))
	var pc uint64
	_, err := opSar(&pc, nil, f)
	require.NoError(t, err)
	require.True(t, f.Stack.pop1().Eq(negOne))
}

func TestOpAddIsCommutative(t *testing.T) {
	f := newArithFrame()
	pushValues(t, f, 4, 6)
	var pc uint64
	_, err := opAdd(&pc, nil, f)
	require.NoError(t, err)
	require.Equal(t, uint64(10), f.Stack.pop1().Uint64())
}
