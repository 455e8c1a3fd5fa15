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
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestStackPushPopOrder(t *testing.T) {
	s := newStack()
	require.NoError(t, s.Push(*uint256.NewInt(1)))
	require.NoError(t, s.Push(*uint256.NewInt(2)))
	v, err := s.Pop()
	require.NoError(t, err)
	require.Equal(t, uint64(2), v.Uint64())
}

func TestStackOverflow(t *testing.T) {
	s := newStack()
	for i := 0; i < stackLimit; i++ {
		require.NoError(t, s.Push(*uint256.NewInt(uint64(i))))
	}
	require.ErrorIs(t, s.Push(*uint256.NewInt(0)), ErrStackOverflow)
}

func TestStackUnderflow(t *testing.T) {
	s := newStack()
	_, err := s.Pop()
	require.ErrorIs(t, err, ErrStackUnderflow)
}

func TestStackPeekDepth(t *testing.T) {
	s := newStack()
	require.NoError(t, s.Push(*uint256.NewInt(10)))
	require.NoError(t, s.Push(*uint256.NewInt(20)))
	top, err := s.Peek(0)
	require.NoError(t, err)
	require.Equal(t, uint64(20), top.Uint64())
	second, err := s.Peek(1)
	require.NoError(t, err)
	require.Equal(t, uint64(10), second.Uint64())
}

// pop2's first return is bound to μs[1] (second-from-top) and its second
// return to μs[0] (top) — the opposite of go-ethereum's own x, y :=
// pop(), peek() naming. Every handler using pop2/pop3 must bind operand
// roles against this physical layout, not against pop/peek naming.
func TestPop2BindsSecondThenTop(t *testing.T) {
	s := newStack()
	require.NoError(t, s.Push(*uint256.NewInt(111))) // μs[1]
	require.NoError(t, s.Push(*uint256.NewInt(222))) // μs[0], top
	x, y := s.pop2()
	require.Equal(t, uint64(111), x.Uint64())
	require.Equal(t, uint64(222), y.Uint64())
}

func TestPop3BindsThirdSecondThenTop(t *testing.T) {
	s := newStack()
	require.NoError(t, s.Push(*uint256.NewInt(1))) // μs[2]
	require.NoError(t, s.Push(*uint256.NewInt(2))) // μs[1]
	require.NoError(t, s.Push(*uint256.NewInt(3))) // μs[0], top
	x, y, z := s.pop3()
	require.Equal(t, uint64(1), x.Uint64())
	require.Equal(t, uint64(2), y.Uint64())
	require.Equal(t, uint64(3), z.Uint64())
}

func TestStackDup(t *testing.T) {
	s := newStack()
	require.NoError(t, s.Push(*uint256.NewInt(7)))
	s.dup(1)
	require.Equal(t, 2, s.Len())
	top, _ := s.Peek(0)
	require.Equal(t, uint64(7), top.Uint64())
}

func TestStackSwap(t *testing.T) {
	s := newStack()
	require.NoError(t, s.Push(*uint256.NewInt(1)))
	require.NoError(t, s.Push(*uint256.NewInt(2)))
	s.swap(1)
	top, _ := s.Peek(0)
	second, _ := s.Peek(1)
	require.Equal(t, uint64(1), top.Uint64())
	require.Equal(t, uint64(2), second.Uint64())
}
