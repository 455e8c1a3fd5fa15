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

func TestMemorySet32RoundTrips(t *testing.T) {
	m := newMemory()
	m.Resize(32)
	val := uint256.NewInt(0xdeadbeef)
	m.Set32(0, val)
	require.True(t, m.Load32(0).Eq(val))
}

func TestMemorySet1WritesSingleByte(t *testing.T) {
	m := newMemory()
	m.Resize(32)
	m.Set1(5, 0xAB)
	require.Equal(t, byte(0xAB), m.Data()[5])
}

func TestMemoryLoad32ReadsBigEndianWord(t *testing.T) {
	m := newMemory()
	m.Resize(32)
	m.Set1(31, 0xFF)
	require.Equal(t, uint64(0xFF), m.Load32(0).Uint64())
}

func TestMemoryGetCopyIsIndependentOfStore(t *testing.T) {
	m := newMemory()
	m.Resize(32)
	m.Set1(0, 0x01)
	cp := m.GetCopy(0, 4)
	m.Set1(0, 0x02)
	require.Equal(t, byte(0x01), cp[0])
}

func TestMemoryGetPtrAliasesStore(t *testing.T) {
	m := newMemory()
	m.Resize(32)
	m.Set1(0, 0x01)
	ptr := m.GetPtr(0, 4)
	m.Set1(0, 0x02)
	require.Equal(t, byte(0x02), ptr[0])
}

func TestMemoryResizeNeverShrinks(t *testing.T) {
	m := newMemory()
	m.Resize(64)
	m.Resize(32)
	require.Equal(t, 64, m.Len())
}

func TestMemoryGasCostChargesOnlyExpansion(t *testing.T) {
	m := newMemory()
	m.Resize(32)
	cost, err := memoryGasCost(m, 32)
	require.NoError(t, err)
	require.Zero(t, cost)

	cost, err = memoryGasCost(m, 64)
	require.NoError(t, err)
	require.NotZero(t, cost)
}

func TestToWordSizeRoundsUp(t *testing.T) {
	require.Equal(t, uint64(1), toWordSize(1))
	require.Equal(t, uint64(1), toWordSize(32))
	require.Equal(t, uint64(2), toWordSize(33))
}
