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
	"encoding/binary"
	"testing"

	"github.com/evmts/Guillotine/params"
	"github.com/evmts/Guillotine/primitives"
	"github.com/evmts/Guillotine/state"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func pushU64(v uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return append([]byte{byte(PUSH8)}, buf[:]...)
}

func pushAddr(addr primitives.Address) []byte {
	return append([]byte{byte(PUSH20)}, addr.Bytes()...)
}

func concatCode(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func deployAccount(db *state.MemoryDatabase, addr primitives.Address, code []byte) {
	hash := db.SetCode(code)
	db.SetAccount(addr, state.Account{Balance: new(uint256.Int), CodeHash: hash})
}

func TestExecuteAddMstoreReturn(t *testing.T) {
	db := state.NewMemoryDatabase()
	contractAddr := primitives.BytesToAddress([]byte{0x01})
	code := concatCode(
		pushU64(3),
		pushU64(4),
		[]byte{byte(ADD)},
		pushU64(0),
		[]byte{byte(MSTORE)},
		pushU64(32),
		pushU64(0),
		[]byte{byte(RETURN)},
	)
	deployAccount(db, contractAddr, code)

	exec := NewExecutor(params.MainnetChainConfig)
	msg := Message{
		From:     primitives.BytesToAddress([]byte{0xFF}),
		To:       &contractAddr,
		Value:    new(uint256.Int),
		GasLimit: 1_000_000,
		GasPrice: new(uint256.Int),
	}
	result := exec.Execute(db, msg, BlockContext{})
	require.NoError(t, result.Err)
	require.False(t, result.Reverted)
	require.Equal(t, uint64(7), new(uint256.Int).SetBytes(result.ReturnData).Uint64())
}

func TestExecuteJumpIntoPushDataIsInvalid(t *testing.T) {
	db := state.NewMemoryDatabase()
	contractAddr := primitives.BytesToAddress([]byte{0x02})
	// PUSH1 0x5b (data byte that happens to equal the JUMPDEST opcode),
	// PUSH1 1 (jump target: the push-data byte's position), JUMP.
	code := []byte{byte(PUSH1), 0x5b, byte(PUSH1), 0x01, byte(JUMP)}
	deployAccount(db, contractAddr, code)

	exec := NewExecutor(params.MainnetChainConfig)
	msg := Message{
		From:     primitives.BytesToAddress([]byte{0xFF}),
		To:       &contractAddr,
		Value:    new(uint256.Int),
		GasLimit: 1_000_000,
		GasPrice: new(uint256.Int),
	}
	result := exec.Execute(db, msg, BlockContext{})
	require.ErrorIs(t, result.Err, ErrInvalidJump)
}

func TestExecuteNestedCallRevertIsContainedAtTheCallBoundary(t *testing.T) {
	db := state.NewMemoryDatabase()
	calleeAddr := primitives.BytesToAddress([]byte{0x03})
	callerAddr := primitives.BytesToAddress([]byte{0x04})

	calleeCode := concatCode(
		pushU64(1), // value (second-from-top going into SSTORE)
		pushU64(1), // key (top)
		[]byte{byte(SSTORE)},
		pushU64(0), // size
		pushU64(0), // offset
		[]byte{byte(REVERT)},
	)
	deployAccount(db, calleeAddr, calleeCode)

	callerCode := concatCode(
		pushU64(0), // retLen
		pushU64(0), // retOffset
		pushU64(0), // argsLen
		pushU64(0), // argsOffset
		pushU64(0), // value
		pushAddr(calleeAddr),
		pushU64(100_000), // gas
		[]byte{byte(CALL)},
		[]byte{byte(STOP)},
	)
	deployAccount(db, callerAddr, callerCode)

	exec := NewExecutor(params.MainnetChainConfig)
	msg := Message{
		From:     primitives.BytesToAddress([]byte{0xFF}),
		To:       &callerAddr,
		Value:    new(uint256.Int),
		GasLimit: 1_000_000,
		GasPrice: new(uint256.Int),
	}
	result := exec.Execute(db, msg, BlockContext{})
	require.NoError(t, result.Err)
	require.False(t, result.Reverted, "the callee's revert must not propagate past the CALL boundary")

	key := primitives.Uint256ToHash(uint256.NewInt(1))
	require.True(t, db.GetStorage(calleeAddr, key).IsZero(), "the callee's SSTORE must have been rolled back with its snapshot")
}

func TestExecuteContractCreation(t *testing.T) {
	db := state.NewMemoryDatabase()
	// Init code that deploys a single-byte STOP runtime program.
	initCode := concatCode(
		pushU64(uint64(STOP)),
		pushU64(0),
		[]byte{byte(MSTORE8)},
		pushU64(1),
		pushU64(0),
		[]byte{byte(RETURN)},
	)

	exec := NewExecutor(params.MainnetChainConfig)
	msg := Message{
		From:     primitives.BytesToAddress([]byte{0xFF}),
		To:       nil,
		Value:    new(uint256.Int),
		Data:     initCode,
		GasLimit: 1_000_000,
		GasPrice: new(uint256.Int),
	}
	result := exec.Execute(db, msg, BlockContext{})
	require.NoError(t, result.Err)

	acc, ok := db.GetAccount(result.ContractAddress)
	require.True(t, ok)
	deployed := db.GetCode(acc.CodeHash)
	require.Equal(t, []byte{byte(STOP)}, deployed)
}

// A STATICCALL callee that only MSTOREs its result into its own memory
// before RETURNing must succeed: memory is frame-local scratch space, not
// world state, so it is never subject to the static-context write guard.
func TestStaticCallAllowsMemoryWrites(t *testing.T) {
	db := state.NewMemoryDatabase()
	calleeAddr := primitives.BytesToAddress([]byte{0x05})
	callerAddr := primitives.BytesToAddress([]byte{0x06})

	calleeCode := concatCode(
		pushU64(7),
		pushU64(0),
		[]byte{byte(MSTORE)},
		pushU64(32),
		pushU64(0),
		[]byte{byte(RETURN)},
	)
	deployAccount(db, calleeAddr, calleeCode)

	callerCode := concatCode(
		pushU64(32), // retLen
		pushU64(0),  // retOffset
		pushU64(0),  // argsLen
		pushU64(0),  // argsOffset
		pushAddr(calleeAddr),
		pushU64(100_000), // gas
		[]byte{byte(STATICCALL)},
		pushU64(32), // size
		pushU64(0),  // offset
		[]byte{byte(RETURN)},
	)
	deployAccount(db, callerAddr, callerCode)

	exec := NewExecutor(params.MainnetChainConfig)
	msg := Message{
		From:     primitives.BytesToAddress([]byte{0xFF}),
		To:       &callerAddr,
		Value:    new(uint256.Int),
		GasLimit: 1_000_000,
		GasPrice: new(uint256.Int),
	}
	result := exec.Execute(db, msg, BlockContext{})
	require.NoError(t, result.Err)
	require.False(t, result.Reverted)
	require.Equal(t, uint64(7), new(uint256.Int).SetBytes(result.ReturnData).Uint64(),
		"the callee's MSTORE must have run and its value must have been copied back through the STATICCALL's return data")
}

// EIP-3651 and EIP-2929: the coinbase and every active precompile address
// must be warm from the very first opcode, not just the sender/recipient.
func TestExecuteWarmsCoinbaseAndPrecompiles(t *testing.T) {
	db := state.NewMemoryDatabase()
	contractAddr := primitives.BytesToAddress([]byte{0x07})
	deployAccount(db, contractAddr, []byte{byte(STOP)})

	coinbase := primitives.BytesToAddress([]byte{0xC0, 0x1B, 0xA5, 0xE0})
	exec := NewExecutor(params.MainnetChainConfig)
	msg := Message{
		From:     primitives.BytesToAddress([]byte{0xFF}),
		To:       &contractAddr,
		Value:    new(uint256.Int),
		GasLimit: 1_000_000,
		GasPrice: new(uint256.Int),
	}
	result := exec.Execute(db, msg, BlockContext{Coinbase: coinbase})
	require.NoError(t, result.Err)

	require.True(t, db.IsAddressWarm(coinbase), "coinbase must be warmed per EIP-3651")
	require.True(t, db.IsAddressWarm(primitives.BytesToAddress([]byte{0x02})), "SHA256 precompile must be warmed per EIP-2929")
	require.True(t, db.IsAddressWarm(primitives.BytesToAddress([]byte{0x09})), "BLAKE2F precompile must be warmed per EIP-2929")
	require.True(t, db.IsAddressWarm(primitives.BytesToAddress([]byte{0x0A})), "KZG point evaluation precompile must be warmed per EIP-2929")
}

// Pre-Shanghai, EIP-3651's coinbase warming does not apply.
func TestExecuteDoesNotWarmCoinbaseBeforeShanghai(t *testing.T) {
	db := state.NewMemoryDatabase()
	contractAddr := primitives.BytesToAddress([]byte{0x08})
	deployAccount(db, contractAddr, []byte{byte(STOP)})

	coinbase := primitives.BytesToAddress([]byte{0xC0, 0x1B, 0xA5, 0xE0})
	one := uint64(0)
	londonConfig := &params.ChainConfig{
		ChainID:               &one,
		HomesteadBlock:        &one,
		TangerineWhistleBlock: &one,
		SpuriousDragonBlock:   &one,
		ByzantiumBlock:        &one,
		ConstantinopleBlock:   &one,
		PetersburgBlock:       &one,
		IstanbulBlock:         &one,
		BerlinBlock:           &one,
		LondonBlock:           &one,
		ChainType:             params.ChainTypeMainnet,
	}
	exec := NewExecutor(londonConfig)
	msg := Message{
		From:     primitives.BytesToAddress([]byte{0xFF}),
		To:       &contractAddr,
		Value:    new(uint256.Int),
		GasLimit: 1_000_000,
		GasPrice: new(uint256.Int),
	}
	result := exec.Execute(db, msg, BlockContext{Coinbase: coinbase})
	require.NoError(t, result.Err)
	require.False(t, db.IsAddressWarm(coinbase))
}
