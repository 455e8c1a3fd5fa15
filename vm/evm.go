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

package vm

import (
	"github.com/evmts/Guillotine/crypto"
	"github.com/evmts/Guillotine/log"
	"github.com/evmts/Guillotine/params"
	"github.com/evmts/Guillotine/precompiles"
	"github.com/evmts/Guillotine/primitives"
	"github.com/evmts/Guillotine/state"
	"github.com/holiman/uint256"
)

// BlockContext carries the per-block values the environment opcodes read.
// It is supplied once per Execute call and never mutated by the interpreter.
type BlockContext struct {
	Coinbase    primitives.Address
	GasLimit    uint64
	BlockNumber uint64
	Time        uint64
	Difficulty  *uint256.Int // pre-Merge PoW difficulty
	Random      *uint256.Int // post-Merge beacon randomness (DIFFICULTY/PREVRANDAO alias)
	BaseFee     *uint256.Int
	BlobBaseFee *uint256.Int
	GetHash     func(blockNumber uint64) primitives.Hash
}

// TxContext carries the per-transaction values ORIGIN/GASPRICE/BLOBHASH read.
type TxContext struct {
	Origin     primitives.Address
	GasPrice   *uint256.Int
	BlobHashes []primitives.Hash
}

// callEnv is the environment threaded through every opcode handler: the
// world-state database, the chain configuration, the active hardfork rules,
// and the per-transaction/per-block context. One callEnv is built per
// Execute call and shared by every Frame it spawns.
type callEnv struct {
	db          state.Database
	chainConfig *params.ChainConfig
	rules       params.Rules
	block       BlockContext
	tx          TxContext
	table       *JumpTable
	depth       int
	config      Config

	originStorage map[primitives.Address]map[primitives.Hash]uint256.Int
}

func newCallEnv(db state.Database, cfg *params.ChainConfig, block BlockContext, tx TxContext) *callEnv {
	rules := cfg.Rules(block.BlockNumber, block.Time)
	tbl := newInstructionSet(rules)
	return &callEnv{
		db:            db,
		chainConfig:   cfg,
		rules:         rules,
		block:         block,
		tx:            tx,
		table:         &tbl,
		originStorage: make(map[primitives.Address]map[primitives.Hash]uint256.Int),
	}
}

// originalStorage returns the slot's value as of the start of the current
// transaction, caching it on first read so later SSTOREs in the same
// transaction see a stable baseline for EIP-2200 net-metering, per
// go-ethereum's StateDB.GetCommittedState.
func (env *callEnv) originalStorage(addr primitives.Address, key primitives.Hash) uint256.Int {
	slots, ok := env.originStorage[addr]
	if !ok {
		slots = make(map[primitives.Hash]uint256.Int)
		env.originStorage[addr] = slots
	}
	if v, ok := slots[key]; ok {
		return v
	}
	v := env.db.GetStorage(addr, key)
	slots[key] = v
	return v
}

func (env *callEnv) resetOriginalStorage() {
	env.originStorage = make(map[primitives.Address]map[primitives.Hash]uint256.Int)
}

// ExecutionResult is the outcome of a top-level Execute call: the
// transaction's gas accounting, its return/revert output, and any logs
// emitted before a revert discarded them.
type ExecutionResult struct {
	UsedGas    uint64
	ReturnData []byte
	Reverted   bool
	Err        error
	Logs       []state.Log
	ContractAddress primitives.Address
}

// Executor runs transactions against a Database under a fixed ChainConfig.
// Between Execute calls it keeps only its configuration, including any
// hooks attached with SetTracer; the jumpdest analysis cache is
// package-level and shared by every Executor in the process.
type Executor struct {
	chainConfig *params.ChainConfig
	logger      log.Logger
	config      Config
}

func NewExecutor(cfg *params.ChainConfig) *Executor {
	return &Executor{chainConfig: cfg, logger: log.New("component", "evm")}
}

// SetTracer attaches a set of interpreter hooks to every subsequent
// Execute call, or detaches tracing entirely when h is nil.
func (e *Executor) SetTracer(h *Hooks) {
	e.config.Tracer = h
}

// Message is a single call or contract-creation request, the transaction
// analog the spec.md §4.14 Executor consumes.
type Message struct {
	From     primitives.Address
	To       *primitives.Address // nil for contract creation
	Value    *uint256.Int
	Data     []byte
	GasLimit uint64
	GasPrice *uint256.Int
	AccessList []AccessTuple
}

// AccessTuple mirrors EIP-2930's access-list entry: pre-warming an address
// and a set of its storage slots before execution begins.
type AccessTuple struct {
	Address     primitives.Address
	StorageKeys []primitives.Hash
}

// IntrinsicGas computes the flat per-transaction gas a message owes before
// a single opcode runs: the base 21000 (53000 for creation), plus per-byte
// calldata costs, plus EIP-2930 access-list costs, plus EIP-3860's initcode
// word cost on creation.
func IntrinsicGas(data []byte, accessList []AccessTuple, isCreate bool, rules params.Rules) (uint64, error) {
	var gas uint64
	if isCreate {
		gas = params.TxGasContractCreation
	} else {
		gas = params.TxGas
	}

	if len(data) > 0 {
		var nz uint64
		for _, b := range data {
			if b != 0 {
				nz++
			}
		}
		nonZeroGas := params.TxDataNonZeroGasFrontier
		if rules.IsIstanbul {
			nonZeroGas = params.TxDataNonZeroGasEIP2028
		}
		if (gas+nz*nonZeroGas)/nonZeroGas < nz {
			return 0, ErrGasUintOverflow
		}
		gas += nz * nonZeroGas

		z := uint64(len(data)) - nz
		if (gas+z*params.TxDataZeroGas)/params.TxDataZeroGas < z {
			return 0, ErrGasUintOverflow
		}
		gas += z * params.TxDataZeroGas

		if isCreate && rules.IsShanghai {
			words := toWordSize(uint64(len(data)))
			gas += words * params.InitCodeWordGas
		}
	}

	if rules.IsBerlin {
		gas += uint64(len(accessList)) * params.TxAccessListAddressGas
		for _, a := range accessList {
			gas += uint64(len(a.StorageKeys)) * params.TxAccessListStorageKeyGas
		}
	}
	return gas, nil
}

// Execute runs one top-level message to completion: it resets the
// transaction-scoped state, pre-warms the sender/recipient, the coinbase
// (EIP-3651), every active precompile (EIP-2929), and any EIP-2930 access
// list, runs the call or creation, and finalizes the refund against the
// EIP-3529 cap.
func (e *Executor) Execute(db state.Database, msg Message, block BlockContext) ExecutionResult {
	env := newCallEnv(db, e.chainConfig, block, TxContext{Origin: msg.From, GasPrice: msg.GasPrice})
	env.config = e.config
	db.BeginTransaction()
	db.MarkAddressWarm(msg.From)
	if msg.To != nil {
		db.MarkAddressWarm(*msg.To)
	}
	if env.rules.IsShanghai {
		db.MarkAddressWarm(block.Coinbase)
	}
	for _, a := range precompiles.ActiveAddresses(precompiles.Rules{
		IsByzantium: env.rules.IsByzantium,
		IsIstanbul:  env.rules.IsIstanbul,
		IsBerlin:    env.rules.IsBerlin,
		IsCancun:    env.rules.IsCancun,
		ChainType:   int(e.chainConfig.ChainType),
	}) {
		db.MarkAddressWarm(a)
	}
	for _, tuple := range msg.AccessList {
		db.MarkAddressWarm(tuple.Address)
		for _, key := range tuple.StorageKeys {
			db.MarkSlotWarm(tuple.Address, key)
		}
	}

	isCreate := msg.To == nil
	intrinsic, err := IntrinsicGas(msg.Data, msg.AccessList, isCreate, env.rules)
	if err != nil {
		return ExecutionResult{Err: err}
	}
	if msg.GasLimit < intrinsic {
		return ExecutionResult{Err: ErrOutOfGas}
	}
	gasRemaining := msg.GasLimit - intrinsic

	var (
		out      []byte
		leftover uint64
		execErr  error
		contractAddr primitives.Address
	)
	if isCreate {
		contractAddr = crypto.CreateAddress(msg.From, accountNonce(db, msg.From))
		out, leftover, execErr = env.create(msg.From, contractAddr, msg.Value, msg.Data, gasRemaining, 0, false)
	} else {
		out, leftover, execErr = env.call(msg.From, *msg.To, msg.Value, msg.Data, gasRemaining, 0, false)
	}

	used := msg.GasLimit - leftover
	refund := db.Refund()
	maxRefund := used / params.MaxRefundQuotientEIP3529
	if refund > maxRefund {
		refund = maxRefund
	}
	used -= refund

	reverted := execErr == ErrExecutionReverted
	result := ExecutionResult{
		UsedGas:         used,
		ReturnData:      out,
		Reverted:        reverted,
		Err:             execErr,
		Logs:            db.Logs(),
		ContractAddress: contractAddr,
	}
	if execErr != nil && !reverted {
		result.Err = execErr
	}
	return result
}

func accountNonce(db state.Database, addr primitives.Address) uint64 {
	acc, ok := db.GetAccount(addr)
	if !ok {
		return 0
	}
	return acc.Nonce
}
