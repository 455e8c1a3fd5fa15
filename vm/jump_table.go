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

import "github.com/evmts/Guillotine/params"

// executionFunc is the shape every opcode handler implements: mutate the
// frame's stack/memory/env and either return nil, a halt with output data,
// or an error that the interpreter converts into a total-gas-consumed fault.
type executionFunc func(pc *uint64, env *callEnv, f *Frame) ([]byte, error)

// operation is one entry of a JumpTable: everything the dispatcher needs to
// validate and charge for an opcode before running its handler.
type operation struct {
	execute     executionFunc
	constantGas uint64
	dynamicGas  gasFunc
	minStack    int
	maxStack    int
	memorySize  memorySizeFunc

	halts   bool // STOP/RETURN/REVERT/SELFDESTRUCT/INVALID: interpreter loop exits after this op
	jumps   bool // JUMP/JUMPI: handler sets *pc itself, interpreter must not auto-advance
	writes  bool // state-modifying: rejected when the frame is static
	reverts bool // op's own handler may trigger a snapshot revert (CALL family)
	returns bool // RETURN/REVERT: produces the output the caller reads
}

// JumpTable is a 256-entry opcode-to-operation lookup, one per hardfork.
type JumpTable [256]*operation

// newFrontierInstructionSet returns the original, unmodified 1.0 opcode set.
func newFrontierInstructionSet() JumpTable {
	tbl := JumpTable{}
	set := &tbl

	set[STOP] = &operation{execute: opStop, constantGas: 0, minStack: 0, maxStack: stackLimit, halts: true}
	set[ADD] = &operation{execute: opAdd, constantGas: params.GasFastestStep, minStack: 2, maxStack: stackLimit}
	set[MUL] = &operation{execute: opMul, constantGas: params.GasFastStep, minStack: 2, maxStack: stackLimit}
	set[SUB] = &operation{execute: opSub, constantGas: params.GasFastestStep, minStack: 2, maxStack: stackLimit}
	set[DIV] = &operation{execute: opDiv, constantGas: params.GasFastStep, minStack: 2, maxStack: stackLimit}
	set[SDIV] = &operation{execute: opSdiv, constantGas: params.GasFastStep, minStack: 2, maxStack: stackLimit}
	set[MOD] = &operation{execute: opMod, constantGas: params.GasFastStep, minStack: 2, maxStack: stackLimit}
	set[SMOD] = &operation{execute: opSmod, constantGas: params.GasFastStep, minStack: 2, maxStack: stackLimit}
	set[ADDMOD] = &operation{execute: opAddmod, constantGas: params.GasMidStep, minStack: 3, maxStack: stackLimit}
	set[MULMOD] = &operation{execute: opMulmod, constantGas: params.GasMidStep, minStack: 3, maxStack: stackLimit}
	set[EXP] = &operation{execute: opExp, constantGas: params.GasSlowStep, dynamicGas: gasExp(false), minStack: 2, maxStack: stackLimit}
	set[SIGNEXTEND] = &operation{execute: opSignExtend, constantGas: params.GasFastestStep, minStack: 2, maxStack: stackLimit}

	set[LT] = &operation{execute: opLt, constantGas: params.GasFastestStep, minStack: 2, maxStack: stackLimit}
	set[GT] = &operation{execute: opGt, constantGas: params.GasFastestStep, minStack: 2, maxStack: stackLimit}
	set[SLT] = &operation{execute: opSlt, constantGas: params.GasFastestStep, minStack: 2, maxStack: stackLimit}
	set[SGT] = &operation{execute: opSgt, constantGas: params.GasFastestStep, minStack: 2, maxStack: stackLimit}
	set[EQ] = &operation{execute: opEq, constantGas: params.GasFastestStep, minStack: 2, maxStack: stackLimit}
	set[ISZERO] = &operation{execute: opIszero, constantGas: params.GasFastestStep, minStack: 1, maxStack: stackLimit}
	set[AND] = &operation{execute: opAnd, constantGas: params.GasFastestStep, minStack: 2, maxStack: stackLimit}
	set[OR] = &operation{execute: opOr, constantGas: params.GasFastestStep, minStack: 2, maxStack: stackLimit}
	set[XOR] = &operation{execute: opXor, constantGas: params.GasFastestStep, minStack: 2, maxStack: stackLimit}
	set[NOT] = &operation{execute: opNot, constantGas: params.GasFastestStep, minStack: 1, maxStack: stackLimit}
	set[BYTE] = &operation{execute: opByte, constantGas: params.GasFastestStep, minStack: 2, maxStack: stackLimit}

	set[KECCAK256] = &operation{execute: opKeccak256, constantGas: params.Keccak256Gas, dynamicGas: gasKeccak256, minStack: 2, maxStack: stackLimit, memorySize: memSizeKeccak}

	set[ADDRESS] = &operation{execute: opAddress, constantGas: params.GasQuickStep, minStack: 0, maxStack: stackLimit - 1}
	set[BALANCE] = &operation{execute: opBalance, constantGas: params.BalanceGasFrontier, minStack: 1, maxStack: stackLimit}
	set[ORIGIN] = &operation{execute: opOrigin, constantGas: params.GasQuickStep, minStack: 0, maxStack: stackLimit - 1}
	set[CALLER] = &operation{execute: opCaller, constantGas: params.GasQuickStep, minStack: 0, maxStack: stackLimit - 1}
	set[CALLVALUE] = &operation{execute: opCallValue, constantGas: params.GasQuickStep, minStack: 0, maxStack: stackLimit - 1}
	set[CALLDATALOAD] = &operation{execute: opCallDataLoad, constantGas: params.GasFastestStep, minStack: 1, maxStack: stackLimit}
	set[CALLDATASIZE] = &operation{execute: opCallDataSize, constantGas: params.GasQuickStep, minStack: 0, maxStack: stackLimit - 1}
	set[CALLDATACOPY] = &operation{execute: opCallDataCopy, constantGas: params.GasFastestStep, dynamicGas: memCopierGas(), minStack: 3, maxStack: stackLimit, memorySize: memSizeCallDataCopy}
	set[CODESIZE] = &operation{execute: opCodeSize, constantGas: params.GasQuickStep, minStack: 0, maxStack: stackLimit - 1}
	set[CODECOPY] = &operation{execute: opCodeCopy, constantGas: params.GasFastestStep, dynamicGas: memCopierGas(), minStack: 3, maxStack: stackLimit, memorySize: memSizeCodeCopy}
	set[GASPRICE] = &operation{execute: opGasPrice, constantGas: params.GasQuickStep, minStack: 0, maxStack: stackLimit - 1}
	set[EXTCODESIZE] = &operation{execute: opExtCodeSize, constantGas: params.ExtcodeSizeGasFrontier, minStack: 1, maxStack: stackLimit}
	set[EXTCODECOPY] = &operation{execute: opExtCodeCopy, constantGas: params.ExtcodeSizeGasFrontier, dynamicGas: memCopierGasAccess(), minStack: 4, maxStack: stackLimit, memorySize: memSizeExtCodeCopy}

	set[BLOCKHASH] = &operation{execute: opBlockHash, constantGas: params.GasExtStep, minStack: 1, maxStack: stackLimit}
	set[COINBASE] = &operation{execute: opCoinbase, constantGas: params.GasQuickStep, minStack: 0, maxStack: stackLimit - 1}
	set[TIMESTAMP] = &operation{execute: opTimestamp, constantGas: params.GasQuickStep, minStack: 0, maxStack: stackLimit - 1}
	set[NUMBER] = &operation{execute: opNumber, constantGas: params.GasQuickStep, minStack: 0, maxStack: stackLimit - 1}
	set[DIFFICULTY] = &operation{execute: opDifficulty, constantGas: params.GasQuickStep, minStack: 0, maxStack: stackLimit - 1}
	set[GASLIMIT] = &operation{execute: opGasLimit, constantGas: params.GasQuickStep, minStack: 0, maxStack: stackLimit - 1}

	set[POP] = &operation{execute: opPop, constantGas: params.GasQuickStep, minStack: 1, maxStack: stackLimit}
	set[MLOAD] = &operation{execute: opMload, constantGas: params.GasFastestStep, dynamicGas: memExpansionGas, minStack: 1, maxStack: stackLimit, memorySize: memSizeMLoad}
	set[MSTORE] = &operation{execute: opMstore, constantGas: params.GasFastestStep, dynamicGas: memExpansionGas, minStack: 2, maxStack: stackLimit, memorySize: memSizeMStore}
	set[MSTORE8] = &operation{execute: opMstore8, constantGas: params.GasFastestStep, dynamicGas: memExpansionGas, minStack: 2, maxStack: stackLimit, memorySize: memSizeMStore8}
	set[SLOAD] = &operation{execute: opSload, constantGas: params.SloadGasFrontier, minStack: 1, maxStack: stackLimit}
	set[SSTORE] = &operation{execute: opSstore, constantGas: 0, dynamicGas: gasSStoreFrontier, minStack: 2, maxStack: stackLimit, writes: true}
	set[JUMP] = &operation{execute: opJump, constantGas: params.GasMidStep, minStack: 1, maxStack: stackLimit, jumps: true}
	set[JUMPI] = &operation{execute: opJumpi, constantGas: params.GasSlowStep, minStack: 2, maxStack: stackLimit, jumps: true}
	set[PC] = &operation{execute: opPc, constantGas: params.GasQuickStep, minStack: 0, maxStack: stackLimit - 1}
	set[MSIZE] = &operation{execute: opMsize, constantGas: params.GasQuickStep, minStack: 0, maxStack: stackLimit - 1}
	set[GAS] = &operation{execute: opGas, constantGas: params.GasQuickStep, minStack: 0, maxStack: stackLimit - 1}
	set[JUMPDEST] = &operation{execute: opJumpdest, constantGas: params.JumpdestGas, minStack: 0, maxStack: stackLimit}

	for i := 0; i < 32; i++ {
		set[PUSH1+OpCode(i)] = &operation{execute: opPush, constantGas: params.GasFastestStep, minStack: 0, maxStack: stackLimit - 1}
	}
	for i := 0; i < 16; i++ {
		n := i + 1
		set[DUP1+OpCode(i)] = &operation{execute: makeDup(n), constantGas: params.GasFastestStep, minStack: n, maxStack: stackLimit - 1}
		set[SWAP1+OpCode(i)] = &operation{execute: makeSwap(n), constantGas: params.GasFastestStep, minStack: n + 1, maxStack: stackLimit}
	}
	for i := 0; i < 5; i++ {
		n := i
		set[LOG0+OpCode(i)] = &operation{execute: makeLog(n), constantGas: params.LogGas, dynamicGas: gasLog(n), minStack: 2 + n, maxStack: stackLimit, memorySize: memSizeLog, writes: true}
	}

	set[CREATE] = &operation{execute: opCreate, constantGas: params.CreateGas, dynamicGas: gasCreate, minStack: 3, maxStack: stackLimit - 1, memorySize: memSizeCreate, writes: true, reverts: true, returns: true}
	set[CALL] = &operation{execute: opCall, constantGas: params.CallGasFrontier, dynamicGas: gasCallFrontier, minStack: 7, maxStack: stackLimit - 1, memorySize: memSizeCall, reverts: true, returns: true}
	set[CALLCODE] = &operation{execute: opCallCode, constantGas: params.CallGasFrontier, dynamicGas: gasCallCodeFrontier, minStack: 7, maxStack: stackLimit - 1, memorySize: memSizeCall, reverts: true, returns: true}
	set[RETURN] = &operation{execute: opReturn, constantGas: 0, dynamicGas: memExpansionGas, minStack: 2, maxStack: stackLimit, memorySize: memSizeReturn, halts: true, returns: true}
	set[INVALID] = &operation{execute: opInvalid, constantGas: 0, minStack: 0, maxStack: stackLimit, halts: true}
	set[SELFDESTRUCT] = &operation{execute: opSelfdestruct, constantGas: params.SelfdestructGasFrontier, minStack: 1, maxStack: stackLimit, halts: true, writes: true}

	fillUndefined(set)
	return tbl
}

func newHomesteadInstructionSet() JumpTable {
	tbl := newFrontierInstructionSet()
	set := &tbl
	set[DELEGATECALL] = &operation{execute: opDelegateCall, constantGas: params.CallGasFrontier, dynamicGas: gasDelegateCallFrontier, minStack: 6, maxStack: stackLimit - 1, memorySize: memSizeCallNoValue, reverts: true, returns: true}
	return tbl
}

func newTangerineWhistleInstructionSet() JumpTable {
	tbl := newHomesteadInstructionSet()
	set := &tbl
	set[BALANCE].constantGas = params.BalanceGasEIP150
	set[EXTCODESIZE].constantGas = params.ExtcodeSizeGasEIP150
	set[SLOAD].constantGas = params.SloadGasEIP150
	set[EXTCODECOPY].constantGas = params.ExtcodeSizeGasEIP150
	set[CALL].constantGas = params.CallGasEIP150
	set[CALLCODE].constantGas = params.CallGasEIP150
	set[DELEGATECALL].constantGas = params.CallGasEIP150
	set[SELFDESTRUCT].constantGas = params.SelfdestructGasEIP150
	return tbl
}

func newSpuriousDragonInstructionSet() JumpTable {
	tbl := newTangerineWhistleInstructionSet()
	return tbl
}

func newByzantiumInstructionSet() JumpTable {
	tbl := newSpuriousDragonInstructionSet()
	set := &tbl
	set[REVERT] = &operation{execute: opRevert, constantGas: 0, dynamicGas: memExpansionGas, minStack: 2, maxStack: stackLimit, memorySize: memSizeReturn, halts: true, reverts: true, returns: true}
	set[STATICCALL] = &operation{execute: opStaticCall, constantGas: params.CallGasEIP150, dynamicGas: gasStaticCall, minStack: 6, maxStack: stackLimit - 1, memorySize: memSizeCallNoValue, reverts: true, returns: true}
	set[RETURNDATASIZE] = &operation{execute: opReturnDataSize, constantGas: params.GasQuickStep, minStack: 0, maxStack: stackLimit - 1}
	set[RETURNDATACOPY] = &operation{execute: opReturnDataCopy, constantGas: params.GasFastestStep, dynamicGas: memCopierGas(), minStack: 3, maxStack: stackLimit, memorySize: memSizeReturnDataCopy}
	return tbl
}

func newConstantinopleInstructionSet() JumpTable {
	tbl := newByzantiumInstructionSet()
	set := &tbl
	set[SHL] = &operation{execute: opShl, constantGas: params.GasFastestStep, minStack: 2, maxStack: stackLimit}
	set[SHR] = &operation{execute: opShr, constantGas: params.GasFastestStep, minStack: 2, maxStack: stackLimit}
	set[SAR] = &operation{execute: opSar, constantGas: params.GasFastestStep, minStack: 2, maxStack: stackLimit}
	set[EXTCODEHASH] = &operation{execute: opExtCodeHash, constantGas: params.ExtcodeHashGasConstantinople, minStack: 1, maxStack: stackLimit}
	set[CREATE2] = &operation{execute: opCreate2, constantGas: params.Create2Gas, dynamicGas: gasCreate2, minStack: 4, maxStack: stackLimit - 1, memorySize: memSizeCreate2, writes: true, reverts: true, returns: true}
	return tbl
}

func newPetersburgInstructionSet() JumpTable {
	return newConstantinopleInstructionSet()
}

func newIstanbulInstructionSet() JumpTable {
	tbl := newPetersburgInstructionSet()
	set := &tbl
	set[CHAINID] = &operation{execute: opChainID, constantGas: params.GasQuickStep, minStack: 0, maxStack: stackLimit - 1}
	set[SELFBALANCE] = &operation{execute: opSelfBalance, constantGas: params.GasFastStep, minStack: 0, maxStack: stackLimit - 1}
	set[BALANCE].constantGas = params.BalanceGasEIP1884
	set[EXTCODEHASH].constantGas = params.ExtcodeHashGasEIP1884
	set[SLOAD].constantGas = params.SloadGasEIP1884
	set[SSTORE].dynamicGas = gasSStore
	return tbl
}

func newMuirGlacierInstructionSet() JumpTable { return newIstanbulInstructionSet() }

func newBerlinInstructionSet() JumpTable {
	tbl := newMuirGlacierInstructionSet()
	set := &tbl
	set[BALANCE] = &operation{execute: opBalance, dynamicGas: gasBalance, minStack: 1, maxStack: stackLimit}
	set[EXTCODESIZE] = &operation{execute: opExtCodeSize, dynamicGas: gasExtCodeSize, minStack: 1, maxStack: stackLimit}
	set[EXTCODECOPY] = &operation{execute: opExtCodeCopy, dynamicGas: gasExtCodeCopy, minStack: 4, maxStack: stackLimit, memorySize: memSizeExtCodeCopy}
	set[EXTCODEHASH] = &operation{execute: opExtCodeHash, dynamicGas: gasExtCodeHash, minStack: 1, maxStack: stackLimit}
	set[SLOAD] = &operation{execute: opSload, dynamicGas: gasSLoad, minStack: 1, maxStack: stackLimit}
	set[SSTORE] = &operation{execute: opSstore, dynamicGas: gasSStore, minStack: 2, maxStack: stackLimit, writes: true}
	set[CALL] = &operation{execute: opCall, dynamicGas: gasCallEIP2929, minStack: 7, maxStack: stackLimit - 1, memorySize: memSizeCall, reverts: true, returns: true}
	set[CALLCODE] = &operation{execute: opCallCode, dynamicGas: gasCallCodeEIP2929, minStack: 7, maxStack: stackLimit - 1, memorySize: memSizeCall, reverts: true, returns: true}
	set[DELEGATECALL] = &operation{execute: opDelegateCall, dynamicGas: gasDelegateCallEIP2929, minStack: 6, maxStack: stackLimit - 1, memorySize: memSizeCallNoValue, reverts: true, returns: true}
	set[STATICCALL] = &operation{execute: opStaticCall, dynamicGas: gasStaticCallEIP2929, minStack: 6, maxStack: stackLimit - 1, memorySize: memSizeCallNoValue, reverts: true, returns: true}
	set[SELFDESTRUCT] = &operation{execute: opSelfdestruct, dynamicGas: gasSelfdestruct, minStack: 1, maxStack: stackLimit, halts: true, writes: true}
	return tbl
}

func newLondonInstructionSet() JumpTable {
	tbl := newBerlinInstructionSet()
	set := &tbl
	set[BASEFEE] = &operation{execute: opBaseFee, constantGas: params.GasQuickStep, minStack: 0, maxStack: stackLimit - 1}
	return tbl
}

func newArrowGlacierInstructionSet() JumpTable { return newLondonInstructionSet() }
func newGrayGlacierInstructionSet() JumpTable  { return newArrowGlacierInstructionSet() }

func newMergeInstructionSet() JumpTable {
	return newGrayGlacierInstructionSet()
}

func newShanghaiInstructionSet() JumpTable {
	tbl := newMergeInstructionSet()
	set := &tbl
	set[PUSH0] = &operation{execute: opPush0, constantGas: params.GasQuickStep, minStack: 0, maxStack: stackLimit - 1}
	return tbl
}

func newCancunInstructionSet() JumpTable {
	tbl := newShanghaiInstructionSet()
	set := &tbl
	set[TLOAD] = &operation{execute: opTload, dynamicGas: gasTLoad, minStack: 1, maxStack: stackLimit}
	set[TSTORE] = &operation{execute: opTstore, dynamicGas: gasTStore, minStack: 2, maxStack: stackLimit, writes: true}
	set[MCOPY] = &operation{execute: opMcopy, constantGas: params.GasFastestStep, dynamicGas: gasMCopyFull, minStack: 3, maxStack: stackLimit, memorySize: memSizeMCopy}
	set[BLOBHASH] = &operation{execute: opBlobHash, constantGas: params.GasFastestStep, minStack: 1, maxStack: stackLimit}
	set[BLOBBASEFEE] = &operation{execute: opBlobBaseFee, constantGas: params.GasQuickStep, minStack: 0, maxStack: stackLimit - 1}
	return tbl
}

// newInstructionSet selects the instruction set matching the given rules,
// following the same waterfall as params.ChainConfig.Rules' fork ordering.
func newInstructionSet(r params.Rules) JumpTable {
	switch {
	case r.IsCancun:
		return newCancunInstructionSet()
	case r.IsShanghai:
		return newShanghaiInstructionSet()
	case r.IsMerge:
		return newMergeInstructionSet()
	case r.IsLondon:
		return newLondonInstructionSet()
	case r.IsBerlin:
		return newBerlinInstructionSet()
	case r.IsIstanbul:
		return newIstanbulInstructionSet()
	case r.IsConstantinople:
		return newConstantinopleInstructionSet()
	case r.IsByzantium:
		return newByzantiumInstructionSet()
	case r.IsTangerineWhistle:
		return newTangerineWhistleInstructionSet()
	case r.IsHomestead:
		return newHomesteadInstructionSet()
	default:
		return newFrontierInstructionSet()
	}
}

func fillUndefined(set *JumpTable) {
	for i := range set {
		if set[i] == nil {
			set[i] = &operation{execute: opUndefined, maxStack: stackLimit}
		}
	}
}
