// Copyright 2015 The go-ethereum Authors
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

// Package params holds the numeric gas schedule and the hardfork
// configuration that gates opcode and precompile availability.
package params

const (
	GasQuickStep   uint64 = 2
	GasFastestStep uint64 = 3
	GasFastStep    uint64 = 5
	GasMidStep     uint64 = 8
	GasSlowStep    uint64 = 10
	GasExtStep     uint64 = 20

	MaxCodeSize     = 24576           // Maximum bytecode to permit for a contract, EIP-170
	MaxInitCodeSize = 2 * MaxCodeSize // Maximum initcode to permit in a creation transaction and create instructions, EIP-3860

	ExpByteGas            uint64 = 10    // Times ceil(log256(exponent)) for the EXP instruction, pre-EIP-160.
	ExpByteGasEIP160      uint64 = 50    // Times ceil(log256(exponent)) for the EXP instruction, post-EIP-160.
	SloadGasFrontier      uint64 = 50
	SloadGasEIP150        uint64 = 200
	SloadGasEIP1884       uint64 = 800
	SloadGasEIP2200       uint64 = 800
	CallValueTransferGas  uint64 = 9000  // Paid for CALL when the value transfer is non-zero.
	CallNewAccountGas     uint64 = 25000 // Paid for CALL when the destination account didn't exist prior.
	TxGas                 uint64 = 21000 // Per transaction not creating a contract.
	TxGasContractCreation uint64 = 53000 // Per transaction that creates a contract.
	TxDataZeroGas         uint64 = 4     // Per zero byte of data attached to a transaction.
	TxDataNonZeroGasFrontier uint64 = 68
	TxDataNonZeroGasEIP2028  uint64 = 16
	QuadCoeffDiv          uint64 = 512 // Divisor for the quadratic particle of the memory cost equation.
	LogDataGas            uint64 = 8   // Per byte in a LOG* operation's data.
	LogGas                uint64 = 375 // Per LOG* operation.
	LogTopicGas           uint64 = 375 // Multiplied by the number of topics in a LOG* operation.
	CallStipend           uint64 = 2300

	Keccak256Gas     uint64 = 30
	Keccak256WordGas uint64 = 6
	InitCodeWordGas  uint64 = 2

	SstoreSetGasEIP2200   uint64 = 20000
	SstoreResetGasEIP2200 uint64 = 5000
	SstoreClearsScheduleRefundEIP2200 uint64 = 15000
	SstoreSentryGasEIP2200 uint64 = 2300

	ColdAccountAccessCostEIP2929 uint64 = 2600
	ColdSloadCostEIP2929         uint64 = 2100
	WarmStorageReadCostEIP2929   uint64 = 100

	TxAccessListAddressGas    uint64 = 2400
	TxAccessListStorageKeyGas uint64 = 1900

	// SstoreClearsScheduleRefundEIP3529 = SstoreResetGasEIP2200 - ColdSloadCostEIP2929 + TxAccessListStorageKeyGas
	// i.e. 5000 - 2100 + 1900 = 4800.
	SstoreClearsScheduleRefundEIP3529 uint64 = SstoreResetGasEIP2200 - ColdSloadCostEIP2929 + TxAccessListStorageKeyGas

	MaxRefundQuotientEIP3529 uint64 = 5 // Refund is capped to gasUsed / 5 post EIP-3529.

	JumpdestGas     uint64 = 1
	CreateDataGas   uint64 = 200
	CallCreateDepth uint64 = 1024
	CopyGas         uint64 = 3
	StackLimit      uint64 = 1024
	MemoryGas       uint64 = 3

	CreateGas  uint64 = 32000
	Create2Gas uint64 = 32000

	CallGasFrontier uint64 = 40
	CallGasEIP150   uint64 = 700

	BalanceGasFrontier uint64 = 20
	BalanceGasEIP150   uint64 = 400
	BalanceGasEIP1884  uint64 = 700

	ExtcodeSizeGasFrontier uint64 = 20
	ExtcodeSizeGasEIP150   uint64 = 700

	ExtcodeHashGasConstantinople uint64 = 400
	ExtcodeHashGasEIP1884        uint64 = 700

	SelfdestructGasFrontier uint64 = 0
	SelfdestructGasEIP150   uint64 = 5000
	SelfdestructRefundGas   uint64 = 24000

	WarmStorageReadCostTLoadTStore uint64 = 100 // EIP-1153 TLOAD/TSTORE

	// Precompile gas.
	EcrecoverGas            uint64 = 3000
	Sha256BaseGas           uint64 = 60
	Sha256PerWordGas        uint64 = 12
	Ripemd160BaseGas        uint64 = 600
	Ripemd160PerWordGas     uint64 = 120
	IdentityBaseGas         uint64 = 15
	IdentityPerWordGas      uint64 = 3
	Bn256AddGasByzantium    uint64 = 500
	Bn256AddGasIstanbul     uint64 = 150
	Bn256ScalarMulGasByzantium uint64 = 40000
	Bn256ScalarMulGasIstanbul  uint64 = 6000
	Bn256PairingBaseGasByzantium uint64 = 100000
	Bn256PairingBaseGasIstanbul  uint64 = 45000
	Bn256PairingPerPointGasByzantium uint64 = 80000
	Bn256PairingPerPointGasIstanbul  uint64 = 34000
	Blake2FAluminumGasPerRound uint64 = 1
	PointEvaluationGas         uint64 = 50000 // EIP-4844 KZG point evaluation.
)
