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

// Package vm implements the EVM opcode dispatcher, per-opcode handlers, the
// interpreter loop, and the call/create orchestration described in spec.md
// §4 and §9.
package vm

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by opcode handlers and the dispatcher, per
// spec.md §7. All of them are fatal to the current frame except where noted;
// the interpreter loop consumes all remaining gas on every one of these
// except the two explicitly non-fatal call/create outcomes.
var (
	ErrOutOfGas              = errors.New("out of gas")
	ErrStackUnderflow        = errors.New("stack underflow")
	ErrStackOverflow         = errors.New("stack overflow")
	ErrInvalidJump           = errors.New("invalid jump destination")
	ErrInvalidOpcode         = errors.New("invalid opcode")
	ErrWriteProtection       = errors.New("write protection: state-modifying op in static call")
	ErrDepthExceeded         = errors.New("max call depth exceeded")
	ErrInsufficientBalance   = errors.New("insufficient balance for transfer")
	ErrReturnDataOutOfBounds = errors.New("return data out of bounds")
	ErrGasUintOverflow       = errors.New("gas computation overflowed uint64")
	ErrMaxInitCodeSizeExceeded = errors.New("max initcode size exceeded")
	ErrMaxCodeSizeExceeded     = errors.New("max code size exceeded")
	ErrInvalidCodeEntry        = errors.New("invalid code entry point (0xEF prefix)")
	ErrExecutionReverted       = errors.New("execution reverted")
	ErrContractAddressCollision = errors.New("contract address collision")
	ErrNonceUintOverflow         = errors.New("nonce uint64 overflow")
)

// InvalidOpCodeError reports the specific undefined or fork-disallowed byte
// that triggered ErrInvalidOpcode, wrapping the sentinel for errors.Is.
type InvalidOpCodeError struct {
	Opcode OpCode
}

func (e *InvalidOpCodeError) Error() string {
	return fmt.Sprintf("invalid opcode: 0x%x", byte(e.Opcode))
}

func (e *InvalidOpCodeError) Unwrap() error { return ErrInvalidOpcode }
