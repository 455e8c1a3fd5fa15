// Copyright 2023 The go-ethereum Authors
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

// Hooks lets an embedder observe the interpreter without widening any
// opcode handler's signature, mirroring go-ethereum's core/tracing.Hooks.
// Every field is optional; the interpreter checks each for nil before
// calling it.
type Hooks struct {
	// OnOpcode fires after every successfully dispatched instruction.
	OnOpcode func(pc uint64, op OpCode, gas, cost uint64, depth int, err error)
	// OnFault fires instead of OnOpcode when gas metering rejects an
	// instruction before it runs (stack/gas/write-protection errors).
	OnFault func(pc uint64, op OpCode, gas, cost uint64, depth int, err error)
	// OnGasChange fires once per instruction whenever its gas charge left
	// the frame's remaining gas different from before the charge.
	OnGasChange func(old, new uint64)
}

// Config are the interpreter's embedder-facing knobs, mirroring
// go-ethereum's core/vm.Config. The zero value runs untraced.
type Config struct {
	Tracer *Hooks
}
