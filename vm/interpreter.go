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

// run drives one Frame's bytecode to completion: fetch, validate stack
// bounds, charge constant then dynamic gas, grow memory, execute, advance
// pc (unless the handler already did, for JUMP/JUMPI). It returns the
// frame's output bytes and any error that aborted it.
func (env *callEnv) run(f *Frame) ([]byte, error) {
	var pc uint64
	hooks := env.config.Tracer

	for {
		op := f.CodeAt(pc)
		opDef := env.table[op]
		if opDef == nil || opDef.execute == nil {
			return nil, &InvalidOpCodeError{Opcode: op}
		}

		if err := validateStack(f.Stack.Len(), opDef); err != nil {
			traceFault(hooks, pc, op, f.Gas, opDef.constantGas, f.Depth, err)
			return nil, err
		}
		if opDef.writes && f.IsStatic {
			traceFault(hooks, pc, op, f.Gas, opDef.constantGas, f.Depth, ErrWriteProtection)
			return nil, ErrWriteProtection
		}

		gasBefore := f.Gas
		if err := f.UseGas(opDef.constantGas); err != nil {
			traceFault(hooks, pc, op, f.Gas, opDef.constantGas, f.Depth, err)
			return nil, err
		}

		var memSize uint64
		if opDef.memorySize != nil {
			size, overflow := opDef.memorySize(f.Stack)
			if overflow {
				return nil, ErrGasUintOverflow
			}
			rounded, err := memorySizeCeil(size, false)
			if err != nil {
				return nil, err
			}
			memSize = rounded
		}

		if opDef.dynamicGas != nil {
			cost, err := opDef.dynamicGas(env, f, memSize)
			if err != nil {
				traceFault(hooks, pc, op, f.Gas, cost, f.Depth, err)
				return nil, err
			}
			if err := f.UseGas(cost); err != nil {
				traceFault(hooks, pc, op, f.Gas, cost, f.Depth, err)
				return nil, err
			}
		}

		if hooks != nil && hooks.OnGasChange != nil && f.Gas != gasBefore {
			hooks.OnGasChange(gasBefore, f.Gas)
		}

		if memSize > uint64(f.Memory.Len()) {
			f.Memory.Resize(memSize)
		}

		prevPc := pc
		out, err := opDef.execute(&pc, env, f)
		if hooks != nil && hooks.OnOpcode != nil {
			hooks.OnOpcode(prevPc, op, gasBefore, gasBefore-f.Gas, f.Depth, err)
		}
		if err != nil {
			if opDef.halts {
				return out, err
			}
			return nil, err
		}
		if opDef.halts {
			return out, nil
		}
		if !opDef.jumps && pc == prevPc {
			pc++
		}
	}
}

// traceFault reports an instruction that was rejected before it ran, so a
// tracer sees every aborted step even though OnOpcode never fires for it.
func traceFault(hooks *Hooks, pc uint64, op OpCode, gas, cost uint64, depth int, err error) {
	if hooks != nil && hooks.OnFault != nil {
		hooks.OnFault(pc, op, gas, cost, depth, err)
	}
}

// validateStack enforces an operation's minStack/maxStack preconditions so
// every handler below this point can use the unchecked pop/push/dup/swap
// fast path without re-deriving the bound itself.
func validateStack(depth int, op *operation) error {
	if depth < op.minStack {
		return ErrStackUnderflow
	}
	if depth > op.maxStack {
		return ErrStackOverflow
	}
	return nil
}
