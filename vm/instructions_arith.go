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
	"github.com/evmts/Guillotine/primitives"
	"github.com/holiman/uint256"
)

func opStop(pc *uint64, env *callEnv, f *Frame) ([]byte, error) { return nil, nil }

func opAdd(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop2()
	y.Add(x, y)
	f.Stack.push(y)
	return nil, nil
}

func opMul(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop2()
	y.Mul(x, y)
	f.Stack.push(y)
	return nil, nil
}

// opSub and the other non-commutative binary ops below call pop2 with x
// bound to μs[1] and y to μs[0] (top); Op(y, x) yields μs[0] Op μs[1], the
// yellow-paper operand order.
func opSub(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop2()
	y.Sub(y, x)
	f.Stack.push(y)
	return nil, nil
}

func opDiv(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop2()
	y.Div(y, x)
	f.Stack.push(y)
	return nil, nil
}

func opSdiv(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop2()
	y.SDiv(y, x)
	f.Stack.push(y)
	return nil, nil
}

func opMod(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop2()
	y.Mod(y, x)
	f.Stack.push(y)
	return nil, nil
}

func opSmod(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop2()
	y.SMod(y, x)
	f.Stack.push(y)
	return nil, nil
}

func opAddmod(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	x, y, z := f.Stack.pop3()
	z.AddMod(z, y, x)
	f.Stack.push(z)
	return nil, nil
}

func opMulmod(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	x, y, z := f.Stack.pop3()
	z.MulMod(z, y, x)
	f.Stack.push(z)
	return nil, nil
}

func opExp(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop2()
	y.Exp(y, x)
	f.Stack.push(y)
	return nil, nil
}

func opSignExtend(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	value, byteNum := f.Stack.pop2()
	byteNum.ExtendSign(value, byteNum)
	f.Stack.push(byteNum)
	return nil, nil
}

func opLt(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop2()
	if y.Lt(x) {
		y.SetOne()
	} else {
		y.Clear()
	}
	f.Stack.push(y)
	return nil, nil
}

func opGt(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop2()
	if y.Gt(x) {
		y.SetOne()
	} else {
		y.Clear()
	}
	f.Stack.push(y)
	return nil, nil
}

func opSlt(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop2()
	if y.Slt(x) {
		y.SetOne()
	} else {
		y.Clear()
	}
	f.Stack.push(y)
	return nil, nil
}

func opSgt(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop2()
	if y.Sgt(x) {
		y.SetOne()
	} else {
		y.Clear()
	}
	f.Stack.push(y)
	return nil, nil
}

func opEq(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop2()
	if x.Eq(y) {
		y.SetOne()
	} else {
		y.Clear()
	}
	f.Stack.push(y)
	return nil, nil
}

func opIszero(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	x := f.Stack.pop1()
	if x.IsZero() {
		x.SetOne()
	} else {
		x.Clear()
	}
	f.Stack.push(x)
	return nil, nil
}

func opAnd(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop2()
	y.And(x, y)
	f.Stack.push(y)
	return nil, nil
}

func opOr(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop2()
	y.Or(x, y)
	f.Stack.push(y)
	return nil, nil
}

func opXor(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	x, y := f.Stack.pop2()
	y.Xor(x, y)
	f.Stack.push(y)
	return nil, nil
}

func opNot(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	x := f.Stack.pop1()
	x.Not(x)
	f.Stack.push(x)
	return nil, nil
}

func opByte(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	val, th := f.Stack.pop2()
	b := primitives.ExtractByte(val, th.Uint64())
	if !th.LtUint64(32) {
		b = 0
	}
	th.SetUint64(uint64(b))
	f.Stack.push(th)
	return nil, nil
}

func opShl(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	value, shift := f.Stack.pop2()
	if shift.LtUint64(256) {
		value.Lsh(value, uint(shift.Uint64()))
	} else {
		value.Clear()
	}
	f.Stack.push(value)
	return nil, nil
}

func opShr(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	value, shift := f.Stack.pop2()
	if shift.LtUint64(256) {
		value.Rsh(value, uint(shift.Uint64()))
	} else {
		value.Clear()
	}
	f.Stack.push(value)
	return nil, nil
}

func opSar(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	value, shift := f.Stack.pop2()
	if shift.GtUint64(256) {
		if value.Sign() >= 0 {
			value.Clear()
		} else {
			value.SetAllOne()
		}
		f.Stack.push(value)
		return nil, nil
	}
	value.SRsh(value, uint(shift.Uint64()))
	f.Stack.push(value)
	return nil, nil
}

func opKeccak256(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	size, offset := f.Stack.pop2()
	data := f.Memory.GetPtr(offset.Uint64(), size.Uint64())
	hash := crypto.Keccak256(data)
	f.Stack.push(new(uint256.Int).SetBytes(hash))
	return nil, nil
}
