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

import "github.com/holiman/uint256"

func opBlockHash(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	num := f.Stack.pop1()
	if !num.IsUint64() || env.block.GetHash == nil {
		num.Clear()
		f.Stack.push(num)
		return nil, nil
	}
	n := num.Uint64()
	// Only the 256 most recent blocks are queryable, matching go-ethereum's
	// opBlockhash bound check.
	var lowerBound uint64
	if env.block.BlockNumber > 256 {
		lowerBound = env.block.BlockNumber - 256
	}
	if n >= env.block.BlockNumber || n < lowerBound {
		num.Clear()
		f.Stack.push(num)
		return nil, nil
	}
	hash := env.block.GetHash(n)
	f.Stack.push(hash.Uint256())
	return nil, nil
}

func opCoinbase(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	f.Stack.push(env.block.Coinbase.Uint256())
	return nil, nil
}

func opTimestamp(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	f.Stack.push(new(uint256.Int).SetUint64(env.block.Time))
	return nil, nil
}

func opNumber(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	f.Stack.push(new(uint256.Int).SetUint64(env.block.BlockNumber))
	return nil, nil
}

// opDifficulty doubles as PREVRANDAO post-Merge: the same opcode byte,
// with Random taking over from Difficulty once env.rules.IsMerge.
func opDifficulty(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	if env.rules.IsMerge && env.block.Random != nil {
		f.Stack.push(env.block.Random)
		return nil, nil
	}
	d := env.block.Difficulty
	if d == nil {
		d = new(uint256.Int)
	}
	f.Stack.push(d)
	return nil, nil
}

func opGasLimit(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	f.Stack.push(new(uint256.Int).SetUint64(env.block.GasLimit))
	return nil, nil
}
