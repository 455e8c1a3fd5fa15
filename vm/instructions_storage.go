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

import "github.com/evmts/Guillotine/primitives"

func opSload(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	loc := f.Stack.pop1()
	key := primitives.Uint256ToHash(loc)
	val := env.db.GetStorage(f.Address, key)
	loc.Set(&val)
	f.Stack.push(loc)
	return nil, nil
}

func opSstore(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	loc, val := f.Stack.pop1(), f.Stack.pop1()
	key := primitives.Uint256ToHash(loc)
	env.db.SetStorage(f.Address, key, *val)
	return nil, nil
}

func opTload(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	loc := f.Stack.pop1()
	key := primitives.Uint256ToHash(loc)
	val := env.db.GetTransient(f.Address, key)
	loc.Set(&val)
	f.Stack.push(loc)
	return nil, nil
}

func opTstore(pc *uint64, env *callEnv, f *Frame) ([]byte, error) {
	loc, val := f.Stack.pop1(), f.Stack.pop1()
	key := primitives.Uint256ToHash(loc)
	env.db.SetTransient(f.Address, key, *val)
	return nil, nil
}
