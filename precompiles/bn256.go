// Copyright 2018 The go-ethereum Authors
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

package precompiles

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/evmts/Guillotine/params"
)

var errInvalidCurvePoint = errors.New("invalid bn254 curve point")

func readG1(input []byte, offset int) (bn254.G1Affine, error) {
	var p bn254.G1Affine
	var buf [64]byte
	copyPadded(buf[:], input, offset)
	p.X.SetBytes(buf[:32])
	p.Y.SetBytes(buf[32:64])
	if p.X.IsZero() && p.Y.IsZero() {
		return p, nil
	}
	if !p.IsOnCurve() {
		return p, errInvalidCurvePoint
	}
	return p, nil
}

// readG2 decodes a 128-byte G2 point using the EIP-197 field order: each Fp2
// coordinate is encoded imaginary-part-first.
func readG2(input []byte, offset int) (bn254.G2Affine, error) {
	var p bn254.G2Affine
	var buf [128]byte
	copyPadded(buf[:], input, offset)
	p.X.A1.SetBytes(buf[0:32])
	p.X.A0.SetBytes(buf[32:64])
	p.Y.A1.SetBytes(buf[64:96])
	p.Y.A0.SetBytes(buf[96:128])
	if p.X.IsZero() && p.Y.IsZero() {
		return p, nil
	}
	if !p.IsOnCurve() {
		return p, errInvalidCurvePoint
	}
	return p, nil
}

func copyPadded(dst []byte, src []byte, offset int) {
	if offset >= len(src) {
		return
	}
	copy(dst, src[offset:])
}

func writeG1(p *bn254.G1Affine) []byte {
	out := make([]byte, 64)
	xb := p.X.Bytes()
	yb := p.Y.Bytes()
	copy(out[0:32], xb[:])
	copy(out[32:64], yb[:])
	return out
}

// bn256Add is precompile 0x06 (ECADD): G1 point addition.
type bn256Add struct{}

func (c *bn256Add) RequiredGas(input []byte) uint64 { return params.Bn256AddGasIstanbul }

func (c *bn256Add) Run(input []byte) ([]byte, error) {
	p1, err := readG1(input, 0)
	if err != nil {
		return nil, err
	}
	p2, err := readG1(input, 64)
	if err != nil {
		return nil, err
	}
	var res bn254.G1Jac
	var p1Jac, p2Jac bn254.G1Jac
	p1Jac.FromAffine(&p1)
	p2Jac.FromAffine(&p2)
	res.Set(&p1Jac).AddAssign(&p2Jac)

	var out bn254.G1Affine
	out.FromJacobian(&res)
	return writeG1(&out), nil
}

// bn256ScalarMul is precompile 0x07 (ECMUL): G1 scalar multiplication.
type bn256ScalarMul struct{}

func (c *bn256ScalarMul) RequiredGas(input []byte) uint64 { return params.Bn256ScalarMulGasIstanbul }

func (c *bn256ScalarMul) Run(input []byte) ([]byte, error) {
	p1, err := readG1(input, 0)
	if err != nil {
		return nil, err
	}
	var scalarBuf [32]byte
	copyPadded(scalarBuf[:], input, 64)
	scalar := new(big.Int).SetBytes(scalarBuf[:])

	var jac bn254.G1Jac
	jac.FromAffine(&p1)
	jac.ScalarMultiplication(&jac, scalar)

	var out bn254.G1Affine
	out.FromJacobian(&jac)
	return writeG1(&out), nil
}

// bn256Pairing is precompile 0x08 (ECPAIRING): a variable-length sequence
// of (G1, G2) pairs, accepted iff their product pairing is the identity.
type bn256Pairing struct{}

const pairElemLen = 192 // 64-byte G1 + 128-byte G2

func (c *bn256Pairing) RequiredGas(input []byte) uint64 {
	points := uint64(len(input) / pairElemLen)
	return params.Bn256PairingBaseGasIstanbul + points*params.Bn256PairingPerPointGasIstanbul
}

func (c *bn256Pairing) Run(input []byte) ([]byte, error) {
	if len(input)%pairElemLen != 0 {
		return nil, errors.New("invalid pairing input length")
	}
	n := len(input) / pairElemLen
	g1s := make([]bn254.G1Affine, 0, n)
	g2s := make([]bn254.G2Affine, 0, n)
	for i := 0; i < n; i++ {
		base := i * pairElemLen
		p1, err := readG1(input, base)
		if err != nil {
			return nil, err
		}
		p2, err := readG2(input, base+64)
		if err != nil {
			return nil, err
		}
		g1s = append(g1s, p1)
		g2s = append(g2s, p2)
	}

	out := make([]byte, 32)
	if n == 0 {
		out[31] = 1
		return out, nil
	}

	ok, err := bn254.PairingCheck(g1s, g2s)
	if err != nil {
		return nil, err
	}
	if ok {
		out[31] = 1
	}
	return out, nil
}
