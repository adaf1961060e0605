// Copyright 2019 The sammyne developers. All rights reserved.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package field implements arithmetic over a prime field F_p on
// arbitrary-precision integers.
//
// Every operation takes the modulus explicitly so that the same routines
// serve both the coordinate field of a curve and the scalar field of its
// group order. Operands are expected to be reduced into [0, p) already;
// results are always reduced into [0, p).
package field

import (
	"math/big"

	"github.com/pkg/errors"
)

var two = big.NewInt(2)

// ErrOperandRange signals an operand outside [0, p).
var ErrOperandRange = errors.New("operand not reduced into [0, p)")

// ErrNoInverse signals an attempt to invert an element with no
// multiplicative inverse, i.e. zero.
var ErrNoInverse = errors.New("no multiplicative inverse exists")

// Add returns (c + d) mod p.
func Add(c, d, p *big.Int) *big.Int {
	out := new(big.Int).Add(c, d)
	return out.Mod(out, p)
}

// Mul returns (c * d) mod p.
func Mul(c, d, p *big.Int) *big.Int {
	out := new(big.Int).Mul(c, d)
	return out.Mod(out, p)
}

// Exp returns c^e mod p.
func Exp(c, e, p *big.Int) *big.Int {
	return new(big.Int).Exp(c, e, p)
}

// Neg returns the additive inverse of c, i.e. p-c for non-zero c and 0
// otherwise. c outside [0, p) is an error.
func Neg(c, p *big.Int) (*big.Int, error) {
	if c.Sign() < 0 || c.Cmp(p) >= 0 {
		return nil, errors.Wrapf(ErrOperandRange, "c=%v, p=%v", c, p)
	}

	if c.Sign() == 0 {
		return new(big.Int), nil
	}

	return new(big.Int).Sub(p, c), nil
}

// Sub returns (c - d) mod p, computed as c plus the additive inverse
// of d.
func Sub(c, d, p *big.Int) (*big.Int, error) {
	negD, err := Neg(d, p)
	if err != nil {
		return nil, err
	}

	return Add(c, negD, p), nil
}

// Inv returns the multiplicative inverse of c modulo the prime p, as
// c^(p-2) mod p per Fermat's little theorem. Zero has no inverse.
func Inv(c, p *big.Int) (*big.Int, error) {
	if c.Sign() == 0 {
		return nil, ErrNoInverse
	}

	return Exp(c, new(big.Int).Sub(p, two), p), nil
}

// Div returns c/d mod p, i.e. the product of c and the multiplicative
// inverse of d.
func Div(c, d, p *big.Int) (*big.Int, error) {
	invD, err := Inv(d, p)
	if err != nil {
		return nil, err
	}

	return Mul(c, invD, p), nil
}
