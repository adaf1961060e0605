// Copyright 2019 The sammyne developers. All rights reserved.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package curve

import (
	"math/big"
	"sync"
)

// Params bundles a curve with a base point G and the prime order N of
// the subgroup G generates, i.e. the smallest positive N with
// N*G = infinity.
type Params struct {
	Curve *Curve
	G     Point
	N     *big.Int
}

var initonce sync.Once
var secp256k1 Params
var demo17 Params

func initAll() {
	initS256()
	initDemo17()
}

// fromHex converts the passed hex string into a big integer pointer and
// will panic is there is an error. This is only provided for the
// hard-coded constants so errors in the source code can be detected. It
// will only (and must only) be called for initialization purposes.
func fromHex(s string) *big.Int {
	r, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex in source file: " + s)
	}
	return r
}

func initS256() {
	// Curve parameters taken from [SECG] section 2.4.1.
	p := fromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")
	a := new(big.Int)
	b := fromHex("0000000000000000000000000000000000000000000000000000000000000007")

	c, err := New(a, b, p)
	if err != nil {
		panic("invalid secp256k1 parameters: " + err.Error())
	}

	secp256k1.Curve = c
	secp256k1.G = NewPoint(
		fromHex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"),
		fromHex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"),
	)
	secp256k1.N = fromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")
}

func initDemo17() {
	// The classic blackboard curve y² = x³ + 2x + 2 over F₁₇. Its group
	// has prime order 19, so every finite point generates it.
	c, err := New(big.NewInt(2), big.NewInt(2), big.NewInt(17))
	if err != nil {
		panic("invalid demo parameters: " + err.Error())
	}

	demo17.Curve = c
	demo17.G = NewPoint(big.NewInt(5), big.NewInt(1))
	demo17.N = big.NewInt(19)
}

// S256 returns the parameters of the secp256k1 curve.
func S256() *Params {
	initonce.Do(initAll)
	return &secp256k1
}

// Demo17 returns the parameters of a 5-bit teaching curve. Anything
// signed on it is breakable by inspection; it exists for tests, docs
// and stepping through the algebra by hand.
func Demo17() *Params {
	initonce.Do(initAll)
	return &demo17
}
