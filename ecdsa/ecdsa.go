// Copyright 2019 The sammyne developers. All rights reserved.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ecdsa implements the Elliptic Curve Digital Signature
// Algorithm over arbitrary short Weierstrass curves.
//
// References:
//   [NSA]: Suite B implementer's guide to FIPS 186-3,
//     http://www.nsa.gov/ia/_files/ecdsa.pdf
//   [SECG]: SECG, SEC1
//     http://www.secg.org/sec1-v2.pdf
//
// The scheme is parameterized by curve parameters rather than a fixed
// curve, so the 5-bit teaching curve and secp256k1 run through the same
// code paths. Randomness is read from an injected io.Reader to let
// tests replay fixed nonces; production callers pass crypto/rand.Reader.
package ecdsa

import (
	"io"
	"math/big"

	"github.com/btcsuite/fastsha256"
	"github.com/pkg/errors"

	"github.com/sammyne/weierstrass/curve"
	"github.com/sammyne/weierstrass/field"
)

var one = big.NewInt(1)

// ErrInvalidParams signals ECDSA parameters violating the scheme's
// assumptions, such as a base point off the curve or of the wrong
// order.
var ErrInvalidParams = errors.New("invalid ECDSA parameters")

// ErrInvalidPrivateKey signals a private scalar outside [1, N).
var ErrInvalidPrivateKey = errors.New("private key must be in [1, N)")

// ErrInvalidHash signals a hash scalar outside [0, N).
var ErrInvalidHash = errors.New("hash must be in [0, N)")

// ECDSA carries the domain parameters of one instantiation of the
// scheme: a curve, a base point G on it, and the prime order N of the
// subgroup G generates. It is read-only after New and safe for
// concurrent signing and verification.
type ECDSA struct {
	Curve *curve.Curve
	G     curve.Point
	N     *big.Int
}

// Signature is an ECDSA signature, a pair of scalars in [1, N).
type Signature struct {
	R *big.Int
	S *big.Int
}

// New returns the scheme instantiated with the given parameters. The
// base point must be a finite curve point of order params.N; N must be
// prime for the modular inversions of signing to exist, which is
// assumed, not verified.
func New(params *curve.Params) (*ECDSA, error) {
	if params.G.IsInfinity() || !params.Curve.IsOnCurve(params.G) {
		return nil, errors.Wrap(ErrInvalidParams, "base point is not a finite curve point")
	}
	if params.N.Cmp(one) <= 0 {
		return nil, errors.Wrapf(ErrInvalidParams, "order N=%v", params.N)
	}

	nG, err := params.Curve.ScalarMult(params.G, params.N)
	if err != nil {
		return nil, errors.Wrap(err, "order check")
	}
	if !nG.IsInfinity() {
		return nil, errors.Wrap(ErrInvalidParams, "N*G is not the point at infinity")
	}

	e := &ECDSA{
		Curve: params.Curve,
		G:     params.G,
		N:     new(big.Int).Set(params.N),
	}

	return e, nil
}

// GeneratePrivateKey draws a private scalar uniformly from [1, N).
func (e *ECDSA) GeneratePrivateKey(rand io.Reader) (*big.Int, error) {
	return e.randScalar(rand)
}

// PublicKey returns priv*G, the public key matching the private scalar
// priv.
func (e *ECDSA) PublicKey(priv *big.Int) (curve.Point, error) {
	if priv.Cmp(one) < 0 || priv.Cmp(e.N) >= 0 {
		return curve.Point{}, ErrInvalidPrivateKey
	}

	return e.Curve.ScalarMult(e.G, priv)
}

// GenerateKeypair draws a fresh private scalar and derives its public
// key.
func (e *ECDSA) GenerateKeypair(rand io.Reader) (*big.Int, curve.Point, error) {
	priv, err := e.GeneratePrivateKey(rand)
	if err != nil {
		return nil, curve.Point{}, err
	}

	pub, err := e.PublicKey(priv)
	if err != nil {
		return nil, curve.Point{}, err
	}

	return priv, pub, nil
}

// Sign produces a signature over the hash scalar with the private key
// priv, reading nonce randomness from rand. Nonces leading to a
// degenerate signature component (R at infinity, r = 0 or s = 0) are
// discarded and redrawn, so any returned signature verifies.
func (e *ECDSA) Sign(rand io.Reader, priv, hash *big.Int) (*Signature, error) {
	if priv.Cmp(one) < 0 || priv.Cmp(e.N) >= 0 {
		return nil, ErrInvalidPrivateKey
	}
	if hash.Sign() < 0 || hash.Cmp(e.N) >= 0 {
		return nil, ErrInvalidHash
	}

	for {
		k, err := e.randScalar(rand)
		if err != nil {
			return nil, err
		}

		// R = k*G, r = x(R) mod N
		R, err := e.Curve.ScalarMult(e.G, k)
		if err != nil {
			return nil, err
		}
		if R.IsInfinity() {
			continue
		}
		r := new(big.Int).Mod(R.X, e.N)
		if r.Sign() == 0 {
			continue
		}

		// s = (hash + priv*r) * k⁻¹ mod N, all in the scalar field
		kInv, err := field.Inv(k, e.N)
		if err != nil {
			return nil, err
		}
		s := field.Mul(field.Add(hash, field.Mul(priv, r, e.N), e.N), kInv, e.N)
		if s.Sign() == 0 {
			continue
		}

		return &Signature{R: r, S: s}, nil
	}
}

// Verify reports whether sig is a valid signature over the hash scalar
// under the public key pub. Malformed inputs of any kind verify false;
// verification never fails with an error.
func (e *ECDSA) Verify(hash *big.Int, sig *Signature, pub curve.Point) bool {
	if sig == nil || sig.R == nil || sig.S == nil {
		return false
	}
	if hash == nil || hash.Sign() < 0 || hash.Cmp(e.N) >= 0 {
		return false
	}
	if pub.IsInfinity() || !e.Curve.IsOnCurve(pub) {
		return false
	}
	if sig.R.Cmp(one) < 0 || sig.R.Cmp(e.N) >= 0 ||
		sig.S.Cmp(one) < 0 || sig.S.Cmp(e.N) >= 0 {
		return false
	}

	// w = s⁻¹, u₁ = hash*w, u₂ = r*w, all mod N
	w, err := field.Inv(sig.S, e.N)
	if err != nil {
		return false
	}
	u1 := field.Mul(hash, w, e.N)
	u2 := field.Mul(sig.R, w, e.N)

	// accept iff x(u₁*G + u₂*pub) ≡ r (mod N)
	p1, err := e.Curve.ScalarMult(e.G, u1)
	if err != nil {
		return false
	}
	p2, err := e.Curve.ScalarMult(pub, u2)
	if err != nil {
		return false
	}

	// u₁*G and u₂*pub coincide for some (hash, r, s) triples, so the
	// sum must go through the tangent-aware dispatch.
	sum, err := e.Curve.Combine(p1, p2)
	if err != nil {
		return false
	}
	if sum.IsInfinity() {
		return false
	}

	return new(big.Int).Mod(sum.X, e.N).Cmp(sig.R) == 0
}

// HashToScalar maps a message to a scalar as the big-endian SHA-256
// digest reduced modulo N-1, landing in [0, N-1). This mapping deviates
// from the FIPS 186 leftmost-bits truncation modulo N; it is kept as is
// because existing signatures depend on it.
func (e *ECDSA) HashToScalar(message []byte) *big.Int {
	digest := fastsha256.Sum256(message)

	h := new(big.Int).SetBytes(digest[:])
	return h.Mod(h, new(big.Int).Sub(e.N, one))
}

// randScalar draws a scalar uniformly from [1, N) following the
// procedure of [NSA] A.2.1: read 64 bits more entropy than the order is
// wide, reduce modulo N-1 and shift into range.
func (e *ECDSA) randScalar(rand io.Reader) (*big.Int, error) {
	b := make([]byte, (e.N.BitLen()+7)/8+8)
	if _, err := io.ReadFull(rand, b); err != nil {
		return nil, errors.Wrap(err, "reading entropy")
	}

	k := new(big.Int).SetBytes(b)
	k.Mod(k, new(big.Int).Sub(e.N, one))
	return k.Add(k, one), nil
}
