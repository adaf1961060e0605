// Copyright 2019 The sammyne developers. All rights reserved.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package curve implements the group law of short Weierstrass curves
// y² = x³ + ax + b over a prime field.
//
// References:
//   [SECG]: Recommended Elliptic Curve Domain Parameters
//     http://www.secg.org/sec2-v2.pdf
//
//   [GECC]: Guide to Elliptic Curve Cryptography (Hankerson, Menezes, Vanstone)
//
// All arithmetic is affine on arbitrary-precision integers, so the same
// code is exact on a 5-bit teaching curve and on secp256k1. Add covers
// the chord case only and Double the tangent case only; ScalarMult (and
// the package's Combine wrapper) dispatch between them.
package curve

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"github.com/sammyne/weierstrass/field"
)

var (
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// ErrPointNotOnCurve signals an operand point failing the curve
// equation.
var ErrPointNotOnCurve = errors.New("point is not on the curve")

// ErrEqualPoints signals a pair of equal points fed to Add, whose chord
// rule is undefined for them. Such sums go through Double.
var ErrEqualPoints = errors.New("chord addition is undefined for equal points")

// ErrNegativeScalar signals a negative multiplier fed to ScalarMult.
var ErrNegativeScalar = errors.New("scalar must be non-negative")

// Point is a point of a short Weierstrass curve: either an affine
// coordinate pair in [0, p)², or the point at infinity acting as the
// group identity. The Inf flag tags the variant; coordinates of an
// infinity point carry no meaning and are left nil.
type Point struct {
	X, Y *big.Int
	Inf  bool
}

// NewPoint returns the affine point (x, y). The coordinates are copied,
// so later mutation of the arguments does not alias the point.
func NewPoint(x, y *big.Int) Point {
	return Point{X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}
}

// Infinity returns the point at infinity.
func Infinity() Point {
	return Point{Inf: true}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.Inf
}

// Equal reports whether p and q are the same point. All infinity points
// are equal to each other and to no affine point.
func (p Point) Equal(q Point) bool {
	if p.Inf || q.Inf {
		return p.Inf == q.Inf
	}

	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// String implements fmt.Stringer.
func (p Point) String() string {
	if p.Inf {
		return "(infinity)"
	}
	if p.X == nil || p.Y == nil {
		return "(invalid)"
	}

	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// Curve is a short Weierstrass curve y² = x³ + ax + b over the prime
// field of modulus P. Curves are read-only after construction and safe
// for concurrent use.
type Curve struct {
	A, B *big.Int
	P    *big.Int
}

// New returns the curve y² = x³ + ax + b over F_p. Both coefficients
// must be reduced into [0, p). Primality of p and a non-zero
// discriminant are the caller's responsibility.
func New(a, b, p *big.Int) (*Curve, error) {
	if a.Sign() < 0 || a.Cmp(p) >= 0 {
		return nil, errors.Wrapf(field.ErrOperandRange, "coefficient a=%v", a)
	}
	if b.Sign() < 0 || b.Cmp(p) >= 0 {
		return nil, errors.Wrapf(field.ErrOperandRange, "coefficient b=%v", b)
	}

	c := &Curve{
		A: new(big.Int).Set(a),
		B: new(big.Int).Set(b),
		P: new(big.Int).Set(p),
	}

	return c, nil
}

// IsOnCurve reports whether p satisfies y² ≡ x³ + ax + b (mod P). The
// point at infinity is on every curve.
func (c *Curve) IsOnCurve(p Point) bool {
	if p.Inf {
		return true
	}
	if p.X == nil || p.Y == nil {
		return false
	}
	if p.X.Sign() < 0 || p.X.Cmp(c.P) >= 0 ||
		p.Y.Sign() < 0 || p.Y.Cmp(c.P) >= 0 {
		return false
	}

	// y² mod p
	y2 := field.Mul(p.Y, p.Y, c.P)

	// x³ + ax + b mod p
	x3 := field.Mul(field.Mul(p.X, p.X, c.P), p.X, c.P)
	ax := field.Mul(c.A, p.X, c.P)
	rhs := field.Add(field.Add(x3, ax, c.P), c.B, c.P)

	return y2.Cmp(rhs) == 0
}

// Neg returns the additive inverse of p, i.e. its reflection (x, P-y).
func (c *Curve) Neg(p Point) Point {
	if p.Inf {
		return Infinity()
	}

	// Neg cannot fail on a reduced coordinate.
	negY, _ := field.Neg(p.Y, c.P)
	return Point{X: new(big.Int).Set(p.X), Y: negY}
}

// Add returns the chord sum p + q of two distinct curve points. Equal
// points are rejected with ErrEqualPoints; their sum is a tangent case
// and belongs to Double.
func (c *Curve) Add(p, q Point) (Point, error) {
	if !c.IsOnCurve(p) {
		return Point{}, errors.Wrapf(ErrPointNotOnCurve, "p=%v", p)
	}
	if !c.IsOnCurve(q) {
		return Point{}, errors.Wrapf(ErrPointNotOnCurve, "q=%v", q)
	}

	// ∞ + Q = Q and P + ∞ = P per the group law.
	if p.Inf {
		return q, nil
	}
	if q.Inf {
		return p, nil
	}

	if p.Equal(q) {
		return Point{}, ErrEqualPoints
	}

	// Reflections share an x coordinate and sit on a vertical chord, so
	// their sum is the point at infinity.
	if p.X.Cmp(q.X) == 0 && field.Add(p.Y, q.Y, c.P).Sign() == 0 {
		return Infinity(), nil
	}

	// s = (y₂-y₁)/(x₂-x₁)
	num, err := field.Sub(q.Y, p.Y, c.P)
	if err != nil {
		return Point{}, err
	}
	den, err := field.Sub(q.X, p.X, c.P)
	if err != nil {
		return Point{}, err
	}
	s, err := field.Div(num, den, c.P)
	if err != nil {
		return Point{}, err
	}

	return c.chord(s, p, q)
}

// Double returns the tangent sum p + p. Doubling a point with y = 0
// yields the point at infinity, the tangent there being vertical.
func (c *Curve) Double(p Point) (Point, error) {
	if !c.IsOnCurve(p) {
		return Point{}, errors.Wrapf(ErrPointNotOnCurve, "p=%v", p)
	}

	if p.Inf {
		return Infinity(), nil
	}
	if p.Y.Sign() == 0 {
		return Infinity(), nil
	}

	// s = (3x₁² + a)/(2y₁)
	num := field.Add(field.Mul(three, field.Mul(p.X, p.X, c.P), c.P), c.A, c.P)
	den := field.Mul(two, p.Y, c.P)
	s, err := field.Div(num, den, c.P)
	if err != nil {
		return Point{}, err
	}

	return c.chord(s, p, p)
}

// Combine returns p + q for any pair of curve points, dispatching to
// Double for the tangent case and to Add otherwise.
func (c *Curve) Combine(p, q Point) (Point, error) {
	if p.Equal(q) {
		return c.Double(p)
	}

	return c.Add(p, q)
}

// ScalarMult returns k*p via left-to-right double-and-add. k = 0 yields
// the point at infinity; negative k is rejected.
func (c *Curve) ScalarMult(p Point, k *big.Int) (Point, error) {
	if !c.IsOnCurve(p) {
		return Point{}, errors.Wrapf(ErrPointNotOnCurve, "p=%v", p)
	}
	if k.Sign() < 0 {
		return Point{}, errors.Wrapf(ErrNegativeScalar, "k=%v", k)
	}

	if k.Sign() == 0 || p.Inf {
		return Infinity(), nil
	}

	// Scan k from its second-highest bit down, doubling the accumulator
	// at every bit and adding p at the set ones. The accumulator may
	// land on ±p along the way (e.g. once k passes the point's order),
	// where the chord rule breaks down, so the conditional add goes
	// through Combine.
	acc := p
	var err error
	for i := k.BitLen() - 2; i >= 0; i-- {
		if acc, err = c.Double(acc); err != nil {
			return Point{}, err
		}

		if k.Bit(i) == 1 {
			if acc, err = c.Combine(acc, p); err != nil {
				return Point{}, err
			}
		}
	}

	return acc, nil
}

// chord finishes a point addition given the slope s of the line through
// p and q: x₃ = s²-x₁-x₂ and y₃ = s(x₁-x₃)-y₁.
func (c *Curve) chord(s *big.Int, p, q Point) (Point, error) {
	s2 := field.Mul(s, s, c.P)
	x3, err := field.Sub(s2, field.Add(p.X, q.X, c.P), c.P)
	if err != nil {
		return Point{}, err
	}

	run, err := field.Sub(p.X, x3, c.P)
	if err != nil {
		return Point{}, err
	}
	y3, err := field.Sub(field.Mul(s, run, c.P), p.Y, c.P)
	if err != nil {
		return Point{}, err
	}

	return Point{X: x3, Y: y3}, nil
}
