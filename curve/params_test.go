// Copyright 2019 The sammyne developers. All rights reserved.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package curve_test

import (
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sammyne/weierstrass/curve"
)

func TestS256Params(t *testing.T) {
	params := curve.S256()
	ref := btcec.S256().Params()

	assert.Zero(t, params.Curve.P.Cmp(ref.P), "field prime")
	assert.Zero(t, params.Curve.B.Cmp(ref.B), "coefficient b")
	assert.Zero(t, params.Curve.A.Sign(), "coefficient a")
	assert.Zero(t, params.N.Cmp(ref.N), "group order")
	assert.Zero(t, params.G.X.Cmp(ref.Gx), "Gx")
	assert.Zero(t, params.G.Y.Cmp(ref.Gy), "Gy")

	assert.True(t, params.Curve.IsOnCurve(params.G))
}

func TestS256OrderMultiple(t *testing.T) {
	params := curve.S256()

	got, err := params.Curve.ScalarMult(params.G, params.N)
	require.NoError(t, err)
	assert.True(t, got.IsInfinity(), "N*G: got %s", spew.Sdump(got))
}

func TestDemo17Params(t *testing.T) {
	params := curve.Demo17()

	assert.True(t, params.Curve.IsOnCurve(params.G))

	got, err := params.Curve.ScalarMult(params.G, params.N)
	require.NoError(t, err)
	assert.True(t, got.IsInfinity())
}

// TestS256ScalarMultAgainstBtcec pits the generic affine double-and-add
// against btcec's endomorphism-accelerated secp256k1 over a spread of
// scalars.
func TestS256ScalarMultAgainstBtcec(t *testing.T) {
	params := curve.S256()
	ref := btcec.S256()

	scalars := []*big.Int{
		big.NewInt(1),
		big.NewInt(2),
		big.NewInt(3),
		big.NewInt(0xdeadbeef),
		new(big.Int).Sub(params.N, big.NewInt(1)),
	}
	for _, s := range []string{
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		"bd6b3e2a17d6ae9b0a0df486dc264c2c27ebbed1c6c0e0f289cbd157c4d1a34a",
		"03",
	} {
		k, ok := new(big.Int).SetString(s, 16)
		require.True(t, ok)
		scalars = append(scalars, k)
	}

	for _, k := range scalars {
		got, err := params.Curve.ScalarMult(params.G, k)
		require.NoError(t, err)

		wantX, wantY := ref.ScalarBaseMult(k.Bytes())
		require.False(t, got.IsInfinity(), "k=%x", k)
		assert.Zero(t, got.X.Cmp(wantX), "x mismatch for k=%x: %s", k, spew.Sdump(got))
		assert.Zero(t, got.Y.Cmp(wantY), "y mismatch for k=%x: %s", k, spew.Sdump(got))
	}
}

// TestS256AddAgainstBtcec cross-checks the affine chord and tangent
// rules against btcec's Jacobian ones.
func TestS256AddAgainstBtcec(t *testing.T) {
	params := curve.S256()
	ref := btcec.S256()

	k1 := big.NewInt(0x0fedcba9)
	k2 := big.NewInt(0x12345678)

	x1, y1 := ref.ScalarBaseMult(k1.Bytes())
	x2, y2 := ref.ScalarBaseMult(k2.Bytes())
	p1, p2 := curve.NewPoint(x1, y1), curve.NewPoint(x2, y2)

	t.Run("chord", func(t *testing.T) {
		got, err := params.Curve.Add(p1, p2)
		require.NoError(t, err)

		wantX, wantY := ref.Add(x1, y1, x2, y2)
		assert.Zero(t, got.X.Cmp(wantX), "x: %s", spew.Sdump(got))
		assert.Zero(t, got.Y.Cmp(wantY), "y: %s", spew.Sdump(got))
	})

	t.Run("tangent", func(t *testing.T) {
		got, err := params.Curve.Double(p1)
		require.NoError(t, err)

		wantX, wantY := ref.Double(x1, y1)
		assert.Zero(t, got.X.Cmp(wantX), "x: %s", spew.Sdump(got))
		assert.Zero(t, got.Y.Cmp(wantY), "y: %s", spew.Sdump(got))
	})
}
