// SPDX-License-Identifier: Apache-2.0
//
// Copyright 2025 Jeremy Hahn
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package frost implements FROST (Flexible Round-Optimized Schnorr
// Threshold signatures) over secp256k1, producing BIP-340-compatible
// Schnorr signatures under a jointly-held public key.
//
// This file implements component A: field/curve primitives. A Point is
// either the point at infinity or an affine pair (x, y) on
// y^2 = x^3 + 7 (mod P); all group-law work is delegated to
// github.com/btcsuite/btcd/btcec/v2's Jacobian-coordinate implementation,
// with the spec's exact SEC1/x-only codecs layered on top.
package frost

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
)

// Point is a secp256k1 group element, including the point at infinity.
type Point struct {
	j btcec.JacobianPoint
}

// Infinity returns the point at infinity. The zero value of Point is
// already infinity (a zero-valued JacobianPoint has Z = 0), so this is
// provided for readability at call sites.
func Infinity() Point {
	return Point{}
}

// baseG is G itself (the base point), materialized via a scalar multiply
// by 1, since btcec exposes the base point only through
// ScalarBaseMultNonConst.
var baseG = ScalarBaseMult(ScalarFromUint32(1))

// G is the fixed secp256k1 base point.
func G() Point { return baseG }

// ScalarBaseMult returns G*k.
func ScalarBaseMult(k Scalar) Point {
	var p Point
	btcec.ScalarBaseMultNonConst(k.modNScalar(), &p.j)
	return p
}

// ScalarMult returns p*k.
func (p Point) ScalarMult(k Scalar) Point {
	var r Point
	btcec.ScalarMultNonConst(k.modNScalar(), &p.j, &r.j)
	return r
}

// Add returns p+q using the library's complete Jacobian addition formulas,
// which handle p==q (doubling), p==-q (identity) and infinity operands
// without special-casing by the caller.
func (p Point) Add(q Point) Point {
	var r Point
	btcec.AddNonConst(&p.j, &q.j, &r.j)
	return r
}

// Double returns p+p.
func (p Point) Double() Point {
	return p.Add(p)
}

// negOne is Q-1 mod Q, i.e. the scalar -1.
var negOne = ScalarFromUint32(1).Negate()

// Negate returns -p. Point negation is implemented as scalar
// multiplication by -1 rather than direct field-level Y negation — see
// DESIGN.md for why.
func (p Point) Negate() Point {
	return p.ScalarMult(negOne)
}

// Sub returns p-q, implemented as add-with-negate.
func (p Point) Sub(q Point) Point {
	return p.Add(q.Negate())
}

// IsInfinity reports whether p is the point at infinity. btcec marks
// infinity either with a zero Jacobian Z-coordinate or with X = Y = 0
// (ScalarBaseMultNonConst returns the latter for a zero scalar), so both
// forms are recognized.
func (p Point) IsInfinity() bool {
	return (p.j.X.IsZero() && p.j.Y.IsZero()) || p.j.Z.IsZero()
}

// Equal reports whether p and q represent the same group element.
func (p Point) Equal(q Point) bool {
	pInf, qInf := p.IsInfinity(), q.IsInfinity()
	if pInf || qInf {
		return pInf == qInf
	}
	pa, qa := p, q
	pa.j.ToAffine()
	qa.j.ToAffine()
	return pa.j.X.Equals(&qa.j.X) && pa.j.Y.Equals(&qa.j.Y)
}

// HasOddY reports whether p's affine y-coordinate is odd, the parity test
// BIP-340 key/nonce tweaking relies on. Parity is only meaningful for
// affine points: for the point at infinity it returns false, which carries
// no information, so callers check IsInfinity first.
func (p Point) HasOddY() bool {
	pa := p
	pa.j.ToAffine()
	return pa.j.Y.IsOdd()
}

// Normalize returns the point with the smaller-y representative between p
// and -p. Not used on the signing critical path; it exists for tests.
func (p Point) Normalize() Point {
	if p.IsInfinity() {
		return p
	}
	neg := p.Negate()
	pa, na := p, neg
	pa.j.ToAffine()
	na.j.ToAffine()
	yBytes := pa.j.Y.Bytes()
	nyBytes := na.j.Y.Bytes()
	for i := 0; i < 32; i++ {
		if yBytes[i] != nyBytes[i] {
			if yBytes[i] < nyBytes[i] {
				return p
			}
			return neg
		}
	}
	return p
}

// SEC1Compressed serializes p as a 33-byte compressed SEC1 point: prefix
// 0x02/0x03 followed by the 32-byte big-endian x-coordinate. Fails with
// ErrInvalidEncoding on the point at infinity, which is not serializable.
func (p Point) SEC1Compressed() ([]byte, error) {
	if p.IsInfinity() {
		return nil, ErrInvalidEncoding
	}
	pa := p
	pa.j.ToAffine()
	pub := btcec.NewPublicKey(&pa.j.X, &pa.j.Y)
	return pub.SerializeCompressed(), nil
}

// ParseSEC1Compressed deserializes a 33-byte compressed SEC1 point. Fails
// with ErrInvalidEncoding on wrong length, a bad prefix byte, or an x that
// is not a valid curve coordinate.
func ParseSEC1Compressed(b []byte) (Point, error) {
	if len(b) != 33 || (b[0] != 0x02 && b[0] != 0x03) {
		return Point{}, ErrInvalidEncoding
	}
	pub, err := btcec.ParsePubKey(b)
	if err != nil {
		return Point{}, ErrInvalidEncoding
	}
	var p Point
	pub.AsJacobian(&p.j)
	return p, nil
}

// XOnly serializes p as its 32-byte big-endian x-coordinate, per BIP-340.
// Fails with ErrInvalidEncoding on the point at infinity.
func (p Point) XOnly() ([]byte, error) {
	if p.IsInfinity() {
		return nil, ErrInvalidEncoding
	}
	pa := p
	pa.j.ToAffine()
	pub := btcec.NewPublicKey(&pa.j.X, &pa.j.Y)
	return schnorr.SerializePubKey(pub), nil
}

// ParseXOnly deserializes a 32-byte x-only point, reconstructing the
// even-y representative per BIP-340. Fails with ErrInvalidEncoding on
// wrong length or a non-residue x.
func ParseXOnly(b []byte) (Point, error) {
	if len(b) != 32 {
		return Point{}, ErrInvalidEncoding
	}
	pub, err := schnorr.ParsePubKey(b)
	if err != nil {
		return Point{}, ErrInvalidEncoding
	}
	var p Point
	pub.AsJacobian(&p.j)
	return p, nil
}
