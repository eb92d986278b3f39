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

package frost

import (
	"io"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
)

// QHex is the order of secp256k1's base point.
const QHex = "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"

// PHex is the secp256k1 field prime.
const PHex = "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"

// QBig and PBig are the big.Int forms of Q and P. QBig backs the mod-Q
// reduction in ScalarFromInt and the Q-2 exponent of Inverse; PBig is not
// used by this package's arithmetic.
var (
	QBig = mustHexBig(QHex)
	PBig = mustHexBig(PHex)

	qMinus2 = new(big.Int).Sub(QBig, big.NewInt(2))
)

func mustHexBig(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("frost: bad hex constant " + s)
	}
	return n
}

// Scalar is an integer in [0, Q), the order of the secp256k1 base point.
// It wraps btcec.ModNScalar, which reduces every value mod Q on
// construction, so every arithmetic operation on Scalar is already
// reduced mod Q by the time it reaches curve scalar multiplication.
type Scalar struct {
	v btcec.ModNScalar
}

// ZeroScalar is the additive identity.
func ZeroScalar() Scalar { return Scalar{} }

// ScalarFromUint32 builds a small nonnegative scalar, used for participant
// indexes and loop counters.
func ScalarFromUint32(n uint32) Scalar {
	var s Scalar
	s.v.SetInt(n)
	return s
}

// ScalarFromInt builds a scalar from a possibly-negative int, reducing mod
// Q. Used for Lagrange numerator/denominator terms (x - j) which can go
// negative before reduction.
func ScalarFromInt(n int64) Scalar {
	bi := big.NewInt(n)
	bi.Mod(bi, QBig)
	var buf [32]byte
	bi.FillBytes(buf[:])
	var s Scalar
	s.v.SetByteSlice(buf[:])
	return s
}

// ScalarFromBytes reduces a big-endian byte string of up to 32 bytes mod Q;
// SetByteSlice reads only the first 32 bytes of a longer input.
// This is the canonical way hash digests (binding values, challenges, proof
// of knowledge scalars) become scalars.
func ScalarFromBytes(b []byte) Scalar {
	var s Scalar
	s.v.SetByteSlice(b)
	return s
}

// RandomScalar draws a uniform scalar in [0, Q) from r, rejecting and
// retrying on the (astronomically unlikely) overflow case so the
// distribution stays uniform rather than biased toward small values.
func RandomScalar(r io.Reader) (Scalar, error) {
	var buf [32]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return Scalar{}, err
		}
		var s Scalar
		overflow := s.v.SetByteSlice(buf[:])
		if !overflow {
			return s, nil
		}
	}
}

// Bytes returns the 32-byte big-endian encoding of s.
func (s Scalar) Bytes() []byte {
	b := s.v.Bytes()
	out := make([]byte, 32)
	copy(out, b[:])
	return out
}

// IsZero reports whether s is the additive identity.
func (s Scalar) IsZero() bool {
	return s.v.IsZero()
}

// Equal reports whether s and o represent the same residue mod Q.
func (s Scalar) Equal(o Scalar) bool {
	return s.v.Equals(&o.v)
}

// Add returns s + o mod Q.
func (s Scalar) Add(o Scalar) Scalar {
	var r Scalar
	r.v.Set(&s.v)
	r.v.Add(&o.v)
	return r
}

// Sub returns s - o mod Q.
func (s Scalar) Sub(o Scalar) Scalar {
	return s.Add(o.Negate())
}

// Mul returns s * o mod Q.
func (s Scalar) Mul(o Scalar) Scalar {
	var r Scalar
	r.v.Mul2(&s.v, &o.v)
	return r
}

// Negate returns -s mod Q.
func (s Scalar) Negate() Scalar {
	var r Scalar
	r.v.Set(&s.v)
	r.v.Negate()
	return r
}

// Inverse returns s^-1 mod Q via Fermat's little theorem (s^(Q-2) mod Q),
// computed by square-and-multiply over the confirmed Mul primitive rather
// than a library inverse method — see DESIGN.md. Returns ErrNoInverse if
// s is zero.
func (s Scalar) Inverse() (Scalar, error) {
	if s.IsZero() {
		return Scalar{}, ErrNoInverse
	}
	result := ScalarFromUint32(1)
	base := s
	for i := qMinus2.BitLen() - 1; i >= 0; i-- {
		result = result.Mul(result)
		if qMinus2.Bit(i) == 1 {
			result = result.Mul(base)
		}
	}
	return result, nil
}

// modNScalar exposes the underlying btcec scalar for package-internal use
// (point scalar multiplication).
func (s Scalar) modNScalar() *btcec.ModNScalar {
	return &s.v
}
