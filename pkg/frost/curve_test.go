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
	"crypto/rand"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	t.Run("infinity_is_identity", func(t *testing.T) {
		g := G()
		if !g.Add(Infinity()).Equal(g) {
			t.Error("G + infinity != G")
		}
	})

	t.Run("point_plus_negation_is_infinity", func(t *testing.T) {
		g := G()
		if !g.Add(g.Negate()).IsInfinity() {
			t.Error("G + (-G) != infinity")
		}
	})

	t.Run("double_equals_self_add", func(t *testing.T) {
		g := G()
		if !g.Double().Equal(g.Add(g)) {
			t.Error("G.Double() != G+G")
		}
	})

	t.Run("scalar_mult_distributes_over_add", func(t *testing.T) {
		a := ScalarFromUint32(5)
		b := ScalarFromUint32(9)
		lhs := ScalarBaseMult(a.Add(b))
		rhs := ScalarBaseMult(a).Add(ScalarBaseMult(b))
		if !lhs.Equal(rhs) {
			t.Error("G*(a+b) != G*a + G*b")
		}
	})

	t.Run("scalar_mult_by_zero_is_infinity", func(t *testing.T) {
		if !ScalarBaseMult(ZeroScalar()).IsInfinity() {
			t.Error("G*0 != infinity")
		}
	})
}

func TestPointSerialization(t *testing.T) {
	t.Run("sec1_compressed_roundtrip", func(t *testing.T) {
		k, err := RandomScalar(rand.Reader)
		if err != nil {
			t.Fatalf("RandomScalar failed: %v", err)
		}
		p := ScalarBaseMult(k)
		encoded, err := p.SEC1Compressed()
		if err != nil {
			t.Fatalf("SEC1Compressed failed: %v", err)
		}
		if len(encoded) != 33 {
			t.Fatalf("expected 33 bytes, got %d", len(encoded))
		}
		decoded, err := ParseSEC1Compressed(encoded)
		if err != nil {
			t.Fatalf("ParseSEC1Compressed failed: %v", err)
		}
		if !decoded.Equal(p) {
			t.Error("round trip mismatch")
		}
	})

	t.Run("sec1_rejects_wrong_length", func(t *testing.T) {
		if _, err := ParseSEC1Compressed(make([]byte, 10)); err != ErrInvalidEncoding {
			t.Errorf("expected ErrInvalidEncoding, got %v", err)
		}
	})

	t.Run("sec1_infinity_fails", func(t *testing.T) {
		if _, err := Infinity().SEC1Compressed(); err != ErrInvalidEncoding {
			t.Errorf("expected ErrInvalidEncoding, got %v", err)
		}
	})

	t.Run("xonly_roundtrip_reconstructs_even_y", func(t *testing.T) {
		k, err := RandomScalar(rand.Reader)
		if err != nil {
			t.Fatalf("RandomScalar failed: %v", err)
		}
		p := ScalarBaseMult(k)
		encoded, err := p.XOnly()
		if err != nil {
			t.Fatalf("XOnly failed: %v", err)
		}
		if len(encoded) != 32 {
			t.Fatalf("expected 32 bytes, got %d", len(encoded))
		}
		decoded, err := ParseXOnly(encoded)
		if err != nil {
			t.Fatalf("ParseXOnly failed: %v", err)
		}
		if decoded.HasOddY() {
			t.Error("x-only deserialize must reconstruct the even-y point")
		}
		if !p.HasOddY() && !decoded.Equal(p) {
			t.Error("even-y point did not round trip")
		}
	})

	t.Run("xonly_rejects_wrong_length", func(t *testing.T) {
		if _, err := ParseXOnly(make([]byte, 31)); err != ErrInvalidEncoding {
			t.Errorf("expected ErrInvalidEncoding, got %v", err)
		}
	})
}

func TestPointNormalize(t *testing.T) {
	t.Run("infinity_normalizes_to_infinity", func(t *testing.T) {
		if !Infinity().Normalize().IsInfinity() {
			t.Error("Normalize(infinity) != infinity")
		}
	})

	t.Run("normalize_is_idempotent", func(t *testing.T) {
		g := G()
		n1 := g.Normalize()
		n2 := n1.Normalize()
		if !n1.Equal(n2) {
			t.Error("Normalize is not idempotent")
		}
	})

	t.Run("normalize_picks_same_point_for_p_and_negation", func(t *testing.T) {
		g := G()
		if !g.Normalize().Equal(g.Negate().Normalize()) {
			t.Error("Normalize(P) != Normalize(-P)")
		}
	})
}
