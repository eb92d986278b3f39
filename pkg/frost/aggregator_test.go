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

func TestTweakKeyZeroTweaksIsIdentity(t *testing.T) {
	y, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomScalar failed: %v", err)
	}
	Y := ScalarBaseMult(y)

	k, tau, parity, err := TweakKey(Y, ZeroScalar(), ZeroScalar())
	if err != nil {
		t.Fatalf("TweakKey failed: %v", err)
	}
	if !k.Equal(Y) && !k.Equal(Y.Negate()) {
		t.Error("zero tweaks should leave the key unchanged up to sign")
	}
	if parity != 0 && parity != 1 {
		t.Error("parity must be 0 or 1")
	}

	k2, tau2, parity2, err := TweakKey(Y, ZeroScalar(), ZeroScalar())
	if err != nil {
		t.Fatalf("TweakKey (second call) failed: %v", err)
	}
	if !k.Equal(k2) || !tau.Equal(tau2) || parity != parity2 {
		t.Error("TweakKey is not deterministic")
	}
}

func TestTweakKeyIsDeterministicForRandomTweaks(t *testing.T) {
	y, _ := RandomScalar(rand.Reader)
	Y := ScalarBaseMult(y)
	bip32, _ := RandomScalar(rand.Reader)
	taproot, _ := RandomScalar(rand.Reader)

	k, tau, _, err := TweakKey(Y, bip32, taproot)
	if err != nil {
		t.Fatalf("TweakKey failed: %v", err)
	}
	// Only checks that the parity-dependent negations are deterministic:
	// a second call with the same nonzero tweaks yields the same K and
	// tau. The parity relationship between K, Y and tau is not checked
	// here; TestTweakedSignature covers it end to end.
	k2, tau2, _, err := TweakKey(Y, bip32, taproot)
	if err != nil {
		t.Fatalf("TweakKey failed: %v", err)
	}
	if !k.Equal(k2) || !tau.Equal(tau2) {
		t.Error("TweakKey produced different results for identical inputs")
	}
}

func TestTweakKeyRejectsDegenerateResult(t *testing.T) {
	// Y + G*bip32Tweak = infinity iff bip32Tweak = -y. Construct exactly
	// that case.
	y, _ := RandomScalar(rand.Reader)
	Y := ScalarBaseMult(y)
	bip32 := y.Negate()
	if _, _, _, err := TweakKey(Y, bip32, ZeroScalar()); err != ErrInvalidKey {
		t.Errorf("expected ErrInvalidKey for a degenerate intermediate key, got %v", err)
	}
}

func TestAggregatorEffectiveKeyWithoutTweak(t *testing.T) {
	y, _ := RandomScalar(rand.Reader)
	Y := ScalarBaseMult(y)
	pairs := []NonceCommitmentPair{{D: G(), E: G()}}
	agg, err := NewAggregator(Y, []byte("m"), pairs, []int{1}, nil, nil)
	if err != nil {
		t.Fatalf("NewAggregator failed: %v", err)
	}
	if !agg.EffectiveKey().Equal(Y) {
		t.Error("EffectiveKey should equal the plain public key when untweaked")
	}
	if _, ok := agg.Tweak(); ok {
		t.Error("Tweak() should report false when untweaked")
	}
}

func TestAggregatorEffectiveKeyWithTweak(t *testing.T) {
	y, _ := RandomScalar(rand.Reader)
	Y := ScalarBaseMult(y)
	bip32, _ := RandomScalar(rand.Reader)
	taproot, _ := RandomScalar(rand.Reader)
	pairs := []NonceCommitmentPair{{D: G(), E: G()}}
	agg, err := NewAggregator(Y, []byte("m"), pairs, []int{1}, &bip32, &taproot)
	if err != nil {
		t.Fatalf("NewAggregator failed: %v", err)
	}
	wantKey, wantTau, _, err := TweakKey(Y, bip32, taproot)
	if err != nil {
		t.Fatalf("TweakKey failed: %v", err)
	}
	if !agg.EffectiveKey().Equal(wantKey) {
		t.Error("EffectiveKey mismatch under tweak")
	}
	gotTau, ok := agg.Tweak()
	if !ok || !gotTau.Equal(wantTau) {
		t.Error("Tweak() mismatch under tweak")
	}
}
