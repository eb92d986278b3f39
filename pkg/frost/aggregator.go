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

// This file implements the signature aggregation side of FROST signing.
// The actual math lives in free functions parameterized by (message,
// nonce commitments, indexes), since they're pure and don't need session
// state; Aggregator is a thin per-session struct that remembers those
// values so callers don't have to re-pass them on every call.
package frost

// NonceCommitmentPair is a signer's published (D, E) = (G*d, G*e), the
// two per-signing-round nonce commitments FROST binds into rho_i and R.
type NonceCommitmentPair struct {
	D, E Point
}

// BindingValue computes rho_i := H(i_byte || m || concat_{j in
// indexes}(D_j || E_j)), with indexes iterated in the given order. This
// is what binds each signer's nonce pair to the specific message and
// signer set, preventing the Drijvers et al. forgery against naive
// multi-nonce Schnorr aggregation. Fails with ErrIndexOutOfRange if i or
// any j in indexes is 0 or exceeds len(pairs) (pairs is the full 1..n
// vector; entries for non-signers are never read).
func BindingValue(i int, message []byte, pairs []NonceCommitmentPair, indexes []int) (Scalar, error) {
	if i < 1 || i > len(pairs) {
		return Scalar{}, ErrIndexOutOfRange
	}
	data := make([]byte, 0, 1+len(message)+66*len(indexes))
	data = append(data, byte(i))
	data = append(data, message...)
	for _, j := range indexes {
		if j < 1 || j > len(pairs) {
			return Scalar{}, ErrIndexOutOfRange
		}
		pair := pairs[j-1]
		dBytes, err := pair.D.SEC1Compressed()
		if err != nil {
			return Scalar{}, err
		}
		eBytes, err := pair.E.SEC1Compressed()
		if err != nil {
			return Scalar{}, err
		}
		data = append(data, dBytes...)
		data = append(data, eBytes...)
	}
	return ScalarFromBytes(sha256Sum(data)), nil
}

// GroupCommitment computes R := sum_{i in indexes} (D_i + rho_i * E_i),
// the aggregate nonce commitment every signer's partial signature is
// computed against. Fails with ErrDegenerateCommitment if the result is
// the point at infinity.
func GroupCommitment(message []byte, pairs []NonceCommitmentPair, indexes []int) (Point, error) {
	r := Infinity()
	for _, i := range indexes {
		rho, err := BindingValue(i, message, pairs, indexes)
		if err != nil {
			return Point{}, err
		}
		pair := pairs[i-1]
		r = r.Add(pair.D.Add(pair.E.ScalarMult(rho)))
	}
	if r.IsInfinity() {
		return Point{}, ErrDegenerateCommitment
	}
	return r, nil
}

// TweakKey applies a BIP-32-style additive tweak followed by a
// taproot-style additive tweak to the joint public key, carrying the
// even-y negation each step needs into a single aggregate tweak tau that
// partial signatures can add in directly. Returns the tweaked key K, tau,
// and the BIP-32 parity bit p captured after the first tweak. Fails with
// ErrInvalidKey if either intermediate point is the point at infinity (no
// affine y).
func TweakKey(y Point, bip32Tweak, taprootTweak Scalar) (k Point, tau Scalar, parity int, err error) {
	k1 := y.Add(ScalarBaseMult(bip32Tweak))
	if k1.IsInfinity() {
		return Point{}, Scalar{}, 0, ErrInvalidKey
	}
	effBip32 := bip32Tweak
	if k1.HasOddY() {
		k1 = k1.Negate()
		parity = 1
		effBip32 = bip32Tweak.Negate()
	}
	k = k1.Add(ScalarBaseMult(taprootTweak))
	if k.IsInfinity() {
		return Point{}, Scalar{}, 0, ErrInvalidKey
	}
	tau = effBip32.Add(taprootTweak)
	if k.HasOddY() {
		tau = tau.Negate()
	}
	return k, tau, parity, nil
}

// Aggregator is the per-signing-session object: the joint public key, the
// message, the ordered nonce commitment pairs and participant set, and
// (when tweaking) the precomputed tweaked key and aggregate tweak.
type Aggregator struct {
	PublicKey            Point
	Message              []byte
	NonceCommitmentPairs []NonceCommitmentPair
	ParticipantIndexes   []int

	tweakedKey *Point
	tweak      *Scalar
	parity     int
}

// NewAggregator constructs a session Aggregator. bip32Tweak and
// taprootTweak must both be nil or both non-nil; violating this returns
// ErrTweakMismatch. participantIndexes must be non-empty and contain
// distinct values within 1..len(pairs).
func NewAggregator(publicKey Point, message []byte, pairs []NonceCommitmentPair, participantIndexes []int, bip32Tweak, taprootTweak *Scalar) (*Aggregator, error) {
	if (bip32Tweak == nil) != (taprootTweak == nil) {
		return nil, ErrTweakMismatch
	}
	if len(participantIndexes) == 0 {
		return nil, ErrNotEnoughIndexes
	}
	seen := make(map[int]bool, len(participantIndexes))
	for _, i := range participantIndexes {
		if i < 1 || i > len(pairs) {
			return nil, ErrIndexOutOfRange
		}
		if seen[i] {
			return nil, ErrDuplicateIndex
		}
		seen[i] = true
	}

	a := &Aggregator{
		PublicKey:            publicKey,
		Message:              message,
		NonceCommitmentPairs: pairs,
		ParticipantIndexes:   append([]int(nil), participantIndexes...),
	}
	if bip32Tweak != nil {
		k, tau, p, err := TweakKey(publicKey, *bip32Tweak, *taprootTweak)
		if err != nil {
			return nil, err
		}
		a.tweakedKey = &k
		a.tweak = &tau
		a.parity = p
	}
	return a, nil
}

// EffectiveKey returns the tweaked key if tweaks are present, else the
// plain joint public key.
func (a *Aggregator) EffectiveKey() Point {
	if a.tweakedKey != nil {
		return *a.tweakedKey
	}
	return a.PublicKey
}

// Tweak returns the aggregate tweak tau and whether tweaking is active
// for this session.
func (a *Aggregator) Tweak() (Scalar, bool) {
	if a.tweak == nil {
		return Scalar{}, false
	}
	return *a.tweak, true
}

// GroupCommitment computes this session's R.
func (a *Aggregator) GroupCommitment() (Point, error) {
	return GroupCommitment(a.Message, a.NonceCommitmentPairs, a.ParticipantIndexes)
}

// BindingValue computes rho_i for this session.
func (a *Aggregator) BindingValue(i int) (Scalar, error) {
	return BindingValue(i, a.Message, a.NonceCommitmentPairs, a.ParticipantIndexes)
}

// ChallengeHash computes the BIP-340 challenge for group commitment r
// against this session's effective key and message.
func (a *Aggregator) ChallengeHash(r Point) (Scalar, error) {
	return ChallengeHash(r, a.EffectiveKey(), a.Message)
}

// Signature assembles the final BIP-340 signature from the signers'
// partial signature shares: z := sum(shares) mod Q, plus c*tau when
// tweaking is active, encoded as x_only(R) || z.
func (a *Aggregator) Signature(shares []Scalar) ([]byte, error) {
	r, err := a.GroupCommitment()
	if err != nil {
		return nil, err
	}
	c, err := a.ChallengeHash(r)
	if err != nil {
		return nil, err
	}
	z := ZeroScalar()
	for _, s := range shares {
		z = z.Add(s)
	}
	if a.tweak != nil {
		z = z.Add(c.Mul(*a.tweak))
	}
	rBytes, err := r.XOnly()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 64)
	copy(out[:32], rBytes)
	copy(out[32:], z.Bytes())
	return out, nil
}
