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

// This file implements FROST's two-round signing: GenerateNoncePair and
// Sign.
package frost

import "io"

// GenerateNoncePair draws (d, e) uniformly from [0, Q) and computes
// (D, E) = (G*d, G*e). The pair is held until a Sign call succeeds, which
// consumes and discards it; a Sign call that returns an error leaves it
// pending. A nonce pair must be used exactly once:
// signing twice with the same (d, e) against different messages leaks
// the participant's long-term share.
func (p *Participant) GenerateNoncePair(rand io.Reader) (NonceCommitmentPair, error) {
	d, err := RandomScalar(rand)
	if err != nil {
		return NonceCommitmentPair{}, err
	}
	e, err := RandomScalar(rand)
	if err != nil {
		return NonceCommitmentPair{}, err
	}
	pair := &noncePair{d: d, e: e, D: ScalarBaseMult(d), E: ScalarBaseMult(e)}
	p.noncePair = pair
	return NonceCommitmentPair{D: pair.D, E: pair.E}, nil
}

// yParity returns 1 if p's affine y is odd, else 0, the BIP-340 parity
// convention used to decide whether a share needs negating.
func yParity(p Point) int {
	if p.HasOddY() {
		return 1
	}
	return 0
}

// Sign computes this participant's signature share z_i for message over
// the given nonce commitments and signer set, optionally under a
// BIP-32/Taproot tweak pair. On success consumes the
// nonce pair generated by GenerateNoncePair; fails with ErrNoNoncePair if
// none is pending, and ErrNoAggregateShare if no long-term share is held.
func (p *Participant) Sign(message []byte, pairs []NonceCommitmentPair, participantIndexes []int, bip32Tweak, taprootTweak *Scalar) (Scalar, error) {
	if p.noncePair == nil {
		return Scalar{}, ErrNoNoncePair
	}
	aggShare, ok := p.AggregateShare()
	if !ok {
		return Scalar{}, ErrNoAggregateShare
	}
	publicKey, ok := p.PublicKey()
	if !ok {
		return Scalar{}, ErrNoAggregateShare
	}
	if (bip32Tweak == nil) != (taprootTweak == nil) {
		return Scalar{}, ErrTweakMismatch
	}

	r, err := GroupCommitment(message, pairs, participantIndexes)
	if err != nil {
		return Scalar{}, err
	}

	effectiveKey := publicKey
	parityP := 0
	if bip32Tweak != nil {
		k, _, pp, err := TweakKey(publicKey, *bip32Tweak, *taprootTweak)
		if err != nil {
			return Scalar{}, err
		}
		effectiveKey = k
		parityP = pp
	}

	c, err := ChallengeHash(r, effectiveKey, message)
	if err != nil {
		return Scalar{}, err
	}

	dPrime, ePrime := p.noncePair.d, p.noncePair.e
	if r.HasOddY() {
		dPrime = dPrime.Negate()
		ePrime = ePrime.Negate()
	}

	rho, err := BindingValue(p.Index, message, pairs, participantIndexes)
	if err != nil {
		return Scalar{}, err
	}

	lambda, err := LagrangeCoefficient(ZeroScalar(), participantIndexes, p.Index)
	if err != nil {
		return Scalar{}, err
	}

	sPrime := aggShare
	if yParity(effectiveKey) != parityP {
		sPrime = sPrime.Negate()
	}

	zi := dPrime.Add(ePrime.Mul(rho)).Add(lambda.Mul(sPrime).Mul(c))

	p.noncePair.d = ZeroScalar()
	p.noncePair.e = ZeroScalar()
	p.noncePair = nil

	return zi, nil
}
