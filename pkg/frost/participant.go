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

// This file implements FROST's distributed key generation and refresh
// rounds: per-party state progressed by init_keygen, generate_shares,
// aggregate_shares, derive_public_key and derive_group_commitments.
//
// Participant is a mutable per-party state machine: fields that only make
// sense in a given phase are pointers, nil until that phase runs, and
// precondition checks surface ErrNo* rather than branching on a sentinel
// zero value.
package frost

import "io"

// ProofOfKnowledge is the Schnorr proof of knowledge of a participant's
// constant-term coefficient, the check that rules out Rogaway/Drijvers-style
// key-cancellation attacks during key generation.
type ProofOfKnowledge struct {
	R  Point
	Mu Scalar
}

// Participant holds one party's mutable state across the lifetime of a
// FROST group: DKG, refresh, threshold change, repair and signing.
type Participant struct {
	Index        int
	Threshold    int
	Participants int

	coefficients           []Scalar
	coefficientCommitments []Point
	proof                  *ProofOfKnowledge
	shares                 []Scalar
	aggregateShare         *Scalar
	publicKey              *Point
	groupCommitments       []Point

	increaseCoefficients []Scalar
	increaseCommitments  []Point
	increaseProof        *ProofOfKnowledge

	noncePair   *noncePair
	repairState *repairState
}

type noncePair struct {
	d, e Scalar
	D, E Point
}

// NewParticipant constructs a party with the given 1-based index, initial
// threshold and participant count. Fails with ErrInvalidParticipantIndex
// if index is outside 1..n or exceeds 255 (participant indexes are packed
// into a single byte when hashed), and ErrInvalidThreshold if t is outside
// 1..n.
func NewParticipant(index, threshold, n int) (*Participant, error) {
	if n <= 0 || n > 255 {
		return nil, ErrInvalidParticipantIndex
	}
	if index < 1 || index > n {
		return nil, ErrInvalidParticipantIndex
	}
	if threshold < 1 || threshold > n {
		return nil, ErrInvalidThreshold
	}
	return &Participant{Index: index, Threshold: threshold, Participants: n}, nil
}

// generateCoefficients draws `threshold` uniform scalars from rand (or
// threshold-1 when constantTerm is given, which then becomes coeffs[0]),
// computing commitments C_k = G*coeffs[k] for k=0..threshold-1.
func generateCoefficients(rand io.Reader, threshold int, constantTerm *Scalar) ([]Scalar, []Point, error) {
	coeffs := make([]Scalar, threshold)
	if constantTerm != nil {
		coeffs[0] = *constantTerm
	} else {
		s, err := RandomScalar(rand)
		if err != nil {
			return nil, nil, err
		}
		coeffs[0] = s
	}
	for k := 1; k < threshold; k++ {
		s, err := RandomScalar(rand)
		if err != nil {
			return nil, nil, err
		}
		coeffs[k] = s
	}
	commitments := make([]Point, threshold)
	for k, c := range coeffs {
		commitments[k] = ScalarBaseMult(c)
	}
	return coeffs, commitments, nil
}

// pokHashTag is the ASCII domain-separation tag mixed into the
// proof-of-knowledge challenge hash, keeping it independent of any other
// hash this package computes.
const pokHashTag = "FROST-BIP340"

// computeProofOfKnowledge samples a nonce k, R := G*k, binds it to the
// participant's index and constant-term commitment via
// c := SHA256(i || tag || SEC1(G*secret) || SEC1(R)), and returns mu :=
// k + secret*c mod Q. c is not reduced before the multiply in the
// classic Schnorr construction, but since all group/scalar arithmetic
// here is mod Q regardless of which representative of c's residue class
// is used (Q*G = infinity), reducing c via Scalar's SetByteSlice-based
// construction yields an identical result.
func computeProofOfKnowledge(rand io.Reader, index int, secret Scalar, secretCommitment Point) (*ProofOfKnowledge, error) {
	if index < 1 || index > 255 {
		return nil, ErrInvalidParticipantIndex
	}
	k, err := RandomScalar(rand)
	if err != nil {
		return nil, err
	}
	R := ScalarBaseMult(k)
	c, err := pokChallenge(index, secretCommitment, R)
	if err != nil {
		return nil, err
	}
	mu := k.Add(secret.Mul(c))
	return &ProofOfKnowledge{R: R, Mu: mu}, nil
}

func pokChallenge(index int, secretCommitment, r Point) (Scalar, error) {
	commitBytes, err := secretCommitment.SEC1Compressed()
	if err != nil {
		return Scalar{}, err
	}
	rBytes, err := r.SEC1Compressed()
	if err != nil {
		return Scalar{}, err
	}
	data := make([]byte, 0, 1+len(pokHashTag)+len(commitBytes)+len(rBytes))
	data = append(data, byte(index))
	data = append(data, []byte(pokHashTag)...)
	data = append(data, commitBytes...)
	data = append(data, rBytes...)
	return ScalarFromBytes(sha256Sum(data)), nil
}

// InitKeygen samples this participant's local degree t-1 polynomial,
// publishes its coefficient commitments, and produces a Schnorr proof of
// knowledge of the constant term a_{i,0}.
func (p *Participant) InitKeygen(rand io.Reader) (*ProofOfKnowledge, error) {
	coeffs, commitments, err := generateCoefficients(rand, p.Threshold, nil)
	if err != nil {
		return nil, err
	}
	proof, err := computeProofOfKnowledge(rand, p.Index, coeffs[0], commitments[0])
	if err != nil {
		return nil, err
	}
	p.coefficients = coeffs
	p.coefficientCommitments = commitments
	p.proof = proof
	return proof, nil
}

// CoefficientCommitments returns this participant's published C_{i,k}.
func (p *Participant) CoefficientCommitments() []Point {
	return p.coefficientCommitments
}

// VerifyProofOfKnowledge accepts iff R == G*mu + C0*(Q-c), the Schnorr
// verification equation for the proof computeProofOfKnowledge produces.
// Returns false, never an error, on cryptographic rejection.
func VerifyProofOfKnowledge(index int, proof *ProofOfKnowledge, c0 Point) bool {
	if proof == nil {
		return false
	}
	c, err := pokChallenge(index, c0, proof.R)
	if err != nil {
		return false
	}
	lhs := ScalarBaseMult(proof.Mu).Add(c0.ScalarMult(c.Negate()))
	return proof.R.Equal(lhs)
}

// GenerateShares evaluates this participant's secret polynomial at f_i(j)
// for every j=1..n, producing the Shamir shares to distribute to each
// other participant. Fails with ErrNoCoefficients if InitKeygen (or an
// equivalent round) hasn't run yet.
func (p *Participant) GenerateShares() ([]Scalar, error) {
	if len(p.coefficients) == 0 {
		return nil, ErrNoCoefficients
	}
	poly, err := NewPolynomial(p.coefficients)
	if err != nil {
		return nil, err
	}
	shares := make([]Scalar, p.Participants)
	for j := 1; j <= p.Participants; j++ {
		shares[j-1] = poly.Eval(ScalarFromInt(int64(j)))
	}
	p.shares = shares
	return shares, nil
}

// VerifyShare is the Feldman VSS check: accepts iff G*share equals
// sum_k commitments[k] * (receiverIndex^k mod Q).
func VerifyShare(receiverIndex int, share Scalar, commitments []Point, threshold int) bool {
	if len(commitments) != threshold {
		return false
	}
	expected := derivePublicVerificationShare(commitments, receiverIndex)
	return ScalarBaseMult(share).Equal(expected)
}

// derivePublicVerificationShare computes sum_k commitments[k] * i^k mod Q,
// the Feldman check value for participant i's share of the secret.
func derivePublicVerificationShare(commitments []Point, i int) Point {
	x := ScalarFromInt(int64(i))
	power := ScalarFromUint32(1)
	acc := Infinity()
	for _, c := range commitments {
		acc = acc.Add(c.ScalarMult(power))
		power = power.Mul(x)
	}
	return acc
}

// DerivePublicVerificationShare exposes derivePublicVerificationShare for
// verifying a recovered or refreshed share against the group's published
// commitments, and for repair verification.
func DerivePublicVerificationShare(groupCommitments []Point, i, threshold int) Point {
	if threshold < len(groupCommitments) {
		groupCommitments = groupCommitments[:threshold]
	}
	return derivePublicVerificationShare(groupCommitments, i)
}

// AggregateShares sums this participant's own f_i(i) with the shares
// received from others, addressed to this participant. If an
// aggregate_share already exists (a refresh round), the new sum is added
// to it.
func (p *Participant) AggregateShares(received []Scalar) error {
	if len(p.shares) == 0 {
		return ErrNoCoefficients
	}
	sum := p.shares[p.Index-1]
	for _, s := range received {
		sum = sum.Add(s)
	}
	if p.aggregateShare != nil {
		sum = p.aggregateShare.Add(sum)
	}
	p.aggregateShare = &sum
	return nil
}

// AggregateShare returns the participant's long-term signing share s_i,
// and whether it has been computed yet.
func (p *Participant) AggregateShare() (Scalar, bool) {
	if p.aggregateShare == nil {
		return Scalar{}, false
	}
	return *p.aggregateShare, true
}

// DerivePublicKey computes the group's joint public key Y := sum_j C_{j,0}
// over all participants, self included. On a refresh round (publicKey
// already set), the sum is added to the existing key rather than
// replacing it; refresh commitments have C_{j,0} = G*0, so Y is unchanged.
func (p *Participant) DerivePublicKey(others []Point) Point {
	y := p.coefficientCommitments[0]
	for _, c := range others {
		y = y.Add(c)
	}
	if p.publicKey != nil {
		y = p.publicKey.Add(y)
	}
	p.publicKey = &y
	return y
}

// PublicKey returns the joint key Y, and whether it has been derived.
func (p *Participant) PublicKey() (Point, bool) {
	if p.publicKey == nil {
		return Point{}, false
	}
	return *p.publicKey, true
}

// DeriveGroupCommitments computes the coefficient-wise sum of all
// participants' commitment vectors, the public data later used to verify
// any participant's share via Feldman's check. On a refresh round
// (groupCommitments already set), the sum is added into the existing
// vector rather than replacing it.
func (p *Participant) DeriveGroupCommitments(others [][]Point) ([]Point, error) {
	t := p.Threshold
	sum := make([]Point, t)
	for k := 0; k < t; k++ {
		sum[k] = p.coefficientCommitments[k]
	}
	for _, vec := range others {
		if len(vec) != t {
			return nil, ErrCommitmentLength
		}
		for k := 0; k < t; k++ {
			sum[k] = sum[k].Add(vec[k])
		}
	}
	if p.groupCommitments != nil {
		merged := make([]Point, t)
		for k := 0; k < t; k++ {
			merged[k] = p.groupCommitments[k].Add(sum[k])
		}
		sum = merged
	}
	p.groupCommitments = sum
	return sum, nil
}

// GroupCommitments returns the coefficient-wise commitment vector.
func (p *Participant) GroupCommitments() []Point {
	return p.groupCommitments
}

// InitRefresh generates a degree t-1 polynomial with constant term 0 (so
// the group's public key Y is unchanged) and t-1 uniformly random higher
// coefficients, re-randomizing every participant's share without moving
// the secret. The caller drives GenerateShares,
// AggregateShares, DerivePublicKey and DeriveGroupCommitments exactly as
// in DKG; those methods detect the already-set aggregate and add into it.
func (p *Participant) InitRefresh(rand io.Reader) error {
	zero := ZeroScalar()
	coeffs, commitments, err := generateCoefficients(rand, p.Threshold, &zero)
	if err != nil {
		return err
	}
	p.coefficients = coeffs
	p.coefficientCommitments = commitments
	p.proof = nil
	return nil
}
