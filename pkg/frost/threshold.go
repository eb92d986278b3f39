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

// This file implements FROST's threshold-change operations: the increase
// round (generating and folding in an increment polynomial) and the
// decrease round (projecting shares onto a lower-degree polynomial and
// recomputing group commitments via Vandermonde matrix inversion).
package frost

import "io"

// InitThresholdIncrease generates a degree t'-2 increment polynomial g(X)
// (the published polynomial has no constant-term slot, since the
// increment delta(X) = X*g(X) is zero at X=0 by construction), its
// commitments, and a proof of knowledge over g's own constant term.
// Advances this participant's Threshold to newThreshold immediately.
// Fails with ErrInvalidThreshold if newThreshold <= Threshold.
func (p *Participant) InitThresholdIncrease(rand io.Reader, newThreshold int) (*ProofOfKnowledge, []Point, error) {
	if newThreshold <= p.Threshold {
		return nil, nil, ErrInvalidThreshold
	}
	degree := newThreshold - 1
	coeffs, commitments, err := generateCoefficients(rand, degree, nil)
	if err != nil {
		return nil, nil, err
	}
	proof, err := computeProofOfKnowledge(rand, p.Index, coeffs[0], commitments[0])
	if err != nil {
		return nil, nil, err
	}
	p.increaseCoefficients = coeffs
	p.increaseCommitments = commitments
	p.increaseProof = proof
	p.Threshold = newThreshold
	return proof, commitments, nil
}

// IncreaseCommitments returns this participant's published g_k
// commitments for the pending threshold increase.
func (p *Participant) IncreaseCommitments() []Point {
	return p.increaseCommitments
}

// GenerateIncreaseShares evaluates this participant's increment
// polynomial g at every participant's index, returning g(j) for
// j=1..n — the values each recipient j will fold into its
// aggregate_share (scaled by j) in AggregateIncreaseShare. Fails with
// ErrNoCoefficients if InitThresholdIncrease hasn't run.
func (p *Participant) GenerateIncreaseShares() ([]Scalar, error) {
	if len(p.increaseCoefficients) == 0 {
		return nil, ErrNoCoefficients
	}
	poly, err := NewPolynomial(p.increaseCoefficients)
	if err != nil {
		return nil, err
	}
	shares := make([]Scalar, p.Participants)
	for j := 1; j <= p.Participants; j++ {
		shares[j-1] = poly.Eval(ScalarFromInt(int64(j)))
	}
	return shares, nil
}

// AggregateIncreaseShare extends this participant's long-term share for
// a higher threshold: s_i := s_i + i * sum_j g_j(i) mod Q, where received
// holds
// g_j(i) for every other participant j and this participant's own
// g_i(i) is included automatically. Fails with ErrNoCoefficients if
// InitThresholdIncrease hasn't run, and ErrNoAggregateShare if no
// long-term share is held yet to extend.
func (p *Participant) AggregateIncreaseShare(received []Scalar) error {
	if len(p.increaseCoefficients) == 0 {
		return ErrNoCoefficients
	}
	if p.aggregateShare == nil {
		return ErrNoAggregateShare
	}
	poly, err := NewPolynomial(p.increaseCoefficients)
	if err != nil {
		return err
	}
	sum := poly.Eval(ScalarFromInt(int64(p.Index)))
	for _, s := range received {
		sum = sum.Add(s)
	}
	delta := ScalarFromInt(int64(p.Index)).Mul(sum)
	newShare := p.aggregateShare.Add(delta)
	p.aggregateShare = &newShare
	return nil
}

// DeriveIncreasedGroupCommitments extends group_commitments from the old
// threshold to the new one: the constant term is unchanged (the
// increment is zero at X=0), and each higher coefficient k=1..t'-1 gains
// the coefficient-wise sum of every participant's g_{k-1} commitment —
// the same "sum the published commitments" shape DeriveGroupCommitments
// uses for DKG/refresh, generalized to the increase round's commitment
// vector being one slot shorter than the polynomial it represents.
func (p *Participant) DeriveIncreasedGroupCommitments(others [][]Point) ([]Point, error) {
	oldLen := len(p.groupCommitments)
	newLen := p.Threshold
	if newLen <= oldLen {
		return nil, ErrInvalidThreshold
	}

	merged := make([]Point, newLen)
	copy(merged, p.groupCommitments)
	for k := oldLen; k < newLen; k++ {
		merged[k] = Infinity()
	}

	addContribution := func(commitments []Point) error {
		if len(commitments) != newLen-1 {
			return ErrCommitmentLength
		}
		for k := 1; k < newLen; k++ {
			merged[k] = merged[k].Add(commitments[k-1])
		}
		return nil
	}
	if err := addContribution(p.increaseCommitments); err != nil {
		return nil, err
	}
	for _, c := range others {
		if err := addContribution(c); err != nil {
			return nil, err
		}
	}

	p.groupCommitments = merged
	return merged, nil
}

// DecrementThreshold handles the first step of lowering the threshold:
// given a share s* revealed by departing participant j*, this
// participant projects its own share onto the line through (j*, s*) and
// (i, s_i), evaluated at 0, reducing the effective polynomial degree by
// one. Fails with ErrNoAggregateShare if no share is held, and
// ErrNoInverse if departingIndex equals this participant's own index.
func (p *Participant) DecrementThreshold(revealed Scalar, departingIndex int) error {
	if p.aggregateShare == nil {
		return ErrNoAggregateShare
	}
	diff := ScalarFromInt(int64(p.Index - departingIndex))
	diffInv, err := diff.Inverse()
	if err != nil {
		return ErrNoInverse
	}
	q := p.aggregateShare.Sub(revealed).Mul(diffInv)
	newShare := revealed.Sub(ScalarFromInt(int64(departingIndex)).Mul(q))
	p.aggregateShare = &newShare
	return nil
}

// DeriveDecrementedCommitments handles the second step of lowering the
// threshold: recomputes group_commitments to length t-1 from the
// revealed public verification share of the departing participant.
// remainingIndexes must name exactly t-1 distinct, surviving participant
// indexes (the Vandermonde basis); each supplies a recomputed public
// verification share F_i', derived by the same line-through-points
// construction as DecrementThreshold but in the exponent, and Vandermonde
// matrix inversion recovers the new coefficient commitments from those
// t-1 points.
func DeriveDecrementedCommitments(oldGroupCommitments []Point, oldThreshold int, departingIndex int, departingShare Scalar, remainingIndexes []int) ([]Point, error) {
	newThreshold := oldThreshold - 1
	if len(remainingIndexes) != newThreshold {
		return nil, ErrNotEnoughIndexes
	}

	fj := ScalarBaseMult(departingShare)
	negJ := ScalarFromInt(int64(departingIndex)).Negate()

	seen := make(map[int]bool, newThreshold)
	points := make([][]Point, newThreshold)
	for idx, i := range remainingIndexes {
		if i == departingIndex || seen[i] {
			return nil, ErrDuplicateIndex
		}
		seen[i] = true

		fi := DerivePublicVerificationShare(oldGroupCommitments, i, oldThreshold)
		denom, err := ScalarFromInt(int64(i - departingIndex)).Inverse()
		if err != nil {
			return nil, ErrNoInverse
		}
		qi := fi.Sub(fj).ScalarMult(denom)
		fiPrime := fj.Add(qi.ScalarMult(negJ))
		points[idx] = []Point{fiPrime}
	}

	vandermonde := Vandermonde(remainingIndexes, newThreshold)
	inv, err := vandermonde.Inverse()
	if err != nil {
		return nil, err
	}
	result := inv.MultPointMatrix(points)

	out := make([]Point, newThreshold)
	for k := 0; k < newThreshold; k++ {
		out[k] = result[k][0]
	}
	return out, nil
}

// ApplyDecrementedCommitments installs the result of
// DeriveDecrementedCommitments as this participant's new
// group_commitments, and lowers Threshold to match.
func (p *Participant) ApplyDecrementedCommitments(commitments []Point) {
	p.groupCommitments = commitments
	p.Threshold = len(commitments)
}
