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

// This file implements share repair: a participant who has lost their
// long-term signing share recovers it with the help of a committee of t
// others, following the Repairable Threshold Scheme of Stinson and Wei
// (eprint.iacr.org/2017/1155). Each helper splits its Lagrange-weighted
// contribution to the lost share into t random deltas, one routed to each
// committee member by position; every member then sums the deltas it
// receives, and the recovering participant sums those per-member sums.
package frost

import (
	"io"
	"sort"
)

// repairState holds a helper's ephemeral repair-round material: the t
// random shares it generated (one per sorted committee position), their
// public commitments, the sorted committee they're bound to, and (once
// this helper has received the other helpers' shares for its own
// position) the resulting aggregate_repair_share.
type repairState struct {
	shares       []Scalar
	commitments  []Point
	participants []int
	aggregate    *Scalar
}

func sortedCopy(indexes []int) []int {
	out := append([]int(nil), indexes...)
	sort.Ints(out)
	return out
}

func positionOf(sorted []int, index int) int {
	for k, v := range sorted {
		if v == index {
			return k
		}
	}
	return -1
}

// GenerateRepairShares implements a single helper's step of the repair
// round: this participant, acting as helper h within committee (which
// must include h), draws t-1 uniform randoms and a final share
// constrained so their sum equals h's Lagrange-weighted contribution to
// lostIndex's share, then publishes a commitment to each. Returns the
// per-recipient shares (to route to each committee member privately) and
// the public commitments (for VerifyRepairShare).
func (p *Participant) GenerateRepairShares(rand io.Reader, committee []int, lostIndex int) (map[int]Scalar, []Point, error) {
	if _, ok := p.AggregateShare(); !ok {
		return nil, nil, ErrNoAggregateShare
	}
	t := len(committee)
	if t < 2 {
		return nil, nil, ErrInvalidThreshold
	}
	sorted := sortedCopy(committee)
	if positionOf(sorted, p.Index) < 0 {
		return nil, nil, ErrInvalidParticipantIndex
	}
	for k := 1; k < len(sorted); k++ {
		if sorted[k] == sorted[k-1] {
			return nil, nil, ErrDuplicateIndex
		}
	}

	lambda, err := LagrangeCoefficient(ScalarFromInt(int64(lostIndex)), sorted, p.Index)
	if err != nil {
		return nil, nil, err
	}
	share, _ := p.AggregateShare()
	contribution := lambda.Mul(share)

	shares := make([]Scalar, t)
	sum := ZeroScalar()
	for k := 0; k < t-1; k++ {
		r, err := RandomScalar(rand)
		if err != nil {
			return nil, nil, err
		}
		shares[k] = r
		sum = sum.Add(r)
	}
	shares[t-1] = contribution.Sub(sum)

	commitments := make([]Point, t)
	for k, r := range shares {
		commitments[k] = ScalarBaseMult(r)
	}

	recipients := make(map[int]Scalar, t)
	for k, participant := range sorted {
		recipients[participant] = shares[k]
	}

	p.repairState = &repairState{
		shares:       shares,
		commitments:  commitments,
		participants: sorted,
	}
	return recipients, commitments, nil
}

// AggregateRepairShare sums the share this committee member routed to its
// own position (generated by itself in GenerateRepairShares) with the
// shares received from the other t-1 helpers, producing its
// aggregate_repair_share. Fails with ErrNoCoefficients if
// GenerateRepairShares hasn't run for this round.
func (p *Participant) AggregateRepairShare(received []Scalar) (Scalar, error) {
	if p.repairState == nil {
		return Scalar{}, ErrNoCoefficients
	}
	pos := positionOf(p.repairState.participants, p.Index)
	if pos < 0 {
		return Scalar{}, ErrInvalidParticipantIndex
	}
	sum := p.repairState.shares[pos]
	for _, s := range received {
		sum = sum.Add(s)
	}
	p.repairState.aggregate = &sum
	return sum, nil
}

// AggregateRepairShareValue returns the aggregate_repair_share computed by
// AggregateRepairShare, and whether it has been computed yet.
func (p *Participant) AggregateRepairShareValue() (Scalar, bool) {
	if p.repairState == nil || p.repairState.aggregate == nil {
		return Scalar{}, false
	}
	return *p.repairState.aggregate, true
}

// RecoverShare sums t aggregate_repair_shares, one from each committee
// member, reconstituting the recovering participant's long-term
// aggregate_share. Fails with ErrAlreadyHeld if an aggregate_share is
// already present.
func (p *Participant) RecoverShare(aggregates []Scalar) (Scalar, error) {
	if p.aggregateShare != nil {
		return Scalar{}, ErrAlreadyHeld
	}
	sum := ZeroScalar()
	for _, a := range aggregates {
		sum = sum.Add(a)
	}
	p.aggregateShare = &sum
	return sum, nil
}

// VerifyRepairShare checks that the sum of dealer h's t published
// repair-share commitments equals h's public verification share scaled by
// the Lagrange coefficient lambda used to derive them. Returns false
// (never an error) on rejection.
func VerifyRepairShare(dealerVerificationShare Point, lambda Scalar, commitments []Point) bool {
	sum := Infinity()
	for _, c := range commitments {
		sum = sum.Add(c)
	}
	return dealerVerificationShare.ScalarMult(lambda).Equal(sum)
}

// VerifyAggregateRepairShare checks, for the committee member at position
// pos in the sorted committee, that G*aggregate equals the sum, across
// all dealers, of each dealer's commitment at that position.
func VerifyAggregateRepairShare(aggregate Scalar, pos int, dealerCommitments [][]Point) bool {
	sum := Infinity()
	for _, commitments := range dealerCommitments {
		if pos < 0 || pos >= len(commitments) {
			return false
		}
		sum = sum.Add(commitments[pos])
	}
	return ScalarBaseMult(aggregate).Equal(sum)
}
