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

// runDKG drives t-of-n distributed key generation to completion for every
// participant and returns the resulting participants.
func runDKG(t *testing.T, threshold, n int) []*Participant {
	t.Helper()

	parties := make([]*Participant, n)
	proofs := make([]*ProofOfKnowledge, n)
	commitments := make([][]Point, n)
	for i := 0; i < n; i++ {
		p, err := NewParticipant(i+1, threshold, n)
		if err != nil {
			t.Fatalf("NewParticipant(%d) failed: %v", i+1, err)
		}
		proof, err := p.InitKeygen(rand.Reader)
		if err != nil {
			t.Fatalf("InitKeygen(%d) failed: %v", i+1, err)
		}
		parties[i] = p
		proofs[i] = proof
		commitments[i] = p.CoefficientCommitments()
	}

	for i, p := range parties {
		for j, other := range parties {
			if i == j {
				continue
			}
			if !VerifyProofOfKnowledge(other.Index, proofs[j], commitments[j][0]) {
				t.Fatalf("VerifyProofOfKnowledge(%d) by %d rejected a valid proof", other.Index, p.Index)
			}
		}
	}

	allShares := make([][]Scalar, n)
	for i, p := range parties {
		shares, err := p.GenerateShares()
		if err != nil {
			t.Fatalf("GenerateShares(%d) failed: %v", p.Index, err)
		}
		allShares[i] = shares
	}

	for i, p := range parties {
		received := make([]Scalar, 0, n-1)
		for j := range parties {
			if i == j {
				continue
			}
			received = append(received, allShares[j][i])
		}
		if err := p.AggregateShares(received); err != nil {
			t.Fatalf("AggregateShares(%d) failed: %v", p.Index, err)
		}
	}

	for i, p := range parties {
		others := make([]Point, 0, n-1)
		for j := range parties {
			if i != j {
				others = append(others, commitments[j][0])
			}
		}
		p.DerivePublicKey(others)
	}

	for i, p := range parties {
		others := make([][]Point, 0, n-1)
		for j := range parties {
			if i != j {
				others = append(others, commitments[j])
			}
		}
		if _, err := p.DeriveGroupCommitments(others); err != nil {
			t.Fatalf("DeriveGroupCommitments(%d) failed: %v", p.Index, err)
		}
	}

	return parties
}
