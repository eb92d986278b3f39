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

// This file centralizes the two hash constructions this package needs:
// plain SHA-256 (proof-of-knowledge challenges, binding values) and the
// BIP-340 tagged hash (the signature challenge). Both are backed by
// chainhash rather than crypto/sha256 directly.
package frost

import "github.com/btcsuite/btcd/chaincfg/chainhash"

// sha256Sum returns the plain SHA-256 digest of data.
func sha256Sum(data []byte) []byte {
	return chainhash.HashB(data)
}

// bip340ChallengeTag is the tagged-hash domain separator BIP-340 defines
// for the signature challenge.
var bip340ChallengeTag = chainhash.TagBIP0340Challenge

// ChallengeHash computes the BIP-340 challenge:
// c := SHA256(T || T || x_only(R) || x_only(Y_eff) || m) mod Q, where
// T := SHA256("BIP0340/challenge"). chainhash.TaggedHash performs exactly
// this construction.
func ChallengeHash(r, effectiveKey Point, message []byte) (Scalar, error) {
	rBytes, err := r.XOnly()
	if err != nil {
		return Scalar{}, err
	}
	yBytes, err := effectiveKey.XOnly()
	if err != nil {
		return Scalar{}, err
	}
	data := make([]byte, 0, len(rBytes)+len(yBytes)+len(message))
	data = append(data, rBytes...)
	data = append(data, yBytes...)
	data = append(data, message...)
	digest := chainhash.TaggedHash(bip340ChallengeTag, data)
	return ScalarFromBytes(digest[:]), nil
}
