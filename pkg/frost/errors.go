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

import "errors"

// Structural errors: invalid arguments caught before any cryptographic
// work happens.
var (
	// ErrInvalidThreshold is returned when t is out of [1, n] range.
	ErrInvalidThreshold = errors.New("frost: invalid threshold")

	// ErrInvalidParticipantIndex is returned when an index is not in 1..n
	// (or not in 1..255, the 1-byte hash-input index cap).
	ErrInvalidParticipantIndex = errors.New("frost: invalid participant index")

	// ErrDuplicateIndex is returned when a caller-supplied index set
	// contains a repeated value.
	ErrDuplicateIndex = errors.New("frost: duplicate participant index")

	// ErrIndexOutOfRange is returned by binding-value computation when an
	// index is 0 or exceeds the number of participants.
	ErrIndexOutOfRange = errors.New("frost: index out of range")

	// ErrTweakMismatch is returned when exactly one of bip32Tweak and
	// taprootTweak is present.
	ErrTweakMismatch = errors.New("frost: bip32 and taproot tweaks must both be present or both absent")

	// ErrCommitmentLength is returned when a commitment vector's length
	// does not match the expected threshold.
	ErrCommitmentLength = errors.New("frost: commitment vector has wrong length")

	// ErrNotEnoughIndexes is returned when the number of participant
	// indexes supplied does not fit the operation: none at all for an
	// Aggregator, or anything other than exactly t-1 for
	// DeriveDecrementedCommitments.
	ErrNotEnoughIndexes = errors.New("frost: not enough participant indexes")
)

// Precondition errors: an operation was attempted before the round it
// depends on ran.
var (
	// ErrNoCoefficients is returned when a round-2 operation is attempted
	// before init_keygen (or the equivalent refresh/threshold-increase
	// round) has generated coefficients.
	ErrNoCoefficients = errors.New("frost: no coefficients generated yet")

	// ErrNoAggregateShare is returned by sign when aggregate_share is
	// absent.
	ErrNoAggregateShare = errors.New("frost: no aggregate share held")

	// ErrAlreadyHeld is returned by repair when the recovering
	// participant already holds an aggregate_share.
	ErrAlreadyHeld = errors.New("frost: aggregate share already held")

	// ErrNoNoncePair is returned by sign when generate_nonce_pair has not
	// been called for this session.
	ErrNoNoncePair = errors.New("frost: no nonce pair generated")
)

// Encoding errors.
var (
	// ErrInvalidEncoding is returned by point/scalar deserialization on
	// malformed input (wrong length, bad prefix, non-residue x-coordinate).
	ErrInvalidEncoding = errors.New("frost: invalid encoding")
)

// Protocol-level degeneracy, fatal for the session; callers must restart
// with fresh nonces.
var (
	// ErrDegenerateCommitment is returned when the group commitment R
	// for a signing session is the point at infinity.
	ErrDegenerateCommitment = errors.New("frost: degenerate group commitment")

	// ErrInvalidKey is returned when a tweaked key computation produces
	// an intermediate point with no affine representative.
	ErrInvalidKey = errors.New("frost: invalid tweaked key")
)

// ErrNoInverse is returned by modular inverse when the operand is zero.
// Indicates a programming error or duplicate participant indexes
// upstream.
var ErrNoInverse = errors.New("frost: no modular inverse exists")

// ErrInvalidPolynomial is returned by NewPolynomial when given no
// coefficients.
var ErrInvalidPolynomial = errors.New("frost: polynomial has no coefficients")
