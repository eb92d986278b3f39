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

// LagrangeCoefficient computes lambda(x; indexes, i) =
// prod_{j in indexes, j != i} (x - j) / (i - j) mod Q, the weight
// participant i's share carries when interpolating the polynomial at x.
// Fails with ErrDuplicateIndex if indexes contains a repeated value, and
// ErrNoInverse if i appears twice relative to some j (duplicate x in the
// denominator, which can only happen via a caller bug since the
// duplicate check already rejects that).
func LagrangeCoefficient(x Scalar, indexes []int, i int) (Scalar, error) {
	seen := make(map[int]bool, len(indexes))
	for _, j := range indexes {
		if seen[j] {
			return Scalar{}, ErrDuplicateIndex
		}
		seen[j] = true
	}

	num := ScalarFromUint32(1)
	den := ScalarFromUint32(1)
	xi := ScalarFromInt(int64(i))
	for _, j := range indexes {
		if j == i {
			continue
		}
		xj := ScalarFromInt(int64(j))
		num = num.Mul(x.Sub(xj))
		den = den.Mul(xi.Sub(xj))
	}

	denInv, err := den.Inverse()
	if err != nil {
		return Scalar{}, ErrNoInverse
	}
	return num.Mul(denInv), nil
}
