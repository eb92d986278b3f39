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

// This file implements dense matrices of Scalars mod Q, used by threshold
// decrease to invert a Vandermonde matrix of participant indexes and
// recover coefficient commitments in the exponent from public
// verification shares.
package frost

// Matrix is a dense, row-major matrix of scalars mod Q.
type Matrix struct {
	rows, cols int
	data       [][]Scalar
}

// NewMatrix builds a Matrix from a 2-D array of scalars. All rows must
// have equal length.
func NewMatrix(data [][]Scalar) Matrix {
	rows := len(data)
	cols := 0
	if rows > 0 {
		cols = len(data[0])
	}
	copied := make([][]Scalar, rows)
	for i := range data {
		copied[i] = make([]Scalar, cols)
		copy(copied[i], data[i])
	}
	return Matrix{rows: rows, cols: cols, data: copied}
}

// Vandermonde builds the matrix V with V[r][c] = indices[r]^c mod Q, for
// c = 0..cols-1.
func Vandermonde(indices []int, cols int) Matrix {
	rows := len(indices)
	data := make([][]Scalar, rows)
	for r, idx := range indices {
		row := make([]Scalar, cols)
		x := ScalarFromInt(int64(idx))
		power := ScalarFromUint32(1)
		for c := 0; c < cols; c++ {
			row[c] = power
			power = power.Mul(x)
		}
		data[r] = row
	}
	return Matrix{rows: rows, cols: cols, data: data}
}

// At returns the scalar at (r, c).
func (m Matrix) At(r, c int) Scalar {
	return m.data[r][c]
}

// Dims returns (rows, cols).
func (m Matrix) Dims() (int, int) {
	return m.rows, m.cols
}

func (m Matrix) minor(skipRow, skipCol int) Matrix {
	data := make([][]Scalar, 0, m.rows-1)
	for r := 0; r < m.rows; r++ {
		if r == skipRow {
			continue
		}
		row := make([]Scalar, 0, m.cols-1)
		for c := 0; c < m.cols; c++ {
			if c == skipCol {
				continue
			}
			row = append(row, m.data[r][c])
		}
		data = append(data, row)
	}
	return NewMatrix(data)
}

// Determinant computes det(m) mod Q via recursive cofactor expansion, with
// 1x1 and 2x2 base cases; the empty (0x0) matrix, which appears as the
// cofactor minor of a 1x1 matrix, has determinant 1. m must be square.
func (m Matrix) Determinant() Scalar {
	switch m.rows {
	case 0:
		return ScalarFromUint32(1)
	case 1:
		return m.data[0][0]
	case 2:
		return m.data[0][0].Mul(m.data[1][1]).Sub(m.data[0][1].Mul(m.data[1][0]))
	default:
		det := ZeroScalar()
		sign := ScalarFromUint32(1)
		minusOne := ScalarFromInt(-1)
		for c := 0; c < m.cols; c++ {
			term := sign.Mul(m.data[0][c]).Mul(m.minor(0, c).Determinant())
			det = det.Add(term)
			sign = sign.Mul(minusOne)
		}
		return det
	}
}

// Inverse computes m^-1 mod Q via the classical adjugate-over-determinant
// formula, with the determinant inverted by Fermat (det^(Q-2) mod Q).
// Returns ErrNoInverse if det(m) is zero (a singular matrix — callers
// avoid this by passing distinct nonzero indices to Vandermonde).
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	detInv, err := det.Inverse()
	if err != nil {
		return Matrix{}, ErrNoInverse
	}

	n := m.rows
	adjugate := make([][]Scalar, n)
	for r := 0; r < n; r++ {
		adjugate[r] = make([]Scalar, n)
	}
	minusOne := ScalarFromInt(-1)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cofactor := m.minor(r, c).Determinant()
			if (r+c)%2 == 1 {
				cofactor = cofactor.Mul(minusOne)
			}
			// adjugate is the transpose of the cofactor matrix.
			adjugate[c][r] = cofactor.Mul(detInv)
		}
	}
	return NewMatrix(adjugate), nil
}

// MultPointMatrix left-multiplies a matrix of points Y by m:
// result[r][j] = sum_k m[r][k] * Y[k][j].
func (m Matrix) MultPointMatrix(y [][]Point) [][]Point {
	ykRows := len(y)
	ykCols := 0
	if ykRows > 0 {
		ykCols = len(y[0])
	}
	result := make([][]Point, m.rows)
	for r := 0; r < m.rows; r++ {
		result[r] = make([]Point, ykCols)
		for j := 0; j < ykCols; j++ {
			acc := Infinity()
			for k := 0; k < ykRows && k < m.cols; k++ {
				acc = acc.Add(y[k][j].ScalarMult(m.data[r][k]))
			}
			result[r][j] = acc
		}
	}
	return result
}
