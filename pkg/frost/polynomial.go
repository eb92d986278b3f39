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

// Polynomial represents a scalar polynomial f(x) = coeffs[0] + coeffs[1]*x
// + ... + coeffs[t-1]*x^(t-1) over the secp256k1 scalar field, the
// per-participant secret-sharing polynomial FROST's key generation and
// refresh rounds use.
type Polynomial struct {
	coeffs []Scalar
}

// NewPolynomial creates a polynomial with the given coefficients, ordered
// from the constant term up. Returns ErrInvalidPolynomial if coeffs is
// empty.
func NewPolynomial(coeffs []Scalar) (*Polynomial, error) {
	if len(coeffs) == 0 {
		return nil, ErrInvalidPolynomial
	}
	copied := make([]Scalar, len(coeffs))
	copy(copied, coeffs)
	return &Polynomial{coeffs: copied}, nil
}

// Degree returns t-1, where t is the number of coefficients.
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Threshold returns t, the number of coefficients.
func (p *Polynomial) Threshold() int {
	return len(p.coeffs)
}

// Eval evaluates f(x) via Horner's method: value = a0 + x(a1 + x(a2 + ...)).
// Panics if x is zero, since evaluating at zero reveals the secret
// constant term; callers that actually want f(0) must use ConstantTerm.
func (p *Polynomial) Eval(x Scalar) Scalar {
	if x.IsZero() {
		panic("frost: Polynomial.Eval: evaluation at zero would reveal the secret; use ConstantTerm")
	}
	value := ZeroScalar()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		value = value.Mul(x).Add(p.coeffs[i])
	}
	return value
}

// ConstantTerm returns f(0) = coeffs[0], the secret in VSS schemes.
func (p *Polynomial) ConstantTerm() Scalar {
	if len(p.coeffs) == 0 {
		return ZeroScalar()
	}
	return p.coeffs[0]
}

// Coefficients returns a copy of the polynomial's coefficients.
func (p *Polynomial) Coefficients() []Scalar {
	out := make([]Scalar, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// Zeroize overwrites the polynomial's coefficients and drops the backing
// slice, so the secret coefficients don't linger in memory longer than
// needed.
func (p *Polynomial) Zeroize() {
	if p == nil {
		return
	}
	zero := ZeroScalar()
	for i := range p.coeffs {
		p.coeffs[i] = zero
	}
	p.coeffs = nil
}
