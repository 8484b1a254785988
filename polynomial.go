/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrcode

// Polynomials are represented highest-degree-coefficient first, the same
// convention the teacher's Reed-Solomon divisor used.

// polyMultiply returns p*q as a new polynomial of length len(p)+len(q)-1.
func polyMultiply(p, q []byte) []byte {
	result := make([]byte, len(p)+len(q)-1)
	for i, pc := range p {
		if pc == 0 {
			continue
		}
		for k, qc := range q {
			result[i+k] ^= gfMultiply(pc, qc)
		}
	}
	return result
}

// polyRemainder returns dividend mod divisor, a polynomial of length
// len(divisor)-1.
func polyRemainder(dividend, divisor []byte) []byte {
	r := make([]byte, len(dividend))
	copy(r, dividend)

	steps := len(dividend) - len(divisor) + 1
	for i := 0; i < steps; i++ {
		lead := r[0]
		if lead != 0 {
			factor := gfDivide(lead, divisor[0])
			for j, dc := range divisor {
				r[j] ^= gfMultiply(dc, factor)
			}
		}
		r = r[1:]
	}

	return r
}

// generatorPolynomial builds (x-α⁰)(x-α¹)...(x-α^(degree-1)) over GF(256),
// used as the Reed-Solomon divisor for a block with `degree` EC codewords.
func generatorPolynomial(degree int) []byte {
	g := []byte{1}
	for i := 0; i < degree; i++ {
		g = polyMultiply(g, []byte{1, byte(gfExp[i])})
	}
	return g
}
