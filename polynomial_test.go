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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// generatorPolynomial keeps the leading x^degree coefficient (always 1)
// explicit, so the reference values below — taken from a standard QR
// reference table that stores only the trailing `degree` coefficients —
// land one index later than they would in that table.
func TestGeneratorPolynomial(t *testing.T) {
	g := generatorPolynomial(1)
	assert.Equal(t, byte(0x01), g[0])
	assert.Equal(t, byte(0x01), g[1])

	g = generatorPolynomial(2)
	assert.Equal(t, byte(0x01), g[0])
	assert.Equal(t, byte(0x03), g[1])
	assert.Equal(t, byte(0x02), g[2])

	g = generatorPolynomial(5)
	assert.Equal(t, byte(0x01), g[0])
	assert.Equal(t, byte(0x1F), g[1])
	assert.Equal(t, byte(0xC6), g[2])
	assert.Equal(t, byte(0x3F), g[3])
	assert.Equal(t, byte(0x93), g[4])
	assert.Equal(t, byte(0x74), g[5])

	g = generatorPolynomial(30)
	assert.Equal(t, byte(0x01), g[0])
	assert.Equal(t, byte(0xD4), g[1])
	assert.Equal(t, byte(0xF6), g[2])
	assert.Equal(t, byte(0xC0), g[6])
	assert.Equal(t, byte(0x16), g[13])
	assert.Equal(t, byte(0xD9), g[14])
	assert.Equal(t, byte(0x12), g[21])
	assert.Equal(t, byte(0x6A), g[28])
	assert.Equal(t, byte(0x96), g[30])
}

func TestPolyRemainder(t *testing.T) {
	t.Run("zero data", func(t *testing.T) {
		g := generatorPolynomial(3)
		data := append([]byte{0}, make([]byte, 3)...)
		r := polyRemainder(data, g)
		assert.Equal(t, 3, len(r))
		for _, b := range r {
			assert.Equal(t, byte(0), b)
		}
	})

	t.Run("single one bit", func(t *testing.T) {
		g := generatorPolynomial(3)
		data := append([]byte{0, 1}, make([]byte, 3)...)
		r := polyRemainder(data, g)
		assert.Equal(t, g[1:], r)
	})

	t.Run("five codeword message", func(t *testing.T) {
		g := generatorPolynomial(5)
		data := append([]byte{0x03, 0x3A, 0x60, 0x12, 0xC7}, make([]byte, 5)...)
		r := polyRemainder(data, g)
		expected := []byte{0xCB, 0x36, 0x16, 0xFA, 0x9D}
		assert.Equal(t, expected, r)
	})

	t.Run("full block", func(t *testing.T) {
		data := []byte{
			0x38, 0x71, 0xDB, 0xF9, 0xD7, 0x28, 0xF6, 0x8E, 0xFE, 0x5E,
			0xE6, 0x7D, 0x7D, 0xB2, 0xA5, 0x58, 0xBC, 0x28, 0x23, 0x53,
			0x14, 0xD5, 0x61, 0xC0, 0x20, 0x6C, 0xDE, 0xDE, 0xFC, 0x79,
			0xB0, 0x8B, 0x78, 0x6B, 0x49, 0xD0, 0x1A, 0xAD, 0xF3, 0xEF,
			0x52, 0x7D, 0x9A,
		}
		g := generatorPolynomial(30)
		padded := append(append([]byte{}, data...), make([]byte, 30)...)
		r := polyRemainder(padded, g)
		assert.Equal(t, 30, len(r))
		assert.Equal(t, byte(0xCE), r[0])
		assert.Equal(t, byte(0xF0), r[1])
		assert.Equal(t, byte(0x31), r[2])
		assert.Equal(t, byte(0xDE), r[3])
		assert.Equal(t, byte(0xE1), r[8])
		assert.Equal(t, byte(0xCA), r[12])
		assert.Equal(t, byte(0xE3), r[17])
		assert.Equal(t, byte(0x85), r[19])
		assert.Equal(t, byte(0x50), r[20])
		assert.Equal(t, byte(0xBE), r[24])
		assert.Equal(t, byte(0xB3), r[29])
	})
}

// TestPolyRemainderLength checks the spec invariant that Remainder(p, g)
// always has length deg(g) == len(g)-1: generatorPolynomial(degree) has
// degree+1 coefficients, so the remainder is degree bytes long.
func TestPolyRemainderLength(t *testing.T) {
	for degree := 1; degree <= 30; degree++ {
		g := generatorPolynomial(degree)
		dividend := append(make([]byte, 17), make([]byte, degree)...)
		r := polyRemainder(dividend, g)
		assert.Equal(t, degree, len(r))
	}
}

func TestPolyMultiply(t *testing.T) {
	p := []byte{1, 2}
	q := []byte{1, 3}
	got := polyMultiply(p, q)
	assert.Equal(t, 3, len(got))
}
