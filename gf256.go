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

// Arithmetic over GF(256) with primitive polynomial x^8+x^4+x^3+x^2+1
// (0x11D), used by the Reed-Solomon encoder in reedsolomon.go.

var (
	gfLog [256]int
	gfExp [256]int
)

func init() {
	v := 1
	for exp := 0; exp < 255; exp++ {
		gfExp[exp] = v
		gfLog[v] = exp
		v <<= 1
		if v > 255 {
			v ^= 0x11D
		}
	}
	// A convenience entry: exp[255] aliases exp[0] so that
	// log[a]+log[b] == 255 still maps back to the multiplicative identity.
	gfExp[255] = 1
}

// gfMultiply returns a*b in GF(256).
func gfMultiply(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return byte(gfExp[(gfLog[a]+gfLog[b])%255])
}

// gfDivide returns a/b in GF(256). b must be nonzero; the only callers are
// polynomial division steps that divide by a generator's leading
// coefficient, which is never zero.
func gfDivide(a, b byte) byte {
	if a == 0 {
		return 0
	}
	// log[a] - log[b], kept in [0, 255) by adding 255 before the modulus.
	return byte(gfExp[(gfLog[a]-gfLog[b]+255)%255])
}
