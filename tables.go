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
 *
 * Modeled after https://github.com/nayuki/QR-Code-generator.
 */

package qrcode

// ECCLevel is the error correction level of a symbol.
type ECCLevel int8

// ECCLevel values, in the enum's natural (not wire) order.
const (
	Low      ECCLevel = iota // recovers ~7% of a damaged symbol
	Medium                   // recovers ~15%
	Quartile                 // recovers ~25%
	High                     // recovers ~30%
)

func (e ECCLevel) String() string {
	switch e {
	case Low:
		return "Low"
	case Medium:
		return "Medium"
	case Quartile:
		return "Quartile"
	case High:
		return "High"
	default:
		return "Invalid"
	}
}

// formatBits returns the 2-bit wire code for this level. Note the wire
// order {L:1, M:0, Q:3, H:2} is not the enum's natural order.
func (e ECCLevel) formatBits() (int, error) {
	switch e {
	case Low:
		return 1, nil
	case Medium:
		return 0, nil
	case Quartile:
		return 3, nil
	case High:
		return 2, nil
	default:
		return 0, newError(InvalidECLevel, "unknown ECC level %d", int8(e))
	}
}

// ecCodewordsPerBlock[level][version] is the standard QR reference table;
// index 0 of each row is the sentinel -1.
var ecCodewordsPerBlock = [4][41]int{
	Low:      {-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	Medium:   {-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28},
	Quartile: {-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	High:     {-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
}

// ecBlocks[level][version] counts the number of EC blocks; sentinel -1 at
// index 0.
var ecBlocks = [4][41]int{
	Low:      {-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},
	Medium:   {-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},
	Quartile: {-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},
	High:     {-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81},
}

// alphanumericAlphabet's position of each character is its encoded value.
const alphanumericAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// generatorCache memoizes generatorPolynomial by degree; ecCodewordsPerBlock
// holds only 13 distinct degrees across every (level, version) combination.
var generatorCache = make(map[int][]byte)

func generatorFor(degree int) []byte {
	if g, ok := generatorCache[degree]; ok {
		return g
	}
	g := generatorPolynomial(degree)
	generatorCache[degree] = g
	return g
}
