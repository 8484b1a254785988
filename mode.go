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

// Mode identifies the segment encoding used for a symbol's payload. It
// carries its own 4-bit mode indicator and the three char-count bit widths
// indexed by version band (v1-9, v10-26, v27-40).
type Mode struct {
	code    int8
	numBits [3]int8
}

// Code returns the 4-bit mode indicator written into the symbol's segment
// header.
func (m Mode) Code() int {
	return int(m.code)
}

// Mode values. ECI and Kanji are declared for completeness with the
// standard's mode table but are never selected by classify.
var (
	Numeric      = Mode{0x1, [3]int8{10, 12, 14}}
	Alphanumeric = Mode{0x2, [3]int8{9, 11, 13}}
	Byte         = Mode{0x4, [3]int8{8, 16, 16}}
	ECI          = Mode{0x7, [3]int8{0, 0, 0}}
	Kanji        = Mode{0x8, [3]int8{8, 10, 12}}
)

// charCountBits returns the number of bits used for this mode's character
// count field at the given version, per the v1-9/v10-26/v27-40 bands.
func (m Mode) charCountBits(version int) (int, error) {
	if version < 1 || version > 40 {
		return 0, newError(InvalidVersion, "version %d out of range [1, 40]", version)
	}
	switch {
	case version <= 9:
		return int(m.numBits[0]), nil
	case version <= 26:
		return int(m.numBits[1]), nil
	default:
		return int(m.numBits[2]), nil
	}
}

// classify picks the smallest-alphabet mode that can express text, in the
// order Numeric, Alphanumeric, Byte. Kanji and ECI are never selected.
func classify(text string) (Mode, error) {
	if isNumeric(text) {
		return Numeric, nil
	}
	if isAlphanumeric(text) {
		return Alphanumeric, nil
	}
	if isByte(text) {
		return Byte, nil
	}
	return Mode{}, newError(UnsupportedCharacter, "text contains a character outside Numeric, Alphanumeric, and Byte alphabets")
}

func isNumeric(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}

func isAlphanumeric(text string) bool {
	for i := 0; i < len(text); i++ {
		if indexOfAlphanumeric(text[i]) < 0 {
			return false
		}
	}
	return true
}

func isByte(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] < 0x20 || text[i] > 0x7E {
			return false
		}
	}
	return true
}

func indexOfAlphanumeric(c byte) int {
	for i := 0; i < len(alphanumericAlphabet); i++ {
		if alphanumericAlphabet[i] == c {
			return i
		}
	}
	return -1
}
