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

// MinVersion and MaxVersion bound the QR code version range.
const (
	MinVersion = 1
	MaxVersion = 40
)

// size returns the side length in modules for the given version.
func size(version int) int {
	return 4*version + 17
}

// totalModules returns the count of data-eligible modules for the given
// version: total modules minus finder/separator/timing/format/alignment/
// version/dark-module overhead.
func totalModules(version int) int {
	if version == 1 {
		return 208
	}

	s := size(version)
	a := version/7 + 2
	result := s*s - 192 - (a*a-3)*25 - 2*(4*version+1) + (a-2)*10 - 31
	if version >= 7 {
		result -= 36
	}
	return result
}

// dataCodewords returns the number of 8-bit data codewords (excluding EC
// codewords) available at the given version and level.
func dataCodewords(version int, level ECCLevel) int {
	return totalModules(version)/8 - ecBlocks[level][version]*ecCodewordsPerBlock[level][version]
}

// capacity returns the number of characters of the given mode that fit at
// the given version and level, or 0 if the version is outside [1, 40] or
// the mode indicator and char-count field alone exceed the data capacity.
func capacity(version int, level ECCLevel, mode Mode) int {
	ccBits, err := mode.charCountBits(version)
	if err != nil {
		return 0
	}

	availableBits := dataCodewords(version, level)*8 - ccBits - 4
	if availableBits < 0 {
		return 0
	}

	switch mode {
	case Numeric:
		q, r := availableBits/10, availableBits%10
		extra := 0
		if r > 6 {
			extra = 2
		} else if r > 3 {
			extra = 1
		}
		return q*3 + extra
	case Alphanumeric:
		q, r := availableBits/11, availableBits%11
		extra := 0
		if r > 5 {
			extra = 1
		}
		return q*2 + extra
	case Byte:
		return availableBits / 8
	default:
		return 0
	}
}

// selectVersionAndLevel finds the smallest version admitting length
// characters of mode under at least minLevel, opportunistically boosting
// the ECC level within that version. Iterating levels High-down-to-minLevel
// at each version means the chosen level is the strongest one that still
// fits at the smallest admissible version: lowering minLevel only adds more
// candidate levels to try, so it can never force a larger version for the
// same input (spec monotonicity property).
func selectVersionAndLevel(mode Mode, length int, minLevel ECCLevel) (int, ECCLevel, error) {
	for version := MinVersion; version <= MaxVersion; version++ {
		for level := High; level >= minLevel; level-- {
			if capacity(version, level, mode) >= length {
				return version, level, nil
			}
		}
	}
	return 0, 0, newError(InputTooLong, "no version/level admits %d characters of mode %d at minimum level %s", length, mode.Code(), minLevel)
}
