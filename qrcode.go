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
 * See https://www.thonky.com/qr-code-tutorial/introduction and
 * https://en.wikipedia.org/wiki/QR_code for an explanation of how QR codes
 * are formatted.
 */

package qrcode

import "fmt"

// Symbol is an immutable, fully-built QR Code symbol. It is constructed
// eagerly by New and exposes no mutation operations afterward.
type Symbol struct {
	text          string
	version       int
	mode          Mode
	level         ECCLevel
	mask          int
	charCountBits int
	matrix        *matrix
	codewords     []byte
}

// New builds a QR Code symbol from text at, at minimum, minECC's error
// correction level, masked with mask. An out-of-range mask is clamped to 0
// at this boundary (see the Open Questions note on this policy); the
// masking stage itself still rejects an out-of-range value, which is
// unreachable from here but guards internal callers of applyMask.
func New(text string, minECC ECCLevel, mask int) (*Symbol, error) {
	if mask < 0 || mask > 7 {
		mask = 0
	}

	mode, err := classify(text)
	if err != nil {
		return nil, err
	}

	version, level, err := selectVersionAndLevel(mode, len(text), minECC)
	if err != nil {
		return nil, err
	}

	capacityBytes := dataCodewords(version, level)
	data, err := buildDataCodewords(mode, text, version, capacityBytes)
	if err != nil {
		return nil, err
	}

	allCodewords := addECAndInterleave(data, version, level)

	m := newMatrix(version)
	if err := m.drawFunctionPatterns(level); err != nil {
		return nil, err
	}
	m.drawCodewords(allCodewords)
	if err := m.applyMask(mask); err != nil {
		return nil, err
	}
	if err := m.drawFormat(level, mask); err != nil {
		return nil, err
	}

	ccBits, err := mode.charCountBits(version)
	if err != nil {
		return nil, err
	}

	return &Symbol{
		text:          text,
		version:       version,
		mode:          mode,
		level:         level,
		mask:          mask,
		charCountBits: ccBits,
		matrix:        m,
		codewords:     allCodewords,
	}, nil
}

// Version returns the chosen symbol version, in [1, 40].
func (s *Symbol) Version() int { return s.version }

// Mode returns the chosen encoding mode's 4-bit indicator code.
func (s *Symbol) Mode() int { return s.mode.Code() }

// ECCLevel returns the effective error correction level, which may be
// higher than the level requested at construction if the selector
// opportunistically boosted it.
func (s *Symbol) ECCLevel() ECCLevel { return s.level }

// CharCountBits returns the bit width used for the character-count field.
func (s *Symbol) CharCountBits() int { return s.charCountBits }

// Mask returns the applied mask index, in [0, 7].
func (s *Symbol) Mask() int { return s.mask }

// Size returns the side length of the module matrix.
func (s *Symbol) Size() int { return s.matrix.size }

// At reports whether the module at (x, y) is dark. x and y are both in
// [0, Size()).
func (s *Symbol) At(x, y int) bool { return s.matrix.modules[y][x] }

// Text returns the original input text, for debugging.
func (s *Symbol) Text() string { return s.text }

// Codewords returns the final interleaved codeword stream, for debugging.
func (s *Symbol) Codewords() []byte {
	out := make([]byte, len(s.codewords))
	copy(out, s.codewords)
	return out
}

func (s *Symbol) String() string {
	return fmt.Sprintf("Symbol(version=%d, mode=%#x, level=%s, mask=%d, size=%d)",
		s.version, s.mode.Code(), s.level, s.mask, s.matrix.size)
}
