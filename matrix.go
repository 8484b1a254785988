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

// matrix holds the module grid and the parallel reservation mask that
// tracks which cells belong to function patterns. Both are allocated
// together and share shape for the life of a symbol.
type matrix struct {
	version  int
	size     int
	modules  [][]bool
	reserved [][]bool
}

func newMatrix(version int) *matrix {
	s := size(version)
	m := &matrix{version: version, size: s}
	m.modules = make([][]bool, s)
	m.reserved = make([][]bool, s)
	for i := range m.modules {
		m.modules[i] = make([]bool, s)
		m.reserved[i] = make([]bool, s)
	}
	return m
}

func (m *matrix) setFunction(x, y int, dark bool) {
	m.modules[y][x] = dark
	m.reserved[y][x] = true
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// alignmentPositions returns the ascending track set {6} ∪ the
// version-dependent arithmetic progression (empty progression for
// version 1, per spec §4.7).
func alignmentPositions(version int) []int {
	if version == 1 {
		return []int{6}
	}

	intervals := version/7 + 1
	distance := 4*version + 4
	step := 2 * ceilDiv(distance, 2*intervals)

	positions := make([]int, 0, intervals+1)
	positions = append(positions, 6)
	for i := 0; i < intervals; i++ {
		positions = append(positions, distance+6-(intervals-1-i)*step)
	}
	return positions
}

// drawTiming draws the alternating timing pattern on row 6 and column 6.
func (m *matrix) drawTiming() {
	for i := 0; i < m.size; i++ {
		dark := i%2 == 0
		m.setFunction(6, i, dark)
		m.setFunction(i, 6, dark)
	}
}

// drawFinder draws a 9x9 finder+separator centred at (x, y).
func (m *matrix) drawFinder(x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= m.size || yy < 0 || yy >= m.size {
				continue
			}
			dist := abs(dx)
			if abs(dy) > dist {
				dist = abs(dy)
			}
			m.setFunction(xx, yy, dist != 2 && dist != 4)
		}
	}
}

// drawAlignment draws a 5x5 alignment pattern centred at (x, y).
func (m *matrix) drawAlignment(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			dist := abs(dx)
			if abs(dy) > dist {
				dist = abs(dy)
			}
			m.setFunction(x+dx, y+dy, dist != 1)
		}
	}
}

func getBit(x, i int) bool {
	return (x>>uint(i))&1 == 1
}

// drawFormat computes and writes both copies of the 15-bit format
// information field for the given level and mask.
func (m *matrix) drawFormat(level ECCLevel, mask int) error {
	fb, err := level.formatBits()
	if err != nil {
		return err
	}

	data := fb<<3 | mask
	rem := data
	for i := 0; i < 10; i++ {
		rem = rem<<1 ^ (rem >> 9 * 0x537)
	}
	bits := (data<<10 | rem) ^ 0x5412

	for i := 0; i <= 5; i++ {
		m.setFunction(8, i, getBit(bits, i))
	}
	m.setFunction(8, 7, getBit(bits, 6))
	m.setFunction(8, 8, getBit(bits, 7))
	m.setFunction(7, 8, getBit(bits, 8))
	for i := 9; i < 15; i++ {
		m.setFunction(14-i, 8, getBit(bits, i))
	}

	for i := 0; i < 8; i++ {
		m.setFunction(m.size-1-i, 8, getBit(bits, i))
	}
	for i := 8; i < 15; i++ {
		m.setFunction(8, m.size-15+i, getBit(bits, i))
	}
	m.setFunction(8, m.size-8, true) // the single always-dark module

	return nil
}

// drawVersion writes both copies of the 18-bit version information field,
// a no-op below version 7.
func (m *matrix) drawVersion() {
	if m.version < 7 {
		return
	}

	rem := m.version
	for i := 0; i < 12; i++ {
		rem = rem<<1 ^ (rem >> 11 * 0x1F25)
	}
	bits := m.version<<12 | rem

	for i := 0; i < 18; i++ {
		bit := getBit(bits, i)
		a := m.size - 11 + i%3
		b := i / 3
		m.setFunction(a, b, bit)
		m.setFunction(b, a, bit)
	}
}

// drawFunctionPatterns writes timing, finder, alignment, format (with
// mask 0 as a placeholder, overwritten once the final mask is chosen), and
// version patterns.
func (m *matrix) drawFunctionPatterns(level ECCLevel) error {
	m.drawTiming()

	m.drawFinder(3, 3)
	m.drawFinder(m.size-4, 3)
	m.drawFinder(3, m.size-4)

	positions := alignmentPositions(m.version)
	n := len(positions)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == 0 && j == 0 || i == 0 && j == n-1 || i == n-1 && j == 0 {
				continue // collides with a finder pattern
			}
			m.drawAlignment(positions[i], positions[j])
		}
	}

	if err := m.drawFormat(level, 0); err != nil {
		return err
	}
	m.drawVersion()

	return nil
}

// drawCodewords streams codewords into the data area in the canonical
// zig-zag order, skipping cells already reserved by a function pattern.
func (m *matrix) drawCodewords(data []byte) {
	i := 0
	total := len(data) * 8

	for right := m.size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for v := 0; v < m.size; v++ {
			upward := (right+1)&2 == 0
			y := v
			if upward {
				y = m.size - 1 - v
			}
			for j := 0; j < 2; j++ {
				x := right - j
				if !m.reserved[y][x] && i < total {
					m.modules[y][x] = getBit(int(data[i/8]), 7-i%8)
					i++
				}
			}
		}
	}
}

// maskFunc returns the XOR predicate for mask index m.
func maskFunc(mask int, x, y int) bool {
	switch mask {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (x/3+y/2)%2 == 0
	case 5:
		return x*y%2+x*y%3 == 0
	case 6:
		return (x*y%2+x*y%3)%2 == 0
	case 7:
		return ((x+y)%2+x*y%3)%2 == 0
	default:
		return false
	}
}

// applyMask XORs every non-reserved module with the given mask's
// predicate. mask must be in [0, 7]; the constructor clamps an
// out-of-range caller value to 0 before it ever reaches here (see the
// Open Questions note on this policy), so this is a defense-in-depth
// check, not a reachable caller path.
func (m *matrix) applyMask(mask int) error {
	if mask < 0 || mask > 7 {
		return newError(InvalidMask, "mask %d out of range [0, 7]", mask)
	}

	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; x++ {
			if m.reserved[y][x] {
				continue
			}
			if maskFunc(mask, x, y) {
				m.modules[y][x] = !m.modules[y][x]
			}
		}
	}
	return nil
}
