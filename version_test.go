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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalModules(t *testing.T) {
	cases := [][2]int{
		{1, 208},
		{2, 359},
		{3, 567},
		{6, 1383},
		{7, 1568},
		{12, 3728},
		{15, 5243},
		{18, 7211},
		{22, 10068},
		{26, 13652},
		{32, 19723},
		{37, 25568},
		{40, 29648},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestTotalModules %v", tc), func(t *testing.T) {
			assert.Equal(t, tc[1], totalModules(tc[0]))
		})
	}
}

func TestDataCodewords(t *testing.T) {
	cases := []struct {
		version int
		level   ECCLevel
		count   int
	}{
		{3, Low, 55},
		{3, Medium, 44},
		{3, Quartile, 34},
		{6, Low, 136},
		{7, Low, 156},
		{9, Low, 232},
		{9, Medium, 182},
		{12, High, 158},
		{15, Low, 523},
		{16, Quartile, 325},
		{19, High, 341},
		{21, Low, 932},
		{22, Low, 1006},
		{22, Medium, 782},
		{22, High, 442},
		{24, Low, 1174},
		{24, High, 514},
		{28, Low, 1531},
		{30, High, 745},
		{32, High, 845},
		{33, Low, 2071},
		{33, High, 901},
		{35, Low, 2306},
		{35, Medium, 1812},
		{35, Quartile, 1286},
		{36, High, 1054},
		{37, High, 1096},
		{39, Medium, 2216},
		{40, Medium, 2334},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestDataCodewords %v", tc), func(t *testing.T) {
			assert.Equal(t, tc.count, dataCodewords(tc.version, tc.level))
		})
	}
}

func TestAlignmentPositions(t *testing.T) {
	cases := []struct {
		version   int
		positions []int
	}{
		{1, []int{6}},
		{2, []int{6, 18}},
		{3, []int{6, 22}},
		{6, []int{6, 34}},
		{7, []int{6, 22, 38}},
		{8, []int{6, 24, 42}},
		{16, []int{6, 26, 50, 74}},
		{25, []int{6, 32, 58, 84, 110}},
		{39, []int{6, 26, 54, 82, 110, 138, 166}},
		{40, []int{6, 30, 58, 86, 114, 142, 170}},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestAlignmentPositions v%d", tc.version), func(t *testing.T) {
			assert.Equal(t, tc.positions, alignmentPositions(tc.version))
		})
	}
}

// TestSelectVersionMonotone checks the spec invariant that lowering the
// ECC floor never forces a strictly higher chosen version for the same
// input.
func TestSelectVersionMonotone(t *testing.T) {
	text := "THE QUICK BROWN FOX JUMPS 0123456789 TIMES"
	vHigh, _, err := selectVersionAndLevel(Alphanumeric, len(text), High)
	assert.NoError(t, err)
	vLow, _, err := selectVersionAndLevel(Alphanumeric, len(text), Low)
	assert.NoError(t, err)
	assert.LessOrEqual(t, vLow, vHigh)
}

func TestSelectVersionAndLevelCapacityBoundary(t *testing.T) {
	// 41 numeric digits is exactly the version-1/Low numeric capacity;
	// one more digit must spill to version 2.
	digits41 := ""
	for i := 0; i < 41; i++ {
		digits41 += "1"
	}

	v, _, err := selectVersionAndLevel(Numeric, len(digits41), Low)
	assert.NoError(t, err)
	assert.Equal(t, 1, v)

	v, _, err = selectVersionAndLevel(Numeric, len(digits41)+1, Low)
	assert.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestSelectVersionAndLevelTooLong(t *testing.T) {
	_, _, err := selectVersionAndLevel(Byte, 1<<20, High)
	assert.Error(t, err)
	var qrErr *Error
	assert.ErrorAs(t, err, &qrErr)
	assert.Equal(t, InputTooLong, qrErr.Code)
}
