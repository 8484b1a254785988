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

// addECAndInterleave splits data into blocks per ecBlocks[level][version],
// appends a Reed-Solomon remainder to each, and interleaves the result: all
// blocks' data bytes column-by-column (short blocks simply run out first and
// are skipped on the final data column), then all blocks' EC bytes
// column-by-column (every block's EC tail is the same length, so no skipping
// is needed there).
func addECAndInterleave(data []byte, version int, level ECCLevel) []byte {
	numBlocks := ecBlocks[level][version]
	ecLen := ecCodewordsPerBlock[level][version]
	rawCodewords := totalModules(version) / 8
	shortLen := rawCodewords / numBlocks
	shortCount := numBlocks - rawCodewords%numBlocks

	generator := generatorFor(ecLen)

	blockData := make([][]byte, numBlocks)
	blockEC := make([][]byte, numBlocks)
	maxDataLen := 0
	offset := 0
	for j := 0; j < numBlocks; j++ {
		dataLen := shortLen - ecLen
		if j >= shortCount {
			dataLen++
		}
		if dataLen > maxDataLen {
			maxDataLen = dataLen
		}
		block := data[offset : offset+dataLen]
		offset += dataLen

		padded := make([]byte, dataLen+ecLen)
		copy(padded, block)

		blockData[j] = block
		blockEC[j] = polyRemainder(padded, generator)
	}

	result := make([]byte, rawCodewords)
	k := 0
	for i := 0; i < maxDataLen; i++ {
		for j := 0; j < numBlocks; j++ {
			if i < len(blockData[j]) {
				result[k] = blockData[j][i]
				k++
			}
		}
	}
	for i := 0; i < ecLen; i++ {
		for j := 0; j < numBlocks; j++ {
			result[k] = blockEC[j][i]
			k++
		}
	}

	return result
}
