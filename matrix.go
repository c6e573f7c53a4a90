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

package qr

// This file lays out the module grid: function patterns, the data zigzag,
// and format/version bit stamping. Drawing order matters (later stamps
// overwrite earlier ones where they collide) and must match the sequence
// below exactly.

// drawFunctionPatterns draws everything except the data codewords: timing
// patterns, the three finder patterns, alignment patterns, a placeholder
// set of format bits (mask M0, overwritten later), and the version bits.
func (q *QrCode) drawFunctionPatterns() {
	// Timing patterns: row and column 6, alternating starting dark at 0.
	for i := 0; i < q.size; i++ {
		q.setFunctionModule(6, i, i%2 == 0)
		q.setFunctionModule(i, 6, i%2 == 0)
	}

	// Finder patterns (including separator), all corners but bottom-right.
	q.drawFinderPattern(3, 3)
	q.drawFinderPattern(q.size-4, 3)
	q.drawFinderPattern(3, q.size-4)

	// Alignment patterns, skipping the three finder corners.
	pos := alignmentPatternPositions[q.version]
	n := len(pos)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == 0 && j == 0 || i == 0 && j == n-1 || i == n-1 && j == 0 {
				continue
			}
			q.drawAlignmentPattern(pos[i], pos[j])
		}
	}

	q.drawFormatBits(M0) // Placeholder, overwritten after mask selection.
	q.drawVersion()
}

// drawFinderPattern draws a 9x9 finder pattern (including its one-module
// light separator) centered at (x, y). Cells that fall outside the symbol
// are silently dropped.
func (q *QrCode) drawFinderPattern(x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			dist := maxInt(absInt(dx), absInt(dy))
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= q.size || yy < 0 || yy >= q.size {
				continue
			}
			q.setFunctionModule(xx, yy, dist != 2 && dist != 4)
		}
	}
}

// drawAlignmentPattern draws a 5x5 alignment pattern centered at (x, y).
func (q *QrCode) drawAlignmentPattern(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			q.setFunctionModule(x+dx, y+dy, maxInt(absInt(dx), absInt(dy)) != 1)
		}
	}
}

// drawFormatBits packs and draws two copies of the 15-bit format
// information (ECC level + mask, BCH-protected and XOR-masked), plus the
// single always-dark module at (8, size-8).
func (q *QrCode) drawFormatBits(mask Mask) {
	data := q.ecc.formatBits()<<3 | int(mask)
	rem := data
	for i := 0; i < 10; i++ {
		rem = rem<<1 ^ (rem>>9)*0x537
	}
	bits := data<<10 | rem
	bits ^= 0x5412
	if bits>>15 != 0 {
		panic("drawFormatBits: format bits overflowed 15 bits")
	}

	// First copy, around the top-left finder pattern.
	for i := 0; i <= 5; i++ {
		q.setFunctionModule(8, i, getBit(bits, i))
	}
	q.setFunctionModule(8, 7, getBit(bits, 6))
	q.setFunctionModule(8, 8, getBit(bits, 7))
	q.setFunctionModule(7, 8, getBit(bits, 8))
	for i := 9; i < 15; i++ {
		q.setFunctionModule(14-i, 8, getBit(bits, i))
	}

	// Second copy, straddling the top-right and bottom-left finders.
	for i := 0; i < 8; i++ {
		q.setFunctionModule(q.size-1-i, 8, getBit(bits, i))
	}
	for i := 8; i < 15; i++ {
		q.setFunctionModule(8, q.size-15+i, getBit(bits, i))
	}
	q.setFunctionModule(8, q.size-8, true) // Always dark.
}

// drawVersion draws two copies of the 18-bit BCH-coded version number, for
// versions 7 and above; a no-op below that.
func (q *QrCode) drawVersion() {
	if q.version < 7 {
		return
	}

	rem := int(q.version)
	for i := 0; i < 12; i++ {
		rem = rem<<1 ^ (rem>>11)*0x1F25
	}
	bits := int(q.version)<<12 | rem
	if bits>>18 != 0 {
		panic("drawVersion: version bits overflowed 18 bits")
	}

	for i := 0; i < 18; i++ {
		bit := getBit(bits, i)
		a := q.size - 11 + i%3
		b := i / 3
		q.setFunctionModule(a, b, bit)
		q.setFunctionModule(b, a, bit)
	}
}

// drawCodewords zigzags the given codewords onto every non-function
// module of the grid, scanning column pairs from right to left and
// skipping the timing column. Panics if data does not exactly fill the
// data area (a programmer error: data length is fixed by the caller's
// version/ECC choice).
func (q *QrCode) drawCodewords(data []byte) {
	if len(data) != numRawDataModules[q.version]/8 {
		panic("drawCodewords: incorrect data length")
	}

	i := 0 // Bit index into data.
	for right := q.size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for vert := 0; vert < q.size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				upward := (right+1)&2 == 0

				var y int
				if upward {
					y = q.size - 1 - vert
				} else {
					y = vert
				}

				if !q.isFunction[y][x] && i < len(data)*8 {
					q.modules[y][x] = getBit(int(data[i>>3]), 7-(i&7))
					i++
				}
				// Any of the 0-7 remainder bits are left as light,
				// matching their initial zero value.
			}
		}
	}

	if i != len(data)*8 {
		panic("drawCodewords: did not consume every bit of data")
	}
}

// addECCAndInterleave splits data into the version/ECC's blocks, computes
// a Reed-Solomon remainder per block, and interleaves data and ECC
// codewords column-major to produce the final raw codeword sequence.
func (q *QrCode) addECCAndInterleave(data []byte) []byte {
	if len(data) != numDataCodewords[q.ecc][q.version] {
		panic("addECCAndInterleave: data is not the correct length")
	}

	numBlocks := numErrorCorrectionBlocks[q.ecc][q.version]
	blockEccLen := eccCodewordsPerBlock[q.ecc][q.version]
	rawCodewords := numRawDataModules[q.version] / 8
	numShortBlocks := numBlocks - rawCodewords%numBlocks
	shortBlockLen := rawCodewords / numBlocks

	blocks := make([][]byte, numBlocks)
	divisor := reedSolomonDivisors[blockEccLen]
	for i, k := 0, 0; i < numBlocks; i++ {
		dataLen := shortBlockLen - blockEccLen
		if i >= numShortBlocks {
			dataLen++
		}
		dat := data[k : k+dataLen]
		k += dataLen

		block := make([]byte, shortBlockLen+1)
		copy(block, dat)
		ecc := reedSolomonComputeRemainder(dat, divisor)
		copy(block[len(block)-len(ecc):], ecc)
		blocks[i] = block
	}

	result := make([]byte, rawCodewords)
	k := 0
	for i := 0; i < len(blocks[0]); i++ {
		for j, block := range blocks {
			// Short blocks hold a virtual padding slot at this column;
			// skip it rather than emitting it.
			if i == shortBlockLen-blockEccLen && j < numShortBlocks {
				continue
			}
			result[k] = block[i]
			k++
		}
	}

	return result
}

func getBit(x, i int) bool {
	return x>>uint(i)&1 != 0
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
