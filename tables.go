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

// Static per-version, per-ECC-level capacity tables, plus the derived
// tables built from them at init time: raw data module counts, data
// codeword counts, alignment pattern positions, and Reed-Solomon divisor
// polynomials (one per distinct ECC-codewords-per-block value in use).
var (
	alignmentPatternPositions [41][]int

	// eccCodewordsPerBlock[ecc][version]. Index 0 is unused padding.
	eccCodewordsPerBlock = [4][41]int{
		{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},  // Low
		{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28}, // Medium
		{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // Quartile
		{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // High
	}

	// numDataCodewords[ecc][version], derived in init().
	numDataCodewords [4][41]int

	// numErrorCorrectionBlocks[ecc][version]. Index 0 is unused padding.
	numErrorCorrectionBlocks = [4][41]int{
		{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},              // Low
		{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},     // Medium
		{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},  // Quartile
		{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81}, // High
	}

	// numRawDataModules[version], the number of data-bearing modules
	// (including remainder bits) once all function modules are excluded.
	numRawDataModules [41]int

	reedSolomonDivisors = make(map[int][]byte)
)

func init() {
	// numRawDataModules: total modules minus finder/timing/alignment and
	// (for version >= 7) version-information modules. Range [208, 29648].
	for v := 1; v <= 40; v++ {
		result := (16*v+128)*v + 64
		if v >= 2 {
			numAlign := v/7 + 2
			result -= (25*numAlign-10)*numAlign - 55
			if v >= 7 {
				result -= 36
			}
		}
		if result < 208 || result > 29648 {
			panic("numRawDataModules miscalculated")
		}
		numRawDataModules[v] = result
	}

	// numDataCodewords: raw codewords minus the ECC codewords every block
	// carries.
	for e := Low; e <= High; e++ {
		for v := 1; v <= 40; v++ {
			numDataCodewords[e][v] = numRawDataModules[v]/8 - eccCodewordsPerBlock[e][v]*numErrorCorrectionBlocks[e][v]
		}
	}

	// Precompute one Reed-Solomon divisor polynomial per distinct
	// ECC-codewords-per-block value actually used by the tables above.
	for e := 0; e < 4; e++ {
		for v := 1; v <= 40; v++ {
			w := eccCodewordsPerBlock[e][v]
			if _, ok := reedSolomonDivisors[w]; !ok {
				reedSolomonDivisors[w] = reedSolomonComputeDivisor(w)
			}
		}
	}

	for v := 1; v <= 40; v++ {
		alignmentPatternPositions[v] = getAlignmentPatternPositions(Version(v))
	}
}

// getAlignmentPatternPositions returns the ascending list of alignment
// pattern center coordinates (shared by both axes) for a version. Version 1
// has no alignment patterns.
func getAlignmentPatternPositions(version Version) []int {
	if version == 1 {
		return nil
	}

	v := int(version)
	n := v/7 + 2
	step := ((v*8 + n*3 + 5) / (n*4 - 4)) * 2

	result := make([]int, n)
	result[0] = 6
	for i, pos := n-1, v*4+17-7; i >= 1; i-- {
		result[i] = pos
		pos -= step
	}
	return result
}
