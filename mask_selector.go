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

import "math"

// Penalty weights for the four masking evaluation rules.
const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// applyMask XORs every non-function module whose coordinate satisfies
// mask's predicate. Applying the same mask twice is a no-op (XOR
// involution), which is how this method both applies and un-applies a
// trial mask during selection.
func (q *QrCode) applyMask(mask Mask) {
	for y := 0; y < q.size; y++ {
		for x := 0; x < q.size; x++ {
			if mask.invert(x, y) && !q.isFunction[y][x] {
				q.modules[y][x] = !q.modules[y][x]
			}
		}
	}
}

// chooseMask applies, scores, and un-applies each of the 8 masks in place
// (no extra grid allocation), and returns the one with the lowest penalty;
// ties favor the lower mask index. If requested is not autoMask, it is
// used directly without evaluation.
func (q *QrCode) chooseMask(requested Mask) Mask {
	if requested != autoMask {
		q.applyMask(requested)
		q.drawFormatBits(requested)
		return requested
	}

	best := Mask(0)
	bestPenalty := math.MaxInt32
	for m := M0; m <= M7; m++ {
		q.applyMask(m)
		q.drawFormatBits(m)
		penalty := q.getPenaltyScore()
		if penalty < bestPenalty {
			best = m
			bestPenalty = penalty
		}
		q.applyMask(m) // Undo: XOR is its own inverse.
	}

	q.applyMask(best)
	q.drawFormatBits(best)
	return best
}

// getPenaltyScore computes the total penalty of the grid's current state
// under rules 1-4.
func (q *QrCode) getPenaltyScore() int {
	result := 0

	// Rule 1 + rule 3, scanned by row then by column.
	for y := 0; y < q.size; y++ {
		result += q.lineScanPenalty(func(i int) bool { return q.modules[y][i] })
	}
	for x := 0; x < q.size; x++ {
		result += q.lineScanPenalty(func(i int) bool { return q.modules[i][x] })
	}

	// Rule 2: 2x2 blocks of uniform color.
	for y := 0; y < q.size-1; y++ {
		for x := 0; x < q.size-1; x++ {
			c := q.modules[y][x]
			if c == q.modules[y][x+1] && c == q.modules[y+1][x] && c == q.modules[y+1][x+1] {
				result += penaltyN2
			}
		}
	}

	// Rule 4: overall color balance.
	dark := 0
	for _, row := range q.modules {
		for _, c := range row {
			if c {
				dark++
			}
		}
	}
	total := q.size * q.size
	k := (absInt(dark*20-total*10)+total-1)/total - 1
	if k < 0 {
		k = 0
	}
	result += k * penaltyN4

	return result
}

// lineScanPenalty runs rules 1 and 3 over a single row or column, accessed
// through at(i) for i in [0, size).
func (q *QrCode) lineScanPenalty(at func(i int) bool) int {
	result := 0
	runColor := false
	runLen := 0
	var history [7]int

	for i := 0; i < q.size; i++ {
		if at(i) == runColor {
			runLen++
			if runLen == 5 {
				result += penaltyN1
			} else if runLen > 5 {
				result++
			}
		} else {
			q.finderPenaltyAddHistory(runLen, &history)
			if !runColor {
				result += q.finderPenaltyCountPatterns(&history) * penaltyN3
			}
			runColor = at(i)
			runLen = 1
		}
	}
	result += q.finderPenaltyTerminateAndCount(runColor, runLen, &history) * penaltyN3
	return result
}

// finderPenaltyAddHistory pushes currentRunLength to the front of history,
// dropping the oldest entry. The very first run of a line is implicitly
// preceded by the light quiet zone, so it gets size added to its length.
func (q *QrCode) finderPenaltyAddHistory(currentRunLength int, history *[7]int) {
	if history[0] == 0 {
		currentRunLength += q.size
	}
	copy(history[1:], history[:6])
	history[0] = currentRunLength
}

// finderPenaltyCountPatterns looks for one or two finder-like
// (dark:light:dark*3:light:dark, with >=4x light border) occurrences in
// the 7-entry run history.
func (q *QrCode) finderPenaltyCountPatterns(history *[7]int) int {
	n := history[1]
	if n > q.size*3 {
		panic("finderPenaltyCountPatterns: run history corrupted")
	}
	core := n > 0 && history[2] == n && history[3] == n*3 && history[4] == n && history[5] == n

	count := 0
	if core && history[0] >= n*4 && history[6] >= n {
		count++
	}
	if core && history[6] >= n*4 && history[0] >= n {
		count++
	}
	return count
}

// finderPenaltyTerminateAndCount flushes the trailing run (implicitly
// bordered by the light quiet zone at the symbol edge) and counts any
// finder-like pattern it completes.
func (q *QrCode) finderPenaltyTerminateAndCount(runColor bool, runLength int, history *[7]int) int {
	if runColor { // Terminate a dark run before adding the border.
		q.finderPenaltyAddHistory(runLength, history)
		runLength = 0
	}
	runLength += q.size
	q.finderPenaltyAddHistory(runLength, history)
	return q.finderPenaltyCountPatterns(history)
}
