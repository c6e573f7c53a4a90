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

// mode represents the mode (numeric, alphanumeric, byte, or ECI) of a
// segment.
type mode struct {
	bits    int8    // The 4-bit mode indicator.
	ccWidth [3]int8 // Character-count-field width, indexed by version group.
}

// Mode values. Kanji is an explicit Non-goal of this package (no mixed-mode
// or locale-aware segmentation is provided), so it is not represented here.
var (
	modeNumeric      = mode{0x1, [3]int8{10, 12, 14}}
	modeAlphanumeric = mode{0x2, [3]int8{9, 11, 13}}
	modeByte         = mode{0x4, [3]int8{8, 16, 16}}
	modeEci          = mode{0x7, [3]int8{0, 0, 0}}
)

// ccBits returns the character-count field width for this mode at the
// given version.
func (m mode) ccBits(ver Version) int {
	return int(m.ccWidth[(int(ver)+7)/17])
}
