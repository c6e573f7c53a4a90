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

// Mask represents one of the eight QR code mask patterns, a number in the
// range [0, 7].
type Mask int8

// Mask values.
const (
	M0 Mask = iota
	M1
	M2
	M3
	M4
	M5
	M6
	M7
)

// autoMask tells EncodeSegments to pick the lowest-penalty mask itself.
const autoMask Mask = -1

// invert reports whether mask m flips the module at (x, y).
func (m Mask) invert(x, y int) bool {
	switch m {
	case M0:
		return (x+y)%2 == 0
	case M1:
		return y%2 == 0
	case M2:
		return x%3 == 0
	case M3:
		return (x+y)%3 == 0
	case M4:
		return (x/3+y/2)%2 == 0
	case M5:
		return x*y%2+x*y%3 == 0
	case M6:
		return (x*y%2+x*y%3)%2 == 0
	case M7:
		return ((x+y)%2+x*y%3)%2 == 0
	default:
		panic("illegal mask value")
	}
}
