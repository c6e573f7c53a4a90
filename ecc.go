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

// Ecc represents the error correction level of a QR code, in ascending
// order of correction strength.
type Ecc int8

// Ecc values.
const (
	Low      Ecc = iota // Recovers ~7% of data.
	Medium              // Recovers ~15% of data.
	Quartile            // Recovers ~25% of data.
	High                // Recovers ~30% of data.
)

// formatBits returns the table index used when packing format bits. This is
// distinct from the ordinal value above: Low->1, Medium->0, Quartile->3,
// High->2.
func (e Ecc) formatBits() int {
	switch e {
	case Low:
		return 1
	case Medium:
		return 0
	case Quartile:
		return 3
	case High:
		return 2
	default:
		panic("unknown ECC level")
	}
}
