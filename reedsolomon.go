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

// Reed-Solomon coding over GF(2^8) with primitive polynomial 0x11D and
// generator element 0x02.

// reedSolomonMultiply returns the product of x and y in GF(2^8/0x11D),
// computed by Russian-peasant multiplication.
func reedSolomonMultiply(x, y byte) byte {
	z := 0
	for i := 7; i >= 0; i-- {
		z = z<<1 ^ (z>>7)*0x11D
		z ^= int(y>>uint(i)&1) * int(x)
	}
	return byte(z)
}

// reedSolomonComputeDivisor builds the generator (divisor) polynomial of
// the given degree, stored highest-to-lowest power, excluding the leading
// term (always 1). Computed by iteratively multiplying by (x - r^i) for i
// in [0, degree), with r = 0x02.
func reedSolomonComputeDivisor(degree int) []byte {
	if degree < 1 || degree > 255 {
		panic("reedSolomonComputeDivisor: degree out of range")
	}

	result := make([]byte, degree)
	result[degree-1] = 1 // Start with the monomial x^0.

	root := byte(1)
	for i := 0; i < degree; i++ {
		for j := 0; j < len(result); j++ {
			result[j] = reedSolomonMultiply(result[j], root)
			if j+1 < len(result) {
				result[j] ^= result[j+1]
			}
		}
		root = reedSolomonMultiply(root, 0x02)
	}
	return result
}

// reedSolomonComputeRemainder returns the len(divisor)-byte remainder of
// dividing data by divisor in GF(2^8/0x11D).
func reedSolomonComputeRemainder(data, divisor []byte) []byte {
	result := make([]byte, len(divisor))
	for _, b := range data {
		factor := b ^ result[0]
		copy(result, result[1:])
		result[len(result)-1] = 0
		for i, d := range divisor {
			result[i] ^= reedSolomonMultiply(d, factor)
		}
	}
	return result
}
