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

// QrCode is the immutable result of encoding: a square grid of dark/light
// modules together with the version, ECC level, and mask that produced it.
//
// During construction a builder owns both this grid and a parallel
// isFunction grid marking cells fixed by function patterns; the function
// grid is discarded once construction completes and never escapes this
// type.
type QrCode struct {
	version Version
	ecc     Ecc
	size    int
	mask    Mask
	modules [][]bool

	// isFunction is builder-local scratch, nil once EncodeSegments returns.
	isFunction [][]bool
}

// Version returns the QR code's version, in [1, 40].
func (q *QrCode) Version() Version { return q.version }

// Ecc returns the QR code's error correction level.
func (q *QrCode) Ecc() Ecc { return q.ecc }

// Size returns the width and height of the symbol in modules.
func (q *QrCode) Size() int { return q.size }

// Mask returns the mask pattern used, in [0, 7].
func (q *QrCode) Mask() Mask { return q.mask }

// At reports whether the module at (x, y) is dark. Coordinates outside
// [0, Size) return false (light).
func (q *QrCode) At(x, y int) bool {
	if x < 0 || x >= q.size || y < 0 || y >= q.size {
		return false
	}
	return q.modules[y][x]
}

// newQrCode allocates a QrCode's module and isFunction grids for the given
// version/ECC, ready for a builder to draw into.
func newQrCode(version Version, ecc Ecc) *QrCode {
	size := version.size()
	q := &QrCode{
		version: version,
		ecc:     ecc,
		size:    size,
		modules: make([][]bool, size),
		isFunction: make([][]bool, size),
	}
	for i := range q.modules {
		q.modules[i] = make([]bool, size)
		q.isFunction[i] = make([]bool, size)
	}
	return q
}

// setFunctionModule sets the module at (x, y) and marks it as a function
// module (never touched by masking).
func (q *QrCode) setFunctionModule(x, y int, dark bool) {
	q.modules[y][x] = dark
	q.isFunction[y][x] = true
}
