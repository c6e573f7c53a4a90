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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewQrCodeSize(t *testing.T) {
	q := newQrCode(1, Low)
	assert.Equal(t, 21, q.Size())

	q = newQrCode(40, Low)
	assert.Equal(t, 177, q.Size())
}

func TestAtOutOfBoundsIsLight(t *testing.T) {
	q := newQrCode(1, Low)
	assert.False(t, q.At(-1, 0))
	assert.False(t, q.At(0, -1))
	assert.False(t, q.At(q.Size(), 0))
	assert.False(t, q.At(0, q.Size()))
}

func TestSetFunctionModuleMarksBothGrids(t *testing.T) {
	q := newQrCode(1, Low)
	q.setFunctionModule(5, 5, true)
	assert.True(t, q.modules[5][5])
	assert.True(t, q.isFunction[5][5])

	q.setFunctionModule(6, 6, false)
	assert.False(t, q.modules[6][6])
	assert.True(t, q.isFunction[6][6])
}

func TestQrCodeAccessors(t *testing.T) {
	q := newQrCode(5, Quartile)
	q.mask = M3
	assert.Equal(t, Version(5), q.Version())
	assert.Equal(t, Quartile, q.Ecc())
	assert.Equal(t, Mask(M3), q.Mask())
}
