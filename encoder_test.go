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
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAssembleDataCodewordsKnownFixture checks the canonical "01234567"
// numeric/Medium-ECC test vector: the data codewords begin with
// 10 20 0C 56 61 80 EC 11 (mode+count header, packed digits, terminator,
// and the start of the alternating pad bytes).
func TestAssembleDataCodewordsKnownFixture(t *testing.T) {
	seg, err := MakeNumeric("01234567")
	assert.NoError(t, err)

	data, version, ecc, err := assembleDataCodewords([]*Segment{seg}, Medium, false, MinVersion, MaxVersion)
	assert.NoError(t, err)
	assert.Equal(t, Version(1), version)
	assert.Equal(t, Medium, ecc)

	want := []byte{0x10, 0x20, 0x0C, 0x56, 0x61, 0x80, 0xEC, 0x11}
	assert.Equal(t, want, data[:len(want)])
	assert.Len(t, data, numDataCodewords[Medium][1])
}

func TestEncodeNumericEndToEnd(t *testing.T) {
	q, err := EncodeNumeric("01234567", Medium)
	assert.NoError(t, err)
	assert.Equal(t, Version(1), q.Version())
	assert.Equal(t, 21, q.Size())
}

func TestEncodeTextEmptyProducesValidCode(t *testing.T) {
	q, err := EncodeText("", Low)
	assert.NoError(t, err)
	assert.Equal(t, Version(1), q.Version())
}

func TestEncodeAlphanumericRejectsBadCharset(t *testing.T) {
	_, err := EncodeAlphanumeric("lowercase not allowed", Low)
	assert.True(t, errors.Is(err, ErrBadCharset))
}

// TestEncodeBinaryDataTooLongBoundary checks the version-40/Low capacity
// boundary: 2953 bytes of byte-mode data is the maximum, one more fails.
func TestEncodeBinaryDataTooLongBoundary(t *testing.T) {
	ok := strings.Repeat("A", 2953)
	_, err := EncodeBinary([]byte(ok), Low)
	assert.NoError(t, err)

	tooLong := strings.Repeat("A", 2954)
	_, err = EncodeBinary([]byte(tooLong), Low)
	assert.True(t, errors.Is(err, ErrDataTooLong))
}

func TestEncodeSegmentsInvalidVersionRange(t *testing.T) {
	seg, err := MakeNumeric("123")
	assert.NoError(t, err)

	_, err = EncodeSegments([]*Segment{seg}, Low, WithMinVersion(10), WithMaxVersion(5))
	assert.True(t, errors.Is(err, ErrInvalidVersion))
}

func TestEncodeSegmentsRespectsExplicitMask(t *testing.T) {
	seg, err := MakeNumeric("123")
	assert.NoError(t, err)

	q, err := EncodeSegments([]*Segment{seg}, Low, WithMask(M3))
	assert.NoError(t, err)
	assert.Equal(t, Mask(M3), q.Mask())
}

func TestEncodeSegmentsRespectsMinVersion(t *testing.T) {
	seg, err := MakeNumeric("1")
	assert.NoError(t, err)

	q, err := EncodeSegments([]*Segment{seg}, Low, WithMinVersion(10))
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, int(q.Version()), 10)
}

// TestBoostEccNeverLowersVersion checks that turning on ECC boosting never
// requires a larger version than boosting off would have chosen, for data
// that already fits with room to spare.
func TestBoostEccNeverLowersVersion(t *testing.T) {
	seg, err := MakeNumeric("0123456789")
	assert.NoError(t, err)

	_, noBoostVersion, noBoostEcc, err := assembleDataCodewords([]*Segment{seg}, Low, false, MinVersion, MaxVersion)
	assert.NoError(t, err)
	assert.Equal(t, Low, noBoostEcc)

	_, version, ecc, err := assembleDataCodewords([]*Segment{seg}, Low, true, MinVersion, MaxVersion)
	assert.NoError(t, err)

	assert.GreaterOrEqual(t, int(ecc), int(Low))
	assert.Equal(t, noBoostVersion, version)
}

func TestEncodeMultipleSegmentsConcatenates(t *testing.T) {
	num, err := MakeNumeric("123")
	assert.NoError(t, err)
	alpha, err := MakeAlphanumeric("ABC")
	assert.NoError(t, err)

	q, err := EncodeSegments([]*Segment{num, alpha}, Low)
	assert.NoError(t, err)
	assert.NotNil(t, q)
}

func TestEncodeSegmentsIsFunctionClearedAfterBuild(t *testing.T) {
	q, err := EncodeNumeric("42", Low)
	assert.NoError(t, err)
	assert.Nil(t, q.isFunction)
}
