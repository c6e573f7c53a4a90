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
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Segment is a single, immutable segment of a QR code's data stream: a
// mode, a character count, and the mode's encoded bit payload. A QR code
// may be built from more than one segment.
type Segment struct {
	mode     mode
	numChars int
	data     bitBuffer
}

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var (
	alphanumericRegexp = regexp.MustCompile(`^[A-Z0-9 $%*+./:-]*$`)
	numericRegexp      = regexp.MustCompile(`^[0-9]*$`)
)

// getTotalBits returns the total number of bits segs would occupy at the
// given version (4-bit mode indicator + char-count field + data, per
// segment), or -1 if any segment's character count does not fit its
// char-count field, or if the sum would overflow.
func getTotalBits(segs []*Segment, version Version) int {
	var result int64
	for _, seg := range segs {
		ccBits := seg.mode.ccBits(version)
		if seg.numChars >= 1<<uint(ccBits) {
			return -1
		}
		result += int64(4 + ccBits + len(seg.data))
		if result > math.MaxInt32 {
			return -1
		}
	}
	return int(result)
}

// MakeAlphanumeric builds an alphanumeric segment from text (digits,
// uppercase letters, and the symbols " $%*+-./:"). Empty text is allowed
// and produces a zero-bit segment. Returns BadCharset if text contains a
// character outside that alphabet.
func MakeAlphanumeric(text string) (*Segment, error) {
	if !alphanumericRegexp.MatchString(text) {
		return nil, newError(BadCharset, "MakeAlphanumeric: %q contains non-alphanumeric characters", text)
	}

	bb := make(bitBuffer, 0, len(text)*6)
	var i int
	for ; i <= len(text)-2; i += 2 { // Process pairs of characters.
		val := strings.IndexByte(alphanumericCharset, text[i]) * 45
		val += strings.IndexByte(alphanumericCharset, text[i+1])
		bb.appendBits(val, 11)
	}
	if i < len(text) { // One character remaining.
		bb.appendBits(strings.IndexByte(alphanumericCharset, text[i]), 6)
	}

	return &Segment{mode: modeAlphanumeric, numChars: len(text), data: bb}, nil
}

// MakeBytes builds a byte-mode segment from arbitrary data, 8 bits per
// input byte, most-significant-bit first.
func MakeBytes(data []byte) *Segment {
	bb := make(bitBuffer, 0, len(data)*8)
	for _, b := range data {
		bb.appendBits(int(b), 8)
	}
	return &Segment{mode: modeByte, numChars: len(data), data: bb}
}

// MakeEci builds an ECI designator segment for the given assignment value,
// which must lie in [0, 1_000_000). Returns BadEci otherwise.
func MakeEci(assignValue int) (*Segment, error) {
	bb := make(bitBuffer, 0, 24)
	switch {
	case assignValue < 0:
		return nil, newError(BadEci, "MakeEci: assignment value %d is negative", assignValue)
	case assignValue < 1<<7:
		bb.appendBits(assignValue, 8)
	case assignValue < 1<<14:
		bb.appendBits(2, 2)
		bb.appendBits(assignValue, 14)
	case assignValue < 1_000_000:
		bb.appendBits(6, 3)
		bb.appendBits(assignValue, 21)
	default:
		return nil, newError(BadEci, "MakeEci: assignment value %d out of range [0, 1000000)", assignValue)
	}

	return &Segment{mode: modeEci, numChars: 0, data: bb}, nil
}

// MakeNumeric builds a numeric segment from a string of decimal digits.
// Empty input is allowed and produces a zero-bit segment. Digits are
// consumed in groups of up to three: a full group of 3 encodes in 10 bits,
// a group of 2 in 7 bits, a group of 1 in 4 bits. Returns BadCharset if
// digits contains a non-digit character.
func MakeNumeric(digits string) (*Segment, error) {
	if !numericRegexp.MatchString(digits) {
		return nil, newError(BadCharset, "MakeNumeric: %q contains non-numeric characters", digits)
	}

	bb := make(bitBuffer, 0, len(digits)*4)
	for i := 0; i < len(digits); {
		n := len(digits) - i
		if n > 3 {
			n = 3
		}
		d, _ := strconv.Atoi(digits[i : i+n]) // Safe: regexp above confirmed digits only.
		bb.appendBits(d, n*3+1)
		i += n
	}

	return &Segment{mode: modeNumeric, numChars: len(digits), data: bb}, nil
}

// MakeSegment automatically selects the most compact mode for text:
// Numeric if every character is a digit, Alphanumeric if every character
// is in the alphanumeric charset, otherwise Byte (text encoded as UTF-8).
// Returns EmptyText if text is empty; no multi-segment planning is
// performed.
func MakeSegment(text string) (*Segment, error) {
	if len(text) == 0 {
		return nil, newError(EmptyText, "MakeSegment: text must not be empty")
	}
	if numericRegexp.MatchString(text) {
		return MakeNumeric(text)
	}
	if alphanumericRegexp.MatchString(text) {
		return MakeAlphanumeric(text)
	}
	return MakeBytes([]byte(text)), nil
}
