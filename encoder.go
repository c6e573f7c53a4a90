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

// encodeOptions holds the knobs EncodeOption can adjust on top of
// EncodeSegments' defaults (auto version range, auto mask, ECC boosting
// on).
type encodeOptions struct {
	boostEcc   bool
	mask       Mask
	minVersion Version
	maxVersion Version
}

// EncodeOption customizes a call to EncodeSegments.
type EncodeOption func(*encodeOptions)

// WithMask forces a specific mask instead of automatic selection.
func WithMask(mask Mask) EncodeOption {
	return func(o *encodeOptions) { o.mask = mask }
}

// WithBoostEcc controls whether EncodeSegments may raise the ECC level
// beyond what was requested when the chosen version has room to spare. On
// by default.
func WithBoostEcc(boost bool) EncodeOption {
	return func(o *encodeOptions) { o.boostEcc = boost }
}

// WithMinVersion restricts the version search to start no lower than
// version.
func WithMinVersion(version Version) EncodeOption {
	return func(o *encodeOptions) { o.minVersion = version }
}

// WithMaxVersion restricts the version search to go no higher than
// version.
func WithMaxVersion(version Version) EncodeOption {
	return func(o *encodeOptions) { o.maxVersion = version }
}

// EncodeText encodes text as a QR code, automatically choosing Numeric,
// Alphanumeric, or Byte mode for it. Unlike MakeSegment, empty text is
// accepted here: it produces a valid (empty-payload) QR code, since
// EncodeText is a convenience entry point rather than the strict
// auto-segment factory.
func EncodeText(text string, ecc Ecc) (*QrCode, error) {
	return EncodeSegments(autoSegments(text), ecc)
}

// autoSegments is the unexported, error-free counterpart to MakeSegment
// used by EncodeText: empty text yields no segments at all instead of an
// EmptyText error, matching EncodeText's role as a blanket convenience
// wrapper.
func autoSegments(text string) []*Segment {
	if len(text) == 0 {
		return nil
	}
	seg, err := MakeSegment(text)
	if err != nil {
		// MakeSegment only fails on empty text, already excluded above.
		panic(err)
	}
	return []*Segment{seg}
}

// EncodeAlphanumeric encodes text as a single alphanumeric-mode segment.
func EncodeAlphanumeric(text string, ecc Ecc) (*QrCode, error) {
	seg, err := MakeAlphanumeric(text)
	if err != nil {
		return nil, err
	}
	return EncodeSegments([]*Segment{seg}, ecc)
}

// EncodeNumeric encodes a string of decimal digits as a single
// numeric-mode segment.
func EncodeNumeric(digits string, ecc Ecc) (*QrCode, error) {
	seg, err := MakeNumeric(digits)
	if err != nil {
		return nil, err
	}
	return EncodeSegments([]*Segment{seg}, ecc)
}

// EncodeBinary encodes arbitrary data as a single byte-mode segment.
func EncodeBinary(data []byte, ecc Ecc) (*QrCode, error) {
	return EncodeSegments([]*Segment{MakeBytes(data)}, ecc)
}

// EncodeSegments builds a QR code from caller-assembled segments, in the
// order given (segments are never reordered). It selects the smallest
// version that fits, optionally boosts the ECC level, assembles and pads
// the bit stream, computes and interleaves Reed-Solomon codewords, and
// draws, masks, and stamps the final matrix.
func EncodeSegments(segs []*Segment, ecc Ecc, opts ...EncodeOption) (*QrCode, error) {
	o := encodeOptions{
		boostEcc:   true,
		mask:       autoMask,
		minVersion: MinVersion,
		maxVersion: MaxVersion,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.minVersion < MinVersion || o.maxVersion > MaxVersion || o.maxVersion < o.minVersion {
		return nil, newError(InvalidVersion, "invalid version range [%d, %d]", o.minVersion, o.maxVersion)
	}

	dataCodewords, version, ecc, err := assembleDataCodewords(segs, ecc, o.boostEcc, o.minVersion, o.maxVersion)
	if err != nil {
		return nil, err
	}

	q := newQrCode(version, ecc)
	q.drawFunctionPatterns()
	allCodewords := q.addECCAndInterleave(dataCodewords)
	q.drawCodewords(allCodewords)
	q.mask = q.chooseMask(o.mask)
	q.isFunction = nil

	return q, nil
}

// assembleDataCodewords picks the smallest version in [minVersion,
// maxVersion] that fits segs, optionally boosts ecc, and returns the
// final, terminated, padded, byte-packed data codewords (everything the
// encoder does up to but not including Reed-Solomon and layout).
func assembleDataCodewords(segs []*Segment, ecc Ecc, boostEcc bool, minVersion, maxVersion Version) ([]byte, Version, Ecc, error) {
	version := minVersion
	var usedBits int
	for {
		capacityBits := numDataCodewords[ecc][version] * 8
		usedBits = getTotalBits(segs, version)
		if usedBits != -1 && usedBits <= capacityBits {
			break
		}
		if version >= maxVersion {
			if usedBits != -1 {
				return nil, 0, 0, newError(DataTooLong, "data length = %d bits, max capacity = %d bits", usedBits, capacityBits)
			}
			return nil, 0, 0, newError(DataTooLong, "segment character count exceeds its mode's field width at every version tried")
		}
		version++
	}

	// Boost ECC level while the data still fits at the chosen version.
	if boostEcc {
		for newEcc := Medium; newEcc <= High; newEcc++ {
			if usedBits <= numDataCodewords[newEcc][version]*8 {
				ecc = newEcc
			}
		}
	}

	// Concatenate segments into the data bit stream.
	bb := make(bitBuffer, 0, usedBits)
	for _, seg := range segs {
		bb.appendBits(int(seg.mode.bits), 4)
		bb.appendBits(seg.numChars, seg.mode.ccBits(version))
		bb = append(bb, seg.data...)
	}
	if len(bb) != usedBits {
		panic("assembleDataCodewords: bit stream length does not match the computed capacity")
	}

	capacityBits := numDataCodewords[ecc][version] * 8

	// Terminator (up to 4 zero bits) and pad to a byte boundary.
	term := 4
	if remaining := capacityBits - len(bb); remaining < term {
		term = remaining
	}
	bb.appendBits(0, term)
	bb.appendBits(0, (8-len(bb)%8)%8)
	if len(bb)%8 != 0 {
		panic("assembleDataCodewords: bit stream is not byte-aligned after padding")
	}

	// Pad with alternating bytes until capacity is reached.
	for padByte := 0xEC; len(bb) < capacityBits; padByte ^= 0xEC ^ 0x11 {
		bb.appendBits(padByte, 8)
	}

	return bb.packBytes(), version, ecc, nil
}
