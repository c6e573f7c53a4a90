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

import "fmt"

// Kind classifies the caller-input errors this package can return.
//
// Ways to handle these errors include:
//
// - DataTooLong: decrease the error correction level, split the data into
//   shorter segments, or shorten the text/binary payload.
// - BadCharset: use a less strict constructor (MakeBytes, or MakeSegment's
//   automatic mode selection) instead of MakeNumeric/MakeAlphanumeric.
// - BadEci: pass an assignment value in [0, 1_000_000).
// - EmptyText: pass non-empty text to MakeSegment.
// - InvalidVersion: pass a version in [1, 40].
type Kind int8

const (
	// DataTooLong means the payload exceeds version-40 capacity at the
	// requested error correction level.
	DataTooLong Kind = iota
	// BadCharset means a character outside a strict-mode constructor's
	// alphabet was supplied.
	BadCharset
	// BadEci means an ECI assignment value fell outside [0, 1_000_000).
	BadEci
	// EmptyText means MakeSegment was called with an empty string.
	EmptyText
	// InvalidVersion means a version value fell outside [1, 40].
	InvalidVersion
	// InvalidBitWidth means appendBits was called with an out-of-range
	// length or a value too large to fit it. This is a programmer error:
	// it is only ever raised as a panic, never returned.
	InvalidBitWidth
)

func (k Kind) String() string {
	switch k {
	case DataTooLong:
		return "DataTooLong"
	case BadCharset:
		return "BadCharset"
	case BadEci:
		return "BadEci"
	case EmptyText:
		return "EmptyText"
	case InvalidVersion:
		return "InvalidVersion"
	case InvalidBitWidth:
		return "InvalidBitWidth"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by every constructor and factory in this
// package that can fail on caller-supplied input.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("qr: %s: %s", e.Kind, e.Msg)
}

// Is reports whether target is a *Error with the same Kind, so callers can
// write errors.Is(err, qr.ErrDataTooLong).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Sentinel values for errors.Is comparisons against each Kind.
var (
	ErrDataTooLong    = &Error{Kind: DataTooLong}
	ErrBadCharset     = &Error{Kind: BadCharset}
	ErrBadEci         = &Error{Kind: BadEci}
	ErrEmptyText      = &Error{Kind: EmptyText}
	ErrInvalidVersion = &Error{Kind: InvalidVersion}
)
