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

// Version represents a QR code symbol version, a number in the range
// [1, 40]. The derived symbol size is 4*version + 17 modules per side.
type Version uint8

// The minimum and maximum versions (QR code sizes) for a QR code symbol.
// Version 1 = 21 modules square, version 40 = 177 modules square.
const (
	MinVersion = Version(1)
	MaxVersion = Version(40)
)

// NewVersion validates v and returns it as a Version, or InvalidVersion if
// v falls outside [1, 40].
func NewVersion(v int) (Version, error) {
	if v < int(MinVersion) || v > int(MaxVersion) {
		return 0, newError(InvalidVersion, "version %d out of range [%d, %d]", v, MinVersion, MaxVersion)
	}
	return Version(v), nil
}

func (v Version) size() int {
	return int(v)*4 + 17
}
