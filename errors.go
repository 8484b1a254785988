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

package qrcode

import "fmt"

// Code identifies the kind of failure a construction error represents.
type Code int

const (
	// InputTooLong means no (version, level) pair admits the given text.
	InputTooLong Code = iota
	// UnsupportedCharacter means the classified mode cannot express a
	// character actually present in the text.
	UnsupportedCharacter
	// InvalidMask means a mask index outside [0, 7] reached the masking
	// stage.
	InvalidMask
	// InvalidECLevel means an ECCLevel value has no known format bits.
	InvalidECLevel
	// InvalidVersion means a version outside [1, 40] was used to index a
	// per-version table.
	InvalidVersion
)

func (c Code) String() string {
	switch c {
	case InputTooLong:
		return "InputTooLong"
	case UnsupportedCharacter:
		return "UnsupportedCharacter"
	case InvalidMask:
		return "InvalidMask"
	case InvalidECLevel:
		return "InvalidECLevel"
	case InvalidVersion:
		return "InvalidVersion"
	default:
		return "Unknown"
	}
}

// Error is the error type returned from construction failures. It carries a
// Code so callers (and the CLI's structured logging) can branch on failure
// kind without string-matching.
type Error struct {
	Code Code
	msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("qrcode: %s: %s", e.Code, e.msg)
}

func newError(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, msg: fmt.Sprintf(format, args...)}
}
