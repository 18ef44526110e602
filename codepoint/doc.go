/*
Package codepoint implements strict UTF-8 code point decoding.

The display firmware this module targets receives raw UTF-8 bytes over a
serial line and maps them onto font slots; a malformed sequence reaching
the panel produces garbage glyphs at best. Decode therefore validates
more strictly than the Go standard library's utf8 package is willing to:
overlong two- and three-byte encodings and surrogate code points are
rejected outright.

# Typical Usage

Decode inspects only the first encoded code point of its input. Callers
walking a whole string either re-invoke it, advancing by SeqLen of the
leading byte, or use a Scanner:

	sc := codepoint.NewScanner([]byte(input))
	for sc.Next() {
	    …  // sc.CodePoint(), sc.Bytes()
	}

A Scanner stops at the end of input, at a NUL byte, or at the first
invalid sequence; Pos then marks the end of the valid prefix.

# Decoding Failure

Decode signals failure by returning code point 0. This is indistinguishable
from decoding the NUL character, which is acceptable for display text: NUL
cannot legitimately occur inside a protocol text field. Callers needing to
tell the two apart should use a Scanner and compare Pos against the input
length.

The four-byte form is decoded permissively: overlong four-byte encodings
and values beyond U+10FFFF are passed through unchecked. Display charsets
have no four-byte glyphs, so downstream handling is the same either way;
the asymmetry matches the deployed firmware and is kept deliberately.

___________________________________________________________________________

# License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package codepoint

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to paneltext.codepoint .
func tracer() tracing.Trace {
	return tracing.Select("paneltext.codepoint")
}
