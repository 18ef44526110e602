/*
Package charset derives the byte footprint of a display character.

The wrapping budget of package linewrap is expressed in display characters
times a bytes-per-char factor, because the panel's text fields count bytes
while fonts are indexed by characters. For Western charsets one display
character is one byte; fonts covering East and South East Asian scripts
carry code points that encode to three UTF-8 bytes each.

A Context describes the typesetting environment of the panel: a forced
East Asian mode, an ISO 15924 script, or just a locale string. From it the
bytes-per-char factor, and a complete linewrap.Config, can be derived:

	ctx := charset.ContextFromEnvironment()
	cfg := ctx.WrapConfig(20)
	out := linewrap.Wrap(text, cfg)

Where no context is available, Footprint sizes the factor from a sample
string instead.

Determining byte footprints from locales is a heuristic. Much depends on
the font actually flashed onto the panel; clients that know their font
should pass an explicit bytes-per-char value and skip this package.

___________________________________________________________________________

# License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package charset

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to paneltext.charset .
func T() tracing.Trace {
	return tracing.Select("paneltext.charset")
}
