/*
Package paneltext prepares text for serial-protocol character displays.

# Description

HMI panels of the Nextion family receive their on-screen text as plain
strings embedded in a serial protocol. The display firmware has no notion
of Unicode, locales or line metrics; everything the panel shows has to be
prepared on the host side. This module collects the text-preparation
algorithms for such displays:

▪︎ strict UTF-8 code point decoding, rejecting overlong encodings and
surrogate code points (package codepoint),

▪︎ locale-aware rewriting of the decimal separator in numeric values
(package decimal),

▪︎ word-aware line wrapping against a fixed per-line character budget,
emitting the break token the display protocol expects (package linewrap),

▪︎ deriving the byte footprint of a display character from the active
charset or the user's locale (package charset).

All operations are pure functions over immutable inputs: no global state,
no I/O, no initialization order. Callers may invoke any of them concurrently
without synchronization.

The root package carries only a small helper for exact-match list
membership, used by display-update logic to classify entity states.

What this module does not do: rendering or font metrics, serial framing,
Unicode normalization or grapheme clustering. Only validity decoding is
performed. Panels with proportional fonts need a different approach
altogether.

___________________________________________________________________________

# License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package paneltext
