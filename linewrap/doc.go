/*
Package linewrap breaks display text into protocol-delimited lines.

The target panels render text fields line by line but accept the whole
field as one string, with visual line breaks marked by a literal
two-character escape token: a backslash followed by 'r'. The token is
interpreted by the display firmware; it is not a control byte and must
never be "unescaped" on the host side.

Wrap splits text on word boundaries against a per-line byte budget of
LineLimit display characters times BytesPerChar bytes each. A single token
longer than the budget is broken hard at the budget, so line length stays
bounded even for pathological input. Text that already carries the token
is considered pre-wrapped and passes through untouched, which also makes
Wrap idempotent.

# Failure Policy

The panel has no error channel at this layer, so Wrap fails soft and
visible: contract violations yield a fixed diagnostic string in place of
the wrapped text, which then shows up on screen verbatim. Callers match on
the exported diagnostic constants, not on an error value.

___________________________________________________________________________

# License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package linewrap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to paneltext.linewrap .
func tracer() tracing.Trace {
	return tracing.Select("paneltext.linewrap")
}
