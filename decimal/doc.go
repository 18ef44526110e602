/*
Package decimal rewrites the decimal separator of numeric display values.

Sensor values arrive as strings formatted with a dot separator, often with
a unit suffix attached ("21.5 °C"). Panels configured for locales that
write a decimal comma need the separator swapped before the value goes out
to the display, without touching the suffix and without mistaking
arbitrary text for a number.

AdjustSeparator is deliberately conservative: it only ever rewrites the
single decimal point of a validated numeric prefix. Anything that does not
parse as a number is passed through unchanged, since callers feed it
best-effort data.

___________________________________________________________________________

# License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package decimal
