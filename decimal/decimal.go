package decimal

import (
	"strconv"
	"strings"
)

// AdjustSeparator replaces the decimal point in the leading numeric part of
// input with sep and returns the result. The numeric part is the maximal
// leading run of digits, '.', '-' and ','; it is rewritten only if it
// validates as a number in its entirety. Whatever follows the numeric run
// (a unit suffix, usually) is reattached unmodified.
//
// If sep is '.', if input has no numeric prefix, or if the candidate run
// fails validation, input is returned unchanged. Only the first decimal
// point is ever touched; thousands separators and any further numbers in
// the string are left alone.
//
// A multi-byte sep (e.g. U+066B ARABIC DECIMAL SEPARATOR) is inserted in
// its UTF-8 form.
func AdjustSeparator(input string, sep rune) string {
	if sep == '.' {
		return input
	}
	end := 0
	for end < len(input) && isNumericRunByte(input[end]) {
		end++
	}
	if end == 0 {
		return input
	}
	run := input[:end]
	if _, err := strconv.ParseFloat(run, 64); err != nil {
		// candidate run is not a number ("1.2.3", "-", "1,5", …)
		return input
	}
	point := strings.IndexByte(run, '.')
	if point < 0 {
		return input
	}
	return run[:point] + string(sep) + run[point+1:] + input[end:]
}

func isNumericRunByte(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == '-' || c == ','
}
