package linewrap

import (
	"strings"
)

// LineBreakToken is the escape sequence marking a visual line break inside
// a protocol text field: the two characters '\' and 'r', not a carriage
// return. The display firmware matches on exactly these two bytes.
const LineBreakToken = `\r`

// MaxInputLen bounds the length of text Wrap will process. The cap keeps
// worst-case memory use on the device side predictable and is a design
// invariant, not a tunable.
const MaxInputLen = 1000

// Diagnostics returned by Wrap in place of wrapped text. The engine has no
// side channel for errors; a violated contract becomes literal on-screen
// text, so the failure is visible instead of silently dropped. Callers and
// tests match on these exact strings.
const (
	TooLongDiagnostic       = "ERROR: Text too long"
	InvalidConfigDiagnostic = "ERROR: Invalid line length"
)

// Config carries the per-line budget for Wrap. LineLimit is the visual
// line length in display characters; BytesPerChar is the byte footprint of
// one display character in the active font/charset (see package charset).
// Both must be positive; a zero field is a caller error which Wrap answers
// with InvalidConfigDiagnostic.
type Config struct {
	LineLimit    int
	BytesPerChar int
}

// Wrap splits text into lines of at most LineLimit display characters,
// i.e. LineLimit * BytesPerChar bytes, separated by LineBreakToken. Breaks
// are placed on word boundaries (spaces) where possible; a single token
// longer than the budget is broken hard at the budget. Spaces around a
// break point are consumed, so no line starts or ends with a blank.
//
// Text within the budget, or text already containing LineBreakToken, is
// returned unchanged. Wrap is deterministic and idempotent:
// Wrap(Wrap(t, cfg), cfg) == Wrap(t, cfg).
func Wrap(text string, cfg Config) string {
	if len(text) > MaxInputLen {
		tracer().Debugf("rejecting %d bytes of text, cap is %d", len(text), MaxInputLen)
		return TooLongDiagnostic
	}
	if cfg.LineLimit <= 0 || cfg.BytesPerChar <= 0 {
		return InvalidConfigDiagnostic
	}
	if strings.Contains(text, LineBreakToken) { // pre-wrapped by the caller
		return text
	}
	maxLineLength := cfg.LineLimit * cfg.BytesPerChar
	if len(text) <= maxLineLength {
		return text
	}
	wrapped := borrowBuffer(len(text) + 20) // room for a handful of tokens
	defer releaseBuffer(wrapped)
	start := 0
	for start < len(text) {
		for start < len(text) && text[start] == ' ' {
			start++
		}
		if start >= len(text) {
			break
		}
		end := start + maxLineLength
		if end >= len(text) {
			end = len(text)
		} else {
			// look backwards for a space to break on
			wordEnd := end
			for wordEnd > start && text[wordEnd] != ' ' {
				wordEnd--
			}
			if wordEnd > start {
				end = wordEnd
			} else {
				tracer().Debugf("hard break inside token at byte %d", end)
			}
		}
		wrapped.WriteString(text[start:end])
		if end < len(text) {
			wrapped.WriteString(LineBreakToken)
			for end < len(text) && text[end] == ' ' {
				end++
			}
		}
		start = end
	}
	return wrapped.String()
}
