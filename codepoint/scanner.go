package codepoint

// A Scanner steps through a byte sequence code point by code point, in the
// manner of bufio.Scanner: successive calls to Next advance the scanner,
// CodePoint and Bytes return the current match.
//
// A Scanner never mutates its input and holds no state beyond a cursor;
// it must not be shared between goroutines, but distinct Scanners over the
// same input are independent.
type Scanner struct {
	input   []byte
	pos     int  // byte offset of the sequence following the current one
	current rune // most recently decoded code point
	width   int  // byte length of the current code point
}

// NewScanner creates a Scanner over b. b stays owned by the caller and is
// not copied; it must not change while the Scanner is in use.
func NewScanner(b []byte) *Scanner {
	return &Scanner{input: b}
}

// Next advances the scanner to the next code point, which will then be
// available through CodePoint and Bytes. It returns false when the scan
// stops: at the end of input, at a NUL byte, or at the first byte of an
// invalid sequence. Pos then marks the end of the valid prefix.
func (sc *Scanner) Next() bool {
	sc.pos += sc.width
	sc.width = 0
	if sc.pos >= len(sc.input) {
		return false
	}
	cp := Decode(sc.input[sc.pos:])
	if cp == 0 { // NUL or invalid sequence; valid prefix ends here
		tracer().Debugf("scan stopped at byte %d of %d", sc.pos, len(sc.input))
		return false
	}
	sc.current = cp
	sc.width = SeqLen(sc.input[sc.pos])
	return true
}

// CodePoint returns the code point decoded by the last call to Next.
func (sc *Scanner) CodePoint() rune {
	return sc.current
}

// Bytes returns the encoded bytes of the current code point. The returned
// slice aliases the scanner's input.
func (sc *Scanner) Bytes() []byte {
	return sc.input[sc.pos : sc.pos+sc.width]
}

// Width returns the byte length of the current code point, 1 to 4.
func (sc *Scanner) Width() int {
	return sc.width
}

// Pos returns the byte offset of the current code point, or, after Next
// has returned false, the offset where scanning stopped. Input is fully
// valid UTF-8 iff Pos equals the input length after the scan.
func (sc *Scanner) Pos() int {
	return sc.pos
}
