package codepoint

// Surrogate code points are reserved for UTF-16 and invalid in UTF-8.
const (
	surrogateMin rune = 0xD800
	surrogateMax rune = 0xDFFF
)

// Decode decodes the first UTF-8 encoded code point of b and returns it.
// Only the leading 1–4 bytes are inspected, as determined by the high bits
// of the first byte.
//
// Decode returns 0 if b is empty or starts with a NUL byte, and 0 for any
// malformed sequence: a missing or malformed continuation byte, an overlong
// two- or three-byte encoding, or a three-byte encoding of a surrogate.
// Four-byte sequences are only checked for continuation-byte shape.
//
// b is never mutated or retained.
func Decode(b []byte) rune {
	if len(b) == 0 || b[0] == 0 {
		return 0
	}
	b0 := b[0]
	switch {
	case b0&0x80 == 0x00: // 0xxxxxxx
		return rune(b0)
	case b0&0xE0 == 0xC0: // 110xxxxx 10xxxxxx
		if !continuation(b, 1) {
			return 0
		}
		cp := rune(b0&0x1F)<<6 | rune(b[1]&0x3F)
		if cp < 0x80 { // overlong
			return 0
		}
		return cp
	case b0&0xF0 == 0xE0: // 1110xxxx 10xxxxxx 10xxxxxx
		if !continuation(b, 1) || !continuation(b, 2) {
			return 0
		}
		cp := rune(b0&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F)
		if cp < 0x800 { // overlong
			return 0
		}
		if cp >= surrogateMin && cp <= surrogateMax {
			return 0
		}
		return cp
	case b0&0xF8 == 0xF0: // 11110xxx 10xxxxxx 10xxxxxx 10xxxxxx
		if !continuation(b, 1) || !continuation(b, 2) || !continuation(b, 3) {
			return 0
		}
		return rune(b0&0x07)<<18 | rune(b[1]&0x3F)<<12 |
			rune(b[2]&0x3F)<<6 | rune(b[3]&0x3F)
	}
	return 0 // stray continuation byte or invalid leader
}

// continuation reports whether b has a continuation byte (10xxxxxx) at
// index i. A NUL byte counts as missing, preserving null-terminated buffer
// semantics.
func continuation(b []byte, i int) bool {
	return i < len(b) && b[i] != 0 && b[i]&0xC0 == 0x80
}

// SeqLen returns the byte length of the UTF-8 sequence started by leader,
// i.e. 1 to 4, derived from the leading byte's high bits alone. It returns
// 0 if leader cannot start a sequence (a continuation byte or an invalid
// leader pattern).
//
// SeqLen performs the same classification Decode does, which is how callers
// advance through a string between calls to Decode.
func SeqLen(leader byte) int {
	switch {
	case leader&0x80 == 0x00:
		return 1
	case leader&0xE0 == 0xC0:
		return 2
	case leader&0xF0 == 0xE0:
		return 3
	case leader&0xF8 == 0xF0:
		return 4
	}
	return 0
}
