package parse

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// cookString decodes the body of a string literal (without quotes). It
// reports false for escapes whose value cannot be held in a Go string, such
// as unpaired surrogates, and for legacy octal escapes.
func cookString(body string) (string, bool) {
	if !strings.Contains(body, `\`) {
		return body, true
	}

	var sb strings.Builder
	// high holds a lead surrogate waiting for its trail half.
	var high rune = -1
	for i := 0; i < len(body); {
		if body[i] != '\\' {
			if high >= 0 {
				return "", false
			}
			r, size := utf8.DecodeRuneInString(body[i:])
			sb.WriteRune(r)
			i += size
			continue
		}

		r, size, ok := escape(body[i:])
		if !ok {
			return "", false
		}
		i += size

		switch {
		case utf16.IsSurrogate(r) && r >= 0xDC00:
			if high < 0 {
				return "", false
			}
			sb.WriteRune(utf16.DecodeRune(high, r))
			high = -1
		case high >= 0:
			return "", false
		case utf16.IsSurrogate(r):
			high = r
		case r != noRune:
			sb.WriteRune(r)
		}
	}
	if high >= 0 {
		return "", false
	}
	return sb.String(), true
}

// noRune marks a line continuation, which contributes nothing.
const noRune rune = -2

// escape decodes the escape sequence at the start of s.
func escape(s string) (rune, int, bool) {
	if len(s) < 2 {
		return 0, 0, false
	}
	switch c := s[1]; c {
	case 'n':
		return '\n', 2, true
	case 't':
		return '\t', 2, true
	case 'r':
		return '\r', 2, true
	case 'b':
		return '\b', 2, true
	case 'f':
		return '\f', 2, true
	case 'v':
		return '\v', 2, true
	case '0':
		if len(s) > 2 && s[2] >= '0' && s[2] <= '9' {
			return 0, 0, false
		}
		return 0, 2, true
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return 0, 0, false
	case 'x':
		return hexEscape(s, 2, 2)
	case 'u':
		if len(s) > 2 && s[2] == '{' {
			end := strings.IndexByte(s, '}')
			if end < 0 {
				return 0, 0, false
			}
			v, err := strconv.ParseUint(s[3:end], 16, 32)
			if err != nil || v > utf8.MaxRune {
				return 0, 0, false
			}
			return rune(v), end + 1, true
		}
		return hexEscape(s, 2, 4)
	case '\r':
		if len(s) > 2 && s[2] == '\n' {
			return noRune, 3, true
		}
		return noRune, 2, true
	case '\n':
		return noRune, 2, true
	default:
		r, size := utf8.DecodeRuneInString(s[1:])
		if r == '\u2028' || r == '\u2029' {
			return noRune, 1 + size, true
		}
		return r, 1 + size, true
	}
}

func hexEscape(s string, start, digits int) (rune, int, bool) {
	if len(s) < start+digits {
		return 0, 0, false
	}
	v, err := strconv.ParseUint(s[start:start+digits], 16, 32)
	if err != nil {
		return 0, 0, false
	}
	return rune(v), start + digits, true
}
