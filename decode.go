package ao3

import (
	"strings"
	"unicode/utf8"
)

// uriReserved are the characters whose escapes decodeURI leaves intact.
const uriReserved = ";/?:@&=+$,#"

// decodeURI percent-decodes s the way ECMAScript decodeURI does: escapes of
// reserved characters are kept verbatim and escaped bytes must form valid
// UTF-8.
func decodeURI(s string) (string, error) {
	if !strings.Contains(s, "%") {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '%' {
			b.WriteByte(s[i])
			i++
			continue
		}

		c, ok := unhexByte(s, i)
		if !ok {
			return "", Errorf(EINVALID, "malformed escape at offset %d in %q", i, s)
		}

		if c < utf8.RuneSelf {
			if strings.IndexByte(uriReserved, c) >= 0 {
				b.WriteString(s[i : i+3])
			} else {
				b.WriteByte(c)
			}
			i += 3
			continue
		}

		n := utf8SequenceLen(c)
		if n == 0 {
			return "", Errorf(EINVALID, "invalid UTF-8 escape at offset %d in %q", i, s)
		}
		seq := []byte{c}
		j := i + 3
		for k := 1; k < n; k++ {
			if j >= len(s) || s[j] != '%' {
				return "", Errorf(EINVALID, "truncated UTF-8 escape at offset %d in %q", i, s)
			}
			cc, ok := unhexByte(s, j)
			if !ok {
				return "", Errorf(EINVALID, "malformed escape at offset %d in %q", j, s)
			}
			seq = append(seq, cc)
			j += 3
		}
		r, size := utf8.DecodeRune(seq)
		if r == utf8.RuneError || size != n {
			return "", Errorf(EINVALID, "invalid UTF-8 escape at offset %d in %q", i, s)
		}
		b.WriteRune(r)
		i = j
	}
	return b.String(), nil
}

// unhexByte decodes the "%XX" escape starting at s[i].
func unhexByte(s string, i int) (byte, bool) {
	if i+2 >= len(s) {
		return 0, false
	}
	hi, ok1 := unhex(s[i+1])
	lo, ok2 := unhex(s[i+2])
	if !ok1 || !ok2 {
		return 0, false
	}
	return hi<<4 | lo, true
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// utf8SequenceLen returns the encoded length implied by a UTF-8 lead byte,
// or 0 if c cannot start a multi-byte sequence.
func utf8SequenceLen(c byte) int {
	switch {
	case c&0xE0 == 0xC0:
		return 2
	case c&0xF0 == 0xE0:
		return 3
	case c&0xF8 == 0xF0:
		return 4
	}
	return 0
}
