package vds

import (
	"fmt"
	"strings"
)

// C40 packs three MRZ characters into two bytes. A final pair of leftover
// characters is completed with the Shift1 pseudo-character; a single leftover
// character switches to DataMatrix ASCII mode behind the 0xFE escape byte.
const (
	c40Shift1 = 0
	c40Escape = 0xFE
)

// c40Value maps an MRZ character to its C40 value: filler and space to 3,
// digits to 4-13, letters to 14-39.
func c40Value(c byte) (int, error) {
	switch {
	case c == ' ' || c == '<':
		return 3, nil
	case c >= '0' && c <= '9':
		return int(c-'0') + 4, nil
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 14, nil
	}
	return 0, &ValidationError{Field: "c40 data", Msg: fmt.Sprintf("character %q is not C40-encodable", c)}
}

// c40Char is the inverse of c40Value. Value 3 always decodes to the filler.
func c40Char(v int) (byte, error) {
	switch {
	case v == 3:
		return '<', nil
	case v >= 4 && v <= 13:
		return byte('0' + v - 4), nil
	case v >= 14 && v <= 39:
		return byte('A' + v - 14), nil
	}
	return 0, &FormatError{Msg: fmt.Sprintf("C40 value %d out of range", v)}
}

// asciiCode maps a character to its DataMatrix ASCII code, used for a single
// trailing character.
func asciiCode(c byte) (byte, error) {
	if c == '<' {
		c = ' '
	}
	if c == ' ' || c >= '0' && c <= '9' || c >= 'A' && c <= 'Z' {
		return c + 1, nil
	}
	return 0, &ValidationError{Field: "c40 data", Msg: fmt.Sprintf("character %q is not C40-encodable", c)}
}

// asciiChar is the inverse of asciiCode; the space decodes to the filler.
func asciiChar(code byte) (byte, error) {
	c := code - 1
	if c == ' ' {
		return '<', nil
	}
	if c >= '0' && c <= '9' || c >= 'A' && c <= 'Z' {
		return c, nil
	}
	return 0, &FormatError{Msg: fmt.Sprintf("DataMatrix ASCII code %#x out of range", code)}
}

// C40Encode compacts s into C40 bytes. The input must stay within the MRZ
// alphabet A-Z, 0-9, space and '<'.
func C40Encode(s string) ([]byte, error) {
	out := make([]byte, 0, (len(s)+2)/3*2)
	for i := 0; i < len(s); i += 3 {
		if len(s)-i == 1 {
			code, err := asciiCode(s[i])
			if err != nil {
				return nil, fmt.Errorf("failed to C40-encode %q: %w", s, err)
			}
			out = append(out, c40Escape, code)
			break
		}
		u1, err := c40Value(s[i])
		if err != nil {
			return nil, fmt.Errorf("failed to C40-encode %q: %w", s, err)
		}
		u2, err := c40Value(s[i+1])
		if err != nil {
			return nil, fmt.Errorf("failed to C40-encode %q: %w", s, err)
		}
		u3 := c40Shift1
		if len(s)-i >= 3 {
			if u3, err = c40Value(s[i+2]); err != nil {
				return nil, fmt.Errorf("failed to C40-encode %q: %w", s, err)
			}
		}
		v := 1600*u1 + 40*u2 + u3 + 1
		out = append(out, byte(v>>8), byte(v))
	}
	return out, nil
}

// C40Decode expands C40 bytes back into text. Shift1 padding is dropped, so
// C40Decode(C40Encode(s)) == s for any s over the MRZ alphabet.
func C40Decode(b []byte) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(b); i += 2 {
		if i+1 >= len(b) {
			return "", &LengthMismatchError{Declared: i + 2, Actual: len(b)}
		}
		if b[i] == c40Escape {
			c, err := asciiChar(b[i+1])
			if err != nil {
				return "", fmt.Errorf("failed to C40-decode: %w", err)
			}
			sb.WriteByte(c)
			continue
		}
		v := (int(b[i])<<8 | int(b[i+1])) - 1
		u1 := v / 1600
		u2 := (v - 1600*u1) / 40
		u3 := v - 1600*u1 - 40*u2
		c1, err := c40Char(u1)
		if err != nil {
			return "", fmt.Errorf("failed to C40-decode: %w", err)
		}
		c2, err := c40Char(u2)
		if err != nil {
			return "", fmt.Errorf("failed to C40-decode: %w", err)
		}
		sb.WriteByte(c1)
		sb.WriteByte(c2)
		if u3 == c40Shift1 {
			continue
		}
		c3, err := c40Char(u3)
		if err != nil {
			return "", fmt.Errorf("failed to C40-decode: %w", err)
		}
		sb.WriteByte(c3)
	}
	return sb.String(), nil
}
