package seed

import (
	"fmt"
	"strings"

	"eca/internal/sims/elementary"
)

// Encoding names how a literal initial state is written.
type Encoding string

const (
	// EncodingBinary reads one cell per 0/1 digit.
	EncodingBinary Encoding = "bin"
	// EncodingHex reads four cells per hex digit, most significant bit first.
	EncodingHex Encoding = "hex"
	// EncodingText reads eight cells per byte, most significant bit first.
	EncodingText Encoding = "text"
)

// ParseEncoding validates an encoding name.
func ParseEncoding(s string) (Encoding, error) {
	switch e := Encoding(s); e {
	case EncodingBinary, EncodingHex, EncodingText:
		return e, nil
	}
	return "", &Error{Input: s, Reason: "unknown encoding (want bin, hex or text)"}
}

// Decode turns a literal into a row. Underscores may separate digit groups
// in binary and hex literals.
func Decode(s string, enc Encoding) ([]uint8, error) {
	var (
		row []uint8
		err error
	)
	switch enc {
	case EncodingBinary:
		row, err = decodeBinary(s)
	case EncodingHex:
		row, err = decodeHex(s)
	case EncodingText:
		row = appendBits(nil, []byte(s), 8)
	default:
		return nil, &Error{Input: string(enc), Reason: "unknown encoding (want bin, hex or text)"}
	}
	if err != nil {
		return nil, err
	}
	if len(row) < elementary.MinWidth {
		return nil, &Error{Input: s, Reason: fmt.Sprintf("decodes to %d cells, need at least %d", len(row), elementary.MinWidth)}
	}
	return row, nil
}

func decodeBinary(s string) ([]uint8, error) {
	body := trimPrefix(s, "0b")
	row := make([]uint8, 0, len(body))
	for i, c := range body {
		switch c {
		case '0', '1':
			row = append(row, uint8(c-'0'))
		case '_':
		default:
			return nil, &Error{Input: s, Reason: fmt.Sprintf("invalid binary digit %q at offset %d", c, i)}
		}
	}
	return row, nil
}

func decodeHex(s string) ([]uint8, error) {
	body := trimPrefix(s, "0x")
	nibbles := make([]byte, 0, len(body))
	for i, c := range body {
		var v byte
		switch {
		case c >= '0' && c <= '9':
			v = byte(c - '0')
		case c >= 'a' && c <= 'f':
			v = byte(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v = byte(c-'A') + 10
		case c == '_':
			continue
		default:
			return nil, &Error{Input: s, Reason: fmt.Sprintf("invalid hex digit %q at offset %d", c, i)}
		}
		nibbles = append(nibbles, v)
	}
	return appendBits(nil, nibbles, 4), nil
}

// appendBits appends the low n bits of each value, most significant first.
func appendBits(row []uint8, values []byte, n int) []uint8 {
	for _, v := range values {
		for bit := n - 1; bit >= 0; bit-- {
			row = append(row, (v>>bit)&1)
		}
	}
	return row
}

func trimPrefix(s, prefix string) string {
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):]
	}
	return s
}
