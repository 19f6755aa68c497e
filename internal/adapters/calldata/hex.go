package calldata

import (
	"strings"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/osx-upgrade/internal/domain"
)

// HexToString decodes a hex string (with or without 0x) into UTF-8 text.
// Invalid UTF-8 sequences are replaced with U+FFFD.
func HexToString(s string) (string, error) {
	raw := strings.TrimPrefix(s, "0x")
	if len(raw)%2 != 0 {
		return "", &domain.FormatError{Message: "invalid hex string: must have an even number of characters"}
	}

	b, err := hexutil.Decode("0x" + raw)
	if err != nil {
		return "", &domain.FormatError{Message: "invalid hex string: contains non-hexadecimal characters", Err: err}
	}

	return decodeUTF8(b), nil
}

// decodeUTF8 replaces invalid input with U+FFFD the way a WHATWG decoder
// does: one replacement per invalid byte, or per truncated sequence prefix.
func decodeUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	var sb strings.Builder
	sb.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			size = truncatedPrefix(b)
		}
		sb.WriteRune(r)
		b = b[size:]
	}
	return sb.String()
}

// truncatedPrefix returns the length of the well-formed start of the
// multi-byte sequence at b[0], at least 1
func truncatedPrefix(b []byte) int {
	var want int
	lo, hi := byte(0x80), byte(0xBF)
	switch c := b[0]; {
	case c >= 0xC2 && c <= 0xDF:
		want = 2
	case c >= 0xE0 && c <= 0xEF:
		want = 3
		if c == 0xE0 {
			lo = 0xA0
		} else if c == 0xED {
			hi = 0x9F
		}
	case c >= 0xF0 && c <= 0xF4:
		want = 4
		if c == 0xF0 {
			lo = 0x90
		} else if c == 0xF4 {
			hi = 0x8F
		}
	default:
		return 1
	}

	n := 1
	for n < want && n < len(b) && b[n] >= lo && b[n] <= hi {
		n++
		lo, hi = 0x80, 0xBF
	}
	return n
}
