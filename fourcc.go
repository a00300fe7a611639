package recdl

import (
	"fmt"
	"strconv"
	"strings"
)

// MakeFourCC packs a four character code into its big-endian uint32 form.
// Shorter strings are padded with spaces, longer ones are truncated.
func MakeFourCC(s string) uint32 {
	var b [4]byte
	for i := range b {
		b[i] = ' '
	}
	copy(b[:], s)
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func fourCCString(v uint32) string {
	b := []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)} //nolint:mnd
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return fmt.Sprintf("0x%08X", v)
		}
	}
	return string(b)
}

func parseFourCC(text string) (uint32, error) {
	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
		v, err := strconv.ParseUint(text[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("fourcc: bad hex code %q: %w", text, err)
		}
		return uint32(v), nil
	}
	if len(text) == 0 || len(text) > 4 {
		return 0, fmt.Errorf("fourcc: code %q must be 1 to 4 characters", text)
	}
	return MakeFourCC(text), nil
}
