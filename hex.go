package uuid

import "encoding/hex"

// Hex provides the hex helpers shared by the formatter and the parser.
var Hex = hexHelpers{}

type hexHelpers struct{}

const invalidNibble = 0xff

// nibbles maps an ASCII byte to its hex value, or invalidNibble.
var nibbles = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = invalidNibble
	}
	for c := byte('0'); c <= '9'; c++ {
		t[c] = c - '0'
	}
	for c := byte('a'); c <= 'f'; c++ {
		t[c] = c - 'a' + 10
		t[c-'a'+'A'] = c - 'a' + 10
	}
	return t
}()

// Nibble returns the value of the hex digit c and whether c is one.
func (hexHelpers) Nibble(c byte) (byte, bool) {
	v := nibbles[c]
	return v, v != invalidNibble
}

// Encode writes the lowercase hex of src into dst, which must hold
// 2*len(src) bytes.
func (hexHelpers) Encode(dst, src []byte) {
	hex.Encode(dst, src)
}

// EncodeUpper is Encode with uppercase digits.
func (hexHelpers) EncodeUpper(dst, src []byte) {
	hex.Encode(dst, src)
	for i, c := range dst[:hex.EncodedLen(len(src))] {
		if c >= 'a' && c <= 'f' {
			dst[i] = c - 'a' + 'A'
		}
	}
}
