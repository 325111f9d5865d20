package uuid

const (
	// SimpleLength is the length of the simple form: 32 hex digits.
	SimpleLength = 32

	// HyphenatedLength is the length of the 8-4-4-4-12 hyphenated form.
	HyphenatedLength = 36

	// URNPrefix precedes the hyphenated form in the URN form.
	URNPrefix = "urn:uuid:"

	// URNLength is the length of the URN form.
	URNLength = len(URNPrefix) + HyphenatedLength

	// BracedLength is the length of the braced form.
	BracedLength = HyphenatedLength + 2
)

// Format selects one of the textual forms of a UUID.
type Format int

const (
	FormatHyphenated Format = iota
	FormatSimple
	FormatURN
	FormatBraced
)

// hyphens holds the offsets of the separators in the hyphenated form.
var hyphens = [4]int{8, 13, 18, 23}

func encodeHyphenated(dst []byte, u UUID, upper bool) {
	enc := Hex.Encode
	if upper {
		enc = Hex.EncodeUpper
	}
	enc(dst[0:8], u[0:4])
	enc(dst[9:13], u[4:6])
	enc(dst[14:18], u[6:8])
	enc(dst[19:23], u[8:10])
	enc(dst[24:36], u[10:16])
	for _, i := range hyphens {
		dst[i] = '-'
	}
}

// Encode renders u in the given form with lowercase digits.
func (u UUID) Encode(f Format) string {
	return u.encode(f, false)
}

// EncodeUpper renders u in the given form with uppercase digits.
// The URN prefix stays lowercase.
func (u UUID) EncodeUpper(f Format) string {
	return u.encode(f, true)
}

func (u UUID) encode(f Format, upper bool) string {
	switch f {
	case FormatSimple:
		var buf [SimpleLength]byte
		if upper {
			Hex.EncodeUpper(buf[:], u[:])
		} else {
			Hex.Encode(buf[:], u[:])
		}
		return string(buf[:])
	case FormatURN:
		var buf [URNLength]byte
		copy(buf[:], URNPrefix)
		encodeHyphenated(buf[len(URNPrefix):], u, upper)
		return string(buf[:])
	case FormatBraced:
		var buf [BracedLength]byte
		buf[0] = '{'
		encodeHyphenated(buf[1:], u, upper)
		buf[BracedLength-1] = '}'
		return string(buf[:])
	default:
		var buf [HyphenatedLength]byte
		encodeHyphenated(buf[:], u, upper)
		return string(buf[:])
	}
}

// Simple returns the 32-digit form, e.g. 67e5504410b1426f9247bb680e5fe0c8.
func (u UUID) Simple() string { return u.Encode(FormatSimple) }

// Hyphenated returns the form 67e55044-10b1-426f-9247-bb680e5fe0c8.
func (u UUID) Hyphenated() string { return u.Encode(FormatHyphenated) }

// URN returns the form urn:uuid:67e55044-10b1-426f-9247-bb680e5fe0c8.
func (u UUID) URN() string { return u.Encode(FormatURN) }

// Braced returns the form {67e55044-10b1-426f-9247-bb680e5fe0c8}.
func (u UUID) Braced() string { return u.Encode(FormatBraced) }

// String returns the hyphenated form.
func (u UUID) String() string {
	return u.Hyphenated()
}
