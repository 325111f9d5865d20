package uuid

import (
	"fmt"
	"unicode/utf8"
)

var (
	// expectedLengths lists the accepted unwrapped input lengths.
	expectedLengths = AnyOf(HyphenatedLength, SimpleLength)

	// expectedGroupCounts lists the accepted group counts; the simple
	// form counts as a single group.
	expectedGroupCounts = AnyOf(1, 5)
)

// groupLengths is the digit count of each hyphenated group.
var groupLengths = [5]int{8, 4, 4, 4, 12}

// groupEnds is the running digit count at the end of each group.
var groupEnds = [5]int{8, 12, 16, 20, 32}

// ParseStr decodes the simple, hyphenated, URN or braced textual form of a
// UUID into its 16 bytes. Failures are returned as *Error; the function
// never panics, whatever the input.
func ParseStr(input string) ([16]byte, error) {
	var buf [16]byte

	n := len(input)
	s := input
	offset := 0
	urn := UrnOptional

	switch {
	case n == URNLength && s[:len(URNPrefix)] == URNPrefix:
		s = s[len(URNPrefix):]
		offset = len(URNPrefix)
		urn = UrnRequired
	case n == BracedLength && s[0] == '{' && s[n-1] == '}':
		s = s[1 : n-1]
		offset = 1
	case n != HyphenatedLength && n != SimpleLength:
		return buf, newError(InvalidLength{Expected: expectedLengths, Found: n})
	}

	// digit counts hex digits only, group counts completed hyphens.
	digit, group := 0, 0
	var acc byte

	for i := 0; i < len(s); i++ {
		if digit >= SimpleLength && group != 4 {
			if group == 0 {
				return buf, newError(InvalidLength{Expected: expectedLengths, Found: n})
			}
			return buf, newError(InvalidGroupCount{Expected: expectedGroupCounts, Found: group + 1})
		}

		c := s[i]
		if c == '-' {
			if digit != groupEnds[group] {
				return buf, newError(groupLengthError(group, digit))
			}
			group++
			continue
		}

		v, ok := Hex.Nibble(c)
		if !ok {
			r, _ := utf8.DecodeRuneInString(s[i:])
			return buf, newError(InvalidCharacter{
				Expected: ExpectedCharacters,
				Found:    r,
				Index:    offset + i,
				Urn:      urn,
			})
		}

		if digit%2 == 0 {
			acc = v << 4
		} else {
			buf[digit/2] = acc | v
		}
		digit++
	}

	if digit != SimpleLength || group != 0 {
		if group != 4 {
			return buf, newError(InvalidGroupCount{Expected: expectedGroupCounts, Found: group + 1})
		}
		if digit != groupEnds[4] {
			return buf, newError(groupLengthError(4, digit))
		}
	}

	return buf, nil
}

// groupLengthError reports a group closed after digit hex digits in total.
func groupLengthError(group, digit int) InvalidGroupLength {
	found := digit
	if group > 0 {
		found -= groupEnds[group-1]
	}
	return InvalidGroupLength{
		Expected: Exact(groupLengths[group]),
		Found:    found,
		Group:    group,
	}
}

// Parse parses any of the textual forms accepted by ParseStr into a UUID.
func Parse(s string) (UUID, error) {
	b, err := ParseStr(s)
	if err != nil {
		return Nil, err
	}
	return FromBytes(b), nil
}

// ParseBytes is like Parse but takes the text as a byte slice.
func ParseBytes(b []byte) (UUID, error) {
	return Parse(string(b))
}

// MustParse is like Parse but panics on error. Intended for package-level
// variables and tests.
func MustParse(s string) UUID {
	u, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("uuid: MustParse(%q): %v", s, err))
	}
	return u
}
