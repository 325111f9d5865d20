package uuid

import (
	"fmt"
	"strconv"
)

// ExpectedCharacters is the alphabet a textual UUID may be built from.
const ExpectedCharacters = "0123456789abcdefABCDEF-"

// ExpectedLength describes the length(s) acceptable at a failure point:
// either a single exact length or a small set of alternatives.
// It is comparable with ==.
type ExpectedLength struct {
	lengths [2]int
	count   int
}

// Exact returns an ExpectedLength accepting only n.
func Exact(n int) ExpectedLength {
	return ExpectedLength{lengths: [2]int{n}, count: 1}
}

// AnyOf returns an ExpectedLength accepting either a or b.
func AnyOf(a, b int) ExpectedLength {
	return ExpectedLength{lengths: [2]int{a, b}, count: 2}
}

// Lengths returns the acceptable lengths in declaration order.
func (e ExpectedLength) Lengths() []int {
	out := make([]int, e.count)
	copy(out, e.lengths[:e.count])
	return out
}

// IsExact reports whether exactly one length is acceptable.
func (e ExpectedLength) IsExact() bool {
	return e.count == 1
}

// Matches reports whether n is one of the acceptable lengths.
func (e ExpectedLength) Matches(n int) bool {
	for _, l := range e.lengths[:e.count] {
		if l == n {
			return true
		}
	}
	return false
}

func (e ExpectedLength) String() string {
	if e.IsExact() {
		return strconv.Itoa(e.lengths[0])
	}
	return fmt.Sprintf("one of %v", e.lengths[:e.count])
}

// UrnPrefix records how the `urn:uuid:` prefix stood when a character
// error was found.
type UrnPrefix int

const (
	// UrnOptional means the input carried no URN prefix, which is allowed.
	UrnOptional UrnPrefix = iota
	// UrnRequired means a URN prefix was consumed, so the rest must be
	// a hyphenated UUID.
	UrnRequired
)

func (p UrnPrefix) String() string {
	if p == UrnRequired {
		return "required"
	}
	return "optional"
}

// ErrorKind is the closed set of parse failures. Only the four variant
// types in this package implement it.
type ErrorKind interface {
	error
	errorKind()
}

// InvalidLength is returned when the input length matches none of the
// accepted textual forms.
type InvalidLength struct {
	Expected ExpectedLength
	Found    int
}

// InvalidGroupCount is returned when a hyphenated input does not split
// into exactly five groups.
type InvalidGroupCount struct {
	Expected ExpectedLength
	Found    int
}

// InvalidGroupLength is returned when one of the five groups has the
// wrong number of digits. Group is zero-based.
type InvalidGroupLength struct {
	Expected ExpectedLength
	Found    int
	Group    int
}

// InvalidCharacter is returned for a character outside Expected.
// Index is the byte offset in the original input.
type InvalidCharacter struct {
	Expected string
	Found    rune
	Index    int
	Urn      UrnPrefix
}

func (InvalidLength) errorKind()      {}
func (InvalidGroupCount) errorKind()  {}
func (InvalidGroupLength) errorKind() {}
func (InvalidCharacter) errorKind()   {}

func (k InvalidLength) Error() string {
	return fmt.Sprintf("invalid length: expected %s, found %d", k.Expected, k.Found)
}

func (k InvalidGroupCount) Error() string {
	return fmt.Sprintf("invalid number of groups: expected %s, found %d", k.Expected, k.Found)
}

func (k InvalidGroupLength) Error() string {
	return fmt.Sprintf("invalid group length: expected %s, found %d in group %d",
		k.Expected, k.Found, k.Group)
}

func (k InvalidCharacter) Error() string {
	prefix := ""
	if k.Urn == UrnRequired {
		prefix = " a prefix of `" + URNPrefix + "` followed by"
	}
	return fmt.Sprintf("invalid character: expected%s one of `%s`, found %q at %d",
		prefix, k.Expected, k.Found, k.Index)
}

// Error is the error returned by the parse functions.
type Error struct {
	Kind ErrorKind
}

func (e *Error) Error() string {
	return "uuid: " + e.Kind.Error()
}

// Unwrap exposes the variant so errors.As can match it directly.
func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind ErrorKind) *Error {
	return &Error{Kind: kind}
}
