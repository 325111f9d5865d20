package uuid

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// UUID is a 128-bit identifier held as 16 bytes in canonical field order.
// The zero value is the nil UUID.
type UUID [16]byte

// Nil is the all-zero UUID.
var Nil UUID

// FromBytes builds a UUID from its 16 bytes.
func FromBytes(b [16]byte) UUID {
	return UUID(b)
}

// FromSlice builds a UUID from a slice that must be exactly 16 bytes long.
func FromSlice(b []byte) (UUID, error) {
	if len(b) != 16 {
		return Nil, fmt.Errorf("uuid: must be 16 bytes, got %d", len(b))
	}
	var u UUID
	copy(u[:], b)
	return u, nil
}

// Bytes returns a copy of the 16 bytes.
func (u UUID) Bytes() []byte {
	out := make([]byte, 16)
	copy(out, u[:])
	return out
}

// IsNil reports whether u is the all-zero UUID.
func (u UUID) IsNil() bool {
	return u == Nil
}

// Compare compares two UUIDs bytewise.
// Returns -1 if a < b, 0 if a == b, 1 if a > b.
func Compare(a, b UUID) int {
	return bytes.Compare(a[:], b[:])
}

// Equals checks equality by value.
func (u UUID) Equals(other UUID) bool {
	return Compare(u, other) == 0
}

// Value implements the driver.Valuer interface for SQL database support.
// The UUID is stored as its 16 raw bytes (BLOB / BYTEA).
func (u UUID) Value() (driver.Value, error) {
	return u.Bytes(), nil
}

// Scan implements the sql.Scanner interface for SQL database support.
// Accepts NULL, 16 raw bytes, or any textual form understood by Parse.
func (u *UUID) Scan(value interface{}) error {
	if value == nil {
		*u = Nil
		return nil
	}

	switch v := value.(type) {
	case string:
		if v == "" {
			*u = Nil
			return nil
		}
		parsed, err := Parse(v)
		if err != nil {
			return fmt.Errorf("failed to scan string: %w", err)
		}
		*u = parsed
		return nil
	case []byte:
		if len(v) == 16 {
			parsed, err := FromSlice(v)
			if err != nil {
				return err
			}
			*u = parsed
			return nil
		}
		if len(v) == 0 {
			*u = Nil
			return nil
		}
		parsed, err := ParseBytes(v)
		if err != nil {
			return fmt.Errorf("failed to scan bytes: %w", err)
		}
		*u = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan type %T into UUID", value)
	}
}

// MarshalText implements encoding.TextMarshaler using the hyphenated form.
func (u UUID) MarshalText() ([]byte, error) {
	var buf [HyphenatedLength]byte
	encodeHyphenated(buf[:], u, false)
	return buf[:], nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Parse errors are
// returned unchanged.
func (u *UUID) UnmarshalText(text []byte) error {
	parsed, err := ParseBytes(text)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
// Encodes the UUID as a hyphenated string.
func (u UUID) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.Hyphenated())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Accepts a string in any textual form, or null for Nil.
func (u *UUID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*u = Nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to unmarshal UUID: expected string")
	}
	parsed, err := Parse(s)
	if err != nil {
		return fmt.Errorf("failed to parse UUID string: %w", err)
	}
	*u = parsed
	return nil
}
