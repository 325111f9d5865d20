package uuid

import "encoding/binary"

// Fields splits u into its canonical big-endian fields: time-low,
// time-mid, time-hi-and-version and clock-seq-and-node.
func (u UUID) Fields() (d1 uint32, d2, d3 uint16, d4 [8]byte) {
	d1 = binary.BigEndian.Uint32(u[0:4])
	d2 = binary.BigEndian.Uint16(u[4:6])
	d3 = binary.BigEndian.Uint16(u[6:8])
	copy(d4[:], u[8:])
	return d1, d2, d3, d4
}

// FromFields builds a UUID from its canonical fields.
func FromFields(d1 uint32, d2, d3 uint16, d4 [8]byte) UUID {
	var u UUID
	binary.BigEndian.PutUint32(u[0:4], d1)
	binary.BigEndian.PutUint16(u[4:6], d2)
	binary.BigEndian.PutUint16(u[6:8], d3)
	copy(u[8:], d4[:])
	return u
}
