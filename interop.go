package uuid

import guuid "github.com/google/uuid"

// FromGoogle converts a github.com/google/uuid value.
func FromGoogle(g guuid.UUID) UUID {
	return UUID(g)
}

// Google converts u to a github.com/google/uuid value, for handing to
// code built on that package.
func (u UUID) Google() guuid.UUID {
	return guuid.UUID(u)
}
