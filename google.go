package uuidv7

import "github.com/google/uuid"

// FromGoogle converts a github.com/google/uuid value. The bytes are copied
// unchanged; call Validate to require version 7.
func FromGoogle(id uuid.UUID) UUID {
	return UUID(id)
}

// Google returns u as a github.com/google/uuid value, for APIs and ORMs
// built on that package.
func (u UUID) Google() uuid.UUID {
	return uuid.UUID(u)
}
