package service

import "github.com/google/uuid"

// IDGenerator hands out identifiers for newly created entities. Injecting it
// lets tests supply a deterministic sequence instead of random UUIDs.
type IDGenerator interface {
	// NewID returns a fresh unique identifier.
	NewID() uuid.UUID
}
