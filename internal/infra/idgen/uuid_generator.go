// Package idgen provides the production identifier generator.
package idgen

import (
	"github.com/google/uuid"

	"istiqdam/internal/domain/service"
)

// uuidGenerator implements service.IDGenerator with random UUIDs.
type uuidGenerator struct{}

// NewUUIDGenerator is the constructor for uuidGenerator.
func NewUUIDGenerator() service.IDGenerator {
	return &uuidGenerator{}
}

// NewID returns a fresh random UUID.
func (g *uuidGenerator) NewID() uuid.UUID {
	return uuid.New()
}
