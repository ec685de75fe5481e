package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for request tracing. Version 7 UUIDs
// are preferred because they sort by creation time; when v7 generation
// fails the generator falls back to a random v4.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
