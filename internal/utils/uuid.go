package utils

import "github.com/google/uuid"

// UUIDGenerator produces trace identifiers for request logging. Version 7
// identifiers sort by creation time, which keeps log correlation cheap.
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
