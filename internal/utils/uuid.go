package utils

import (
	"github.com/MKhiriev/work-diary/models"
	"github.com/google/uuid"
)

// UUIDGenerator issues time-ordered identifiers for users, entries,
// comments and todos.
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

// GenerateTemp issues a client-side placeholder identifier that is replaced
// once the server confirms the object.
func (g *UUIDGenerator) GenerateTemp() string {
	return models.TempIDPrefix + uuid.NewString()
}
