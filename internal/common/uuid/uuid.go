package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/fortuna/pythia/internal/common/uuid UUID

type UUID interface {
	NewUUID() string
}

// DefaultUUID issues random v4 identifiers.
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new UUID string.
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}
