package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new random identifier for requests and issued tokens
func GenerateID() string {
	return uuid.New().String()
}
