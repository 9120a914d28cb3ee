package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRunID returns a short random identifier for persisted pipeline runs
func GenerateRunID() (string, error) {
	return gonanoid.Generate(characters, 12)
}
