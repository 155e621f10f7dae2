package utils

import (
	"github.com/YourPalZack/junk-t/core/constants"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateID returns a short URL-safe id, used to tag requests in logs.
func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, constants.RequestIDLength)
	if err != nil {
		return ""
	}
	return id
}
