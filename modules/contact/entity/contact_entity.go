package entity

import (
	coreEntity "github.com/YourPalZack/junk-t/core/entity"
)

// Contact is one submitted contact-form message. Write-once.
type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	coreEntity.BaseEntity
}
