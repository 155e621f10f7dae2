package entity

import (
	coreEntity "github.com/YourPalZack/junk-t/core/entity"
)

// QuoteRequest is an unstructured ask for custom pricing, distinct from a
// booked appointment.
type QuoteRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
	coreEntity.BaseEntity
}
