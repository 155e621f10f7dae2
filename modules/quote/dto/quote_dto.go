package dto

type SubmitQuoteRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,min=10"`
	Description string `json:"description" validate:"required,min=10"`
}
