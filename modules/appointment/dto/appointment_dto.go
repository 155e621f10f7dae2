package dto

type BookAppointmentRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,min=10"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot    string `json:"timeSlot" validate:"required,oneof=morning afternoon evening"`
	ServiceType string `json:"serviceType" validate:"required,oneof=standard full custom"`
	Description string `json:"description" validate:"required,min=10"`
}
