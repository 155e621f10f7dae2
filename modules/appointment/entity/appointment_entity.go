package entity

import (
	coreEntity "github.com/YourPalZack/junk-t/core/entity"
)

type TimeSlot string

const (
	TimeSlotMorning   TimeSlot = "morning"
	TimeSlotAfternoon TimeSlot = "afternoon"
	TimeSlotEvening   TimeSlot = "evening"
)

type ServiceType string

const (
	ServiceTypeStandard ServiceType = "standard"
	ServiceTypeFull     ServiceType = "full"
	ServiceTypeCustom   ServiceType = "custom"
)

// Appointment is a single pickup request: a requested date plus a broad
// time slot, not an exact time.
type Appointment struct {
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Date        string      `json:"date"`
	TimeSlot    TimeSlot    `json:"timeSlot"`
	ServiceType ServiceType `json:"serviceType"`
	Description string      `json:"description"`
	coreEntity.BaseEntity
}
