package entity

import (
	"time"

	coreEntity "github.com/YourPalZack/junk-t/core/entity"
)

// LoadSize is how much junk a customer brings to a run.
type LoadSize string

const (
	LoadSizeSmall  LoadSize = "small"
	LoadSizeMedium LoadSize = "medium"
	LoadSizeLarge  LoadSize = "large"
)

// GroupDumpRun is a scheduled, capacity-limited collection event. Capacity
// is fixed at creation; SpotsRemaining starts at Capacity and only ever
// decreases, one spot per confirmed reservation. It never goes below zero.
type GroupDumpRun struct {
	ID             int64     `json:"id"`
	RunDate        time.Time `json:"runDate"`
	Capacity       int       `json:"capacity"`
	SpotsRemaining int       `json:"spotsRemaining"`
	CreatedAt      time.Time `json:"createdAt"`
}

// GroupDumpReservation is one customer's claim on one spot of a run.
// Many reservations share a run's capacity pool.
type GroupDumpReservation struct {
	GroupDumpRunID int64    `json:"groupDumpRunId"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	LoadSize       LoadSize `json:"loadSize"`
	Notes          string   `json:"notes,omitempty"`
	coreEntity.BaseEntity
}
