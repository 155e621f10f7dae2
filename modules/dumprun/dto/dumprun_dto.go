package dto

import (
	"time"

	"github.com/YourPalZack/junk-t/modules/dumprun/entity"
)

// ReserveSpotRequest is the reservation form payload. The date field echoes
// the calendar cell the customer picked; the run itself is identified by
// groupDumpRunId and its date is authoritative.
type ReserveSpotRequest struct {
	Name           string `json:"name" validate:"required,min=2"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required,min=10"`
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
	LoadSize       string `json:"loadSize" validate:"required,oneof=small medium large"`
	Notes          string `json:"notes" validate:"omitempty"`
	GroupDumpRunID int64  `json:"groupDumpRunId" validate:"required,min=1"`
}

// CreateRunRequest is only used by seeding and tests; there is no public
// endpoint for creating runs.
type CreateRunRequest struct {
	RunDate  string `json:"runDate" validate:"required,datetime=2006-01-02"`
	Capacity int    `json:"capacity" validate:"required,min=1"`
}

type GroupDumpRunResponse struct {
	ID             int64     `json:"id"`
	RunDate        string    `json:"runDate"`
	Capacity       int       `json:"capacity"`
	SpotsRemaining int       `json:"spotsRemaining"`
	CreatedAt      time.Time `json:"createdAt"`
}

func NewGroupDumpRunResponse(run entity.GroupDumpRun) GroupDumpRunResponse {
	return GroupDumpRunResponse{
		ID:             run.ID,
		RunDate:        run.RunDate.Format("2006-01-02"),
		Capacity:       run.Capacity,
		SpotsRemaining: run.SpotsRemaining,
		CreatedAt:      run.CreatedAt,
	}
}
