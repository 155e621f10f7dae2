package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/YourPalZack/junk-t/core/errors"
	"github.com/YourPalZack/junk-t/modules/dumprun/dto"
	"github.com/YourPalZack/junk-t/modules/dumprun/repository"
)

func newService(t *testing.T) *DumpRunService {
	t.Helper()
	return NewDumpRunService(repository.NewDumpRunRepository())
}

func createRun(t *testing.T, svc *DumpRunService, date string, capacity int) *dto.GroupDumpRunResponse {
	t.Helper()
	run, appErr := svc.CreateRun(context.Background(), &dto.CreateRunRequest{RunDate: date, Capacity: capacity})
	if appErr != nil {
		t.Fatalf("CreateRun: %v", appErr)
	}
	return run
}

func reserveRequest(runID int64, name string) *dto.ReserveSpotRequest {
	return &dto.ReserveSpotRequest{
		Name:           name,
		Email:          name + "@example.com",
		Phone:          "2065550100",
		Date:           "2023-06-06",
		LoadSize:       "medium",
		GroupDumpRunID: runID,
	}
}

func TestCreateRunStartsWithAllSpotsOpen(t *testing.T) {
	svc := newService(t)
	run := createRun(t, svc, "2023-06-06", 8)
	if run.SpotsRemaining != run.Capacity {
		t.Fatalf("expected spotsRemaining == capacity, got %d/%d", run.SpotsRemaining, run.Capacity)
	}
	if run.RunDate != "2023-06-06" {
		t.Fatalf("expected runDate 2023-06-06, got %s", run.RunDate)
	}
}

func TestCreateRunRejectsBadDate(t *testing.T) {
	svc := newService(t)
	_, appErr := svc.CreateRun(context.Background(), &dto.CreateRunRequest{RunDate: "June 6", Capacity: 8})
	if appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("expected INVALID_INPUT, got %v", appErr)
	}
}

func TestReserveSpotUnknownRunMapsToNotFound(t *testing.T) {
	svc := newService(t)
	_, appErr := svc.ReserveSpot(context.Background(), reserveRequest(5, "alice"))
	if appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", appErr)
	}
}

func TestReserveSpotFullRunMapsToNoCapacity(t *testing.T) {
	svc := newService(t)
	run := createRun(t, svc, "2023-06-14", 1)

	if _, appErr := svc.ReserveSpot(context.Background(), reserveRequest(run.ID, "alice")); appErr != nil {
		t.Fatalf("first reservation: %v", appErr)
	}
	_, appErr := svc.ReserveSpot(context.Background(), reserveRequest(run.ID, "bob"))
	if appErr == nil || appErr.Code != errors.ErrNoCapacity {
		t.Fatalf("expected NO_CAPACITY, got %v", appErr)
	}
}

// Eight distinct requesters fill an eight-spot run; the ninth is turned away.
func TestRunFillsUpExactly(t *testing.T) {
	svc := newService(t)
	run := createRun(t, svc, "2023-06-06", 8)

	for i := 0; i < 8; i++ {
		name := fmt.Sprintf("customer%d", i)
		res, appErr := svc.ReserveSpot(context.Background(), reserveRequest(run.ID, name))
		if appErr != nil {
			t.Fatalf("reservation %d: %v", i, appErr)
		}
		if res.Name != name {
			t.Fatalf("reservation %d: expected name %s, got %s", i, name, res.Name)
		}
	}

	runs, appErr := svc.ListRuns(context.Background())
	if appErr != nil {
		t.Fatalf("ListRuns: %v", appErr)
	}
	if runs[0].SpotsRemaining != 0 {
		t.Fatalf("expected 0 spots remaining, got %d", runs[0].SpotsRemaining)
	}

	if _, appErr := svc.ReserveSpot(context.Background(), reserveRequest(run.ID, "ninth")); appErr == nil || appErr.Code != errors.ErrNoCapacity {
		t.Fatalf("expected ninth reservation to fail with NO_CAPACITY, got %v", appErr)
	}

	reservations, appErr := svc.ListReservationsByRunID(context.Background(), run.ID)
	if appErr != nil {
		t.Fatalf("ListReservationsByRunID: %v", appErr)
	}
	if len(reservations) != 8 {
		t.Fatalf("expected 8 reservations, got %d", len(reservations))
	}
}

func TestListReservationsByRunIDUnknownRun(t *testing.T) {
	svc := newService(t)
	_, appErr := svc.ListReservationsByRunID(context.Background(), 7)
	if appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", appErr)
	}
}
