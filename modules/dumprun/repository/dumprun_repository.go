package repository

import (
	"context"
	"sort"
	"time"

	"github.com/YourPalZack/junk-t/core/storage"
	"github.com/YourPalZack/junk-t/modules/dumprun/entity"
)

// DumpRunRepository owns both runs and their reservations so that reserving
// a spot stays a single storage-level operation.
type DumpRunRepository struct {
	runs         *storage.Collection[entity.GroupDumpRun]
	reservations *storage.Collection[entity.GroupDumpReservation]
}

func NewDumpRunRepository() *DumpRunRepository {
	return &DumpRunRepository{
		runs:         storage.NewCollection[entity.GroupDumpRun](),
		reservations: storage.NewCollection[entity.GroupDumpReservation](),
	}
}

func (r *DumpRunRepository) CreateRun(ctx context.Context, run entity.GroupDumpRun) (entity.GroupDumpRun, error) {
	created := r.runs.Insert(func(id int64) entity.GroupDumpRun {
		run.ID = id
		run.CreatedAt = time.Now()
		return run
	})
	return created, nil
}

func (r *DumpRunRepository) GetRunByID(ctx context.Context, id int64) (entity.GroupDumpRun, error) {
	return r.runs.Get(id)
}

// ListRuns returns all runs ascending by run date, regardless of insertion
// order.
func (r *DumpRunRepository) ListRuns(ctx context.Context) ([]entity.GroupDumpRun, error) {
	runs := r.runs.List(nil)
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].RunDate.Before(runs[j].RunDate)
	})
	return runs, nil
}

// ReserveSpot decrements the run's remaining spots and records the
// reservation. The decrement happens only while SpotsRemaining > 0, in one
// atomic conditional update, so concurrent reservations can never overbook.
// Returns storage.ErrNotFound for an unknown run and
// storage.ErrConditionFailed when the run is full; in both cases no
// reservation record is created.
func (r *DumpRunRepository) ReserveSpot(ctx context.Context, res entity.GroupDumpReservation) (entity.GroupDumpReservation, entity.GroupDumpRun, error) {
	run, err := r.runs.UpdateIf(res.GroupDumpRunID,
		func(run entity.GroupDumpRun) bool { return run.SpotsRemaining > 0 },
		func(run entity.GroupDumpRun) entity.GroupDumpRun {
			run.SpotsRemaining--
			return run
		})
	if err != nil {
		return entity.GroupDumpReservation{}, entity.GroupDumpRun{}, err
	}

	created := r.reservations.Insert(func(id int64) entity.GroupDumpReservation {
		res.ID = id
		res.CreatedAt = time.Now()
		return res
	})
	return created, run, nil
}

func (r *DumpRunRepository) ListReservations(ctx context.Context) ([]entity.GroupDumpReservation, error) {
	return r.reservations.List(nil), nil
}

func (r *DumpRunRepository) ListReservationsByRunID(ctx context.Context, runID int64) ([]entity.GroupDumpReservation, error) {
	return r.reservations.List(func(res entity.GroupDumpReservation) bool {
		return res.GroupDumpRunID == runID
	}), nil
}
