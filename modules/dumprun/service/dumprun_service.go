package service

import (
	"context"
	"time"

	"github.com/YourPalZack/junk-t/core/errors"
	"github.com/YourPalZack/junk-t/core/logger"
	"github.com/YourPalZack/junk-t/core/storage"
	"github.com/YourPalZack/junk-t/modules/dumprun/dto"
	"github.com/YourPalZack/junk-t/modules/dumprun/entity"
	"github.com/YourPalZack/junk-t/modules/dumprun/repository"
)

type DumpRunService struct {
	repo *repository.DumpRunRepository
}

func NewDumpRunService(repo *repository.DumpRunRepository) *DumpRunService {
	return &DumpRunService{repo: repo}
}

// CreateRun schedules a new group dump run with all spots open. No public
// endpoint reaches this; seeding and tests do.
func (s *DumpRunService) CreateRun(ctx context.Context, req *dto.CreateRunRequest) (*dto.GroupDumpRunResponse, *errors.AppError) {
	runDate, err := time.Parse("2006-01-02", req.RunDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid run date", err)
	}
	if req.Capacity < 1 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "capacity must be positive", nil)
	}

	run, err := s.repo.CreateRun(ctx, entity.GroupDumpRun{
		RunDate:        runDate,
		Capacity:       req.Capacity,
		SpotsRemaining: req.Capacity,
	})
	if err != nil {
		logger.Error("DumpRunService:CreateRun:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to create group dump run", err)
	}

	resp := dto.NewGroupDumpRunResponse(run)
	return &resp, nil
}

func (s *DumpRunService) ListRuns(ctx context.Context) ([]dto.GroupDumpRunResponse, *errors.AppError) {
	runs, err := s.repo.ListRuns(ctx)
	if err != nil {
		logger.Error("DumpRunService:ListRuns:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to fetch group dump runs", err)
	}

	out := make([]dto.GroupDumpRunResponse, 0, len(runs))
	for _, run := range runs {
		out = append(out, dto.NewGroupDumpRunResponse(run))
	}
	return out, nil
}

// ReserveSpot claims one spot on the requested run. Failure modes are kept
// distinct so the client can react: unknown run, full run, or bad input.
func (s *DumpRunService) ReserveSpot(ctx context.Context, req *dto.ReserveSpotRequest) (*entity.GroupDumpReservation, *errors.AppError) {
	reservation := entity.GroupDumpReservation{
		GroupDumpRunID: req.GroupDumpRunID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		LoadSize:       entity.LoadSize(req.LoadSize),
		Notes:          req.Notes,
	}

	created, run, err := s.repo.ReserveSpot(ctx, reservation)
	switch err {
	case nil:
	case storage.ErrNotFound:
		return nil, errors.NewAppError(errors.ErrNotFound, "Group dump run not found", err)
	case storage.ErrConditionFailed:
		return nil, errors.NewAppError(errors.ErrNoCapacity, "No spots remaining for this group dump run", err)
	default:
		logger.Error("DumpRunService:ReserveSpot:Error", "error", err, "run_id", req.GroupDumpRunID)
		return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to create reservation", err)
	}

	logger.Info("DumpRunService:ReserveSpot:Reserved",
		"reservation_id", created.ID,
		"run_id", run.ID,
		"spots_remaining", run.SpotsRemaining,
	)
	return &created, nil
}

func (s *DumpRunService) ListReservationsByRunID(ctx context.Context, runID int64) ([]entity.GroupDumpReservation, *errors.AppError) {
	if _, err := s.repo.GetRunByID(ctx, runID); err != nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Group dump run not found", err)
	}
	reservations, err := s.repo.ListReservationsByRunID(ctx, runID)
	if err != nil {
		logger.Error("DumpRunService:ListReservationsByRunID:Error", "error", err, "run_id", runID)
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to fetch reservations", err)
	}
	return reservations, nil
}
