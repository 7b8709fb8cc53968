package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/db"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/repository"
)

// driftRewardPoints is granted per logged visit: attending anything at all
// counts as movement against the comfort-zone attractor.
const driftRewardPoints = 10

type visitService struct {
	activities repository.ActivityRepo
	loader     *snapshotLoader
	uow        db.UnitOfWork
	observer   UseCaseObserver
}

// NewVisitService builds the visit-logging use case. A logged visit is the
// only write path into the attractor state.
func NewVisitService(
	activities repository.ActivityRepo,
	profiles repository.StudentProfileRepo,
	attractors repository.AttractorRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) app.LogVisitUseCase {
	return &visitService{
		activities: activities,
		loader:     &snapshotLoader{profiles: profiles, attractors: attractors},
		uow:        uow,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *visitService) LogVisit(ctx context.Context, req app.LogVisitRequest) (resp *app.LogVisitResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"activity_id": req.ActivityID}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "log-visit",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	activity, err := s.activities.GetByID(ctx, req.ActivityID)
	if err != nil {
		return nil, err
	}

	when := resolveNow(req.When)
	outcome := req.Outcome
	if outcome == "" {
		outcome = domain.OutcomeAttended
	}

	snap, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	attractor := snap.Attractor
	if attractor == nil {
		attractor = &domain.AttractorState{StudentID: "default"}
	}

	before := attractor.BubblePercentage()
	newDept := activity.Department != "" && !attractor.HasVisited(activity.Department)

	visit := domain.VisitLog{
		ID:             uuid.New().String(),
		ActivityID:     activity.ID,
		AttendedAt:     when,
		Outcome:        outcome,
		NewConnections: req.NewConnections,
		Note:           req.Note,
		CreatedAt:      startedAt,
	}

	attractor.RecordVisit(activity.Department, activity.Category, when)
	attractor.ConnectionCount += req.NewConnections
	after := attractor.BubblePercentage()

	profile := snap.Profile
	if profile != nil {
		profile.DriftScore += driftRewardPoints
		profile.DriftStreak++
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteVisitRepo(tx).Create(ctx, &visit); err != nil {
			return err
		}
		if err := repository.NewSQLiteAttractorRepo(tx).Upsert(ctx, attractor); err != nil {
			return err
		}
		if profile != nil {
			if err := repository.NewSQLiteStudentProfileRepo(tx).Upsert(ctx, profile); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["new_department"] = newDept
	driftScore := 0
	if profile != nil {
		driftScore = profile.DriftScore
	}

	return &app.LogVisitResponse{
		Visit:         visit,
		BubblePct:     after,
		BubbleDelta:   math.Round((after-before)*10) / 10,
		DriftScore:    driftScore,
		NewDepartment: newDept,
	}, nil
}

// IsNotFound reports whether err came from a missing row, so the CLI can
// render a hint instead of a raw error chain.
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
