package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/app"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/db"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/importer"
	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/repository"
)

type activityService struct {
	activities repository.ActivityRepo
	uow        db.UnitOfWork
	observer   UseCaseObserver
}

// NewActivityService builds the activity catalog use case. The unit of work
// scopes feed imports so a failed import leaves the catalog untouched.
func NewActivityService(
	activities repository.ActivityRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) app.ActivityUseCase {
	return &activityService{
		activities: activities,
		uow:        uow,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *activityService) List(ctx context.Context) ([]*domain.Activity, error) {
	return s.activities.List(ctx)
}

func (s *activityService) Add(ctx context.Context, a *domain.Activity) error {
	now := time.Now().UTC()
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Category == "" {
		a.Category = domain.CategoryOther
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	return s.activities.Create(ctx, a)
}

func (s *activityService) ImportFeed(ctx context.Context, path string) (result *app.ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"path": path}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-feed",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	schema, err := importer.LoadFeedSchema(path)
	if err != nil {
		return nil, err
	}

	feed := importer.Convert(schema)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		activityRepo := repository.NewSQLiteActivityRepo(tx)
		slotRepo := repository.NewSQLiteDiscoverySlotRepo(tx)

		for _, a := range feed.Activities {
			if err := activityRepo.Create(ctx, a); err != nil {
				return err
			}
		}
		for _, slot := range feed.Slots {
			if err := slotRepo.Create(ctx, slot); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	imported := len(feed.Activities) + len(feed.Slots)
	fields["imported"] = imported
	fields["skipped"] = feed.Skipped

	return &app.ImportResult{
		Imported: imported,
		Skipped:  feed.Skipped,
		Warnings: feed.Warnings,
	}, nil
}
