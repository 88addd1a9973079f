package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/cmsnav/core/logger"
	"github.com/dmitrymomot/cmsnav/core/sanitizer"
	"github.com/dmitrymomot/cmsnav/core/validator"
	"github.com/dmitrymomot/cmsnav/integration/database/pg"
)

// Service applies the business rules around the repository.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

type ServiceOption func(*Service)

func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

func NewService(repo Repository, opts ...ServiceOption) *Service {
	s := &Service{repo: repo, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns all projects ordered by position.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Project, error) {
	return s.repo.Get(ctx, id)
}

// Create sanitizes and validates params and stores a new project at the end
// of the list. Invalid input yields validator.ValidationErrors.
func (s *Service) Create(ctx context.Context, params Params) (Project, error) {
	if err := s.check(ctx, &params, 0); err != nil {
		return Project{}, err
	}

	p, err := s.repo.Create(ctx, params)
	if pg.IsDuplicateKeyError(err) {
		return Project{}, titleTaken()
	}
	if err != nil {
		return Project{}, err
	}

	s.logger.InfoContext(ctx, "project created",
		logger.Component("project"), logger.Action("create"), logger.ProjectID(p.ID))
	return p, nil
}

// Update applies params to an existing project.
func (s *Service) Update(ctx context.Context, id int64, params Params) (Project, error) {
	if err := s.check(ctx, &params, id); err != nil {
		return Project{}, err
	}

	p, err := s.repo.Update(ctx, id, params)
	if pg.IsDuplicateKeyError(err) {
		return Project{}, titleTaken()
	}
	if err != nil {
		return Project{}, err
	}

	s.logger.InfoContext(ctx, "project updated",
		logger.Component("project"), logger.Action("update"), logger.ProjectID(p.ID))
	return p, nil
}

// Delete removes a project and returns it.
func (s *Service) Delete(ctx context.Context, id int64) (Project, error) {
	p, err := s.repo.Delete(ctx, id)
	if err != nil {
		return Project{}, err
	}
	s.logger.InfoContext(ctx, "project deleted",
		logger.Component("project"), logger.Action("delete"), logger.ProjectID(p.ID))
	return p, nil
}

// Reorder assigns positions following the order of ids, atomically.
// Unknown ids roll the whole change back with ErrNotFound.
func (s *Service) Reorder(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int64]struct{}, len(ids))
	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		position := 0
		for _, id := range ids {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			if err := s.repo.SetPosition(ctx, id, position); err != nil {
				return err
			}
			position++
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "projects reordered",
		logger.Component("project"), logger.Action("reorder"), logger.Count("count", len(seen)))
	return nil
}

func (s *Service) check(ctx context.Context, params *Params, id int64) error {
	if err := sanitizer.SanitizeStruct(params); err != nil {
		return err
	}
	if err := validator.ValidateStruct(params); err != nil {
		return err
	}

	taken, err := s.repo.TitleTaken(ctx, params.Title, id)
	if err != nil {
		return err
	}
	if taken {
		return titleTaken()
	}
	return nil
}

// titleTaken matches both ErrDuplicateTitle and validator.ValidationErrors.
func titleTaken() error {
	return fmt.Errorf("%w: %w", ErrDuplicateTitle,
		validator.NewFieldError("Title", "has already been taken", "validation.taken"))
}

// IsValidationError reports whether err carries field errors for a form.
func IsValidationError(err error) bool {
	return validator.IsValidationError(err)
}

// IsNotFound reports whether err means the project does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
