package recruit

import (
	"context"
	"fmt"

	"github.com/garnizeh/recruitd/pkg/models"
	"github.com/garnizeh/recruitd/pkg/repository"
)

// ListApplications runs the filtered query in ascending application id order.
// page None returns every matching row; page k returns the k-th 25-row
// window (1-based). A page past the end yields an empty item list, not an
// error.
func (s *Service) ListApplications(ctx context.Context, f repository.Filter, page repository.Opt[int]) (*ApplicationPage, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	limit, offset, pageNum := 0, 0, 0
	if p, ok := page.Get(); ok {
		if p < 1 {
			return nil, fmt.Errorf("page must be 1-based, got %d", p)
		}
		limit = PageSize
		offset = (p - 1) * PageSize
		pageNum = p
	}

	items, err := s.store.ListApplications(ctx, f, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return &ApplicationPage{Items: items, Page: pageNum}, nil
}

// PageCount returns ceil(matching rows / 25).
func (s *Service) PageCount(ctx context.Context, f repository.Filter) (int64, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	count, err := s.store.CountApplications(ctx, f)
	if err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}
	return (count + PageSize - 1) / PageSize, nil
}

// GetApplication returns the joined single-application view. An unknown id
// yields a zero detail tagged CodeInvalidID; nil is reserved for
// infrastructure failures.
func (s *Service) GetApplication(ctx context.Context, id int64) (*DetailResult, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	detail, err := s.store.GetApplicationDetail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}
	if detail == nil {
		return &DetailResult{Detail: models.ApplicationDetail{ID: id}, Code: CodeInvalidID}, nil
	}
	return &DetailResult{Detail: *detail, Code: CodeOK}, nil
}

// ListJobs returns the reference jobs with their competences.
func (s *Service) ListJobs(ctx context.Context) ([]models.Job, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	jobs, err := s.store.ListJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}
