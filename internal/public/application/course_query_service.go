package application

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/infoloom/infoloom/api/internal/public/domain"
)

type courseQueryService struct {
	repo CourseRepository
}

// NewCourseQueryService creates a CourseQueryService over repo.
func NewCourseQueryService(repo CourseRepository) CourseQueryService {
	return &courseQueryService{repo: repo}
}

func (s *courseQueryService) Raw(ctx context.Context) ([]byte, error) {
	return s.repo.Raw(ctx)
}

func (s *courseQueryService) Summaries(ctx context.Context) ([]domain.Summary, error) {
	records, err := s.repo.Records(ctx)
	if err != nil {
		return nil, err
	}
	return domain.ProjectSummaries(records)
}

// Detail returns the first record whose slug matches, exactly as stored.
func (s *courseQueryService) Detail(ctx context.Context, slug string) (json.RawMessage, error) {
	slug = strings.TrimSpace(slug)
	records, err := s.repo.Records(ctx)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if recordSlug, ok := domain.RecordSlug(record); ok && recordSlug == slug {
			return record, nil
		}
	}
	return nil, ErrUCNotFound
}
