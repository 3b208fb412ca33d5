package application

import (
	"context"

	"github.com/infoloom/infoloom/api/internal/admin/domain"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// FormResponseRepository reads stored submissions.
type FormResponseRepository interface {
	Find(ctx context.Context, filter FormResponseFilter) ([]domain.FormResponse, error)
}

// FormResponseFilter narrows the admin listing.
type FormResponseFilter struct {
	FormID string
	Limit  int
}

// FormResponseService describes admin read use-cases over submissions.
type FormResponseService interface {
	List(ctx context.Context, filter FormResponseFilter) ([]domain.FormResponse, error)
}

// NewFormResponseService creates a FormResponseService.
func NewFormResponseService(repo FormResponseRepository) FormResponseService {
	return &formResponseService{repo: repo}
}

type formResponseService struct {
	repo FormResponseRepository
}

// List clamps the limit into [1, MaxListLimit] and returns newest submissions first.
func (s *formResponseService) List(ctx context.Context, filter FormResponseFilter) ([]domain.FormResponse, error) {
	switch {
	case filter.Limit <= 0:
		filter.Limit = DefaultListLimit
	case filter.Limit > MaxListLimit:
		filter.Limit = MaxListLimit
	}
	return s.repo.Find(ctx, filter)
}
