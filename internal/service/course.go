package service

import (
	"context"
	"database/sql"
	"errors"

	"bizgenius/internal/model"
	"bizgenius/internal/repository"
)

// CourseListResult is the service-level DTO for a paginated catalog page.
type CourseListResult struct {
	Items []model.Course `json:"data"`
	Total int            `json:"total"`
}

// CourseService defines read access to the course catalog.
type CourseService interface {
	// List returns a catalog page, optionally filtered by category.
	List(ctx context.Context, category string, limit, offset int) (*CourseListResult, error)

	// Get returns a single course by ID.
	Get(ctx context.Context, id string) (*model.Course, error)
}

type courseService struct {
	repo repository.CourseRepository
}

// NewCourseService constructs a new CourseService.
func NewCourseService(repo repository.CourseRepository) CourseService {
	return &courseService{repo: repo}
}

func (s *courseService) List(ctx context.Context, category string, limit, offset int) (*CourseListResult, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, category, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &CourseListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *courseService) Get(ctx context.Context, id string) (*model.Course, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}
