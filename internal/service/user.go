package service

import (
	"context"
	"database/sql"
	"errors"

	"bizgenius/internal/model"
	"bizgenius/internal/repository"
)

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	FullName string `json:"full_name"`
	Headline string `json:"headline"`
	Location string `json:"location"`
}

// UserService defines the use cases for the profile page.
type UserService interface {
	// Get returns a user's profile.
	Get(ctx context.Context, id string) (*model.User, error)

	// Update overwrites the editable profile fields.
	Update(ctx context.Context, id string, upd ProfileUpdate) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService constructs a new UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Get(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) Update(ctx context.Context, id string, upd ProfileUpdate) (*model.User, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	u, err := s.repo.Update(ctx, &model.User{
		ID:       id,
		FullName: upd.FullName,
		Headline: upd.Headline,
		Location: upd.Location,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}
