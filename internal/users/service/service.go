package users

import (
	"context"

	"contra-api/internal/models"
)

type UserDBLayer interface {
	ListUsers(ctx context.Context) ([]models.UserSummary, error)
	GetUserByID(ctx context.Context, id string) (*models.UserDetail, error)
}

type UserService struct {
	DB UserDBLayer
}

func NewUserService(db UserDBLayer) *UserService {
	return &UserService{DB: db}
}

// ListUsers returns all users in the list projection, never nil.
func (s *UserService) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	users, err := s.DB.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.UserSummary{}
	}
	return users, nil
}

// GetUserByID returns nil for an empty id without touching the store, and
// nil when no user matches.
func (s *UserService) GetUserByID(ctx context.Context, id string) (*models.UserDetail, error) {
	if id == "" {
		return nil, nil
	}
	return s.DB.GetUserByID(ctx, id)
}
