package user

import (
	"context"
)

// store is the repository surface the service depends on.
type store interface {
	Create(ctx context.Context, in CreateInput) (User, error)
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id int64) (User, error)
	Update(ctx context.Context, u User) (User, error)
	Delete(ctx context.Context, id int64) error
}

// Service exposes user CRUD on top of the repository.
type Service struct {
	repo store
}

// NewService constructs a user service.
func NewService(repo store) *Service {
	return &Service{repo: repo}
}

// Create registers a new user. Duplicate email or username surfaces as
// ErrEmailTaken from the repository's unique constraints.
func (s *Service) Create(ctx context.Context, in CreateInput) (User, error) {
	return s.repo.Create(ctx, in)
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// Get fetches one user by id.
func (s *Service) Get(ctx context.Context, id int64) (User, error) {
	return s.repo.Get(ctx, id)
}

// Update applies a partial patch to an existing user. Only the fields set on
// the patch change; everything else keeps its stored value.
func (s *Service) Update(ctx context.Context, id int64, patch Patch) (User, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return User{}, err
	}

	applyPatch(&u, patch)

	return s.repo.Update(ctx, u)
}

// Delete removes a user by id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func applyPatch(u *User, p Patch) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.FullName != nil {
		u.FullName = p.FullName
	}
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
}
