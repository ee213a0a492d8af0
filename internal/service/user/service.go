package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"mindtrack/internal/domain"
	"mindtrack/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input domain.UpdateUserInput) (*domain.User, error)
	AssignRole(ctx context.Context, input domain.AssignRoleInput) error
	ListClinicians(ctx context.Context) ([]domain.User, error)
}

type service struct {
	userRepo repository.UserRepository
}

func NewService(userRepo repository.UserRepository) Service {
	return &service{userRepo: userRepo}
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *service) UpdateProfile(ctx context.Context, id uuid.UUID, input domain.UpdateUserInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hashed)
	}
	if input.LicenseNumber != nil {
		user.LicenseNumber = input.LicenseNumber
	}
	if input.Specialty != nil {
		user.Specialty = input.Specialty
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *service) AssignRole(ctx context.Context, input domain.AssignRoleInput) error {
	if !domain.UserRole(input.Role).IsValid() {
		return domain.ErrInvalidStatus
	}
	return s.userRepo.AssignRole(ctx, input.UserID, input.Role)
}

func (s *service) ListClinicians(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListByRole(ctx, string(domain.RoleClinician))
}
