package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, input CreateUserInput) (*User, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if strings.TrimSpace(input.GivenName) == "" {
		return nil, fmt.Errorf("given_name is required")
	}
	if strings.TrimSpace(input.Surname) == "" {
		return nil, fmt.Errorf("surname is required")
	}
	if input.Password == "" {
		return nil, fmt.Errorf("password is required")
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	created := &User{
		Email:              email,
		GivenName:          input.GivenName,
		Surname:            input.Surname,
		City:               input.City,
		PhoneNumber:        input.PhoneNumber,
		ProfileDescription: input.ProfileDescription,
		Password:           input.Password,
	}
	if err := s.repo.Create(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, userID uint) (*User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.GetByEmail(ctx, strings.TrimSpace(email))
}

func (s *Service) List(ctx context.Context, offset, limit int) ([]User, error) {
	return s.repo.List(ctx, offset, limit)
}

// Update applies only the fields present in input; everything else keeps its
// stored value.
func (s *Service) Update(ctx context.Context, userID uint, input UpdateUserInput) (*User, error) {
	current, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		email := strings.TrimSpace(*input.Email)
		if email == "" {
			return nil, fmt.Errorf("email is required")
		}
		if email != current.Email {
			existing, err := s.repo.GetByEmail(ctx, email)
			if err != nil && !errors.Is(err, ErrUserNotFound) {
				return nil, err
			}
			if existing != nil && existing.UserID != userID {
				return nil, ErrEmailTaken
			}
		}
		current.Email = email
	}
	if input.GivenName != nil {
		current.GivenName = *input.GivenName
	}
	if input.Surname != nil {
		current.Surname = *input.Surname
	}
	if input.City != nil {
		current.City = input.City
	}
	if input.PhoneNumber != nil {
		current.PhoneNumber = input.PhoneNumber
	}
	if input.ProfileDescription != nil {
		current.ProfileDescription = input.ProfileDescription
	}
	if input.Password != nil {
		current.Password = *input.Password
	}

	if err := s.repo.Save(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, userID uint) error {
	deleted, err := s.repo.Delete(ctx, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}
