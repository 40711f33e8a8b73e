package caregiver

import (
	"context"
	"fmt"

	"caregiver-app-go/internal/domain/enums"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, input CreateCaregiverInput) (*Caregiver, error) {
	if input.CaregiverUserID == 0 {
		return nil, fmt.Errorf("caregiver_user_id is required")
	}

	gender, err := enums.Gender.NormalizePtr(input.Gender)
	if err != nil {
		return nil, err
	}
	caregivingType, err := enums.CaregivingType.NormalizePtr(input.CaregivingType)
	if err != nil {
		return nil, err
	}

	created := &Caregiver{
		CaregiverUserID: input.CaregiverUserID,
		Photo:           input.Photo,
		Gender:          gender,
		CaregivingType:  caregivingType,
		HourlyRate:      input.HourlyRate,
	}
	if err := s.repo.Create(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, caregiverUserID uint) (*Caregiver, error) {
	return s.repo.GetByID(ctx, caregiverUserID)
}

func (s *Service) List(ctx context.Context, offset, limit int) ([]Caregiver, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *Service) Update(ctx context.Context, caregiverUserID uint, input UpdateCaregiverInput) (*Caregiver, error) {
	current, err := s.repo.GetByID(ctx, caregiverUserID)
	if err != nil {
		return nil, err
	}

	if input.Photo != nil {
		current.Photo = input.Photo
	}
	if input.Gender != nil {
		gender, err := enums.Gender.NormalizePtr(input.Gender)
		if err != nil {
			return nil, err
		}
		current.Gender = gender
	}
	if input.CaregivingType != nil {
		caregivingType, err := enums.CaregivingType.NormalizePtr(input.CaregivingType)
		if err != nil {
			return nil, err
		}
		current.CaregivingType = caregivingType
	}
	if input.HourlyRate != nil {
		current.HourlyRate = input.HourlyRate
	}

	if err := s.repo.Save(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, caregiverUserID uint) error {
	deleted, err := s.repo.Delete(ctx, caregiverUserID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCaregiverNotFound
	}
	return nil
}
