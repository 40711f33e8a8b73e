package job

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

func (s *Service) Create(ctx context.Context, input CreateJobInput) (*Job, error) {
	if input.MemberUserID == 0 {
		return nil, fmt.Errorf("member_user_id is required")
	}

	requiredType, err := enums.CaregivingType.NormalizePtr(input.RequiredCaregivingType)
	if err != nil {
		return nil, err
	}

	created := &Job{
		MemberUserID:           input.MemberUserID,
		RequiredCaregivingType: requiredType,
		OtherRequirements:      input.OtherRequirements,
		DatePosted:             input.DatePosted,
	}
	if err := s.repo.Create(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, jobID uint) (*Job, error) {
	return s.repo.GetByID(ctx, jobID)
}

func (s *Service) List(ctx context.Context, offset, limit int) ([]Job, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *Service) ListByMember(ctx context.Context, memberUserID uint) ([]Job, error) {
	return s.repo.ListByMember(ctx, memberUserID)
}

func (s *Service) Update(ctx context.Context, jobID uint, input UpdateJobInput) (*Job, error) {
	current, err := s.repo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if input.MemberUserID != nil {
		current.MemberUserID = *input.MemberUserID
	}
	if input.RequiredCaregivingType != nil {
		requiredType, err := enums.CaregivingType.NormalizePtr(input.RequiredCaregivingType)
		if err != nil {
			return nil, err
		}
		current.RequiredCaregivingType = requiredType
	}
	if input.OtherRequirements != nil {
		current.OtherRequirements = input.OtherRequirements
	}
	if input.DatePosted != nil {
		current.DatePosted = input.DatePosted
	}

	if err := s.repo.Save(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, jobID uint) error {
	deleted, err := s.repo.Delete(ctx, jobID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrJobNotFound
	}
	return nil
}

func (s *Service) CreateApplication(ctx context.Context, input CreateApplicationInput) (*Application, error) {
	if input.CaregiverUserID == 0 {
		return nil, fmt.Errorf("caregiver_user_id is required")
	}
	if input.JobID == 0 {
		return nil, fmt.Errorf("job_id is required")
	}

	created := &Application{
		CaregiverUserID: input.CaregiverUserID,
		JobID:           input.JobID,
		DateApplied:     input.DateApplied,
	}
	if err := s.repo.CreateApplication(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) GetApplication(ctx context.Context, caregiverUserID, jobID uint) (*Application, error) {
	return s.repo.GetApplication(ctx, caregiverUserID, jobID)
}

func (s *Service) ListApplications(ctx context.Context, offset, limit int) ([]Application, error) {
	return s.repo.ListApplications(ctx, offset, limit)
}

func (s *Service) ListApplicationsByCaregiver(ctx context.Context, caregiverUserID uint) ([]Application, error) {
	return s.repo.ListApplicationsByCaregiver(ctx, caregiverUserID)
}

func (s *Service) ListApplicationsByJob(ctx context.Context, jobID uint) ([]Application, error) {
	return s.repo.ListApplicationsByJob(ctx, jobID)
}

func (s *Service) UpdateApplication(ctx context.Context, caregiverUserID, jobID uint, input UpdateApplicationInput) (*Application, error) {
	current, err := s.repo.GetApplication(ctx, caregiverUserID, jobID)
	if err != nil {
		return nil, err
	}

	if input.DateApplied != nil {
		current.DateApplied = input.DateApplied
	}

	if err := s.repo.SaveApplication(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *Service) DeleteApplication(ctx context.Context, caregiverUserID, jobID uint) error {
	deleted, err := s.repo.DeleteApplication(ctx, caregiverUserID, jobID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrApplicationNotFound
	}
	return nil
}
