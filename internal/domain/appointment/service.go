package appointment

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

func (s *Service) Create(ctx context.Context, input CreateAppointmentInput) (*Appointment, error) {
	if input.CaregiverUserID == 0 {
		return nil, fmt.Errorf("caregiver_user_id is required")
	}
	if input.MemberUserID == 0 {
		return nil, fmt.Errorf("member_user_id is required")
	}

	status, err := enums.AppointmentStatus.NormalizePtr(input.Status)
	if err != nil {
		return nil, err
	}

	created := &Appointment{
		CaregiverUserID: input.CaregiverUserID,
		MemberUserID:    input.MemberUserID,
		AppointmentDate: input.AppointmentDate,
		AppointmentTime: input.AppointmentTime,
		WorkHours:       input.WorkHours,
		Status:          status,
	}
	if err := s.repo.Create(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, appointmentID uint) (*Appointment, error) {
	return s.repo.GetByID(ctx, appointmentID)
}

func (s *Service) List(ctx context.Context, offset, limit int) ([]Appointment, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *Service) ListByCaregiver(ctx context.Context, caregiverUserID uint) ([]Appointment, error) {
	return s.repo.ListByCaregiver(ctx, caregiverUserID)
}

func (s *Service) ListByMember(ctx context.Context, memberUserID uint) ([]Appointment, error) {
	return s.repo.ListByMember(ctx, memberUserID)
}

func (s *Service) Update(ctx context.Context, appointmentID uint, input UpdateAppointmentInput) (*Appointment, error) {
	current, err := s.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if input.CaregiverUserID != nil {
		current.CaregiverUserID = *input.CaregiverUserID
	}
	if input.MemberUserID != nil {
		current.MemberUserID = *input.MemberUserID
	}
	if input.AppointmentDate != nil {
		current.AppointmentDate = input.AppointmentDate
	}
	if input.AppointmentTime != nil {
		current.AppointmentTime = input.AppointmentTime
	}
	if input.WorkHours != nil {
		current.WorkHours = input.WorkHours
	}
	if input.Status != nil {
		status, err := enums.AppointmentStatus.NormalizePtr(input.Status)
		if err != nil {
			return nil, err
		}
		current.Status = status
	}

	if err := s.repo.Save(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, appointmentID uint) error {
	deleted, err := s.repo.Delete(ctx, appointmentID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAppointmentNotFound
	}
	return nil
}
