package member

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, input CreateMemberInput) (*Member, error) {
	if input.MemberUserID == 0 {
		return nil, fmt.Errorf("member_user_id is required")
	}

	created := &Member{
		MemberUserID:         input.MemberUserID,
		HouseRules:           input.HouseRules,
		DependentDescription: input.DependentDescription,
	}
	if err := s.repo.Create(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, memberUserID uint) (*Member, error) {
	return s.repo.GetByID(ctx, memberUserID)
}

func (s *Service) List(ctx context.Context, offset, limit int) ([]Member, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *Service) Update(ctx context.Context, memberUserID uint, input UpdateMemberInput) (*Member, error) {
	current, err := s.repo.GetByID(ctx, memberUserID)
	if err != nil {
		return nil, err
	}

	if input.HouseRules != nil {
		current.HouseRules = input.HouseRules
	}
	if input.DependentDescription != nil {
		current.DependentDescription = input.DependentDescription
	}

	if err := s.repo.Save(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, memberUserID uint) error {
	deleted, err := s.repo.Delete(ctx, memberUserID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMemberNotFound
	}
	return nil
}

func (s *Service) CreateAddress(ctx context.Context, input CreateAddressInput) (*Address, error) {
	if input.MemberUserID == 0 {
		return nil, fmt.Errorf("member_user_id is required")
	}

	created := &Address{
		MemberUserID: input.MemberUserID,
		HouseNumber:  input.HouseNumber,
		Street:       input.Street,
		Town:         input.Town,
	}
	if err := s.repo.CreateAddress(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) GetAddress(ctx context.Context, memberUserID uint) (*Address, error) {
	return s.repo.GetAddress(ctx, memberUserID)
}

func (s *Service) ListAddresses(ctx context.Context, offset, limit int) ([]Address, error) {
	return s.repo.ListAddresses(ctx, offset, limit)
}

func (s *Service) UpdateAddress(ctx context.Context, memberUserID uint, input UpdateAddressInput) (*Address, error) {
	current, err := s.repo.GetAddress(ctx, memberUserID)
	if err != nil {
		return nil, err
	}

	if input.HouseNumber != nil {
		current.HouseNumber = input.HouseNumber
	}
	if input.Street != nil {
		current.Street = input.Street
	}
	if input.Town != nil {
		current.Town = input.Town
	}

	if err := s.repo.SaveAddress(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *Service) DeleteAddress(ctx context.Context, memberUserID uint) error {
	deleted, err := s.repo.DeleteAddress(ctx, memberUserID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAddressNotFound
	}
	return nil
}
