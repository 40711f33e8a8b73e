package caregiver

import "context"

type Repository interface {
	Create(ctx context.Context, caregiver *Caregiver) error
	GetByID(ctx context.Context, caregiverUserID uint) (*Caregiver, error)
	List(ctx context.Context, offset, limit int) ([]Caregiver, error)
	Save(ctx context.Context, caregiver *Caregiver) error
	Delete(ctx context.Context, caregiverUserID uint) (bool, error)
}
