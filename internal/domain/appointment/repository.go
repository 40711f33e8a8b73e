package appointment

import "context"

type Repository interface {
	Create(ctx context.Context, appointment *Appointment) error
	GetByID(ctx context.Context, appointmentID uint) (*Appointment, error)
	List(ctx context.Context, offset, limit int) ([]Appointment, error)
	ListByCaregiver(ctx context.Context, caregiverUserID uint) ([]Appointment, error)
	ListByMember(ctx context.Context, memberUserID uint) ([]Appointment, error)
	Save(ctx context.Context, appointment *Appointment) error
	Delete(ctx context.Context, appointmentID uint) (bool, error)
}
