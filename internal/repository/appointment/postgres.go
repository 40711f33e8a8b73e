package appointment

import (
	"context"
	"errors"

	domain "caregiver-app-go/internal/domain/appointment"
	"caregiver-app-go/internal/domain/enums"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func normalizeStatus(appointment *domain.Appointment) error {
	status, err := enums.AppointmentStatus.NormalizePtr(appointment.Status)
	if err != nil {
		return err
	}
	appointment.Status = status
	return nil
}

func (r *PostgresRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	if err := normalizeStatus(appointment); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *PostgresRepository) GetByID(ctx context.Context, appointmentID uint) (*domain.Appointment, error) {
	var appointment domain.Appointment
	if err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *PostgresRepository) List(ctx context.Context, offset, limit int) ([]domain.Appointment, error) {
	query := r.db.WithContext(ctx).Model(&domain.Appointment{}).Order("appointment_id")
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var appointments []domain.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *PostgresRepository) ListByCaregiver(ctx context.Context, caregiverUserID uint) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	if err := r.db.WithContext(ctx).
		Where("caregiver_user_id = ?", caregiverUserID).
		Order("appointment_id").
		Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *PostgresRepository) ListByMember(ctx context.Context, memberUserID uint) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	if err := r.db.WithContext(ctx).
		Where("member_user_id = ?", memberUserID).
		Order("appointment_id").
		Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *PostgresRepository) Save(ctx context.Context, appointment *domain.Appointment) error {
	if err := normalizeStatus(appointment); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(appointment).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, appointmentID uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.Appointment{}, "appointment_id = ?", appointmentID)
	return result.RowsAffected > 0, result.Error
}
