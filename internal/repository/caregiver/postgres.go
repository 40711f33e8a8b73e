package caregiver

import (
	"context"
	"errors"

	domain "caregiver-app-go/internal/domain/caregiver"
	"caregiver-app-go/internal/domain/enums"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// normalizeEnums guards the storage boundary: whatever path produced the
// record, the stored column values are always canonical.
func normalizeEnums(caregiver *domain.Caregiver) error {
	gender, err := enums.Gender.NormalizePtr(caregiver.Gender)
	if err != nil {
		return err
	}
	caregivingType, err := enums.CaregivingType.NormalizePtr(caregiver.CaregivingType)
	if err != nil {
		return err
	}
	caregiver.Gender = gender
	caregiver.CaregivingType = caregivingType
	return nil
}

func (r *PostgresRepository) Create(ctx context.Context, caregiver *domain.Caregiver) error {
	if err := normalizeEnums(caregiver); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(caregiver).Error
}

func (r *PostgresRepository) GetByID(ctx context.Context, caregiverUserID uint) (*domain.Caregiver, error) {
	var caregiver domain.Caregiver
	if err := r.db.WithContext(ctx).
		Where("caregiver_user_id = ?", caregiverUserID).
		First(&caregiver).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCaregiverNotFound
		}
		return nil, err
	}
	return &caregiver, nil
}

func (r *PostgresRepository) List(ctx context.Context, offset, limit int) ([]domain.Caregiver, error) {
	query := r.db.WithContext(ctx).Model(&domain.Caregiver{}).Order("caregiver_user_id")
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var caregivers []domain.Caregiver
	if err := query.Find(&caregivers).Error; err != nil {
		return nil, err
	}
	return caregivers, nil
}

func (r *PostgresRepository) Save(ctx context.Context, caregiver *domain.Caregiver) error {
	if err := normalizeEnums(caregiver); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(caregiver).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, caregiverUserID uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.Caregiver{}, "caregiver_user_id = ?", caregiverUserID)
	return result.RowsAffected > 0, result.Error
}
