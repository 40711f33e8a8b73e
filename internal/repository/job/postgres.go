package job

import (
	"context"
	"errors"

	"caregiver-app-go/internal/domain/enums"
	domain "caregiver-app-go/internal/domain/job"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func normalizeRequiredType(job *domain.Job) error {
	requiredType, err := enums.CaregivingType.NormalizePtr(job.RequiredCaregivingType)
	if err != nil {
		return err
	}
	job.RequiredCaregivingType = requiredType
	return nil
}

func (r *PostgresRepository) Create(ctx context.Context, job *domain.Job) error {
	if err := normalizeRequiredType(job); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *PostgresRepository) GetByID(ctx context.Context, jobID uint) (*domain.Job, error) {
	var job domain.Job
	if err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *PostgresRepository) List(ctx context.Context, offset, limit int) ([]domain.Job, error) {
	query := r.db.WithContext(ctx).Model(&domain.Job{}).Order("job_id")
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var jobs []domain.Job
	if err := query.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *PostgresRepository) ListByMember(ctx context.Context, memberUserID uint) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := r.db.WithContext(ctx).
		Where("member_user_id = ?", memberUserID).
		Order("job_id").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *PostgresRepository) Save(ctx context.Context, job *domain.Job) error {
	if err := normalizeRequiredType(job); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, jobID uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.Job{}, "job_id = ?", jobID)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) CreateApplication(ctx context.Context, application *domain.Application) error {
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *PostgresRepository) GetApplication(ctx context.Context, caregiverUserID, jobID uint) (*domain.Application, error) {
	var application domain.Application
	if err := r.db.WithContext(ctx).
		Where("caregiver_user_id = ? AND job_id = ?", caregiverUserID, jobID).
		First(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *PostgresRepository) ListApplications(ctx context.Context, offset, limit int) ([]domain.Application, error) {
	query := r.db.WithContext(ctx).Model(&domain.Application{}).Order("caregiver_user_id, job_id")
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var applications []domain.Application
	if err := query.Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *PostgresRepository) ListApplicationsByCaregiver(ctx context.Context, caregiverUserID uint) ([]domain.Application, error) {
	var applications []domain.Application
	if err := r.db.WithContext(ctx).
		Where("caregiver_user_id = ?", caregiverUserID).
		Order("job_id").
		Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *PostgresRepository) ListApplicationsByJob(ctx context.Context, jobID uint) ([]domain.Application, error) {
	var applications []domain.Application
	if err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("caregiver_user_id").
		Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *PostgresRepository) SaveApplication(ctx context.Context, application *domain.Application) error {
	return r.db.WithContext(ctx).Save(application).Error
}

func (r *PostgresRepository) DeleteApplication(ctx context.Context, caregiverUserID, jobID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Delete(&domain.Application{}, "caregiver_user_id = ? AND job_id = ?", caregiverUserID, jobID)
	return result.RowsAffected > 0, result.Error
}
