package member

import (
	"context"
	"errors"

	domain "caregiver-app-go/internal/domain/member"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, member *domain.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *PostgresRepository) GetByID(ctx context.Context, memberUserID uint) (*domain.Member, error) {
	var member domain.Member
	if err := r.db.WithContext(ctx).
		Where("member_user_id = ?", memberUserID).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *PostgresRepository) List(ctx context.Context, offset, limit int) ([]domain.Member, error) {
	query := r.db.WithContext(ctx).Model(&domain.Member{}).Order("member_user_id")
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var members []domain.Member
	if err := query.Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *PostgresRepository) Save(ctx context.Context, member *domain.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, memberUserID uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.Member{}, "member_user_id = ?", memberUserID)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) CreateAddress(ctx context.Context, address *domain.Address) error {
	return r.db.WithContext(ctx).Create(address).Error
}

func (r *PostgresRepository) GetAddress(ctx context.Context, memberUserID uint) (*domain.Address, error) {
	var address domain.Address
	if err := r.db.WithContext(ctx).
		Where("member_user_id = ?", memberUserID).
		First(&address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAddressNotFound
		}
		return nil, err
	}
	return &address, nil
}

func (r *PostgresRepository) ListAddresses(ctx context.Context, offset, limit int) ([]domain.Address, error) {
	query := r.db.WithContext(ctx).Model(&domain.Address{}).Order("member_user_id")
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var addresses []domain.Address
	if err := query.Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *PostgresRepository) SaveAddress(ctx context.Context, address *domain.Address) error {
	return r.db.WithContext(ctx).Save(address).Error
}

func (r *PostgresRepository) DeleteAddress(ctx context.Context, memberUserID uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.Address{}, "member_user_id = ?", memberUserID)
	return result.RowsAffected > 0, result.Error
}
