package user

import "context"

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, offset, limit int) ([]User, error)
	Save(ctx context.Context, user *User) error
	Delete(ctx context.Context, userID uint) (bool, error)
}
