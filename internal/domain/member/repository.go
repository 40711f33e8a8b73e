package member

import "context"

type Repository interface {
	Create(ctx context.Context, member *Member) error
	GetByID(ctx context.Context, memberUserID uint) (*Member, error)
	List(ctx context.Context, offset, limit int) ([]Member, error)
	Save(ctx context.Context, member *Member) error
	Delete(ctx context.Context, memberUserID uint) (bool, error)

	CreateAddress(ctx context.Context, address *Address) error
	GetAddress(ctx context.Context, memberUserID uint) (*Address, error)
	ListAddresses(ctx context.Context, offset, limit int) ([]Address, error)
	SaveAddress(ctx context.Context, address *Address) error
	DeleteAddress(ctx context.Context, memberUserID uint) (bool, error)
}
