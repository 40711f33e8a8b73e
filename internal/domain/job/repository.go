package job

import "context"

type Repository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, jobID uint) (*Job, error)
	List(ctx context.Context, offset, limit int) ([]Job, error)
	ListByMember(ctx context.Context, memberUserID uint) ([]Job, error)
	Save(ctx context.Context, job *Job) error
	Delete(ctx context.Context, jobID uint) (bool, error)

	CreateApplication(ctx context.Context, application *Application) error
	GetApplication(ctx context.Context, caregiverUserID, jobID uint) (*Application, error)
	ListApplications(ctx context.Context, offset, limit int) ([]Application, error)
	ListApplicationsByCaregiver(ctx context.Context, caregiverUserID uint) ([]Application, error)
	ListApplicationsByJob(ctx context.Context, jobID uint) ([]Application, error)
	SaveApplication(ctx context.Context, application *Application) error
	DeleteApplication(ctx context.Context, caregiverUserID, jobID uint) (bool, error)
}
