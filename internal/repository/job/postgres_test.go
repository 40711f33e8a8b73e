package job

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	domain "caregiver-app-go/internal/domain/job"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Job{}, &domain.Application{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func strPtr(s string) *string { return &s }

func TestCreateJobStoresCanonicalType(t *testing.T) {
	repo := NewPostgres(setupTestDB(t))
	ctx := context.Background()

	created := &domain.Job{
		MemberUserID:           3,
		RequiredCaregivingType: strPtr("babysitter"),
	}
	if err := repo.Create(ctx, created); err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.JobID == 0 {
		t.Fatal("expected generated job id")
	}

	got, err := repo.GetByID(ctx, created.JobID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.RequiredCaregivingType == nil || *got.RequiredCaregivingType != "Babysitter" {
		t.Fatalf("stored type = %v, want Babysitter", got.RequiredCaregivingType)
	}
}

func TestCreateJobRejectsUnknownType(t *testing.T) {
	repo := NewPostgres(setupTestDB(t))

	err := repo.Create(context.Background(), &domain.Job{
		MemberUserID:           3,
		RequiredCaregivingType: strPtr("Gardener"),
	})
	if err == nil {
		t.Fatal("expected error for unknown caregiving type")
	}
}

func TestListJobsByMember(t *testing.T) {
	repo := NewPostgres(setupTestDB(t))
	ctx := context.Background()

	for _, memberID := range []uint{3, 3, 5} {
		if err := repo.Create(ctx, &domain.Job{MemberUserID: memberID}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	jobs, err := repo.ListByMember(ctx, 3)
	if err != nil {
		t.Fatalf("list by member: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("got %d jobs, want 2", len(jobs))
	}
}

func TestApplicationCompositeKey(t *testing.T) {
	repo := NewPostgres(setupTestDB(t))
	ctx := context.Background()

	applied := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	if err := repo.CreateApplication(ctx, &domain.Application{
		CaregiverUserID: 7,
		JobID:           11,
		DateApplied:     &applied,
	}); err != nil {
		t.Fatalf("create application: %v", err)
	}
	if err := repo.CreateApplication(ctx, &domain.Application{
		CaregiverUserID: 7,
		JobID:           12,
	}); err != nil {
		t.Fatalf("create second application: %v", err)
	}

	got, err := repo.GetApplication(ctx, 7, 11)
	if err != nil {
		t.Fatalf("get application: %v", err)
	}
	if got.DateApplied == nil {
		t.Fatal("date applied missing")
	}

	_, err = repo.GetApplication(ctx, 8, 11)
	if !errors.Is(err, domain.ErrApplicationNotFound) {
		t.Fatalf("get with wrong caregiver = %v, want ErrApplicationNotFound", err)
	}

	byCaregiver, err := repo.ListApplicationsByCaregiver(ctx, 7)
	if err != nil {
		t.Fatalf("list by caregiver: %v", err)
	}
	if len(byCaregiver) != 2 {
		t.Fatalf("got %d applications for caregiver, want 2", len(byCaregiver))
	}

	byJob, err := repo.ListApplicationsByJob(ctx, 11)
	if err != nil {
		t.Fatalf("list by job: %v", err)
	}
	if len(byJob) != 1 {
		t.Fatalf("got %d applications for job, want 1", len(byJob))
	}

	deleted, err := repo.DeleteApplication(ctx, 7, 11)
	if err != nil || !deleted {
		t.Fatalf("delete = (%v, %v), want (true, nil)", deleted, err)
	}
	deleted, err = repo.DeleteApplication(ctx, 7, 11)
	if err != nil || deleted {
		t.Fatalf("second delete = (%v, %v), want (false, nil)", deleted, err)
	}
}

func TestDuplicateApplicationPairRejected(t *testing.T) {
	repo := NewPostgres(setupTestDB(t))
	ctx := context.Background()

	if err := repo.CreateApplication(ctx, &domain.Application{CaregiverUserID: 7, JobID: 11}); err != nil {
		t.Fatalf("create application: %v", err)
	}
	if err := repo.CreateApplication(ctx, &domain.Application{CaregiverUserID: 7, JobID: 11}); err == nil {
		t.Fatal("expected error for duplicate (caregiver, job) pair")
	}
}
