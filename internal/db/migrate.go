package db

import (
	"fmt"

	"caregiver-app-go/internal/domain/appointment"
	"caregiver-app-go/internal/domain/caregiver"
	"caregiver-app-go/internal/domain/job"
	"caregiver-app-go/internal/domain/member"
	"caregiver-app-go/internal/domain/user"
	"gorm.io/gorm"
)

// Migrate brings the schema up to date: auto-migrates every entity table,
// then reconciles the appointment status constraint left behind by older
// schema revisions.
func Migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(
		&user.User{},
		&caregiver.Caregiver{},
		&member.Member{},
		&member.Address{},
		&job.Job{},
		&job.Application{},
		&appointment.Appointment{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if err := EnsureAppointmentStatusConstraint(gormDB); err != nil {
		return fmt.Errorf("appointment status constraint: %w", err)
	}

	return nil
}
