package db

import (
	"fmt"
	"strings"

	"caregiver-app-go/internal/domain/enums"
	"gorm.io/gorm"
)

const appointmentStatusConstraint = "appointment_status_check"

// cancelMarker is the newest status value; a constraint definition that
// mentions it already allows the full set.
const cancelMarker = "'cancel'"

// EnsureAppointmentStatusConstraint self-heals databases created before the
// cancel status existed: it inspects the current CHECK definition and, when
// stale or missing, replaces it with one covering all four canonical values.
// Running it against an up-to-date schema is a no-op.
func EnsureAppointmentStatusConstraint(gormDB *gorm.DB) error {
	var definition string
	err := gormDB.Raw(`
		SELECT pg_get_constraintdef(c.oid)
		FROM pg_constraint c
		JOIN pg_class t ON c.conrelid = t.oid
		WHERE t.relname = 'appointment' AND c.conname = ?
	`, appointmentStatusConstraint).Scan(&definition).Error
	if err != nil {
		return err
	}

	if constraintAllowsCancel(definition) {
		return nil
	}

	drop := fmt.Sprintf("ALTER TABLE appointment DROP CONSTRAINT IF EXISTS %s", appointmentStatusConstraint)
	if err := gormDB.Exec(drop).Error; err != nil {
		return err
	}

	return gormDB.Exec(appointmentStatusCheckSQL()).Error
}

func constraintAllowsCancel(definition string) bool {
	return definition != "" && strings.Contains(definition, cancelMarker)
}

func appointmentStatusCheckSQL() string {
	values := enums.AppointmentStatus.Values()
	quoted := make([]string, 0, len(values))
	for _, value := range values {
		quoted = append(quoted, fmt.Sprintf("'%s'::character varying", value))
	}

	return fmt.Sprintf(
		"ALTER TABLE appointment ADD CONSTRAINT %s CHECK (((status)::text = ANY ((ARRAY[%s])::text[])))",
		appointmentStatusConstraint,
		strings.Join(quoted, ", "),
	)
}
