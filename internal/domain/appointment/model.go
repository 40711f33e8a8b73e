package appointment

import "time"

type Appointment struct {
	AppointmentID   uint       `gorm:"primaryKey;autoIncrement;column:appointment_id"`
	CaregiverUserID uint       `gorm:"index;not null;column:caregiver_user_id"`
	MemberUserID    uint       `gorm:"index;not null;column:member_user_id"`
	AppointmentDate *time.Time `gorm:"type:date"`
	AppointmentTime *string    `gorm:"type:time"`
	WorkHours       *float64
	Status          *string
}

func (Appointment) TableName() string {
	return "appointment"
}

type CreateAppointmentInput struct {
	CaregiverUserID uint
	MemberUserID    uint
	AppointmentDate *time.Time
	AppointmentTime *string
	WorkHours       *float64
	Status          *string
}

type UpdateAppointmentInput struct {
	CaregiverUserID *uint
	MemberUserID    *uint
	AppointmentDate *time.Time
	AppointmentTime *string
	WorkHours       *float64
	Status          *string
}
