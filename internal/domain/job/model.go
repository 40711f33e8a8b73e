package job

import "time"

type Job struct {
	JobID                  uint       `gorm:"primaryKey;autoIncrement;column:job_id"`
	MemberUserID           uint       `gorm:"index;not null;column:member_user_id"`
	RequiredCaregivingType *string
	OtherRequirements      *string    `gorm:"type:text"`
	DatePosted             *time.Time `gorm:"type:date"`
}

func (Job) TableName() string {
	return "job"
}

// Application is identified by the (caregiver_user_id, job_id) pair.
type Application struct {
	CaregiverUserID uint       `gorm:"primaryKey;column:caregiver_user_id"`
	JobID           uint       `gorm:"primaryKey;column:job_id"`
	DateApplied     *time.Time `gorm:"type:date"`
}

func (Application) TableName() string {
	return "job_application"
}

type CreateJobInput struct {
	MemberUserID           uint
	RequiredCaregivingType *string
	OtherRequirements      *string
	DatePosted             *time.Time
}

type UpdateJobInput struct {
	MemberUserID           *uint
	RequiredCaregivingType *string
	OtherRequirements      *string
	DatePosted             *time.Time
}

type CreateApplicationInput struct {
	CaregiverUserID uint
	JobID           uint
	DateApplied     *time.Time
}

type UpdateApplicationInput struct {
	DateApplied *time.Time
}
