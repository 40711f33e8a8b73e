package caregiver

type Caregiver struct {
	CaregiverUserID uint     `gorm:"primaryKey;column:caregiver_user_id"`
	Photo           *string
	Gender          *string
	CaregivingType  *string
	HourlyRate      *float64
}

func (Caregiver) TableName() string {
	return "caregiver"
}

type CreateCaregiverInput struct {
	CaregiverUserID uint
	Photo           *string
	Gender          *string
	CaregivingType  *string
	HourlyRate      *float64
}

type UpdateCaregiverInput struct {
	Photo          *string
	Gender         *string
	CaregivingType *string
	HourlyRate     *float64
}
