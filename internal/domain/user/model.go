package user

type User struct {
	UserID             uint    `gorm:"primaryKey;autoIncrement;column:user_id"`
	Email              string  `gorm:"uniqueIndex;not null"`
	GivenName          string  `gorm:"not null"`
	Surname            string  `gorm:"not null"`
	City               *string
	PhoneNumber        *string
	ProfileDescription *string `gorm:"type:text"`
	Password           string  `gorm:"not null"`
}

func (User) TableName() string {
	return "user"
}

type CreateUserInput struct {
	Email              string
	GivenName          string
	Surname            string
	City               *string
	PhoneNumber        *string
	ProfileDescription *string
	Password           string
}

type UpdateUserInput struct {
	Email              *string
	GivenName          *string
	Surname            *string
	City               *string
	PhoneNumber        *string
	ProfileDescription *string
	Password           *string
}
