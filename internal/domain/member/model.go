package member

type Member struct {
	MemberUserID         uint    `gorm:"primaryKey;column:member_user_id"`
	HouseRules           *string `gorm:"type:text"`
	DependentDescription *string `gorm:"type:text"`
}

func (Member) TableName() string {
	return "member"
}

// Address is the member's single optional address, keyed by the member id.
type Address struct {
	MemberUserID uint    `gorm:"primaryKey;column:member_user_id"`
	HouseNumber  *string
	Street       *string
	Town         *string
}

func (Address) TableName() string {
	return "address"
}

type CreateMemberInput struct {
	MemberUserID         uint
	HouseRules           *string
	DependentDescription *string
}

type UpdateMemberInput struct {
	HouseRules           *string
	DependentDescription *string
}

type CreateAddressInput struct {
	MemberUserID uint
	HouseNumber  *string
	Street       *string
	Town         *string
}

type UpdateAddressInput struct {
	HouseNumber *string
	Street      *string
	Town        *string
}
