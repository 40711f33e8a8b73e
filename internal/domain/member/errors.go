package member

import "errors"

var (
	ErrMemberNotFound  = errors.New("member not found")
	ErrAddressNotFound = errors.New("address not found")
)
