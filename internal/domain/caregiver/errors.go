package caregiver

import "errors"

var ErrCaregiverNotFound = errors.New("caregiver not found")
