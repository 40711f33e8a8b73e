package job

import "errors"

var (
	ErrJobNotFound         = errors.New("job not found")
	ErrApplicationNotFound = errors.New("job application not found")
)
