package photographer

import "errors"

var (
	ErrProfileNotFound = errors.New("photographer not found")
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDecision = errors.New("status must be approved or rejected")
)
