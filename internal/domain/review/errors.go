package review

import "errors"

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrNotAuthor      = errors.New("only the author may modify this review")
)
