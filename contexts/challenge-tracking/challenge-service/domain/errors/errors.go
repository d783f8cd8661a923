package errors

import "errors"

var (
	ErrInvalidChallengeName = errors.New("challenge name must be 1-100 characters")
	ErrInvalidLogDate       = errors.New("log date is required")
	ErrChallengeNotFound    = errors.New("challenge not found")
	ErrLogNotFound          = errors.New("log entry not found")
	ErrGrantNotFound        = errors.New("shared challenge not found")
	ErrShareTargetNotFound  = errors.New("challenge or user not found")
	ErrForbidden            = errors.New("you are not authorized to access this resource")
	ErrChallengeNameTaken   = errors.New("a challenge with this name already exists for the user")
	ErrLogDateTaken         = errors.New("a log entry for this date already exists")
)
