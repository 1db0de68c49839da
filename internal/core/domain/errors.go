package domain

import "errors"

var (
	// ErrValidation marks malformed or missing input. Wrap it with context:
	// fmt.Errorf("%w: content is required", domain.ErrValidation).
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials is returned for every credential mismatch,
	// whether the account exists or not.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrForbidden     = errors.New("access forbidden")
	ErrEmailTaken    = errors.New("email already exists")
	ErrInviteInvalid = errors.New("invalid or expired invite token")

	ErrUserNotFound     = errors.New("user not found")
	ErrProjectNotFound  = errors.New("project not found")
	ErrFileNotFound     = errors.New("file not found")
	ErrFeedbackNotFound = errors.New("feedback not found")
	ErrMessageNotFound  = errors.New("message not found")
)
