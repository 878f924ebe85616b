package application

import "errors"

var (
	// ErrValidation is the silent step gate: the client renders it as a
	// disabled continue control, never as a thrown error.
	ErrValidation = errors.New("validation failed")

	// ErrStepPrecondition fires when a step is reached without the state
	// earlier steps were supposed to persist.
	ErrStepPrecondition = errors.New("onboarding step precondition not met")

	// ErrNotVerified blocks go-live while verification is still pending.
	ErrNotVerified = errors.New("verification not approved")

	// ErrVerificationRejected blocks go-live after a rejected review,
	// distinguishable from the pending case.
	ErrVerificationRejected = errors.New("verification rejected")

	ErrInsufficientBalance = errors.New("insufficient balance for withdrawal")

	ErrProfileNotFound = errors.New("profile not found")
)
