package services

import (
	"errors"
	"fmt"
)

// Shared errors, mapped to HTTP statuses by the handlers.
var (
	ErrNotFound = errors.New("requested resource not found")

	ErrValidationFailed = errors.New("validation failed")

	// ErrForbiddenOperation is the policy-violation kind. Nothing in this
	// module raises it; callers that enforce policy return it.
	ErrForbiddenOperation = errors.New("operation not allowed for the current user")

	ErrParticipantNotFound = fmt.Errorf("%w: participant", ErrNotFound)
	ErrRoundNotFound       = fmt.Errorf("%w: round", ErrNotFound)
	ErrTableNotFound       = fmt.Errorf("%w: table", ErrNotFound)

	ErrParticipantNameRequired = fmt.Errorf("%w: participant name is required", ErrValidationFailed)
	ErrParticipantNameTooLong  = fmt.Errorf("%w: participant name must be at most 100 characters", ErrValidationFailed)
	ErrResultsRequired         = fmt.Errorf("%w: results are required", ErrValidationFailed)
	ErrRoundNumberInvalid      = fmt.Errorf("%w: round number must be positive", ErrValidationFailed)

	ErrResultsAlreadyRecorded = errors.New("results already recorded for this table; edit them instead")
	ErrNoParticipants         = errors.New("no participants registered; nothing to pair")
	ErrRoundNumberConflict    = errors.New("round was created concurrently; retry")

	ErrArchiveDisabled = errors.New("standings archive storage is not configured")
)
