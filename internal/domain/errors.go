package domain

import "errors"

// Kinds. Every rule error below unwraps to exactly one of them.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrValidation         = errors.New("validation error")
	ErrInvariantViolation = errors.New("invariant violation")
)

type ruleError struct {
	kind error
	msg  string
}

func (e *ruleError) Error() string { return e.msg }

func (e *ruleError) Unwrap() error { return e.kind }

func rule(kind error, msg string) error {
	return &ruleError{kind: kind, msg: msg}
}

var (
	ErrEventNotFound    = rule(ErrNotFound, "event not found")
	ErrUserNotFound     = rule(ErrNotFound, "user not found")
	ErrRequestNotFound  = rule(ErrNotFound, "participation request not found")
	ErrCategoryNotFound = rule(ErrNotFound, "category not found")

	ErrCompilationNotFound = rule(ErrNotFound, "compilation not found")
)

// Event lifecycle.
var (
	ErrNotInitiator          = rule(ErrForbidden, "user is not the event initiator")
	ErrEventPublished        = rule(ErrForbidden, "published event cannot be changed")
	ErrEventNotPending       = rule(ErrForbidden, "event can be published only from pending state")
	ErrEventAlreadyPublished = rule(ErrForbidden, "published event cannot be rejected")
	ErrLimitBelowConfirmed   = rule(ErrForbidden, "participant limit is below the confirmed count")
)

// Participation requests.
var (
	ErrDuplicateRequest        = rule(ErrForbidden, "request for this event already exists")
	ErrSelfRequest             = rule(ErrForbidden, "initiator cannot request participation in own event")
	ErrEventNotPublished       = rule(ErrForbidden, "participation is possible only in a published event")
	ErrParticipantLimitReached = rule(ErrForbidden, "participant limit reached")
	ErrLimitAlreadyReached     = rule(ErrForbidden, "participant limit already reached")
	ErrNotRequester            = rule(ErrForbidden, "request belongs to another user")
	ErrRequestNotCancelable    = rule(ErrForbidden, "request cannot be canceled in its current status")
)

var (
	ErrInvalidDateRange   = rule(ErrValidation, "range start is after range end")
	ErrUnknownSort        = rule(ErrValidation, "unknown sort key")
	ErrUnknownStateAction = rule(ErrValidation, "unknown state action")
	ErrUnknownState       = rule(ErrValidation, "unknown event state")
	ErrInvalidStatus      = rule(ErrValidation, "status must be CONFIRMED or REJECTED")
	ErrEventDateTooSoon   = rule(ErrValidation, "event date is too soon")
	ErrNegativeLimit      = rule(ErrValidation, "participant limit cannot be negative")
	ErrInvalidPage        = rule(ErrValidation, "invalid page parameters")
	ErrCompilationTitle   = rule(ErrValidation, "compilation title must be 1 to 50 characters")
)

// Directory uniqueness.
var (
	ErrEmailTaken        = rule(ErrForbidden, "email is already taken")
	ErrCategoryNameTaken = rule(ErrForbidden, "category name is already taken")
)

var (
	ErrLedgerUnderflow  = rule(ErrInvariantViolation, "confirmed count released below zero")
	ErrCapacityExceeded = rule(ErrInvariantViolation, "confirmed count exceeds participant limit")
)
