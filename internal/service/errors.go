package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every validation failure; the concrete
	// field-level reason is joined onto it for user-facing messages.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword indicates the supplied password does not match the
	// stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrTokenIsExpiredOrInvalid normalizes every JWT validation failure.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrRoleNotAllowed indicates the account's role does not permit the
	// attempted operation (e.g. a common user submitting a species).
	ErrRoleNotAllowed = errors.New("role does not permit this operation")

	// ErrContactDeliveryFailed indicates the contact message could not be
	// relayed; the caller should prompt the user to retry.
	ErrContactDeliveryFailed = errors.New("contact message delivery failed")
)
