// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// biomap server handlers and middleware.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied username/password
	// combination does not match any existing account.
	MsgInvalidLoginPassword = "invalid username/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgUsernameAlreadyExists is returned when a registration attempt is
	// rejected because the requested username is already in use.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgEmailAlreadyExists is returned when a registration attempt is
	// rejected because the email address is already in use.
	MsgEmailAlreadyExists = "email already exists"

	// MsgRegistrationNumberExists is returned when an institution
	// registration is rejected because the legal registration number is
	// already in use.
	MsgRegistrationNumberExists = "registration number already exists"

	// MsgScientificNameExists is returned when a species submission is
	// rejected because a record with the same scientific name already exists.
	MsgScientificNameExists = "a record with this scientific name already exists"

	// MsgRoleNotAllowed is returned when the authenticated account's role
	// does not permit the attempted operation.
	MsgRoleNotAllowed = "your account role does not permit this operation"

	// MsgNotFound is returned when a read or update targets a record that
	// does not exist.
	MsgNotFound = "not found"

	// MsgContactDeliveryFailed is returned when a contact-form message could
	// not be relayed to the operator.
	MsgContactDeliveryFailed = "message could not be delivered, please try again later"
)
