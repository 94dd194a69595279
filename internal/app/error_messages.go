// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-shop-keeper server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded as
	// JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when a request fails basic
	// validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidRegistrationData is returned when a registration request
	// violates the account password policy or omits required fields.
	MsgInvalidRegistrationData = "invalid registration data provided"

	// MsgInvalidUsernamePassword is returned when the supplied
	// username/password combination does not match any existing user record.
	// The same message covers unknown usernames and wrong passwords so that
	// the response does not reveal which accounts exist.
	MsgInvalidUsernamePassword = "invalid username/password"

	// MsgUsernameAlreadyExists is returned when a registration attempt is
	// rejected because the requested username is already in use.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgUserIDNotANumber is returned when a user id path segment cannot be
	// parsed as an integer.
	MsgUserIDNotANumber = "user id must be a number"

	// MsgItemIDNotANumber is returned when an item id path segment cannot be
	// parsed as an integer.
	MsgItemIDNotANumber = "item id must be a number"
)
