// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// blog API handlers and middleware.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies to describe the outcome of an operation.
package app

const (
	// MsgUserAlreadyExists is returned when a registration uses an email
	// that is already taken.
	MsgUserAlreadyExists = "User already exists."

	// MsgInvalidCredentials is returned when the email is unknown or the
	// password does not match.
	MsgInvalidCredentials = "Invalid credentials."

	// MsgImageUploadFailed is returned when the image host rejects an upload.
	MsgImageUploadFailed = "Image upload failed."

	// MsgImageDeletionFailed is returned when the image host does not
	// confirm the deletion of a hosted image.
	MsgImageDeletionFailed = "Image deletion failed."

	// MsgNoImageToDelete is returned when a profile image deletion is
	// requested for a user without a hosted image.
	MsgNoImageToDelete = "No image to delete."

	// MsgNoBlogsForUser is returned when a user's blog listing page is empty.
	MsgNoBlogsForUser = "No blogs found for the specified user."

	// MsgTokenIsExpired is returned when a bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTooManyRequests is returned once a client exceeds its request rate.
	MsgTooManyRequests = "too many requests"
)

// MsgEntityNotFoundFormat renders the not-found message of an entity kind
// ("User", "Blog", "Comment") and its id.
const MsgEntityNotFoundFormat = "%s with ID %s not found."
