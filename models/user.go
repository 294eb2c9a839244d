// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents a registered account of the blog platform.
// Credential and image-host bookkeeping fields are never exposed via JSON.
type User struct {
	// ID is the store-generated identifier (hex string).
	ID string `json:"id"`

	// FirstName is the given name shown next to authored blogs.
	FirstName string `json:"firstName"`

	// LastName is the family name shown next to authored blogs.
	LastName string `json:"lastName"`

	// Email is the login identifier. Uniqueness is checked on registration
	// only, with an exact (case-sensitive) match.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash produced at registration time.
	// Users created by an administrator carry the password exactly as supplied.
	PasswordHash string `json:"-"`

	// Role decides which capabilities the account holds.
	Role Role `json:"role"`

	// ProfileImageURL is the public link of the hosted profile image, if any.
	ProfileImageURL string `json:"profileImageUrl,omitempty"`

	// ProfileImageDeleteToken is the image host token needed to remove
	// the profile image. Internal only.
	ProfileImageDeleteToken string `json:"-"`
}

// HasProfileImage reports whether a hosted profile image can be deleted.
func (u User) HasProfileImage() bool {
	return u.ProfileImageDeleteToken != ""
}

// UserRequest is the body accepted by the administrative create and
// replace endpoints.
type UserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      Role   `json:"role"`
}
