// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request bodies before the service layer touches
// the store or the image host.
//
// A Validator reports the first failing rule as a sentinel error from
// errors.go. Callers may pass field names to check only part of a request,
// e.g. the email and password of a login form.
package validators

import "context"


// Validator validates an arbitrary request value, optionally restricted to
// the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
