// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external services the blog API
// depends on.
//
// The only abstraction today is [ImageHost], which decouples the service
// layer from the third-party image hosting provider. The package ships an
// Imgur-compatible HTTP implementation ([NewImgurImageHost]).
//
// HTTP status codes returned by the provider are mapped to the sentinel
// values in errors.go by mapHTTPError so that callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/lamijafatic/blog-website-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/image_host_mock.go -package=mock

// ImageHost stores binary images with a remote provider.
type ImageHost interface {
	// Upload stores data and returns its public URL together with the
	// delete token needed to remove it later. Any non-2xx answer is
	// reported as [ErrUploadFailed].
	Upload(ctx context.Context, data []byte) (models.Image, error)

	// Delete removes the image identified by deleteToken. The boolean
	// reports whether the provider accepted the deletion. An error is
	// returned only when the request could not be made at all, or when
	// deleteToken is empty ([ErrEmptyDeleteToken]).
	Delete(ctx context.Context, deleteToken string) (bool, error)
}
