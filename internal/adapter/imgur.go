package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/lamijafatic/blog-website-api/internal/config"
	"github.com/lamijafatic/blog-website-api/internal/logger"
	"github.com/lamijafatic/blog-website-api/internal/utils"
	"github.com/lamijafatic/blog-website-api/models"
)

const (
	imageFormField = "image"
	imagePath      = "/image"
	deletePath     = "/image/{deleteHash}"
)

type imgurImageHost struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// imgurResponse is the envelope of Imgur API answers.
type imgurResponse struct {
	Data struct {
		Link       string `json:"link"`
		DeleteHash string `json:"deletehash"`
	} `json:"data"`
	Success bool `json:"success"`
	Status  int  `json:"status"`
}

// NewImgurImageHost constructs an Imgur-compatible [ImageHost]. Every
// request carries the "Authorization: Client-ID <id>" header of cfg.
func NewImgurImageHost(cfg config.ImageHost, log *logger.Logger) (ImageHost, error) {
	if strings.TrimSpace(cfg.ClientID) == "" {
		return nil, ErrEmptyClientID
	}

	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid image host url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.SetHeader("Authorization", "Client-ID "+cfg.ClientID)

	log.Debug().Str("base_url", baseURL).Msg("image host adapter created")
	return &imgurImageHost{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyBaseURL
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Upload implements [ImageHost]. It POSTs data as the multipart field
// "image" to /image and returns the hosted link and its delete hash.
func (h *imgurImageHost) Upload(ctx context.Context, data []byte) (models.Image, error) {
	log := logger.FromContext(ctx)

	if len(data) == 0 {
		return models.Image{}, ErrEmptyImage
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetFileReader(imageFormField, imageFormField, bytes.NewReader(data)).
		Post(imagePath)
	if err != nil {
		log.Err(err).Str("func", "*imgurImageHost.Upload").Msg("upload request failed")
		return models.Image{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*imgurImageHost.Upload").Int("status", resp.StatusCode()).Msg("image host rejected upload")
		return models.Image{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	var body imgurResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.Image{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	if body.Data.Link == "" || body.Data.DeleteHash == "" {
		return models.Image{}, fmt.Errorf("%w: missing link or delete hash", ErrInvalidResponse)
	}

	return models.Image{URL: body.Data.Link, DeleteToken: body.Data.DeleteHash}, nil
}

// Delete implements [ImageHost]. It sends DELETE /image/{deleteHash}.
func (h *imgurImageHost) Delete(ctx context.Context, deleteToken string) (bool, error) {
	log := logger.FromContext(ctx)

	if deleteToken == "" {
		return false, ErrEmptyDeleteToken
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("deleteHash", deleteToken).
		Delete(deletePath)
	if err != nil {
		log.Err(err).Str("func", "*imgurImageHost.Delete").Msg("delete request failed")
		return false, fmt.Errorf("image delete request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).Str("func", "*imgurImageHost.Delete").Int("status", resp.StatusCode()).Msg("image host refused deletion")
		return false, nil
	}

	return true, nil
}
