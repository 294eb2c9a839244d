package models

// Image is the result of a successful image host upload.
type Image struct {
	// URL is the public link of the hosted image.
	URL string
	// DeleteToken authorises removal of the image from the host.
	DeleteToken string
}

// ImageResponse is returned by the profile image upload endpoint.
type ImageResponse struct {
	ImageURL string `json:"imageUrl"`
}
