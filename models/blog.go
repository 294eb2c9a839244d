package models

import "time"

// Blog is a published post with a hosted cover image.
type Blog struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DateCreated time.Time `json:"dateCreated"`
	ImageURL    string    `json:"imageUrl"`
	// ImageDeleteToken is the image host token of the cover image. Internal only.
	ImageDeleteToken string `json:"-"`
	UserID           string `json:"userId"`
}

// BlogResponse is a Blog enriched with its author's name. Name fields are
// null when the author no longer exists.
type BlogResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DateCreated time.Time `json:"dateCreated"`
	ImageURL    string    `json:"imageUrl"`
	UserID      string    `json:"userId"`
	FirstName   *string   `json:"firstName"`
	LastName    *string   `json:"lastName"`
}

// NewBlogResponse joins blog with author. A nil author leaves the name
// fields empty.
func NewBlogResponse(blog Blog, author *User) BlogResponse {
	resp := BlogResponse{
		ID:          blog.ID,
		Title:       blog.Title,
		Description: blog.Description,
		DateCreated: blog.DateCreated,
		ImageURL:    blog.ImageURL,
		UserID:      blog.UserID,
	}
	if author != nil {
		firstName, lastName := author.FirstName, author.LastName
		resp.FirstName = &firstName
		resp.LastName = &lastName
	}

	return resp
}

// BlogCreateRequest carries the multipart fields of a blog creation.
type BlogCreateRequest struct {
	Title       string
	Description string
	UserID      string
	Image       []byte
}

// BlogUpdateRequest carries a partial update. Nil text fields and an empty
// Image keep the stored values.
type BlogUpdateRequest struct {
	Title       *string
	Description *string
	Image       []byte
}

// HasImage reports whether a replacement cover image was supplied.
func (r BlogUpdateRequest) HasImage() bool {
	return len(r.Image) > 0
}
