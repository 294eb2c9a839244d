package models

import "time"

// Comment is a user remark attached to a blog.
type Comment struct {
	ID      string `json:"id"`
	BlogID  string `json:"blogId"`
	UserID  string `json:"userId"`
	Content string `json:"content"`
	// DatePosted is assigned by the server on creation and never changes.
	DatePosted time.Time `json:"datePosted"`
}

// CommentRequest is the JSON body of comment create and update calls.
type CommentRequest struct {
	BlogID  string `json:"blogId"`
	UserID  string `json:"userId"`
	Content string `json:"content"`
}
