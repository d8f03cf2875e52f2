package domain

import "strings"

// Post is a blog article. Comments are owned by the post and deleted with it.
type Post struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	CategoryID  int64     `json:"categoryId"`
	Comments    []Comment `json:"comments"`
}

// Validate checks the post fields. It does not check that the category exists.
func (p *Post) Validate() error {
	p.Title = strings.TrimSpace(p.Title)
	switch {
	case len(p.Title) < 2:
		return NewValidationError("title", "must have at least 2 characters", nil)
	case len(strings.TrimSpace(p.Description)) < 10:
		return NewValidationError("description", "must have at least 10 characters", nil)
	case strings.TrimSpace(p.Content) == "":
		return NewValidationError("content", "cannot be empty", nil)
	case p.CategoryID <= 0:
		return NewValidationError("categoryId", "must reference a category", ErrInvalidID)
	}
	return nil
}

// Category is a named grouping for posts.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate checks the category fields.
func (c *Category) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return NewValidationError("name", "cannot be empty", nil)
	}
	return nil
}

// Comment is a reader's response attached to exactly one post.
type Comment struct {
	ID     int64  `json:"id"`
	PostID int64  `json:"postId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

// Validate checks the comment fields.
func (c *Comment) Validate() error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return NewValidationError("name", "cannot be empty", nil)
	case !strings.Contains(c.Email, "@"):
		return NewValidationError("email", "has invalid format", nil)
	case len(strings.TrimSpace(c.Body)) < 10:
		return NewValidationError("body", "must have at least 10 characters", nil)
	}
	return nil
}
