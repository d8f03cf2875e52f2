package api

import (
	"time"

	"github.com/phrazzld/blog-api/internal/domain"
)

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=4,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail" validate:"required"`
	Password        string `json:"password"        validate:"required"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	// ExpiresAt is the RFC 3339 timestamp when the access token expires.
	ExpiresAt string `json:"expiresAt"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// PostRequest is the payload for creating or updating a post.
type PostRequest struct {
	Title       string `json:"title"       validate:"required,min=2"`
	Description string `json:"description" validate:"required,min=10"`
	Content     string `json:"content"     validate:"required"`
	CategoryID  int64  `json:"categoryId"  validate:"required,gt=0"`
}

// PostResponse is a post with its comments.
type PostResponse struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Content     string            `json:"content"`
	CategoryID  int64             `json:"categoryId"`
	Comments    []CommentResponse `json:"comments"`
}

// PostPageResponse is one page of posts.
type PostPageResponse struct {
	Content       []PostResponse `json:"content"`
	PageNo        int            `json:"pageNo"`
	PageSize      int            `json:"pageSize"`
	TotalElements int64          `json:"totalElements"`
	TotalPages    int            `json:"totalPages"`
	Last          bool           `json:"last"`
}

// CategoryRequest is the payload for creating or updating a category.
type CategoryRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
}

// CategoryResponse represents a category.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CommentRequest is the payload for creating or updating a comment.
type CommentRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Body  string `json:"body"  validate:"required,min=10"`
}

// CommentResponse represents a comment.
type CommentResponse struct {
	ID     int64  `json:"id"`
	PostID int64  `json:"postId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

func newLoginResponse(token string, expiresAt time.Time) LoginResponse {
	return LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt.UTC().Format(time.RFC3339),
	}
}

func (r PostRequest) toDomain() *domain.Post {
	return &domain.Post{
		Title:       r.Title,
		Description: r.Description,
		Content:     r.Content,
		CategoryID:  r.CategoryID,
	}
}

func (r CategoryRequest) toDomain() *domain.Category {
	return &domain.Category{Name: r.Name, Description: r.Description}
}

func (r CommentRequest) toDomain() *domain.Comment {
	return &domain.Comment{Name: r.Name, Email: r.Email, Body: r.Body}
}

func postToResponse(p *domain.Post) PostResponse {
	comments := make([]CommentResponse, 0, len(p.Comments))
	for i := range p.Comments {
		comments = append(comments, commentToResponse(&p.Comments[i]))
	}
	return PostResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Content:     p.Content,
		CategoryID:  p.CategoryID,
		Comments:    comments,
	}
}

func postsToResponse(posts []domain.Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, postToResponse(&posts[i]))
	}
	return out
}

func postPageToResponse(page *domain.Page[domain.Post]) PostPageResponse {
	return PostPageResponse{
		Content:       postsToResponse(page.Content),
		PageNo:        page.PageNo,
		PageSize:      page.PageSize,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
		Last:          page.Last,
	}
}

func categoryToResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}
}

func commentToResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{ID: c.ID, PostID: c.PostID, Name: c.Name, Email: c.Email, Body: c.Body}
}
