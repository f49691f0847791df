package models

import "time"

// RegisterRequest and LoginRequest are validated by the helper's
// validator so field errors come back in the translated envelope.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     Role   `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateArticleRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Content     string `json:"content" binding:"required"`
	Summary     string `json:"summary" binding:"max=300"`
	PublisherID uint   `json:"publisher_id" binding:"required"`
}

// UpdateArticleRequest carries the editable content fields. There is no
// author field: authorship is pinned to the existing author no matter who
// performs the update.
type UpdateArticleRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Content     string `json:"content" binding:"required"`
	Summary     string `json:"summary" binding:"max=300"`
	PublisherID uint   `json:"publisher_id" binding:"required"`
}

type CreatePublisherRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description"`
}

type NewsletterRequest struct {
	Title      string `json:"title" binding:"required,min=1,max=200"`
	Content    string `json:"content" binding:"required"`
	Summary    string `json:"summary" binding:"max=300"`
	ArticleIDs []uint `json:"article_ids"`
}

// ArticleResponse is the flat article projection served by the
// machine-readable subscribed-articles endpoint.
type ArticleResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Summary     string    `json:"summary"`
	AuthorID    uint      `json:"author_id"`
	PublisherID uint      `json:"publisher_id"`
	Approved    bool      `json:"approved"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewArticleResponse(a Article) ArticleResponse {
	return ArticleResponse{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		Summary:     a.Summary,
		AuthorID:    a.AuthorID,
		PublisherID: a.PublisherID,
		Approved:    a.Approved,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

type SubscriptionsResponse struct {
	Publishers  []Publisher `json:"publishers"`
	Journalists []User      `json:"journalists"`
}

type ArticleListParams struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=10"`
}
