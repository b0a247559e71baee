package domain

import "github.com/google/uuid"

// CreateUser is the payload for registering a user.
// Password is the plain text password; it is hashed before storage.
type CreateUser struct {
	Username string  `json:"username" validate:"required,min=3,max=64"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	Bio      *string `json:"bio" validate:"omitempty,max=1024"`
	Image    *string `json:"image" validate:"omitempty,url"`
}

// CreatePost is the payload for publishing a post.
type CreatePost struct {
	AuthorID    uuid.UUID `json:"author_id" validate:"required"`
	Slug        string    `json:"slug" validate:"required,max=255"`
	Title       string    `json:"title" validate:"required,max=255"`
	Description string    `json:"description" validate:"max=255"`
	Body        string    `json:"body" validate:"required"`
}

// CreateAnswer is the payload for adding an answer.
type CreateAnswer struct {
	Content string `json:"content" validate:"required,max=255"`
}

// CreateQuestion is the payload for adding a question to a band.
type CreateQuestion struct {
	Content         string    `json:"content" validate:"required,max=255"`
	BandID          uuid.UUID `json:"band_id" validate:"required"`
	CorrectAnswerID uuid.UUID `json:"correct_answer_id" validate:"required"`
}

// CreateBand is the payload for creating a band.
type CreateBand struct {
	Name    string    `json:"name" validate:"required,max=255"`
	OwnerID uuid.UUID `json:"owner_id" validate:"required"`
}
