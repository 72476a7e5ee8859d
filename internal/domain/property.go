package domain

import (
	"context"
)

// User is a selectable identity owned by the property API
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	CreatedAt Timestamp `json:"createdAt"`
}

// Property is a listing shown as one card
type Property struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Location    string  `json:"location"`
	ImageURL    string  `json:"imageUrl"`
	Description string  `json:"description"`
}

// UserRepository resolves users
type UserRepository interface {
	ListUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, id int) (*User, error)
}

// PropertyRepository lists properties
type PropertyRepository interface {
	ListProperties(ctx context.Context) ([]Property, error)
}
