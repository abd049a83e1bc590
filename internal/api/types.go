package api

import "github.com/AnkushOff/Taskify-Task-Management-System/internal/model"

// Credentials is the request body for POST /api/auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the request body for POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Token is the response from the login and register endpoints.
type Token struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	User        model.User `json:"user"`
}

// TaskCreate is the request body for POST /api/tasks. The server assigns
// the id and defaults status to todo and priority to medium.
type TaskCreate struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	CategoryID  string `json:"category_id,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
}

// TaskUpdate is the request body for PUT /api/tasks/{id}. Nil fields are
// omitted from the payload, so the server only touches what changed.
type TaskUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	CategoryID  *string `json:"category_id,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

// CategoryCreate is the request body for POST /api/categories.
type CategoryCreate struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// errorResponse is the standard FastAPI error body.
type errorResponse struct {
	Detail string `json:"detail"`
}
