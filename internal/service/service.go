// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"context"
	"errors"
)

// ErrValidation is returned when a request is rejected client-side
// before any network call is made.
var ErrValidation = errors.New("validation failed")

// Service defines the interface for task backend operations.
// All TaskFlow API calls go through this interface.
// Commands and the board never issue HTTP requests directly.
type Service interface {
	// Login exchanges credentials for a bearer token and the user profile.
	Login(ctx context.Context, email, password string) (string, User, error)

	// Register creates an account and returns a bearer token and profile.
	Register(ctx context.Context, email, password, name string) (string, User, error)

	// ListTasks returns the caller's tasks in API order.
	// A malformed or unsuccessful envelope yields an empty slice, not an error.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task and returns the server-assigned record.
	// Empty title or description fails with ErrValidation before dispatch.
	CreateTask(ctx context.Context, title, description string) (Task, error)

	// UpdateTask applies a partial update and returns the updated record.
	UpdateTask(ctx context.Context, id string, patch TaskPatch) (Task, error)

	// DeleteTask deletes a task. The API returns no payload beyond
	// success/message.
	DeleteTask(ctx context.Context, id string) error
}
