// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"taskflow/internal/service"
)

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// ErrBadCredentials is returned by Login on a password mismatch.
var ErrBadCredentials = errors.New("invalid credentials")

type account struct {
	password string
	user     service.User
}

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu       sync.RWMutex
	tasks    []service.Task
	accounts map[string]account
	nextID   int

	// Error injection for testing
	LoginErr      error
	RegisterErr   error
	ListTasksErr  error
	CreateTaskErr error
	UpdateTaskErr error
	DeleteTaskErr error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{
		accounts: make(map[string]account),
		nextID:   1,
	}
}

// AddAccount registers a known account. Login with the matching password
// succeeds and returns "token-<email>".
func (f *FakeService) AddAccount(email, password, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[email] = account{
		password: password,
		user:     service.User{ID: "user-" + email, Email: email, Name: name},
	}
}

// AddTask appends a task in API order.
func (f *FakeService) AddTask(id, title, description string, status service.Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, service.Task{
		ID:          id,
		Title:       title,
		Description: description,
		Status:      status,
	})
}

// Tasks returns a snapshot of the stored tasks.
func (f *FakeService) Tasks() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.Task, len(f.tasks))
	copy(result, f.tasks)
	return result
}

// Login implements service.Service.
func (f *FakeService) Login(ctx context.Context, email, password string) (string, service.User, error) {
	if f.LoginErr != nil {
		return "", service.User{}, f.LoginErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	acct, ok := f.accounts[email]
	if !ok || acct.password != password {
		return "", service.User{}, ErrBadCredentials
	}
	return "token-" + email, acct.user, nil
}

// Register implements service.Service.
func (f *FakeService) Register(ctx context.Context, email, password, name string) (string, service.User, error) {
	if f.RegisterErr != nil {
		return "", service.User{}, f.RegisterErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.accounts[email]; exists {
		return "", service.User{}, errors.New("email already registered")
	}
	user := service.User{ID: "user-" + email, Email: email, Name: name}
	f.accounts[email] = account{password: password, user: user}
	return "token-" + email, user, nil
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]service.Task, error) {
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.Task, len(f.tasks))
	copy(result, f.tasks)
	return result, nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, title, description string) (service.Task, error) {
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return service.Task{}, fmt.Errorf("%w: title and description required", service.ErrValidation)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	task := service.Task{
		ID:          fmt.Sprintf("task-%d", f.nextID),
		Title:       title,
		Description: description,
		Status:      service.StatusPending,
	}
	f.nextID++
	f.tasks = append(f.tasks, task)
	return task, nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, id string, patch service.TaskPatch) (service.Task, error) {
	if f.UpdateTaskErr != nil {
		return service.Task{}, f.UpdateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		if f.tasks[i].ID != id {
			continue
		}
		if patch.Title != nil {
			f.tasks[i].Title = *patch.Title
		}
		if patch.Description != nil {
			f.tasks[i].Description = *patch.Description
		}
		if patch.Status != nil {
			f.tasks[i].Status = *patch.Status
		}
		return f.tasks[i], nil
	}
	return service.Task{}, ErrNotFound
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id string) error {
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
