package taskflow_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	backend "taskflow/internal/backend/taskflow"
	"taskflow/internal/config"
	"taskflow/internal/service"
	"taskflow/internal/session"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

// newTestClient builds a client against a test server, with the token
// injected the same way production does (oauth2 static source).
func newTestClient(t *testing.T, srv *httptest.Server, token string) *backend.Client {
	t.Helper()
	cfg := &config.Config{Dir: t.TempDir(), APIURL: srv.URL + "/api"}
	client, err := backend.New(context.Background(), cfg, staticToken(token))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return client
}

func TestListTasks_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tasks" || r.Method != http.MethodGet {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("expected bearer header, got %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "ok",
			"data": []map[string]any{
				{"_id": "t1", "title": "One", "description": "first", "status": "pending"},
				{"_id": "t2", "title": "Two", "description": "second", "status": "completed"},
			},
		})
	}))
	defer srv.Close()

	client := newTestClient(t, srv, "tok-1")
	tasks, err := client.ListTasks(context.Background())
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != "t1" || tasks[0].Status != service.StatusPending {
		t.Errorf("unexpected first task: %+v", tasks[0])
	}
	if tasks[1].Status != service.StatusCompleted {
		t.Errorf("unexpected second task: %+v", tasks[1])
	}
}

func TestListTasks_UnsuccessfulEnvelopeYieldsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "nope"})
	}))
	defer srv.Close()

	client := newTestClient(t, srv, "tok")
	tasks, err := client.ListTasks(context.Background())
	if err != nil {
		t.Fatalf("expected lenient decode, got error: %v", err)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", tasks)
	}
}

func TestListTasks_NonListDataYieldsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"weird": "shape"},
		})
	}))
	defer srv.Close()

	client := newTestClient(t, srv, "tok")
	tasks, err := client.ListTasks(context.Background())
	if err != nil {
		t.Fatalf("expected lenient decode, got error: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty slice, got %v", tasks)
	}
}

func TestCreateTask_ValidationBeforeDispatch(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	client := newTestClient(t, srv, "tok")

	_, err := client.CreateTask(context.Background(), "", "desc")
	if !errors.Is(err, service.ErrValidation) {
		t.Errorf("expected ErrValidation for empty title, got %v", err)
	}
	_, err = client.CreateTask(context.Background(), "title", "   ")
	if !errors.Is(err, service.ErrValidation) {
		t.Errorf("expected ErrValidation for empty description, got %v", err)
	}
	if calls.Load() != 0 {
		t.Errorf("expected no HTTP calls, got %d", calls.Load())
	}
}

func TestCreateTask_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/tasks" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["title"] != "Buy milk" || body["description"] != "2 liters" {
			t.Errorf("unexpected body: %v", body)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"_id": "t9", "title": "Buy milk", "description": "2 liters", "status": "pending",
			},
		})
	}))
	defer srv.Close()

	client := newTestClient(t, srv, "tok")
	task, err := client.CreateTask(context.Background(), "Buy milk", "2 liters")
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if task.ID != "t9" || task.Status != service.StatusPending {
		t.Errorf("unexpected task: %+v", task)
	}
}

func TestUpdateTask_PartialPatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/tasks/t1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if _, ok := body["title"]; ok {
			t.Error("patch must omit unset title")
		}
		if body["status"] != "completed" {
			t.Errorf("expected status completed, got %v", body["status"])
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"_id": "t1", "title": "One", "description": "first", "status": "completed",
			},
		})
	}))
	defer srv.Close()

	client := newTestClient(t, srv, "tok")
	status := service.StatusCompleted
	task, err := client.UpdateTask(context.Background(), "t1", service.TaskPatch{Status: &status})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if task.Status != service.StatusCompleted {
		t.Errorf("unexpected task: %+v", task)
	}
}

func TestDeleteTask(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/tasks/t1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "deleted"})
	}))
	defer srv.Close()

	client := newTestClient(t, srv, "tok")
	if err := client.DeleteTask(context.Background(), "t1"); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/users/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Error("login must not carry a bearer header")
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"token": "tok-new",
				"user":  map[string]any{"_id": "u1", "email": "ana@example.com", "name": "Ana"},
			},
		})
	}))
	defer srv.Close()

	client := newTestClient(t, srv, "")
	token, user, err := client.Login(context.Background(), "ana@example.com", "secret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if token != "tok-new" {
		t.Errorf("expected token tok-new, got %q", token)
	}
	if user.Name != "Ana" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "invalid credentials"})
	}))
	defer srv.Close()

	client := newTestClient(t, srv, "")
	_, _, err := client.Login(context.Background(), "ana@example.com", "wrong")
	if err == nil {
		t.Fatal("expected error for bad credentials")
	}
	if !strings.Contains(err.Error(), "invalid credentials") {
		t.Errorf("expected server message in error, got %v", err)
	}
}

func TestUnauthorizedMapsToLoginHint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := newTestClient(t, srv, "stale")
	_, err := client.ListTasks(context.Background())
	if err == nil {
		t.Fatal("expected error for 401")
	}
	if !strings.Contains(err.Error(), "taskflow login") {
		t.Errorf("expected login hint, got %v", err)
	}
}

// session.Store satisfies the client's TokenProvider.
var _ backend.TokenProvider = (*session.Store)(nil)
