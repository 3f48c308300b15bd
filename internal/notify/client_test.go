package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dgallion1/profilex/internal/profile"
)

func TestClient_Enabled(t *testing.T) {
	if NewClient("", "").Enabled() {
		t.Error("expected client without URL to be disabled")
	}
	if !NewClient("http://localhost:9999/hook", "").Enabled() {
		t.Error("expected client with URL to be enabled")
	}
}

func TestPostResult_Success(t *testing.T) {
	var got Payload
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding payload failed: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret-key")
	payload := Payload{
		JobID:    "job-1",
		Filename: "resume.txt",
		Result: profile.Result{
			People: []profile.Record{{Name: "John Smith", Titles: []string{"Software Engineer"}}},
		},
	}
	if err := c.PostResult(context.Background(), payload); err != nil {
		t.Fatalf("PostResult failed: %v", err)
	}
	if auth != "Bearer secret-key" {
		t.Errorf("expected bearer auth header, got %q", auth)
	}
	if got.JobID != "job-1" || len(got.Result.People) != 1 {
		t.Errorf("expected payload round-trip, got %+v", got)
	}
}

func TestPostResult_ServerErrorIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "").PostResult(context.Background(), Payload{JobID: "job-1"})
	var retryErr *RetryableError
	if !errors.As(err, &retryErr) {
		t.Fatalf("expected *RetryableError, got %v", err)
	}
	if retryErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", retryErr.StatusCode)
	}
}

func TestPostResult_ClientErrorIsPermanent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad payload", http.StatusBadRequest)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "").PostResult(context.Background(), Payload{JobID: "job-1"})
	if err == nil {
		t.Fatal("expected error for 400 response")
	}
	var retryErr *RetryableError
	if errors.As(err, &retryErr) {
		t.Errorf("expected permanent error, got retryable: %v", err)
	}
}

func TestPostResult_ConnectionRefusedIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := NewClient(url, "").PostResult(context.Background(), Payload{JobID: "job-1"})
	var retryErr *RetryableError
	if !errors.As(err, &retryErr) {
		t.Fatalf("expected *RetryableError for refused connection, got %v", err)
	}
}
