package waitlist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"user@example.com", "user@example.com", false},
		{"  padded@example.org  ", "padded@example.org", false},
		{"a.b+c@sub.example.co", "a.b+c@sub.example.co", false},
		{"not-an-email", "", true},
		{"", "", true},
		{"user@localhost", "", true},
		{"@example.com", "", true},
		{"user@@example.com", "", true},
		{"us er@example.com", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ValidateEmail(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateEmail(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidEmail) {
				t.Errorf("error = %v, want ErrInvalidEmail", err)
			}
			if got != tt.want {
				t.Errorf("ValidateEmail(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func newServer(t *testing.T, status int) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q", got)
		}

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["_subject"] != "New FeedCast Waitlist Signup" {
			t.Errorf("_subject = %q", body["_subject"])
		}
		if body["email"] == "" {
			t.Error("email missing from body")
		}

		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestJoinInvalidEmailMakesNoCall(t *testing.T) {
	srv, calls := newServer(t, http.StatusOK)
	c := New(srv.URL, "New FeedCast Waitlist Signup", time.Second)

	res, err := c.Join(context.Background(), "not-an-email")
	if !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("Join error = %v, want ErrInvalidEmail", err)
	}
	if res != nil {
		t.Errorf("Join result = %+v, want nil", res)
	}
	if n := calls.Load(); n != 0 {
		t.Errorf("network calls = %d, want 0", n)
	}
}

func TestJoinSuccess(t *testing.T) {
	srv, calls := newServer(t, http.StatusOK)
	c := New(srv.URL, "New FeedCast Waitlist Signup", time.Second)

	res, err := c.Join(context.Background(), "user@example.com")
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("network calls = %d, want 1", n)
	}
	if res.Message != SuccessMessage {
		t.Errorf("Message = %q, want %q", res.Message, SuccessMessage)
	}
	if res.Note != SuccessNote {
		t.Errorf("Note = %q, want %q", res.Note, SuccessNote)
	}
	if !res.Delivered {
		t.Error("Delivered = false, want true")
	}
}

func TestJoinMasksServerError(t *testing.T) {
	srv, calls := newServer(t, http.StatusInternalServerError)
	c := New(srv.URL, "New FeedCast Waitlist Signup", time.Second)

	res, err := c.Join(context.Background(), "user@example.com")
	if err != nil {
		t.Fatalf("Join error = %v, want masked failure", err)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("network calls = %d, want exactly 1 (no retry)", n)
	}
	if res.Message != SuccessMessage {
		t.Errorf("Message = %q, want %q", res.Message, SuccessMessage)
	}
	if res.Delivered {
		t.Error("Delivered = true for a failed submission")
	}
}

func TestJoinMasksNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(url, "subject", time.Second)
	res, err := c.Join(context.Background(), "user@example.com")
	if err != nil {
		t.Fatalf("Join error = %v, want masked failure", err)
	}
	if res.Delivered {
		t.Error("Delivered = true with a closed server")
	}
}

func TestSubmitReportsStatus(t *testing.T) {
	srv, _ := newServer(t, http.StatusBadRequest)
	c := New(srv.URL, "New FeedCast Waitlist Signup", time.Second)

	err := c.Submit(context.Background(), "user@example.com")
	if !errors.Is(err, ErrSubmitFailed) {
		t.Errorf("Submit error = %v, want ErrSubmitFailed", err)
	}
}
