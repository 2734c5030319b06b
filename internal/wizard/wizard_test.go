package wizard

import (
	"errors"
	"testing"

	"github.com/tessro/feedcast/internal/waitlist"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"ada@example.com", false},
		{"  ada@example.com  ", false},
		{"", true},
		{"ada@example", true},
		{"ada example@x.io", true},
	}

	for _, tt := range tests {
		err := validateEmail(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateEmail(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, waitlist.ErrInvalidEmail) {
			t.Errorf("validateEmail(%q) error = %v, want ErrInvalidEmail", tt.in, err)
		}
	}
}

func TestPromptEmail(t *testing.T) {
	var prompted int
	i := &Interactive{
		enabled: true,
		isTTY:   func() bool { return true },
		prompt: func(string) (string, error) {
			prompted++
			return "ada@example.com", nil
		},
	}

	got, err := i.PromptEmail()
	if err != nil || got != "ada@example.com" {
		t.Errorf("PromptEmail() = %q, %v", got, err)
	}

	i.SetEnabled(false)
	if got, _ := i.PromptEmail(); got != "" {
		t.Errorf("PromptEmail() disabled = %q, want empty", got)
	}

	i.SetEnabled(true)
	i.isTTY = func() bool { return false }
	if got, _ := i.PromptEmail(); got != "" {
		t.Errorf("PromptEmail() without a terminal = %q, want empty", got)
	}

	if prompted != 1 {
		t.Errorf("prompted %d times, want 1", prompted)
	}
}

func TestNeedsEmail(t *testing.T) {
	if !NeedsEmail(nil) {
		t.Error("NeedsEmail(nil) = false")
	}
	if NeedsEmail([]string{"a@b.co"}) {
		t.Error("NeedsEmail with an argument = true")
	}
}
