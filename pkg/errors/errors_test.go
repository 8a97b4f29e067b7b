package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidCategory, "unknown category: %s", "value")

	if err.Code != ErrCodeInvalidCategory {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidCategory)
	}

	if err.Message != "unknown category: value" {
		t.Errorf("Message = %v, want %v", err.Message, "unknown category: value")
	}

	expected := "INVALID_CATEGORY: unknown category: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidConfig, cause, "failed to parse")

	if err.Code != ErrCodeInvalidConfig {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidConfig)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "INVALID_CONFIG: failed to parse: underlying error"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeStyleNotFound, "test"),
			code:     ErrCodeStyleNotFound,
			expected: true,
		},
		{
			name:     "different code",
			err:      New(ErrCodeStyleNotFound, "test"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "wrapped with fmt",
			err:      fmt.Errorf("load state: %w", New(ErrCodeInvalidState, "corrupt")),
			code:     ErrCodeInvalidState,
			expected: true,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			code:     ErrCodeInternal,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInternal,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeDuplicateStyle, "dup")); got != ErrCodeDuplicateStyle {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeDuplicateStyle)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"coded", New(ErrCodeInvalidCase, "unknown case mode %q", "shout"), `unknown case mode "shout"`},
		{"coded with cause", Wrap(ErrCodeStateLocked, errors.New("busy"), "state file locked"), "state file locked: busy"},
		{"plain", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
