package errors

import (
	stderrors "errors"
	"fmt"
	"os"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeFileNotFound, "layout file %s does not exist", "keyboard.toml")

	want := "FILE_NOT_FOUND: layout file keyboard.toml does not exist"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Cause != nil {
		t.Error("New() should not set a cause")
	}
}

func TestWrap(t *testing.T) {
	cause := os.ErrNotExist
	err := Wrap(ErrCodeFileNotFound, cause, "vial file %s does not exist", "vial.json")

	if !stderrors.Is(err, os.ErrNotExist) {
		t.Error("wrapped cause should survive errors.Is")
	}
	want := fmt.Sprintf("FILE_NOT_FOUND: vial file vial.json does not exist: %v", cause)
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeGeneration, "render failed")

	if !Is(err, ErrCodeGeneration) {
		t.Error("Is() should match the error's own code")
	}
	if Is(err, ErrCodeFileNotFound) {
		t.Error("Is() should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeGeneration) {
		t.Error("Is() should not match a plain error")
	}
	if Is(nil, ErrCodeGeneration) {
		t.Error("Is(nil) should be false")
	}

	// Codes survive wrapping with %w.
	wrapped := fmt.Errorf("context: %w", err)
	if !Is(wrapped, ErrCodeGeneration) {
		t.Error("Is() should unwrap to find the code")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidConfig, "bad toml")); got != ErrCodeInvalidConfig {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeInvalidConfig)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "invalid format: gif")
	if got := UserMessage(err); got != "invalid format: gif" {
		t.Errorf("UserMessage() = %q", got)
	}
	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
