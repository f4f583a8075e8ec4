package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidPage, "bad page: %s", "home")

	if err.Code != ErrCodeInvalidPage {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidPage)
	}
	if err.Message != "bad page: home" {
		t.Errorf("Message = %q, want %q", err.Message, "bad page: home")
	}
	want := "INVALID_PAGE: bad page: home"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk on fire")
	err := Wrap(ErrCodeFileNotFound, cause, "read %s", "home.json")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error does not match cause via errors.Is")
	}
	want := "FILE_NOT_FOUND: read home.json: disk on fire"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodePageNotFound, "no such page")

	if !Is(err, ErrCodePageNotFound) {
		t.Error("Is() = false for matching code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is() = true for non-matching code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is() = true for non-structured error")
	}

	// Codes survive wrapping with fmt.Errorf.
	wrapped := fmt.Errorf("outer: %w", err)
	if !Is(wrapped, ErrCodePageNotFound) {
		t.Error("Is() = false after fmt.Errorf wrapping")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeCache, "boom")); got != ErrCodeCache {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeCache)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode() = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidPage, "bad page")); got != "bad page" {
		t.Errorf("UserMessage() = %q, want %q", got, "bad page")
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain")
	}
}
