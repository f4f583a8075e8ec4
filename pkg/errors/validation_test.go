package errors

import (
	"strings"
	"testing"
)

func TestValidatePageName(t *testing.T) {
	tests := []struct {
		name    string
		page    string
		wantErr bool
	}{
		{name: "simple name", page: "home", wantErr: false},
		{name: "name with dash", page: "about-us", wantErr: false},
		{name: "empty", page: "", wantErr: true},
		{name: "too long", page: strings.Repeat("a", 257), wantErr: true},
		{name: "path separator", page: "a/b", wantErr: true},
		{name: "backslash", page: `a\b`, wantErr: true},
		{name: "traversal", page: "..secret", wantErr: true},
		{name: "hidden file", page: ".env", wantErr: true},
		{name: "control character", page: "a\x01b", wantErr: true},
		{name: "null byte", page: "a\x00b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePageName(tt.page)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePageName(%q) error = %v, wantErr %v", tt.page, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidName) {
				t.Errorf("error code = %q, want %q", GetCode(err), ErrCodeInvalidName)
			}
		})
	}
}

func TestValidateContentDir(t *testing.T) {
	if err := ValidateContentDir("./content"); err != nil {
		t.Errorf("ValidateContentDir(./content) = %v, want nil", err)
	}
	if err := ValidateContentDir(""); err == nil {
		t.Error("ValidateContentDir(\"\") = nil, want error")
	}
	if err := ValidateContentDir("a\x00b"); err == nil {
		t.Error("ValidateContentDir(null byte) = nil, want error")
	}
}
