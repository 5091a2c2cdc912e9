// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/renamer/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "invalid_file_error",
			code:    errors.ErrInvalidFile,
			message: "/tmp/x is not a file",
			wantStr: "[INVALID_FILE] /tmp/x is not a file",
		},
		{
			name:    "force_and_interactive_error",
			code:    errors.ErrForceAndInteractive,
			message: "received --force and --interactive",
			wantStr: "[FORCE_AND_INTERACTIVE] received --force and --interactive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrSkippingOverwrite, "%s. Not overwriting %s", "a.txt", "b.txt")
	if err.Message != "a.txt. Not overwriting b.txt" {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrIO, "rename failed")

		if err.Code != errors.ErrIO {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrIO)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[IO] rename failed: permission denied"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrIO, "rename failed")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrapf_nil_error_returns_nil", func(t *testing.T) {
		if errors.Wrapf(nil, errors.ErrIO, "rename %s", "x") != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrSkippingOverwrite, "occupied").
		WithDetail("source", "/tmp/a").
		WithDetail("target", "/tmp/b")

	if err.Details["source"] != "/tmp/a" {
		t.Errorf("WithDetail() source = %v, want %v", err.Details["source"], "/tmp/a")
	}

	if err.Details["target"] != "/tmp/b" {
		t.Errorf("WithDetail() target = %v, want %v", err.Details["target"], "/tmp/b")
	}
}

func TestWithDetails(t *testing.T) {
	details := map[string]interface{}{
		"path":  "/test/path",
		"count": 3,
	}

	err := errors.New(errors.ErrIO, "rename failed").WithDetails(details)

	for k, v := range details {
		if err.Details[k] != v {
			t.Errorf("WithDetails() %s = %v, want %v", k, err.Details[k], v)
		}
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrInvalidFile, "error 1")
	err2 := errors.New(errors.ErrInvalidFile, "error 2")
	err3 := errors.New(errors.ErrIO, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with RenameError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrInvalidEncoding, "bad bytes"),
			code:     errors.ErrInvalidEncoding,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrInvalidEncoding, "bad bytes"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrIO, "denied"),
			code:     errors.ErrIO,
			expected: true,
		},
		{
			name:     "non_rename_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrIO,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrIO,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "rename_error",
			err:      errors.New(errors.ErrCannotRenameFileToDirectory, "dir"),
			expected: errors.ErrCannotRenameFileToDirectory,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorDetails(t *testing.T) {
	err := errors.New(errors.ErrInvalidFile, "nope").WithDetail("path", "/x")
	if got := errors.GetErrorDetails(err); got["path"] != "/x" {
		t.Errorf("GetErrorDetails() path = %v", got["path"])
	}
	if errors.GetErrorDetails(stderrors.New("plain")) != nil {
		t.Error("GetErrorDetails() should be nil for plain errors")
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	ioErr := errors.Wrap(rootCause, errors.ErrIO, "cannot rename file")
	configErr := errors.Wrap(ioErr, errors.ErrConfigLoad, "failed to load config")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(configErr, errors.ErrConfigLoad) {
			t.Error("Top level should have ErrConfigLoad code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var renameErr *errors.RenameError
		if stderrors.As(configErr.Unwrap(), &renameErr) {
			if !errors.IsErrorCode(renameErr, errors.ErrIO) {
				t.Error("Middle error should have ErrIO code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(configErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
