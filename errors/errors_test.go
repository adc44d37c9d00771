package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppErrorError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := InvalidInput("bad provider")
		if got := err.Error(); !strings.Contains(got, "INVALID_INPUT") || !strings.Contains(got, "bad provider") {
			t.Errorf("unexpected error string: %q", got)
		}
	})

	t.Run("with cause", func(t *testing.T) {
		cause := stderrors.New("boom")
		err := Internal("resolve failed", cause)
		if !strings.Contains(err.Error(), "cause: boom") {
			t.Errorf("expected cause in error string, got %q", err.Error())
		}
	})
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root")
	err := ExternalService("s3", cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestAsAppError(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", MissingField("bucket"))
	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AppError in chain")
	}
	if appErr.Code != ErrCodeMissingField {
		t.Errorf("expected %s, got %s", ErrCodeMissingField, appErr.Code)
	}
	if appErr.Details["field"] != "bucket" {
		t.Errorf("expected field detail 'bucket', got %v", appErr.Details["field"])
	}
}

func TestIsCode(t *testing.T) {
	err := ConnectionFailed("redis")
	if !IsCode(err, ErrCodeConnectionFailed) {
		t.Error("expected IsCode to match")
	}
	if IsCode(err, ErrCodeInvalidInput) {
		t.Error("expected IsCode to reject a different code")
	}
	if IsCode(stderrors.New("plain"), ErrCodeInvalidInput) {
		t.Error("expected IsCode false for non-AppError")
	}
}

func TestRetryableClassification(t *testing.T) {
	tests := []struct {
		name      string
		err       *AppError
		retryable bool
	}{
		{"connection failed is retryable", ConnectionFailed("redis"), true},
		{"external service is retryable", ExternalService("sqs", nil), true},
		{"invalid input is not", InvalidInput("x"), false},
		{"missing field is not", MissingField("y"), false},
		{"internal is not", Internal("z", nil), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsRetryable(tc.err); got != tc.retryable {
				t.Errorf("IsRetryable = %v, want %v", got, tc.retryable)
			}
		})
	}
}

func TestWithDetail(t *testing.T) {
	err := New(ErrCodeTimeout, "slow").WithDetail("op", "storage")
	if err.Details["op"] != "storage" {
		t.Errorf("expected detail, got %v", err.Details)
	}
	if !err.Retryable {
		t.Error("timeout should be retryable")
	}
}
