package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  *AppError
		want int
	}{
		{NewDatabaseError("db", nil), http.StatusInternalServerError},
		{NewConfigError("cfg", nil), http.StatusInternalServerError},
		{NewAuthError("auth", nil), http.StatusUnauthorized},
		{NewNotFoundError("missing", nil), http.StatusNotFound},
		{NewValidationError("invalid", nil), http.StatusBadRequest},
		{NewBadRequestError("bad", nil), http.StatusBadRequest},
		{NewInternalError("boom", nil), http.StatusInternalServerError},
		{NewMigrationError("migrate", nil), http.StatusInternalServerError},
		{NewAppError(UnknownError, "unknown", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := tt.err.StatusCode(); got != tt.want {
			t.Errorf("%q: got status %d, want %d", tt.err.Message, got, tt.want)
		}
	}
}

func TestErrorAndUnwrap(t *testing.T) {
	t.Parallel()

	inner := errors.New("connection refused")
	err := NewDatabaseError("failed to query", inner)

	if err.Error() != "failed to query: connection refused" {
		t.Fatalf("unexpected Error(): %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Fatal("errors.Is should find the wrapped error")
	}

	bare := NewAuthError("invalid token", nil)
	if bare.Error() != "invalid token" {
		t.Fatalf("unexpected Error() without cause: %q", bare.Error())
	}
}

func TestToResponse_HidesUnderlyingError(t *testing.T) {
	t.Parallel()

	inner := errors.New("pq: sensitive detail")
	resp := NewDatabaseError("failed to save prediction", inner).ToResponse()

	if resp.Message != "failed to save prediction" {
		t.Fatalf("unexpected response message: %q", resp.Message)
	}
}

func TestToResponse_WireShape(t *testing.T) {
	t.Parallel()

	// Clients receive failures under a "message" key.
	body, err := json.Marshal(NewValidationError("predicted crop is required", nil).ToResponse())
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if string(body) != `{"message":"predicted crop is required"}` {
		t.Fatalf("unexpected wire shape: %s", body)
	}
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	if !IsNotFound(NewNotFoundError("x", nil)) {
		t.Error("IsNotFound failed on NotFoundError")
	}
	if !IsAuthError(NewAuthError("x", nil)) {
		t.Error("IsAuthError failed on AuthError")
	}
	if !IsValidationError(NewValidationError("x", nil)) {
		t.Error("IsValidationError failed on ValidationError")
	}
	if !IsBadRequestError(NewBadRequestError("x", nil)) {
		t.Error("IsBadRequestError failed on BadRequestError")
	}
	if IsNotFound(NewAuthError("x", nil)) {
		t.Error("IsNotFound matched AuthError")
	}
	if IsAuthError(errors.New("plain")) {
		t.Error("IsAuthError matched a plain error")
	}

	// Predicates should see through wrapping.
	wrapped := fmt.Errorf("context: %w", NewNotFoundError("user not found", nil))
	if !IsNotFound(wrapped) {
		t.Error("IsNotFound failed on a wrapped AppError")
	}
}

func TestFromError(t *testing.T) {
	t.Parallel()

	if _, ok := FromError(nil); ok {
		t.Error("FromError(nil) should report false")
	}
	if _, ok := FromError(errors.New("plain")); ok {
		t.Error("FromError on a plain error should report false")
	}

	appErr := NewValidationError("predicted crop is required", nil)
	got, ok := FromError(fmt.Errorf("wrap: %w", appErr))
	if !ok || got != appErr {
		t.Error("FromError should unwrap to the original AppError")
	}
}
