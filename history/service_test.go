package history

import (
	"context"
	"testing"

	"github.com/user/croptrack-go/apperror"
)

func TestAddRecord_MissingLabel(t *testing.T) {
	t.Parallel()

	// Label validation happens before any store access.
	svc := NewService(nil)

	_, err := svc.AddRecord(context.Background(), 1, NewRecordRequest{})
	if err == nil {
		t.Fatal("expected error for missing predicted_crop, got nil")
	}
	if !apperror.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAddRecord_EmptyLabel(t *testing.T) {
	t.Parallel()

	svc := NewService(nil)

	empty := ""
	_, err := svc.AddRecord(context.Background(), 1, NewRecordRequest{PredictedCrop: &empty})
	if err == nil {
		t.Fatal("expected error for empty predicted_crop, got nil")
	}
	if !apperror.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
