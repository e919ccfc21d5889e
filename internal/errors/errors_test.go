package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without cause",
			err:  &AppError{Code: ErrCodeNotFound, Message: "product not found"},
			want: "product not found",
		},
		{
			name: "error with cause",
			err:  &AppError{Code: ErrCodeUpstream, Message: "fetch cart", Cause: errors.New("connection refused")},
			want: "fetch cart: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(cause, ErrCodeInternal, "wrapped error")

	if unwrapped := err.Unwrap(); !errors.Is(unwrapped, cause) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should see through AppError")
	}
}

func TestCodePredicates(t *testing.T) {
	tests := []struct {
		err  error
		pred func(error) bool
		want bool
	}{
		{NotFound("x"), IsNotFound, true},
		{Validation("x"), IsValidation, true},
		{Unauthorized("x"), IsUnauthorized, true},
		{Forbidden("x"), IsForbidden, true},
		{Upstream("x"), IsUpstream, true},
		{Internal("x"), IsInternal, true},
		{NotFound("x"), IsValidation, false},
		{errors.New("plain"), IsUpstream, false},
		{nil, IsNotFound, false},
	}
	for i, tt := range tests {
		if got := tt.pred(tt.err); got != tt.want {
			t.Errorf("case %d: predicate = %v, want %v (err=%v)", i, got, tt.want, tt.err)
		}
	}
}

func TestCodePredicates_Wrapped(t *testing.T) {
	err := fmt.Errorf("handler: %w", Unauthorized("token rejected"))
	if !IsUnauthorized(err) {
		t.Error("expected IsUnauthorized to see through fmt wrapping")
	}
}

func TestValidationField(t *testing.T) {
	err := ValidationField("email", "Email is required")
	if err.Field != "email" || err.Code != ErrCodeValidation {
		t.Errorf("unexpected error: %+v", err)
	}
}

func TestWrap_NilCause(t *testing.T) {
	if Wrap(nil, ErrCodeInternal, "x") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, ErrCodeInternal, "x %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}
