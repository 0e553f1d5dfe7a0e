package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"paradise/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected *failure.Failure
	}{
		{
			name:     "with error",
			input:    errors.New("failed to decode request body"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "failed to decode request body"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}

				return
			}

			f, ok := result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", result)
			}

			if f.Code != tt.expected.Code || f.Message != tt.expected.Message {
				t.Errorf("expected %+v, got %+v", tt.expected, f)
			}
		})
	}
}

func TestInvalidFields(t *testing.T) {
	t.Run("no fields", func(t *testing.T) {
		if err := failure.InvalidFields(nil); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("with fields", func(t *testing.T) {
		err := failure.InvalidFields(map[string]string{
			"name":  "Please enter your full name.",
			"email": "Enter a valid email.",
		})

		if code := failure.GetCode(err); code != http.StatusBadRequest {
			t.Errorf("expected code %d, got %d", http.StatusBadRequest, code)
		}

		fields := failure.GetFields(err)
		if fields["name"] != "Please enter your full name." {
			t.Errorf("unexpected name message %q", fields["name"])
		}

		want := "please fix the highlighted fields (email: Enter a valid email.; name: Please enter your full name.)"
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
	})
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "not found", err: failure.NotFound("booking not found"), code: http.StatusNotFound},
		{name: "conflict", err: failure.Conflict("reference already taken"), code: http.StatusConflict},
		{name: "internal", err: failure.InternalError(errors.New("boom")), code: http.StatusInternalServerError},
		{name: "wrapped", err: fmt.Errorf("delete: %w", failure.NotFound("booking not found")), code: http.StatusNotFound},
		{name: "plain error", err: errors.New("plain"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := failure.GetCode(tt.err); code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, code)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	if !failure.IsNotFound(failure.NotFound("booking not found")) {
		t.Error("expected not found")
	}

	if failure.IsNotFound(nil) {
		t.Error("nil must not be reported as not found")
	}

	if failure.IsNotFound(failure.Conflict("taken")) {
		t.Error("conflict must not be reported as not found")
	}
}

func TestGetMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "wrapped conflict", err: fmt.Errorf("create: %w", failure.Conflict("reference taken")), want: "reference taken"},
		{name: "plain error", err: errors.New("dial tcp: connection refused"), want: ""},
		{name: "nil", err: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetMessage(tt.err); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
