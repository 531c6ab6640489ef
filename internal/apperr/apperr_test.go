package apperr

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestTransportError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewTransportError("list menu", cause)

	if !strings.Contains(err.Error(), "list menu") {
		t.Errorf("Error() = %q, want operation name included", err.Error())
	}
	if !Is(err, cause) {
		t.Error("TransportError should unwrap to its cause")
	}
	if !IsTransport(err) {
		t.Error("IsTransport() should be true for a TransportError")
	}
	if IsAPIError(err) {
		t.Error("IsAPIError() should be false for a TransportError")
	}
}

func TestTransportErrorWrapped(t *testing.T) {
	err := fmt.Errorf("fetch failed: %w", NewTransportError("list orders", errors.New("timeout")))

	if !IsTransport(err) {
		t.Error("IsTransport() should see through fmt.Errorf wrapping")
	}
}

func TestAPIError(t *testing.T) {
	tests := []struct {
		name    string
		err     *APIError
		wantSub string
	}{
		{
			name:    "with server message",
			err:     NewAPIError("create menu item", 422, "price must be >= 0"),
			wantSub: "price must be >= 0",
		},
		{
			name:    "without server message",
			err:     NewAPIError("delete order", 500, ""),
			wantSub: "status 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.err.Error(), tt.wantSub) {
				t.Errorf("Error() = %q, want substring %q", tt.err.Error(), tt.wantSub)
			}
			if !IsAPIError(tt.err) {
				t.Error("IsAPIError() should be true")
			}
			if IsTransport(tt.err) {
				t.Error("IsTransport() should be false")
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("price", "must be a non-negative number")

	if !IsValidation(err) {
		t.Error("IsValidation() should be true")
	}
	if got := err.Error(); !strings.Contains(got, "price") {
		t.Errorf("Error() = %q, want field name included", got)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "api error with message",
			err:  NewAPIError("create menu item", 400, "name is required"),
			want: "create menu item failed: name is required",
		},
		{
			name: "api error without message",
			err:  NewAPIError("update order status", 503, ""),
			want: "update order status failed (status 503)",
		},
		{
			name: "transport error hides cause",
			err:  NewTransportError("place order", errors.New("dial tcp 127.0.0.1:5000: connect: connection refused")),
			want: "place order failed: server unreachable",
		},
		{
			name: "wrapped api error",
			err:  fmt.Errorf("submit: %w", NewAPIError("update menu item", 409, "stale version")),
			want: "update menu item failed: stale version",
		},
		{
			name: "plain error passes through",
			err:  errors.New("boom"),
			want: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSentinels(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", ErrItemNotFound)
	if !Is(wrapped, ErrItemNotFound) {
		t.Error("wrapped sentinel should match with Is")
	}
	if Is(wrapped, ErrOrderNotFound) {
		t.Error("distinct sentinels should not match")
	}
}
