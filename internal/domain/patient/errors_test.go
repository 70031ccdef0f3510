package patient

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestHTTPError_Mapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", ErrNotFound, http.StatusNotFound},
		{"invalid id", ErrInvalidID, http.StatusBadRequest},
		{"index out of range", ErrIndexOutOfRange, http.StatusBadRequest},
		{"unknown store error", errors.New("boom"), http.StatusInternalServerError},
		{"update failed", ErrUpdateFailed, http.StatusInternalServerError},
		{
			"store unreachable",
			fmt.Errorf("query patients: %w", &net.OpError{
				Op: "dial", Net: "tcp", Err: errors.New("connection refused"),
			}),
			http.StatusServiceUnavailable,
		},
		{"connect failure", &pgconn.ConnectError{Config: &pgconn.Config{}}, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			httpErr := HTTPError(tc.err)
			if httpErr.Code != tc.code {
				t.Errorf("expected %d, got %d", tc.code, httpErr.Code)
			}
		})
	}
}

func TestHTTPError_UnreachableStoreMessage(t *testing.T) {
	err := fmt.Errorf("list patients: %w", &net.OpError{
		Op: "dial", Net: "tcp", Err: errors.New("connection refused"),
	})
	httpErr := HTTPError(err)
	if httpErr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", httpErr.Code)
	}
	if httpErr.Message != "record store unreachable" {
		t.Errorf("expected unreachable message, got %v", httpErr.Message)
	}
}

func TestHTTPError_WrappedSentinel(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), ErrNotFound)
	if httpErr := HTTPError(wrapped); httpErr.Code != http.StatusNotFound {
		t.Errorf("expected wrapped sentinel to map to 404, got %d", httpErr.Code)
	}
}
