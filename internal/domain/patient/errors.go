package patient

import (
	"errors"
	"net"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

// Store failure kinds. Every repository operation returns one of these
// sentinels (wrapped) for anticipated failures; anything else is a general
// store operation failure.
var (
	// ErrNotFound means the addressed patient (or medication) does not exist.
	ErrNotFound = errors.New("patient not found")

	// ErrInvalidID means the supplied identifier literal is malformed.
	ErrInvalidID = errors.New("invalid patient id format")

	// ErrUpdateFailed means the store reported zero documents modified for a
	// mutation that matched a record.
	ErrUpdateFailed = errors.New("update had no effect")

	// ErrIndexOutOfRange means a positional medication index is negative or
	// past the end of the list.
	ErrIndexOutOfRange = errors.New("medication index out of range")
)

// HTTPError maps a store or service failure to its response. This is the
// single mapping used by every handler:
//
//	ErrInvalidID, ErrIndexOutOfRange  -> 400
//	ErrNotFound                       -> 404
//	store unreachable                 -> 503
//	everything else                   -> 500
func HTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, ErrInvalidID):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrIndexOutOfRange):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case isConnectivityError(err):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "record store unreachable")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "record store error: "+err.Error())
	}
}

// isConnectivityError reports whether err originates from a failure to reach
// the record store rather than from the operation itself.
func isConnectivityError(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
