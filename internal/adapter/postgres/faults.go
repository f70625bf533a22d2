package postgres

import (
	"errors"
	"io"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgconn"
)

// Fault is a connection-level failure class.
type Fault int

const (
	// FaultRefused means the server did not accept the connection.
	FaultRefused Fault = iota + 1
	// FaultReset means an established connection was dropped.
	FaultReset
	// FaultTerminated means the server ended the session (shutdown, restart,
	// or a connection exception reported by the server).
	FaultTerminated
)

func (f Fault) String() string {
	switch f {
	case FaultRefused:
		return "refused"
	case FaultReset:
		return "reset"
	case FaultTerminated:
		return "terminated"
	}
	return "unknown"
}

// DefaultRetryable is the set of faults retried by default.
var DefaultRetryable = []Fault{FaultRefused, FaultReset, FaultTerminated}

// Classify reports the fault class of err. Constraint violations, syntax
// errors and other statement-level errors are not faults.
func Classify(err error) (Fault, bool) {
	if err == nil {
		return 0, false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "57P01", // admin_shutdown
			pgErr.Code == "57P02",               // crash_shutdown
			pgErr.Code == "57P03",               // cannot_connect_now
			strings.HasPrefix(pgErr.Code, "08"): // connection_exception class
			return FaultTerminated, true
		}
		return 0, false
	}

	switch {
	case errors.Is(err, syscall.ECONNREFUSED):
		return FaultRefused, true
	case errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.EPIPE),
		errors.Is(err, io.ErrUnexpectedEOF):
		return FaultReset, true
	}
	return 0, false
}
