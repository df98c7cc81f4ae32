package port

import "errors"

var (
	// ErrNoEligibleUnits ends a run with nothing to do: no unit met the
	// policy's selection rule.
	ErrNoEligibleUnits = errors.New("no eligible units")
	// ErrInsufficientUnits ends a reallocation with nothing to do: the LOW or
	// the HIGH tier is empty.
	ErrInsufficientUnits = errors.New("insufficient units for reallocation")
	// ErrPlatformUpdateFailed marks a single budget update that was rejected.
	ErrPlatformUpdateFailed = errors.New("platform budget update failed")
	// ErrLedgerUnavailable aborts a run: changes cannot be recorded.
	ErrLedgerUnavailable = errors.New("ledger unavailable")
	// ErrNotificationFailed is surfaced as a warning only.
	ErrNotificationFailed = errors.New("notification failed")
	// ErrInvalidRequest is returned for run parameters that cannot be
	// turned into a run.
	ErrInvalidRequest = errors.New("invalid run request")
	// ErrRunInProgress is returned when a run is started while another one
	// has not finished.
	ErrRunInProgress = errors.New("a run is already in progress")
)
