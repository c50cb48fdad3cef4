package domain

import "errors"

var (
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrContention           = errors.New("balance contention")
	ErrVersionConflict      = errors.New("version conflict")
	ErrDuplicateEvent       = errors.New("duplicate event")
	ErrNotFound             = errors.New("not found")
	ErrConfigurationMissing = errors.New("configuration missing")
	ErrPeriodNotClosed      = errors.New("period not closed")
	ErrInvalidEvent         = errors.New("invalid event")
	ErrAggregateClosed      = errors.New("cashback aggregate already finalized")
	ErrNotClaimable         = errors.New("cashback not claimable")
)

// Permanent reports whether retrying err cannot change the outcome.
func Permanent(err error) bool {
	return errors.Is(err, ErrInsufficientBalance) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConfigurationMissing) ||
		errors.Is(err, ErrInvalidEvent) ||
		errors.Is(err, ErrPeriodNotClosed) ||
		errors.Is(err, ErrNotClaimable)
}
