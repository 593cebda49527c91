package usecase

import "errors"

var (
	// ErrNotLoaded means no fetch has succeeded yet. Exports never fetch on
	// their own; the caller should retry once the page has loaded.
	ErrNotLoaded = errors.New("portfolio data not loaded")
	ErrNoProfile = errors.New("portfolio has no profile")
)
