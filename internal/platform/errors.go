package platform

import (
	"errors"
)

var (
	// ErrAlreadyRunning is an error returned when run can't be started because previous run is not finished yet.
	ErrAlreadyRunning = errors.New("parsing already running for this feed source")
	// ErrFeedSourceNotFound is returned when feed source doesn't exist.
	ErrFeedSourceNotFound = errors.New("feed source not found")
	// ErrProductNotFound is returned when product doesn't exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrReportNotStarted is returned when finished report is about to be changed.
	ErrReportNotStarted = errors.New("report is not in started state")
)
