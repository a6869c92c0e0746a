package fetcher

import (
	"errors"
	"fmt"
)

var (
	// ErrStatusNotOK is returned when http response had status other than 2xx.
	ErrStatusNotOK = errors.New("response status is not 2xx")
	// ErrContentTypeNotSupported is returned when response is neither declared nor recognized as xml.
	ErrContentTypeNotSupported = errors.New("response content type not supported")
	// ErrEmptyBody is returned when response body is empty or contains only whitespace.
	ErrEmptyBody = errors.New("empty response received")
)

// DownloadError is returned when feed file can't be downloaded within configured number of attempts.
// It wraps error of the last attempt.
type DownloadError struct {
	URL      string
	Attempts int
	Err      error
}

// Error returns error message.
func (e *DownloadError) Error() string {
	return fmt.Sprintf("can't download feed from %s after %d attempts: %s", e.URL, e.Attempts, e.Err)
}

// Unwrap returns error of the last attempt.
func (e *DownloadError) Unwrap() error {
	return e.Err
}
