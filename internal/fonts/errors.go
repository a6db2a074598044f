package fonts

import "fmt"

// FetchError indicates the upstream font could not be retrieved
type FetchError struct {
	// URL is the upstream location the fetch targeted.
	URL string
	// Err is the underlying transport or protocol failure.
	Err error
}

// Error returns the string representation of the fetch failure
func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to download %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error
func (e *FetchError) Unwrap() error {
	return e.Err
}

// IntegrityError indicates a payload did not hash to the pinned digest.
// The payload is discarded; it must never reach disk.
type IntegrityError struct {
	// Expected is the pinned digest.
	Expected string
	// Actual is the digest of the rejected payload.
	Actual string
}

// Error returns the string representation of the integrity failure
func (e *IntegrityError) Error() string {
	return fmt.Sprintf("downloaded font does not match expected SHA-256: expected %s, got %s",
		e.Expected, e.Actual)
}

// WriteError indicates a target file could not be written or replaced
type WriteError struct {
	// Path is the target the write was headed for.
	Path string
	// Err is the underlying filesystem failure.
	Err error
}

// Error returns the string representation of the write failure
func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *WriteError) Unwrap() error {
	return e.Err
}
