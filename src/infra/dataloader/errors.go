package dataloader

import (
	"errors"
	"fmt"
)

// FetchError reports that the fetch for a whole batch failed. Every
// caller waiting on that batch receives the same *FetchError.
type FetchError struct {
	// Keys is the number of distinct keys in the failed batch.
	Keys int

	// Err is the error returned by the fetch func.
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("dataloader: fetch of %d keys failed: %v", e.Keys, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsFetchError reports whether err came from a failed batch fetch.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

type panicError struct {
	value any
}

func (e *panicError) Error() string {
	return fmt.Sprintf("fetch panicked: %v", e.value)
}
