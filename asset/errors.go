package asset

import (
	"errors"
	"fmt"
)

// ErrAssetMissing matches any failure to find or decode a named asset
var ErrAssetMissing = errors.New("asset missing")

// MissingError names the asset that could not be loaded
type MissingError struct {
	Name string
	Err  error
}

func (e *MissingError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("asset %q missing", e.Name)
	}
	return fmt.Sprintf("asset %q missing: %v", e.Name, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause to errors.Is
func (e *MissingError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrAssetMissing}
	}
	return []error{ErrAssetMissing, e.Err}
}

func missing(name string, err error) error {
	return &MissingError{Name: name, Err: err}
}
