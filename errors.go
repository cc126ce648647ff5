package mdmap

import (
	"errors"
	"fmt"
)

// ErrEmptyMap is returned by PopItem when the map holds no entries.
var ErrEmptyMap = errors.New("mdmap: empty map")

// DuplicateKeyError reports a key collision that the active overwrite
// policy does not permit.
type DuplicateKeyError struct {
	Column string
	Key    any
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("mdmap: duplicate key %v in column %q", e.Key, e.Column)
}

// KeyNotFoundError reports a lookup of an absent primary key.
type KeyNotFoundError struct {
	Key any
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("mdmap: key %v not found", e.Key)
}

// FormatError reports input that could not be normalized into rows. It is
// always returned before any index has been touched.
type FormatError struct {
	Reason string
	Value  any
}

func (e *FormatError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("mdmap: %s", e.Reason)
	}
	return fmt.Sprintf("mdmap: %s: %v", e.Reason, e.Value)
}
