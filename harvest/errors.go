package harvest

import "fmt"

// FetchError reports that a concept resource could not be retrieved or was
// not a valid concept representation. Any FetchError aborts the harvest.
type FetchError struct {
	URI string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URI, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// MissingPropertyError reports that a fetched concept lacks a property the
// traversal requires, such as its notation or top-concept relation.
type MissingPropertyError struct {
	URI      string
	Property string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("concept %s: missing required property %s", e.URI, e.Property)
}
