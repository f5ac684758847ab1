package models

import "fmt"

// UnknownStatusError reports an unparseable status value.
type UnknownStatusError struct {
	Kind  string
	Value string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown %s status: %q", e.Kind, e.Value)
}
