package entity

import "fmt"

// ValidationError reports a request field that failed validation. The handler
// layer maps it to a 400 response carrying the field name in the message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
