package pricing

import "fmt"

// UnknownServiceError reports a service identifier that is not in the catalog.
type UnknownServiceError struct {
	ServiceID string
}

func (e *UnknownServiceError) Error() string {
	return fmt.Sprintf("unknown service %q", e.ServiceID)
}

// InvalidComplexityError reports a complexity level with no matching tier.
type InvalidComplexityError struct {
	Level int
}

func (e *InvalidComplexityError) Error() string {
	return fmt.Sprintf("invalid complexity level %d", e.Level)
}

// InvalidInputError reports a non-positive timeline or team size.
type InvalidInputError struct {
	Field string
	Value int
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s must be a positive integer, got %d", e.Field, e.Value)
}
