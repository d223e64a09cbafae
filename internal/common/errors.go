// Package common holds small helpers shared across the service.
package common

import "fmt"

// ServiceError indicates a non-success HTTP status from an external service.
// The Service name is user-facing ("Geocoding", "Weather API").
type ServiceError struct {
	Service string
	Status  int
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s failed: status %d", e.Service, e.Status)
}
