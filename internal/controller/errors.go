package controller

import (
	"errors"
	"fmt"

	"presentation-builder-be/internal/pkg/apperr"
)

// withContext prefixes server-side failures with what the endpoint was doing.
// Client errors keep their message unchanged.
func withContext(action string, err error) error {
	if errors.Is(err, apperr.ErrInvalidParameter) || errors.Is(err, apperr.ErrNotFound) {
		return err
	}
	return fmt.Errorf("Error %s: %w", action, err)
}
