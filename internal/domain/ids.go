package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// ParseID validates an identifier at the boundary and returns its canonical
// form. A malformed id yields ErrInvalidID so callers can tell "bad request"
// apart from "no such document".
func ParseID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return u.String(), nil
}
