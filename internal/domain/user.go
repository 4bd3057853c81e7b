package domain

import (
	"encoding/json"
	"time"
)

// User is a registered community member. Email is the natural key; Properties
// carries any extra profile fields from registration verbatim.
type User struct {
	ID         string
	Email      string
	Name       string
	Properties json.RawMessage
	CreatedAt  time.Time
}
