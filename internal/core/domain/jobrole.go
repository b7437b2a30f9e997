package domain

import (
	"errors"
	"time"
)

var ErrJobRoleNotFound = errors.New("job role not found")
var ErrDuplicateJobRole = errors.New("job role title already exists")

// JobRole is a job title (the business "Role" entity), not an authorization
// label; see Role in user.go for the latter.
type JobRole struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
