package domain

import (
	"errors"
	"time"
)

var ErrDepartmentNotFound = errors.New("department not found")
var ErrDuplicateDepartment = errors.New("department name already exists")

// Department is an organizational unit. Name is unique across departments.
type Department struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
