package domain

import (
	"errors"
	"time"
)

var ErrEmployeeNotFound = errors.New("employee not found")
var ErrDuplicateEmployee = errors.New("employee email already exists")

// Employee is a personnel record. Email is unique across employees;
// DepartmentID and RoleID reference existing Department and JobRole records.
type Employee struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	HireDate     time.Time `json:"hire_date"`
	Salary       float64   `json:"salary"`
	DepartmentID string    `json:"department_id"`
	RoleID       string    `json:"role_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
