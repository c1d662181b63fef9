package employee

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrEmployeeInactive        = errors.New("employee is inactive")
	ErrEmployeeAlreadyInactive = errors.New("employee is already inactive")
	ErrUnauthorized            = errors.New("unauthorized to access this employee")
)
