package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrEmailExists       = errors.New("email already exists")
	ErrCannotDeleteSelf  = errors.New("cannot delete your own account")
	ErrNoFieldsToUpdate  = errors.New("no fields to update")
	ErrUnauthorized      = errors.New("unauthorized to access this employee")
	ErrOnlyHRCanSetField = errors.New("only HR can update this field")
)
