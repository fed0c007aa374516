package user

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserEmailExists   = errors.New("email already exists")
	ErrPasswordTooShort  = errors.New("password must be at least 6 characters")
	ErrPasswordRequired  = errors.New("current password is required")
	ErrPasswordIncorrect = errors.New("current password is incorrect")
	ErrHRAccessRequired  = errors.New("hr access required")
)
