package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrPerformanceNotFound = errors.New("performance record not found")

	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidRole        = errors.New("invalid role")
	ErrAmbiguousEmail     = errors.New("multiple accounts share this email")
	ErrCredentialsMissing = errors.New("username/email and password required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")

	ErrPermissionDenied = errors.New("permission denied")

	ErrEmployeeRequired    = errors.New("employee must be selected")
	ErrEmployeeRefInvalid  = errors.New("referenced employee does not exist")
	ErrDuplicateAttendance = errors.New("attendance for this employee and date already exists")
	ErrProfileExists       = errors.New("employee profile already exists for this user")
)
