package model

// 1. Define the custom type (underlying type matches the wire field)
type ErrorCode int32

// 2. Define the exact wire values. These values are stable and must never
// be renumbered: clients compare against the raw integers.
const (
	ErrSuccess      ErrorCode = 0
	ErrException    ErrorCode = 1
	ErrRedis        ErrorCode = 2
	ErrInvalidEmail ErrorCode = 3
)

// Optional: Helper to validate if a value is a known code
func (e ErrorCode) IsValid() bool {
	switch e {
	case ErrSuccess, ErrException, ErrRedis, ErrInvalidEmail:
		return true
	}
	return false
}

func (e ErrorCode) String() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrException:
		return "exception"
	case ErrRedis:
		return "redis_unavailable"
	case ErrInvalidEmail:
		return "invalid_email"
	}
	return "unknown"
}
