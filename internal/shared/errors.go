package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Authentication errors
	ErrAuth           = fmt.Errorf("authentication failed")
	ErrNotLoggedIn    = fmt.Errorf("not logged in")
	ErrTokenExpired   = fmt.Errorf("session token expired")
	ErrTokenMalformed = fmt.Errorf("malformed session token")
	ErrForbidden      = fmt.Errorf("insufficient role")

	// API and service errors
	ErrFetch    = fmt.Errorf("API request failed")
	ErrNotFound = fmt.Errorf("not found")

	// Input validation errors
	ErrValidation      = fmt.Errorf("validation failed")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
