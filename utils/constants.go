// File: utils/constants.go
package utils

// Keys of values the middleware stores in the gin context.
const (
	LoggerContextKey    = "logger"
	RequestIDContextKey = "requestID"
	UserIDContextKey    = "userID"
	RoleContextKey      = "role"
)

// RequestIDHeader carries the request ID in and out.
const RequestIDHeader = "X-Request-ID"
