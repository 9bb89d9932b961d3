package constants

const (
	ErrNotFound            = "Not Found"
	ErrMethodNotAllowed    = "Method Not Allowed"
	ErrTooManyRequests     = "Too Many Requests"
	ErrInternalServerError = "Internal Server Error"
)

const (
	MsgEndpointNotFound  = "Endpoint does not exist"
	MsgMethodNotAllowed  = "The method is not allowed for the requested URL"
	MsgRateLimitExceeded = "Rate limit exceeded"
	MsgUnexpectedError   = "An unexpected error occurred"
)
