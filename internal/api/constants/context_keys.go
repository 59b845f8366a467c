package constants

// Context keys shared by middleware and handlers
const (
	ContextKeyRequestID = "requestID"
)
