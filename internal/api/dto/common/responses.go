package common

// MessageResponse is the envelope used by every public endpoint
type MessageResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
}

// ErrorCode names a class of failure in logs
type ErrorCode string

// Standard error codes
const (
	ErrCodeValidation     ErrorCode = "VALIDATION_ERROR"
	ErrCodeBadRequest     ErrorCode = "BAD_REQUEST"
	ErrCodeBadGateway     ErrorCode = "BAD_GATEWAY"
	ErrCodeInternalServer ErrorCode = "INTERNAL_SERVER_ERROR"
)

// NewMessageResponse creates a new success response with a simple message
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{
		Success: true,
		Message: message,
	}
}

// NewDataResponse creates a success response carrying a payload
func NewDataResponse(message string, data interface{}) MessageResponse {
	return MessageResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse creates a new error response
func NewErrorResponse(message string, errors map[string]string) MessageResponse {
	return MessageResponse{
		Success: false,
		Message: message,
		Errors:  errors,
	}
}
