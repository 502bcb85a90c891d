package dto

// Envelope is the uniform response wrapper used by every API route:
// {status, message, error, errorMessage, data}.
type Envelope struct {
	Status       int     `json:"status" example:"200"`
	Message      string  `json:"message" example:"success"`
	Error        bool    `json:"error" example:"false"`
	ErrorMessage *string `json:"errorMessage"`
	Data         any     `json:"data"`
}

// Success wraps a payload in the envelope with error cleared.
func Success(status int, message string, data any) Envelope {
	return Envelope{
		Status:  status,
		Message: message,
		Error:   false,
		Data:    data,
	}
}

// Failure wraps an error message in the envelope with data null.
func Failure(status int, message, errorMessage string) Envelope {
	return Envelope{
		Status:       status,
		Message:      message,
		Error:        true,
		ErrorMessage: &errorMessage,
		Data:         nil,
	}
}
