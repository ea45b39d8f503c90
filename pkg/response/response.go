package response

// Envelope is the uniform response body for every API endpoint, success or
// failure.
type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// New builds a success envelope. Success is derived from the status code so a
// success payload can never be reported through an error shape.
func New(statusCode int, data interface{}, message string) Envelope {
	return Envelope{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < 400,
	}
}

// NewError builds a failure envelope with no data.
func NewError(statusCode int, message string) Envelope {
	return Envelope{
		StatusCode: statusCode,
		Data:       nil,
		Message:    message,
		Success:    false,
	}
}
