// Package response defines the JSON envelope every API endpoint returns,
// so the dashboard and tracking clients can switch on a single shape.
package response

// Response is the envelope: Status is "success" or "error", StatusCode echoes
// the HTTP code, and exactly one of Data or Error is populated.
type Response struct {
	Status     string      `json:"status"`
	StatusCode int         `json:"status_code"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// Success wraps payload data in a success envelope
func Success(statusCode int, data interface{}) Response {
	return Response{
		Status:     "success",
		StatusCode: statusCode,
		Data:       data,
	}
}

// Error wraps a message in an error envelope
func Error(statusCode int, err string) Response {
	return Response{
		Status:     "error",
		StatusCode: statusCode,
		Error:      err,
	}
}
