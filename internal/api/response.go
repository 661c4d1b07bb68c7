package api

// Response is the uniform envelope returned by every endpoint.
// swagger:model api.Response
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// OKMessage wraps data in a success envelope with a message.
func OKMessage(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// List wraps a collection in a success envelope with its count.
func List(data any, count int) Response {
	return Response{Success: true, Count: &count, Data: data}
}

// Fail wraps a client-facing failure message.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// Fault wraps a server-side fault, carrying the underlying error text.
func Fault(message string, err error) Response {
	return Response{Success: false, Message: message, Error: err.Error()}
}
