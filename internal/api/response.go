package api

// Response is the envelope every endpoint answers with.
// Status is "success", "fail" (client error) or "error" (server error).
type Response struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func Success(data interface{}) Response {
	return Response{Status: "success", Data: data}
}

func Fail(message string) Response {
	return Response{Status: "fail", Message: message}
}

func Error(message string) Response {
	return Response{Status: "error", Message: message}
}
