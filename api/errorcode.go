package api

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1400: "State data not found",
	}

	errorInternalServer = errorJSON(999)

	errorStateNotFound = errorJSON(1400)
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Code    int64  `json:"-"`
	Message string `json:"error"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
