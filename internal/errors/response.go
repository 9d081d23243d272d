package errors

import stderrors "errors"

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the error envelope shared by the HTTP routes and the live
// channel.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// Response converts err into a status code and envelope. AppErrors keep their
// code and message; anything else is masked as an internal error.
func Response(err error) (int, ErrorResponse) {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		appErr = ErrInternalServer
	}
	return appErr.StatusCode, ErrorResponse{Error: ErrorDetail{Code: appErr.Code, Message: appErr.Message}}
}
