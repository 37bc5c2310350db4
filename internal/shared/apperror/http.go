package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the flattened form handlers write to the response envelope.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP maps any error to its HTTP representation. AppErrors keep their
// status and code; everything else becomes a 500 with the raw error string
// in the details.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		httpErr := HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
		if appErr.Err != nil {
			httpErr.Details = appErr.Err.Error()
		}
		return httpErr
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "An unexpected error occurred",
		Details: err.Error(),
	}
}
