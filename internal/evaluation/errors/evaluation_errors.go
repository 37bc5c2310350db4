package evaluationerrors

import (
	"go-evaltrack/internal/shared/apperror"
	"net/http"
)

var (
	ErrEvaluationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Evaluation not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEvaluationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid evaluation ID",
		http.StatusBadRequest,
	)
	ErrRatingOutOfRange = apperror.New(
		apperror.CodeInvalidInput,
		"All ten ratings must be between 1 and 5",
		http.StatusBadRequest,
	)
)
