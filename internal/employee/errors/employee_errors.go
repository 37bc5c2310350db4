package employeeerrors

import (
	"go-evaltrack/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidAdmissionDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid admission_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidPhoto = apperror.New(
		apperror.CodeInvalidInput,
		"Photo must be an image file of at most 5MB",
		http.StatusBadRequest,
	)
)
