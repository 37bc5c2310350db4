package employee

import (
	"errors"
	"net/http"

	employeeerrors "go-evaltrack/internal/employee/errors"
	"go-evaltrack/internal/shared/apperror"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return apperror.Wrap(err,
			apperror.CodeConflict,
			"Employee violates a storage constraint",
			http.StatusConflict,
		)
	}

	return err
}
