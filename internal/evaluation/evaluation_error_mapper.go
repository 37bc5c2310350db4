package evaluation

import (
	"errors"

	evaluationerrors "go-evaltrack/internal/evaluation/errors"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return evaluationerrors.ErrEvaluationNotFound
	}

	// The service checks employee existence before inserting; the foreign
	// key only fires if the employee vanished in between.
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey {
		return evaluationerrors.ErrEmployeeNotFound
	}

	return err
}
