package evaluation

import (
	"context"

	"gorm.io/gorm"
)

// EvaluationRow is an Evaluation joined with the owning employee's
// descriptive columns. The join is a LEFT JOIN so an orphaned evaluation
// still surfaces, with the employee columns null.
type EvaluationRow struct {
	Evaluation
	EmployeeName       *string
	EmployeeRole       *string
	EmployeeDepartment *string
}

//go:generate mockgen -source=evaluation_repo.go -destination=mock/evaluation_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, ev *Evaluation) error
	FindAll(ctx context.Context) ([]EvaluationRow, error)
	FindByID(ctx context.Context, id uint) (*EvaluationRow, error)
	DeleteByID(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

const joinedColumns = "evaluations.*, " +
	"employees.name AS employee_name, " +
	"employees.role AS employee_role, " +
	"employees.department AS employee_department"

func (r *repository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("evaluations").
		Select(joinedColumns).
		Joins("LEFT JOIN employees ON employees.id = evaluations.employee_id")
}

func (r *repository) Create(ctx context.Context, ev *Evaluation) error {
	return r.db.WithContext(ctx).Create(ev).Error
}

func (r *repository) FindAll(ctx context.Context) ([]EvaluationRow, error) {
	var rows []EvaluationRow
	err := r.joined(ctx).
		Order("evaluations.created_at DESC, evaluations.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*EvaluationRow, error) {
	var rows []EvaluationRow
	err := r.joined(ctx).
		Where("evaluations.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *repository) DeleteByID(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&Evaluation{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
