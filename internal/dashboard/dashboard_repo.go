package dashboard

import (
	"context"
	"database/sql"
	"time"

	"go-evaltrack/internal/employee"
	"go-evaltrack/internal/evaluation"

	"gorm.io/gorm"
)

// RecentEvaluation is the trimmed evaluation row shown on the dashboard,
// joined with the owning employee's name and role.
type RecentEvaluation struct {
	ID           uint
	EmployeeID   uint
	Period       string
	FinalScore   float64
	CreatedAt    time.Time
	EmployeeName *string
	EmployeeRole *string
}

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountEvaluations(ctx context.Context) (int64, error)
	// AverageFinalScore is nil when no evaluations exist.
	AverageFinalScore(ctx context.Context) (*float64, error)
	// CountEvaluatedEmployees counts distinct employees that have at least
	// one evaluation.
	CountEvaluatedEmployees(ctx context.Context) (int64, error)
	RecentEvaluations(ctx context.Context, limit int) ([]RecentEvaluation, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountEmployees(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&employee.Employee{}).Count(&count).Error
	return count, err
}

func (r *repository) CountEvaluations(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&evaluation.Evaluation{}).Count(&count).Error
	return count, err
}

func (r *repository) AverageFinalScore(ctx context.Context) (*float64, error) {
	var avg sql.NullFloat64
	err := r.db.WithContext(ctx).
		Model(&evaluation.Evaluation{}).
		Select("AVG(final_score)").
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

func (r *repository) CountEvaluatedEmployees(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&evaluation.Evaluation{}).
		Distinct("employee_id").
		Count(&count).Error
	return count, err
}

func (r *repository) RecentEvaluations(ctx context.Context, limit int) ([]RecentEvaluation, error) {
	var rows []RecentEvaluation
	err := r.db.WithContext(ctx).
		Table("evaluations").
		Select("evaluations.id, evaluations.employee_id, evaluations.period, "+
			"evaluations.final_score, evaluations.created_at, "+
			"employees.name AS employee_name, employees.role AS employee_role").
		Joins("LEFT JOIN employees ON employees.id = evaluations.employee_id").
		Order("evaluations.created_at DESC, evaluations.id DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
