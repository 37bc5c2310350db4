package evaluation

import (
	"context"
	"time"

	"go-evaltrack/internal/employee"
	evaluationerrors "go-evaltrack/internal/evaluation/errors"
	"go-evaltrack/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=evaluation_service.go -destination=mock/evaluation_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEvaluationRequest) (EvaluationResponse, error)
	GetAll(ctx context.Context) ([]EvaluationResponse, error)
	GetByID(ctx context.Context, id uint) (EvaluationResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo      Repository
	employees employee.Repository
	logger    *zap.Logger
}

func NewService(repo Repository, employees employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("evaluation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("evaluation.service")
	}
	return &service{
		repo:      repo,
		employees: employees,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEvaluationRequest) (EvaluationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create evaluation requested",
		zap.String("request_id", rid),
		zap.Uint("employee_id", req.EmployeeID),
		zap.String("period", req.Period),
	)

	ratings := req.ratings()
	if err := ratings.Validate(); err != nil {
		s.logger.Warn("create evaluation rating out of range",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return EvaluationResponse{}, evaluationerrors.ErrRatingOutOfRange
	}

	exists, err := s.employees.Exists(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("create evaluation employee lookup failed", zap.Error(err))
		return EvaluationResponse{}, err
	}
	if !exists {
		s.logger.Warn("create evaluation employee not found",
			zap.String("request_id", rid),
			zap.Uint("employee_id", req.EmployeeID),
		)
		return EvaluationResponse{}, evaluationerrors.ErrEmployeeNotFound
	}

	ev := &Evaluation{
		EmployeeID:      req.EmployeeID,
		Period:          req.Period,
		Ratings:         ratings,
		FinalScore:      ratings.FinalScore(),
		Strengths:       req.Strengths,
		Improvements:    req.Improvements,
		DevelopmentPlan: req.DevelopmentPlan,
	}

	if err := s.repo.Create(ctx, ev); err != nil {
		s.logger.Error("create evaluation persist failed", zap.String("request_id", rid), zap.Error(err))
		return EvaluationResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create evaluation success",
		zap.String("request_id", rid),
		zap.Uint("evaluation_id", ev.ID),
		zap.Float64("final_score", ev.FinalScore),
	)

	return mapToResponse(EvaluationRow{Evaluation: *ev}), nil
}

func (s *service) GetAll(ctx context.Context) ([]EvaluationResponse, error) {
	s.logger.Debug("get all evaluations requested")
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all evaluations failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (EvaluationResponse, error) {
	s.logger.Debug("get evaluation by id requested", zap.Uint("evaluation_id", id))
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get evaluation by id failed", zap.Error(err))
		return EvaluationResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete evaluation requested",
		zap.String("request_id", rid),
		zap.Uint("evaluation_id", id),
	)

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.logger.Warn("delete evaluation failed", zap.Uint("evaluation_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete evaluation success",
		zap.String("request_id", rid),
		zap.Uint("evaluation_id", id),
	)
	return nil
}

func mapToResponse(row EvaluationRow) EvaluationResponse {
	return EvaluationResponse{
		ID:              row.ID,
		EmployeeID:      row.EmployeeID,
		Period:          row.Period,
		Quality:         row.Ratings.Quality,
		Productivity:    row.Ratings.Productivity,
		Technical:       row.Ratings.Technical,
		Teamwork:        row.Ratings.Teamwork,
		Initiative:      row.Ratings.Initiative,
		Punctuality:     row.Ratings.Punctuality,
		Leadership:      row.Ratings.Leadership,
		Adaptability:    row.Ratings.Adaptability,
		Communication:   row.Ratings.Communication,
		ValuesAlignment: row.Ratings.ValuesAlignment,
		FinalScore:      row.FinalScore,
		Strengths:       row.Strengths,
		Improvements:    row.Improvements,
		DevelopmentPlan: row.DevelopmentPlan,
		CreatedAt:       row.CreatedAt.UTC().Format(time.RFC3339),

		EmployeeName:       row.EmployeeName,
		EmployeeRole:       row.EmployeeRole,
		EmployeeDepartment: row.EmployeeDepartment,
	}
}

func mapToListResponse(rows []EvaluationRow) []EvaluationResponse {
	res := make([]EvaluationResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res
}
