package dashboard

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const recentLimit = 5

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	Summary(ctx context.Context) (DashboardResponse, error)
}

type service struct {
	repo   Repository
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{
		repo:   repo,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// Summary aggregates the dashboard numbers. Concurrent requests collapse
// into one set of queries via singleflight.
func (s *service) Summary(ctx context.Context) (DashboardResponse, error) {
	v, err, _ := s.sf.Do("summary", func() (interface{}, error) {
		return s.summary(ctx)
	})
	if err != nil {
		return DashboardResponse{}, err
	}
	return v.(DashboardResponse), nil
}

func (s *service) summary(ctx context.Context) (DashboardResponse, error) {
	s.logger.Debug("dashboard summary requested")

	totalEmployees, err := s.repo.CountEmployees(ctx)
	if err != nil {
		s.logger.Error("dashboard count employees failed", zap.Error(err))
		return DashboardResponse{}, err
	}

	totalEvaluations, err := s.repo.CountEvaluations(ctx)
	if err != nil {
		s.logger.Error("dashboard count evaluations failed", zap.Error(err))
		return DashboardResponse{}, err
	}

	evaluated, err := s.repo.CountEvaluatedEmployees(ctx)
	if err != nil {
		s.logger.Error("dashboard count evaluated employees failed", zap.Error(err))
		return DashboardResponse{}, err
	}

	avg, err := s.repo.AverageFinalScore(ctx)
	if err != nil {
		s.logger.Error("dashboard average score failed", zap.Error(err))
		return DashboardResponse{}, err
	}

	recent, err := s.repo.RecentEvaluations(ctx, recentLimit)
	if err != nil {
		s.logger.Error("dashboard recent evaluations failed", zap.Error(err))
		return DashboardResponse{}, err
	}

	pending := totalEmployees - evaluated
	if pending < 0 {
		pending = 0
	}

	// The only place scores are rounded; stored final scores stay exact.
	if avg != nil {
		rounded := math.Round(*avg*10) / 10
		avg = &rounded
	}

	return DashboardResponse{
		TotalEmployees:     totalEmployees,
		TotalEvaluations:   totalEvaluations,
		PendingEvaluations: pending,
		AverageScore:       avg,
		RecentEvaluations:  mapRecent(recent),
	}, nil
}

func mapRecent(rows []RecentEvaluation) []RecentEvaluationResponse {
	res := make([]RecentEvaluationResponse, len(rows))
	for i, row := range rows {
		res[i] = RecentEvaluationResponse{
			ID:           row.ID,
			EmployeeID:   row.EmployeeID,
			Period:       row.Period,
			FinalScore:   row.FinalScore,
			CreatedAt:    row.CreatedAt.UTC().Format(time.RFC3339),
			EmployeeName: row.EmployeeName,
			EmployeeRole: row.EmployeeRole,
		}
	}
	return res
}
