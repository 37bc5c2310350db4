package dashboard_test

import (
	"context"
	"testing"
	"time"

	"go-evaltrack/internal/dashboard"
	dashboardMock "go-evaltrack/internal/dashboard/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	service dashboard.Service
	repo    *dashboardMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	repo := dashboardMock.NewMockRepository(ctrl)
	return &serviceDeps{
		service: dashboard.NewService(repo),
		repo:    repo,
	}
}

func (d *serviceDeps) expectCounts(ctx context.Context, employees, evaluations, evaluated int64, avg *float64, recent []dashboard.RecentEvaluation) {
	d.repo.EXPECT().CountEmployees(ctx).Return(employees, nil)
	d.repo.EXPECT().CountEvaluations(ctx).Return(evaluations, nil)
	d.repo.EXPECT().CountEvaluatedEmployees(ctx).Return(evaluated, nil)
	d.repo.EXPECT().AverageFinalScore(ctx).Return(avg, nil)
	d.repo.EXPECT().RecentEvaluations(ctx, 5).Return(recent, nil)
}

func f64(v float64) *float64 { return &v }

func TestDashboardService_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("pending is total minus distinct evaluated", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.expectCounts(ctx, 10, 12, 4, f64(3.5), nil)

		resp, err := deps.service.Summary(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(10), resp.TotalEmployees)
		assert.Equal(t, int64(12), resp.TotalEvaluations)
		assert.Equal(t, int64(6), resp.PendingEvaluations)
	})

	t.Run("pending never goes negative", func(t *testing.T) {
		deps := setupServiceTest(t)
		// distinct evaluated can exceed the head count when evaluations
		// outlive their employees
		deps.expectCounts(ctx, 2, 9, 5, f64(3.5), nil)

		resp, err := deps.service.Summary(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), resp.PendingEvaluations)
	})

	t.Run("average is null with no evaluations", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.expectCounts(ctx, 3, 0, 0, nil, nil)

		resp, err := deps.service.Summary(ctx)
		assert.NoError(t, err)
		assert.Nil(t, resp.AverageScore)
		assert.Equal(t, int64(3), resp.PendingEvaluations)
	})

	t.Run("average rounds to one decimal", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.expectCounts(ctx, 2, 2, 2, f64(3.4999999), nil)

		resp, err := deps.service.Summary(ctx)
		assert.NoError(t, err)
		assert.InDelta(t, 3.5, *resp.AverageScore, 1e-9)
	})

	t.Run("mean of 3.0 and 4.0 reports 3.5", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.expectCounts(ctx, 2, 2, 2, f64(3.5), nil)

		resp, err := deps.service.Summary(ctx)
		assert.NoError(t, err)
		assert.InDelta(t, 3.5, *resp.AverageScore, 1e-9)
	})

	t.Run("recent evaluations pass through with employee join", func(t *testing.T) {
		deps := setupServiceTest(t)
		name := "Ana"
		role := "Engineer"
		now := time.Now()
		deps.expectCounts(ctx, 1, 1, 1, f64(4.6), []dashboard.RecentEvaluation{
			{ID: 2, EmployeeID: 1, Period: "2026-Q1", FinalScore: 4.6, CreatedAt: now, EmployeeName: &name, EmployeeRole: &role},
		})

		resp, err := deps.service.Summary(ctx)
		assert.NoError(t, err)
		assert.Len(t, resp.RecentEvaluations, 1)
		assert.Equal(t, "Ana", *resp.RecentEvaluations[0].EmployeeName)
		assert.InDelta(t, 4.6, resp.RecentEvaluations[0].FinalScore, 1e-9)
	})
}
