package evaluation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-evaltrack/internal/evaluation"
	evaluationerrors "go-evaltrack/internal/evaluation/errors"

	employeeMock "go-evaltrack/internal/employee/mock"
	evaluationMock "go-evaltrack/internal/evaluation/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service   evaluation.Service
	repo      *evaluationMock.MockRepository
	employees *employeeMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	repo := evaluationMock.NewMockRepository(ctrl)
	employees := employeeMock.NewMockRepository(ctrl)
	svc := evaluation.NewService(repo, employees)

	return &serviceDeps{
		service:   svc,
		repo:      repo,
		employees: employees,
	}
}

func validCreateRequest(employeeID uint) evaluation.CreateEvaluationRequest {
	return evaluation.CreateEvaluationRequest{
		EmployeeID:      employeeID,
		Period:          "2026-Q1",
		Quality:         5,
		Productivity:    5,
		Technical:       5,
		Teamwork:        5,
		Initiative:      5,
		Punctuality:     5,
		Leadership:      5,
		Adaptability:    5,
		Communication:   5,
		ValuesAlignment: 1,
		Strengths:       "Ships reliably",
	}
}

func TestEvaluationService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - final score computed server-side", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validCreateRequest(7)

		deps.employees.EXPECT().
			Exists(ctx, uint(7)).
			Return(true, nil)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, ev *evaluation.Evaluation) error {
				assert.Equal(t, uint(7), ev.EmployeeID)
				assert.Equal(t, "2026-Q1", ev.Period)
				assert.InDelta(t, 4.6, ev.FinalScore, 1e-9)
				ev.ID = 42
				ev.CreatedAt = time.Now()
				return nil
			})

		resp, err := deps.service.Create(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, uint(42), resp.ID)
		assert.InDelta(t, 4.6, resp.FinalScore, 1e-9)
		assert.Equal(t, "Ships reliably", resp.Strengths)
	})

	t.Run("rating out of range - nothing persisted", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validCreateRequest(7)
		req.Quality = 6

		_, err := deps.service.Create(ctx, req)
		assert.ErrorIs(t, err, evaluationerrors.ErrRatingOutOfRange)
	})

	t.Run("zero rating - nothing persisted", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validCreateRequest(7)
		req.Teamwork = 0

		_, err := deps.service.Create(ctx, req)
		assert.ErrorIs(t, err, evaluationerrors.ErrRatingOutOfRange)
	})

	t.Run("employee not found - nothing persisted", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validCreateRequest(99)

		deps.employees.EXPECT().
			Exists(ctx, uint(99)).
			Return(false, nil)

		_, err := deps.service.Create(ctx, req)
		assert.ErrorIs(t, err, evaluationerrors.ErrEmployeeNotFound)
	})

	t.Run("employee lookup failure propagates", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validCreateRequest(7)
		boom := errors.New("store unavailable")

		deps.employees.EXPECT().
			Exists(ctx, uint(7)).
			Return(false, boom)

		_, err := deps.service.Create(ctx, req)
		assert.ErrorIs(t, err, boom)
	})
}

func TestEvaluationService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("joined employee fields surface", func(t *testing.T) {
		deps := setupServiceTest(t)
		name := "Ana Souza"
		role := "Engineer"
		dept := "Platform"

		deps.repo.EXPECT().
			FindByID(ctx, uint(5)).
			Return(&evaluation.EvaluationRow{
				Evaluation: evaluation.Evaluation{
					ID:         5,
					EmployeeID: 2,
					Period:     "2025-Q4",
					FinalScore: 3.8,
				},
				EmployeeName:       &name,
				EmployeeRole:       &role,
				EmployeeDepartment: &dept,
			}, nil)

		resp, err := deps.service.GetByID(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, "Ana Souza", *resp.EmployeeName)
		assert.Equal(t, "Engineer", *resp.EmployeeRole)
	})

	t.Run("orphaned evaluation keeps null employee fields", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, uint(6)).
			Return(&evaluation.EvaluationRow{
				Evaluation: evaluation.Evaluation{ID: 6, EmployeeID: 3},
			}, nil)

		resp, err := deps.service.GetByID(ctx, 6)
		assert.NoError(t, err)
		assert.Nil(t, resp.EmployeeName)
		assert.Nil(t, resp.EmployeeRole)
		assert.Nil(t, resp.EmployeeDepartment)
	})
}

func TestEvaluationService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			DeleteByID(ctx, uint(9)).
			Return(nil)

		assert.NoError(t, deps.service.Delete(ctx, 9))
	})

	t.Run("not found maps to evaluation error", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			DeleteByID(ctx, uint(9)).
			Return(gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, 9)
		assert.ErrorIs(t, err, evaluationerrors.ErrEvaluationNotFound)
	})
}
