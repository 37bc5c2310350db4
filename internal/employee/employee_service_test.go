package employee_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"go-evaltrack/internal/employee"
	employeeerrors "go-evaltrack/internal/employee/errors"

	employeeMock "go-evaltrack/internal/employee/mock"
	uploadMock "go-evaltrack/internal/upload/mock"

	"go-evaltrack/internal/upload"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service employee.Service
	repo    *employeeMock.MockRepository
	photos  *uploadMock.MockPhotoStore
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	repo := employeeMock.NewMockRepository(ctrl)
	photos := uploadMock.NewMockPhotoStore(ctrl)
	svc := employee.NewService(repo, photos)

	return &serviceDeps{
		service: svc,
		repo:    repo,
		photos:  photos,
	}
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Name:          "Ana Souza",
		Role:          "Engineer",
		Department:    "Platform",
		Email:         "ana@example.com",
		AdmissionDate: "2024-03-15",
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success without photo", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validCreateRequest()

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, req.Name, e.Name)
				assert.Equal(t, req.Role, e.Role)
				assert.Equal(t, req.Department, e.Department)
				assert.Equal(t, req.Email, e.Email)
				assert.Equal(t, "2024-03-15", e.AdmissionDate.Format("2006-01-02"))
				assert.Empty(t, e.Photo)
				e.ID = 3
				e.CreatedAt = time.Now()
				return nil
			})

		resp, err := deps.service.Create(ctx, req, nil)
		assert.NoError(t, err)
		assert.Equal(t, uint(3), resp.ID)
		assert.Equal(t, "2024-03-15", resp.AdmissionDate)
	})

	t.Run("success with photo", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validCreateRequest()
		header := &multipart.FileHeader{Filename: "face.png"}

		deps.photos.EXPECT().
			Save(header).
			Return("1700000000_abc.png", nil)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "1700000000_abc.png", e.Photo)
				return nil
			})

		resp, err := deps.service.Create(ctx, req, header)
		assert.NoError(t, err)
		assert.Equal(t, "1700000000_abc.png", resp.Photo)
	})

	t.Run("invalid admission date rejected before persistence", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validCreateRequest()
		req.AdmissionDate = "15/03/2024"

		_, err := deps.service.Create(ctx, req, nil)
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidAdmissionDate)
	})

	t.Run("rejected photo maps to validation error", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validCreateRequest()
		header := &multipart.FileHeader{Filename: "notes.pdf"}

		deps.photos.EXPECT().
			Save(header).
			Return("", upload.ErrNotAnImage)

		_, err := deps.service.Create(ctx, req, header)
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidPhoto)
	})

	t.Run("persist failure cleans up stored photo", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validCreateRequest()
		header := &multipart.FileHeader{Filename: "face.jpg"}
		boom := errors.New("disk full")

		deps.photos.EXPECT().
			Save(header).
			Return("1700000000_abc.jpg", nil)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(boom)

		deps.photos.EXPECT().
			Remove("1700000000_abc.jpg").
			Return(nil)

		_, err := deps.service.Create(ctx, req, header)
		assert.ErrorIs(t, err, boom)
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	deps.repo.EXPECT().
		FindAll(ctx).
		Return([]employee.Employee{
			{ID: 1, Name: "Ana"},
			{ID: 2, Name: "Bruno"},
		}, nil)

	resp, err := deps.service.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "Ana", resp[0].Name)
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("cascades and removes the photo file", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, uint(8)).
			Return(&employee.Employee{ID: 8, Name: "Ana", Photo: "p.jpg"}, nil)

		deps.repo.EXPECT().
			DeleteWithEvaluations(ctx, uint(8)).
			Return(nil)

		deps.photos.EXPECT().
			Remove("p.jpg").
			Return(nil)

		assert.NoError(t, deps.service.Delete(ctx, 8))
	})

	t.Run("unknown employee maps to not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, uint(8)).
			Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, 8)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("photo removal failure does not fail the delete", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, uint(8)).
			Return(&employee.Employee{ID: 8, Photo: "p.jpg"}, nil)

		deps.repo.EXPECT().
			DeleteWithEvaluations(ctx, uint(8)).
			Return(nil)

		deps.photos.EXPECT().
			Remove("p.jpg").
			Return(errors.New("permission denied"))

		assert.NoError(t, deps.service.Delete(ctx, 8))
	})
}
