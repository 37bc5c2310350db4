package employee

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	employeeerrors "go-evaltrack/internal/employee/errors"
	"go-evaltrack/internal/shared/contextutil"
	"go-evaltrack/internal/upload"

	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest, photo *multipart.FileHeader) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id uint) (EmployeeResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo   Repository
	photos upload.PhotoStore
	logger *zap.Logger
}

func NewService(repo Repository, photos upload.PhotoStore, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		photos: photos,
		logger: l,
	}
}

func (s *service) Create(
	ctx context.Context,
	req CreateEmployeeRequest,
	photo *multipart.FileHeader,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
		zap.String("department", req.Department),
	)

	admissionDate, err := time.Parse("2006-01-02", req.AdmissionDate)
	if err != nil {
		s.logger.Warn("create employee invalid admission_date",
			zap.String("admission_date", req.AdmissionDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, employeeerrors.ErrInvalidAdmissionDate
	}

	photoName := ""
	if photo != nil {
		photoName, err = s.photos.Save(photo)
		if err != nil {
			s.logger.Warn("create employee photo rejected", zap.String("request_id", rid), zap.Error(err))
			if errors.Is(err, upload.ErrFileTooLarge) || errors.Is(err, upload.ErrNotAnImage) {
				return EmployeeResponse{}, employeeerrors.ErrInvalidPhoto
			}
			return EmployeeResponse{}, err
		}
	}

	empl := &Employee{
		Name:          req.Name,
		Role:          req.Role,
		Department:    req.Department,
		Email:         req.Email,
		AdmissionDate: admissionDate,
		Photo:         photoName,
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		if photoName != "" {
			if rmErr := s.photos.Remove(photoName); rmErr != nil {
				s.logger.Error("create employee photo cleanup failed", zap.Error(rmErr))
			}
		}
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", empl.ID),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.Uint("employee_id", id))
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.Uint("employee_id", id),
	)

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("delete employee fetch failed", zap.Uint("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := s.repo.DeleteWithEvaluations(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Uint("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	// The row is gone either way; a leftover photo file only costs disk.
	if err := s.photos.Remove(empl.Photo); err != nil {
		s.logger.Error("delete employee photo removal failed",
			zap.Uint("employee_id", id),
			zap.String("photo", empl.Photo),
			zap.Error(err),
		)
	}

	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", id),
	)
	return nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            empl.ID,
		Name:          empl.Name,
		Role:          empl.Role,
		Department:    empl.Department,
		Email:         empl.Email,
		AdmissionDate: empl.AdmissionDate.Format("2006-01-02"),
		Photo:         empl.Photo,
		CreatedAt:     empl.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
