package evaluation

import (
	"net/http"
	"strconv"

	evaluationerrors "go-evaltrack/internal/evaluation/errors"
	"go-evaltrack/internal/shared/apperror"
	"go-evaltrack/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("evaluation.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("evaluation.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("evaluation request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	h.logger.Debug("http create evaluation")
	var req CreateEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create evaluation validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	h.logger.Debug("http get all evaluations")

	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetById(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}
	h.logger.Debug("http get evaluation by id", zap.Uint("evaluation_id", id))

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}
	h.logger.Debug("http delete evaluation", zap.Uint("evaluation_id", id))

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Evaluation deleted"})
}

func (h *Handler) paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		h.writeServiceError(c, evaluationerrors.ErrInvalidEvaluationID)
		return 0, false
	}
	return uint(id), true
}
