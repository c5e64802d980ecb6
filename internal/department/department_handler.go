package department

import (
	"net/http"
	"strconv"

	departmenterrors "github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/department/errors"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/apperror"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("department.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.handler")
	}
	return &Handler{svc: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("department request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	return id, err == nil && id > 0
}

func (h *Handler) GetAll(c *gin.Context) {
	companyID := c.GetInt64("company_id")

	var (
		res []DepartmentDTO
		err error
	)
	if c.Query("view") == "tree" {
		res, err = h.svc.Tree(c.Request.Context(), companyID)
	} else {
		res, err = h.svc.List(c.Request.Context(), companyID)
	}
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, departmenterrors.ErrInvalidDepartmentID)
		return
	}

	res, err := h.svc.Get(c.Request.Context(), c.GetInt64("company_id"), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.svc.Create(c.Request.Context(), c.GetInt64("company_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, departmenterrors.ErrInvalidDepartmentID)
		return
	}

	var req UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.svc.Update(c.Request.Context(), c.GetInt64("company_id"), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, departmenterrors.ErrInvalidDepartmentID)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.GetInt64("company_id"), id); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Members(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, departmenterrors.ErrInvalidDepartmentID)
		return
	}

	res, err := h.svc.Members(c.Request.Context(), c.GetInt64("company_id"), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) AddMember(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, departmenterrors.ErrInvalidDepartmentID)
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.svc.AddMember(c.Request.Context(), c.GetInt64("company_id"), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) RemoveMember(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, departmenterrors.ErrInvalidDepartmentID)
		return
	}
	userID, ok := parseID(c, "userId")
	if !ok {
		h.writeServiceError(c, apperror.New(apperror.CodeInvalidInput, "Invalid user ID", http.StatusBadRequest))
		return
	}

	if err := h.svc.RemoveMember(c.Request.Context(), c.GetInt64("company_id"), id, userID); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Mine(c *gin.Context) {
	res, err := h.svc.UserDepartments(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}
