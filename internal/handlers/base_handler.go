package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"mentorhub_backend/internal/middleware"
	"mentorhub_backend/internal/validator"
	"mentorhub_backend/pkg/apperrors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// BaseHandler carries the pieces every handler needs: request binding,
// validation and the error envelope.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// BindAndValidateJSON binds the JSON body into obj and validates it.
// On failure the response is already written; the caller just returns.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body").WithError(err))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		var ve *validator.ValidationError
		if errors.As(err, &ve) {
			apperrors.HandleError(c, apperrors.ValidationError(ve.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// AuthorizedUserID pulls the caller's ID set by the auth middleware.
// Writes a 401 and returns false when missing.
func (h *BaseHandler) AuthorizedUserID(c *gin.Context) (string, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("authentication required"))
	}
	return id, ok
}

// HandleServiceError writes a service-layer error to the response.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

// ParsePagination reads ?page and ?page_size with sane bounds.
func (h *BaseHandler) ParsePagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}
