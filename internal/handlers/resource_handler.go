package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mentorhub_backend/internal/middleware"
	"mentorhub_backend/internal/services"
	"mentorhub_backend/pkg/apperrors"
)

type ResourceHandler struct {
	*BaseHandler
	resourceService services.ResourceService
}

func NewResourceHandler(base *BaseHandler, resourceService services.ResourceService) *ResourceHandler {
	return &ResourceHandler{BaseHandler: base, resourceService: resourceService}
}

// Upload accepts a multipart form with a "file" part plus title and
// description fields.
func (h *ResourceHandler) Upload(c *gin.Context) {
	userID, ok := h.AuthorizedUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing 'file' form field").WithError(err))
		return
	}

	title := c.PostForm("title")
	if title == "" {
		title = fileHeader.Filename
	}

	file, err := fileHeader.Open()
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	resource, err := h.resourceService.Upload(c.Request.Context(), userID, services.ResourceUpload{
		Title:       title,
		Description: c.PostForm("description"),
		FileName:    fileHeader.Filename,
		MimeType:    fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      file,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resource)
}

func (h *ResourceHandler) List(c *gin.Context) {
	page, pageSize := h.ParsePagination(c)

	resources, total, err := h.resourceService.List(pageSize, (page-1)*pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"resources": resources,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func (h *ResourceHandler) ListMine(c *gin.Context) {
	userID, ok := h.AuthorizedUserID(c)
	if !ok {
		return
	}

	resources, err := h.resourceService.ListByOwner(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resources)
}

func (h *ResourceHandler) GetByID(c *gin.Context) {
	resource, err := h.resourceService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resource)
}

// Download streams the stored file back to the client.
func (h *ResourceHandler) Download(c *gin.Context) {
	resource, reader, err := h.resourceService.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", `attachment; filename="`+resource.FileName+`"`)
	c.DataFromReader(http.StatusOK, resource.Size, resource.MimeType, reader, nil)
}

func (h *ResourceHandler) Delete(c *gin.Context) {
	userID, ok := h.AuthorizedUserID(c)
	if !ok {
		return
	}
	role, _ := middleware.GetUserRole(c)

	if err := h.resourceService.Delete(c.Request.Context(), userID, role, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
