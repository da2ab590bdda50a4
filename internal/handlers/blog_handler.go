package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mentorhub_backend/internal/middleware"
	"mentorhub_backend/internal/services"
	"mentorhub_backend/internal/services/dto"
)

type BlogHandler struct {
	*BaseHandler
	blogService services.BlogService
}

func NewBlogHandler(base *BaseHandler, blogService services.BlogService) *BlogHandler {
	return &BlogHandler{BaseHandler: base, blogService: blogService}
}

func (h *BlogHandler) Create(c *gin.Context) {
	userID, ok := h.AuthorizedUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBlogRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	blog, err := h.blogService.Create(userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, blog)
}

func (h *BlogHandler) List(c *gin.Context) {
	page, pageSize := h.ParsePagination(c)

	blogs, total, err := h.blogService.List(pageSize, (page-1)*pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"blogs":     blogs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func (h *BlogHandler) GetByID(c *gin.Context) {
	blog, err := h.blogService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

func (h *BlogHandler) ListByAuthor(c *gin.Context) {
	blogs, err := h.blogService.ListByAuthor(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, blogs)
}

func (h *BlogHandler) Update(c *gin.Context) {
	userID, ok := h.AuthorizedUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateBlogRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	blog, err := h.blogService.Update(userID, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	userID, ok := h.AuthorizedUserID(c)
	if !ok {
		return
	}
	role, _ := middleware.GetUserRole(c)

	if err := h.blogService.Delete(userID, role, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
