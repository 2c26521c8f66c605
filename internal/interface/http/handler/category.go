package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshop/internal/domain/category"
	"bookshop/internal/interface/http/dto"
	"bookshop/internal/interface/http/mapper"
	"bookshop/pkg/response"
)

// CategoryHandler serves the category endpoints.
type CategoryHandler struct {
	categories category.Service
}

func NewCategoryHandler(categories category.Service) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// Create godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "category"
// @Success 201 {object} dto.CategoryResponse
// @Security BearerAuth
// @Router /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	created, err := h.categories.Create(c.Request.Context(), &category.Category{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapper.ToCategoryResponse(created))
}

// Get godoc
// @Summary Get a category by id
// @Tags categories
// @Produce json
// @Param id path int true "category id"
// @Success 200 {object} dto.CategoryResponse
// @Security BearerAuth
// @Router /categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	found, err := h.categories.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToCategoryResponse(found))
}

// List godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} response.Page
// @Security BearerAuth
// @Router /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, bindError(err))
		return
	}

	p := q.ToPageRequest()
	categories, total, err := h.categories.List(c.Request.Context(), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPage(mapper.ToCategoryResponses(categories), total, p.Number, p.Size))
}

// Update godoc
// @Summary Replace a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "category id"
// @Param request body dto.CreateCategoryRequest true "category"
// @Success 200 {object} dto.CategoryResponse
// @Security BearerAuth
// @Router /categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	updated, err := h.categories.Update(c.Request.Context(), id, &category.Category{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToCategoryResponse(updated))
}

// Delete godoc
// @Summary Delete a category
// @Tags categories
// @Param id path int true "category id"
// @Success 204
// @Security BearerAuth
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
