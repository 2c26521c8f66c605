package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshop/internal/domain/book"
	"bookshop/internal/interface/http/dto"
	"bookshop/internal/interface/http/mapper"
	"bookshop/pkg/response"
)

// BookHandler serves the catalog endpoints.
type BookHandler struct {
	books book.Service
}

func NewBookHandler(books book.Service) *BookHandler {
	return &BookHandler{books: books}
}

// Create godoc
// @Summary Create a book
// @Tags books
// @Accept json
// @Produce json
// @Param request body dto.CreateBookRequest true "book"
// @Success 201 {object} dto.BookResponse
// @Security BearerAuth
// @Router /books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	created, err := h.books.Create(c.Request.Context(), toBookEntity(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapper.ToBookResponse(created))
}

// Get godoc
// @Summary Get a book by id
// @Tags books
// @Produce json
// @Param id path int true "book id"
// @Success 200 {object} dto.BookResponse
// @Security BearerAuth
// @Router /books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.books.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToBookResponse(b))
}

// List godoc
// @Summary List books
// @Tags books
// @Produce json
// @Param page query int false "0-based page"
// @Param size query int false "page size"
// @Param sort query string false "field,dir"
// @Success 200 {object} response.Page
// @Security BearerAuth
// @Router /books [get]
func (h *BookHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, bindError(err))
		return
	}

	p := q.ToPageRequest()
	books, total, err := h.books.List(c.Request.Context(), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPage(mapper.ToBookResponses(books), total, p.Number, p.Size))
}

// Update godoc
// @Summary Replace a book
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "book id"
// @Param request body dto.CreateBookRequest true "book"
// @Success 200 {object} dto.BookResponse
// @Security BearerAuth
// @Router /books/{id} [put]
func (h *BookHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	updated, err := h.books.Update(c.Request.Context(), id, toBookEntity(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToBookResponse(updated))
}

// Delete godoc
// @Summary Delete a book
// @Tags books
// @Param id path int true "book id"
// @Success 204
// @Security BearerAuth
// @Router /books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.books.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListByCategory godoc
// @Summary List the books of a category
// @Tags categories
// @Produce json
// @Param id path int true "category id"
// @Success 200 {object} response.Page
// @Security BearerAuth
// @Router /categories/{id}/books [get]
func (h *BookHandler) ListByCategory(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, bindError(err))
		return
	}

	p := q.ToPageRequest()
	books, total, err := h.books.ListByCategory(c.Request.Context(), id, p)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPage(mapper.ToBookResponses(books), total, p.Number, p.Size))
}

func toBookEntity(req *dto.CreateBookRequest) *book.Book {
	return &book.Book{
		Title:       req.Title,
		Author:      req.Author,
		ISBN:        req.ISBN,
		Price:       req.Price,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		CategoryIDs: req.CategoryIDs,
	}
}
