package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-api/internal/domains/book"
	"library-api/internal/shared/response"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// GetAll handles GET /api/books
func (h *BookHandler) GetAll(c *gin.Context) {
	books, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"count": len(books),
		"books": toResponses(books),
	})
}

// GetByID handles GET /api/books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, book.ToHTTPStatus(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"book": b.ToResponse()})
}

// Create handles POST /api/books
func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, book.ErrFieldsRequired.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, book.ToHTTPStatus(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"book": created.ToResponse()})
}

// Update handles PUT /api/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req book.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, book.ToHTTPStatus(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"book": updated.ToResponse()})
}

// Delete handles DELETE /api/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, book.ToHTTPStatus(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Book deleted"})
}

// Search handles GET /api/books/search?q=&author_id=
func (h *BookHandler) Search(c *gin.Context) {
	filter := book.SearchFilter{Title: c.Query("q")}

	if authorIDStr := c.Query("author_id"); authorIDStr != "" {
		authorID, err := strconv.Atoi(authorIDStr)
		if err != nil {
			response.BadRequest(c, "author_id must be an integer")
			return
		}
		filter.AuthorID = &authorID
	}

	books, err := h.service.Search(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"count": len(books),
		"books": toResponses(books),
	})
}

func toResponses(books []book.Book) []book.BookResponse {
	payload := make([]book.BookResponse, len(books))
	for i := range books {
		payload[i] = *books[i].ToResponse()
	}
	return payload
}

// parseID reads the :id path parameter. A non-numeric id can never match
// an existing book, so it is reported as not found.
func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.NotFound(c, book.ErrBookNotFound.Error())
		return 0, false
	}
	return id, true
}
