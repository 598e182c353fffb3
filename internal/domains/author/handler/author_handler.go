package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-api/internal/domains/author"
	"library-api/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// GetAll handles GET /api/authors
func (h *AuthorHandler) GetAll(c *gin.Context) {
	authors, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	payload := make([]author.AuthorResponse, len(authors))
	for i := range authors {
		payload[i] = *authors[i].ToResponse()
	}

	response.Success(c, http.StatusOK, gin.H{
		"count":   len(payload),
		"authors": payload,
	})
}

// GetByID handles GET /api/authors/:id
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, author.ToHTTPStatus(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"author": a.ToResponse()})
}

// Create handles POST /api/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, author.ErrNameRequired.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, author.ToHTTPStatus(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"author": created.ToResponse()})
}

// Update handles PUT /api/authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req author.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, author.ToHTTPStatus(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"author": updated.ToResponse()})
}

// Delete handles DELETE /api/authors/:id. Deleting an author cascades to
// every book it owns.
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, author.ToHTTPStatus(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Author and their books deleted"})
}

// parseID reads the :id path parameter. A non-numeric id can never match
// an existing author, so it is reported as not found.
func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.NotFound(c, author.ErrAuthorNotFound.Error())
		return 0, false
	}
	return id, true
}
