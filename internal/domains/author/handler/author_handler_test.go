package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/domains/author"
)

// stubService implements author.Service with per-test function hooks.
type stubService struct {
	createFn  func(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error)
	getByIDFn func(ctx context.Context, id int) (*author.Author, error)
	getAllFn  func(ctx context.Context) ([]author.Author, error)
	updateFn  func(ctx context.Context, id int, req *author.UpdateAuthorRequest) (*author.Author, error)
	deleteFn  func(ctx context.Context, id int) error
}

func (s *stubService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	return s.createFn(ctx, req)
}

func (s *stubService) GetByID(ctx context.Context, id int) (*author.Author, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubService) GetAll(ctx context.Context) ([]author.Author, error) {
	return s.getAllFn(ctx)
}

func (s *stubService) Update(ctx context.Context, id int, req *author.UpdateAuthorRequest) (*author.Author, error) {
	return s.updateFn(ctx, id, req)
}

func (s *stubService) Delete(ctx context.Context, id int) error {
	return s.deleteFn(ctx, id)
}

func setupRouter(svc author.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthorHandler(svc)

	authors := r.Group("/api/authors")
	authors.GET("", h.GetAll)
	authors.GET("/:id", h.GetByID)
	authors.POST("", h.Create)
	authors.PUT("/:id", h.Update)
	authors.DELETE("/:id", h.Delete)

	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

	return w, envelope
}

func strPtr(s string) *string { return &s }

func sampleAuthor() *author.Author {
	return &author.Author{
		ID:    1,
		Name:  "Eric Matthes",
		Bio:   strPtr("Python Expert"),
		City:  strPtr("Chicago"),
		Books: []string{"Python Crash Course"},
	}
}

func TestAuthorHandlerGetAll(t *testing.T) {
	svc := &stubService{
		getAllFn: func(context.Context) ([]author.Author, error) {
			return []author.Author{*sampleAuthor()}, nil
		},
	}
	r := setupRouter(svc)

	w, envelope := doRequest(t, r, http.MethodGet, "/api/authors", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, envelope["success"])
	assert.Equal(t, float64(1), envelope["count"])

	authors := envelope["authors"].([]interface{})
	first := authors[0].(map[string]interface{})
	assert.Equal(t, "Eric Matthes", first["name"])
	assert.Equal(t, []interface{}{"Python Crash Course"}, first["books"])
}

func TestAuthorHandlerGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &stubService{
			getByIDFn: func(_ context.Context, id int) (*author.Author, error) {
				assert.Equal(t, 1, id)
				return sampleAuthor(), nil
			},
		}
		r := setupRouter(svc)

		w, envelope := doRequest(t, r, http.MethodGet, "/api/authors/1", "")

		assert.Equal(t, http.StatusOK, w.Code)
		a := envelope["author"].(map[string]interface{})
		assert.Equal(t, float64(1), a["id"])
		assert.Equal(t, "Chicago", a["city"])
	})

	t.Run("not found", func(t *testing.T) {
		svc := &stubService{
			getByIDFn: func(context.Context, int) (*author.Author, error) {
				return nil, author.ErrAuthorNotFound
			},
		}
		r := setupRouter(svc)

		w, envelope := doRequest(t, r, http.MethodGet, "/api/authors/99", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, false, envelope["success"])
		assert.Equal(t, "Author not found", envelope["error"])
	})

	t.Run("non-numeric id", func(t *testing.T) {
		r := setupRouter(&stubService{})

		w, envelope := doRequest(t, r, http.MethodGet, "/api/authors/abc", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, false, envelope["success"])
	})
}

func TestAuthorHandlerCreate(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &stubService{
			createFn: func(_ context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
				assert.Equal(t, "Miguel Grinberg", req.Name)
				return &author.Author{ID: 2, Name: req.Name, Books: []string{}}, nil
			},
		}
		r := setupRouter(svc)

		w, envelope := doRequest(t, r, http.MethodPost, "/api/authors",
			`{"name": "Miguel Grinberg"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, true, envelope["success"])

		a := envelope["author"].(map[string]interface{})
		assert.Equal(t, float64(2), a["id"])
		assert.Nil(t, a["bio"])
		assert.Equal(t, []interface{}{}, a["books"])
	})

	t.Run("missing name", func(t *testing.T) {
		svc := &stubService{
			createFn: func(_ context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
				return nil, author.ErrNameRequired
			},
		}
		r := setupRouter(svc)

		w, envelope := doRequest(t, r, http.MethodPost, "/api/authors", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Name is required", envelope["error"])
	})

	t.Run("empty body", func(t *testing.T) {
		r := setupRouter(&stubService{})

		w, envelope := doRequest(t, r, http.MethodPost, "/api/authors", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, false, envelope["success"])
	})
}

func TestAuthorHandlerUpdate(t *testing.T) {
	t.Run("partial body reaches service", func(t *testing.T) {
		svc := &stubService{
			updateFn: func(_ context.Context, id int, req *author.UpdateAuthorRequest) (*author.Author, error) {
				assert.Equal(t, 1, id)
				assert.False(t, req.Name.Set)
				assert.True(t, req.City.Present())
				assert.Equal(t, "Portland", *req.City.Value)

				a := sampleAuthor()
				a.City = req.City.Value
				return a, nil
			},
		}
		r := setupRouter(svc)

		w, envelope := doRequest(t, r, http.MethodPut, "/api/authors/1",
			`{"city": "Portland"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		a := envelope["author"].(map[string]interface{})
		assert.Equal(t, "Portland", a["city"])
	})

	t.Run("empty body is a validation error", func(t *testing.T) {
		r := setupRouter(&stubService{})

		w, envelope := doRequest(t, r, http.MethodPut, "/api/authors/1", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, false, envelope["success"])
	})

	t.Run("not found", func(t *testing.T) {
		svc := &stubService{
			updateFn: func(context.Context, int, *author.UpdateAuthorRequest) (*author.Author, error) {
				return nil, author.ErrAuthorNotFound
			},
		}
		r := setupRouter(svc)

		w, _ := doRequest(t, r, http.MethodPut, "/api/authors/99", `{"name": "X"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAuthorHandlerDelete(t *testing.T) {
	t.Run("deleted with cascade message", func(t *testing.T) {
		svc := &stubService{
			deleteFn: func(_ context.Context, id int) error {
				assert.Equal(t, 1, id)
				return nil
			},
		}
		r := setupRouter(svc)

		w, envelope := doRequest(t, r, http.MethodDelete, "/api/authors/1", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, envelope["success"])
		assert.Equal(t, "Author and their books deleted", envelope["message"])
	})

	t.Run("not found", func(t *testing.T) {
		svc := &stubService{
			deleteFn: func(context.Context, int) error {
				return author.ErrAuthorNotFound
			},
		}
		r := setupRouter(svc)

		w, envelope := doRequest(t, r, http.MethodDelete, "/api/authors/99", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Author not found", envelope["error"])
	})
}
