package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, write func(c *gin.Context)) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	write(c)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestSuccessMergesPayloadWithFlag(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		Success(c, http.StatusOK, gin.H{"count": 2, "books": []string{"a", "b"}})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["count"])
	assert.Len(t, body["books"], 2)
}

func TestErrorEnvelope(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		Error(c, http.StatusConflict, "A book with this isbn already exists")
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "A book with this isbn already exists", body["error"])
	// The failure envelope carries exactly the flag and the message.
	assert.Len(t, body, 2)
}

func TestStatusShorthands(t *testing.T) {
	tests := []struct {
		name  string
		write func(c *gin.Context)
		code  int
	}{
		{"bad request", func(c *gin.Context) { BadRequest(c, "Name is required") }, http.StatusBadRequest},
		{"not found", func(c *gin.Context) { NotFound(c, "Author not found") }, http.StatusNotFound},
		{"internal", func(c *gin.Context) { InternalServerError(c, "Internal server error") }, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := record(t, tt.write)
			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, false, body["success"])
		})
	}
}
