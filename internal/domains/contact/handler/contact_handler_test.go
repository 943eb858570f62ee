package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lawfirm-backend/internal/domains/contact"
	"lawfirm-backend/internal/domains/contact/repository"
	"lawfirm-backend/internal/domains/contact/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepository()
	h := NewContactHandler(service.NewContactService(repo))

	router := gin.New()
	router.GET("/api/contact", h.List)
	router.POST("/api/contact", h.Create)
	router.PATCH("/api/contact/:id/status", h.UpdateStatus)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateContactMessage(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/contact", gin.H{
		"name":    "Maria Silva",
		"email":   "maria@example.com",
		"area":    "Direito do Trabalho",
		"message": "Fui demitida sem justa causa.",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var msg contact.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, contact.StatusNew, msg.Status, "new messages always start as new")
	assert.Equal(t, "Maria Silva", msg.Name)
}

func TestCreateContactMessageValidation(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/contact", gin.H{
		"name":    "Maria Silva",
		"email":   "not-an-email",
		"message": "Olá",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid contact message data", body.Error)
	assert.Contains(t, body.Details, "email")
	assert.Contains(t, body.Details, "area")
}

func TestUpdateContactStatus(t *testing.T) {
	router := setupRouter()

	w := postJSON(t, router, "/api/contact", gin.H{
		"name":    "João",
		"email":   "joao@example.com",
		"area":    "Direito Civil",
		"message": "Dúvida sobre contrato.",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created contact.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// Invalid enum value is rejected before storage.
	w = patchStatus(t, router, created.ID, "archived")
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Message is unchanged after the rejected update.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/contact", nil))
	var listed []contact.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, contact.StatusNew, listed[0].Status)

	w = patchStatus(t, router, created.ID, contact.StatusRead)
	require.Equal(t, http.StatusOK, w.Code)
	var updated contact.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, contact.StatusRead, updated.Status)
}

func TestUpdateContactStatusNotFound(t *testing.T) {
	router := setupRouter()

	w := patchStatus(t, router, "missing", contact.StatusRead)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func patchStatus(t *testing.T, router *gin.Engine, id, status string) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(gin.H{"status": status})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPatch, "/api/contact/"+id+"/status", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
