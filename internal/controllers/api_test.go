package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"intellinote-be/internal/apperrors"
	"intellinote-be/internal/entities"
	"intellinote-be/internal/jwt"
	"intellinote-be/internal/middleware"
	"intellinote-be/internal/service"
)

// In-memory repositories backing the real services, so these tests cover
// the full request path: routing, middleware, binding, service logic and
// error-to-status mapping.

type memUserRepo struct {
	users map[string]*entities.User // keyed by email
}

func (r *memUserRepo) Create(name, email, passwordHash string) (*entities.User, error) {
	u := &entities.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	r.users[email] = u
	return u, nil
}

func (r *memUserRepo) FindByEmail(email string) (*entities.User, error) {
	if u, ok := r.users[email]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *memUserRepo) FindByID(id string) (*entities.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

type memNoteRepo struct {
	notes map[string]*entities.Note
}

func (r *memNoteRepo) Create(userID, title, content string) (*entities.Note, error) {
	now := time.Now().UTC()
	n := &entities.Note{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.notes[n.ID] = n
	return n, nil
}

func (r *memNoteRepo) GetByUserID(userID string) ([]*entities.Note, error) {
	var out []*entities.Note
	for _, n := range r.notes {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *memNoteRepo) FindByID(userID, id string) (*entities.Note, error) {
	if n, ok := r.notes[id]; ok && n.UserID == userID {
		return n, nil
	}
	return nil, apperrors.ErrNoteNotFound
}

func (r *memNoteRepo) Update(userID, id, title, content string) (*entities.Note, error) {
	n, ok := r.notes[id]
	if !ok || n.UserID != userID {
		return nil, apperrors.ErrNoteNotFound
	}
	n.Title = title
	n.Content = content
	n.UpdatedAt = time.Now().UTC()
	return n, nil
}

func (r *memNoteRepo) Delete(userID, id string) error {
	n, ok := r.notes[id]
	if !ok || n.UserID != userID {
		return apperrors.ErrNoteNotFound
	}
	delete(r.notes, id)
	return nil
}

// stubGenerator is the AI provider double
type stubGenerator struct {
	result string
	err    error
}

func (g *stubGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.result, nil
}

func newTestRouter(gen service.TextGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)

	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	authService := service.NewAuthService(&memUserRepo{users: map[string]*entities.User{}}, jwtService)
	noteService := service.NewNoteService(&memNoteRepo{notes: map[string]*entities.Note{}}, nil)
	aiService := service.NewAIService(gen)

	authController := NewAuthController(authService)
	noteController := NewNoteController(noteService)
	aiController := NewAIController(aiService)

	router := gin.New()
	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
		}

		notes := api.Group("/notes")
		notes.Use(middleware.AuthMiddleware(jwtService))
		{
			notes.POST("", noteController.CreateNote)
			notes.GET("", noteController.GetNotes)
			notes.POST("/improve", aiController.ImproveNote)
			notes.GET("/:id", noteController.GetNote)
			notes.PUT("/:id", noteController.UpdateNote)
			notes.DELETE("/:id", noteController.DeleteNote)
		}
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, router *gin.Engine, name, email string) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": name, "email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegister_MissingFields(t *testing.T) {
	router := newTestRouter(&stubGenerator{})

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{"email": "a@b.com"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_DuplicateEmailIsBadRequest(t *testing.T) {
	router := newTestRouter(&stubGenerator{})

	body := gin.H{"name": "Alice", "email": "alice@example.com", "password": "secret123"}
	w := doJSON(t, router, http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotContains(t, w.Body.String(), "password")

	w = doJSON(t, router, http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_WrongPasswordIsUnauthorized(t *testing.T) {
	router := newTestRouter(&stubGenerator{})
	registerAndLogin(t, router, "Alice", "alice@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "alice@example.com", "password": "nope-wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNotes_RequireAuth(t *testing.T) {
	router := newTestRouter(&stubGenerator{})

	w := doJSON(t, router, http.MethodGet, "/api/notes", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/notes/improve", "", gin.H{"content": "x"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNotes_FullLifecycle(t *testing.T) {
	router := newTestRouter(&stubGenerator{})
	token := registerAndLogin(t, router, "Alice", "alice@example.com")

	// Create
	w := doJSON(t, router, http.MethodPost, "/api/notes", token, gin.H{
		"title": "Shopping", "content": "milk eggs",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var note entities.Note
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &note))
	require.Equal(t, "Shopping", note.Title)
	require.Equal(t, note.CreatedAt, note.UpdatedAt)

	// Update content wholesale
	w = doJSON(t, router, http.MethodPut, "/api/notes/"+note.ID, token, gin.H{
		"title": "Shopping", "content": "milk eggs bread",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// List has exactly one note with the updated content
	w = doJSON(t, router, http.MethodGet, "/api/notes", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var notes []entities.Note
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notes))
	require.Len(t, notes, 1)
	require.Equal(t, "milk eggs bread", notes[0].Content)

	// Delete, then the list is empty
	w = doJSON(t, router, http.MethodDelete, "/api/notes/"+note.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/notes", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	notes = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notes))
	require.Empty(t, notes)

	// Deleting again reports not found
	w = doJSON(t, router, http.MethodDelete, "/api/notes/"+note.ID, token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotes_CrossUserIsNotFound(t *testing.T) {
	router := newTestRouter(&stubGenerator{})
	aliceToken := registerAndLogin(t, router, "Alice", "alice@example.com")
	bobToken := registerAndLogin(t, router, "Bob", "bob@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/notes", aliceToken, gin.H{
		"title": "private", "content": "secret stuff",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var note entities.Note
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &note))

	// Bob sees 404, never Alice's data
	w = doJSON(t, router, http.MethodGet, "/api/notes/"+note.ID, bobToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.NotContains(t, w.Body.String(), "secret stuff")

	w = doJSON(t, router, http.MethodPut, "/api/notes/"+note.ID, bobToken, gin.H{
		"title": "mine now", "content": "x",
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/notes/"+note.ID, bobToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestImprove_Success(t *testing.T) {
	router := newTestRouter(&stubGenerator{result: "The cat sat."})
	token := registerAndLogin(t, router, "Alice", "alice@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/notes/improve", token, gin.H{
		"content": "teh cat sat",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Improved string `json:"improved"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "The cat sat.", resp.Improved)
}

func TestImprove_MissingContent(t *testing.T) {
	router := newTestRouter(&stubGenerator{result: "never"})
	token := registerAndLogin(t, router, "Alice", "alice@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/notes/improve", token, gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImprove_UpstreamFailureIsBadGateway(t *testing.T) {
	router := newTestRouter(&stubGenerator{err: apperrors.ErrUpstream})
	token := registerAndLogin(t, router, "Alice", "alice@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/notes/improve", token, gin.H{
		"content": "teh cat sat",
	})
	require.Equal(t, http.StatusBadGateway, w.Code)
}
