package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"tour-packages-backend/internal/repositories"
)

func loginRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	h := AuthHandlers{
		Users:  repositories.UserRepository{DB: db},
		Secret: []byte("test-secret"),
	}
	r := gin.New()
	r.POST("/api/auth/login", h.Login)
	return r, mock
}

func expectAdminUser(t *testing.T, mock sqlmock.Sqlmock, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	mock.ExpectQuery("FROM users").
		WithArgs(email).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role"}).
			AddRow(int64(1), "Admin", email, string(hash), "admin"))
}

func postLogin(r *gin.Engine, email, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(gin.H{"email": email, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginIssuesToken(t *testing.T) {
	r, mock := loginRouter(t)
	expectAdminUser(t, mock, "admin@example.com", "s3cret")

	w := postLogin(r, "admin@example.com", "s3cret")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected a token in the response")
	}
}

func TestLoginWrongPasswordIsUnauthorized(t *testing.T) {
	r, mock := loginRouter(t)
	expectAdminUser(t, mock, "admin@example.com", "s3cret")

	w := postLogin(r, "admin@example.com", "wrong")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
	if bytes.Contains(w.Body.Bytes(), []byte("token")) {
		t.Fatalf("401 response must not carry a token: %s", w.Body.String())
	}
}

func TestLoginUnknownUserIsUnauthorized(t *testing.T) {
	r, mock := loginRouter(t)
	mock.ExpectQuery("FROM users").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role"}))

	w := postLogin(r, "nobody@example.com", "whatever")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}
