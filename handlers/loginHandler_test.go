package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"LOJA_PIX_GO/database"
	"LOJA_PIX_GO/models"
)

var testSecret = []byte("segredo-de-teste")

func postForm(h http.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func adminUser(t *testing.T, password string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{ID: "user-1", Name: "Admin", Email: "admin@loja.com", Password: string(hash), Active: true}
}

func TestLoginHandler_Success(t *testing.T) {
	users := &mockUserStore{}
	users.On("FindByEmail", mock.Anything, "admin@loja.com").Return(adminUser(t, "senha-forte"), nil)
	users.On("RecordLogin", mock.Anything, mock.MatchedBy(func(l models.UserLogin) bool {
		return l.PassValid && l.IDUser != nil && *l.IDUser == "user-1"
	})).Return(nil)

	rec := postForm(LoginHandler(users, testSecret), url.Values{
		"username":   {"admin@loja.com"},
		"password":   {"senha-forte"},
		"grant_type": {"password"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "$2a$")

	var resp struct {
		Token     string `json:"token"`
		TokenType string `json:"token_type"`
		ExpiresIn int    `json:"expires_in"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 86400, resp.ExpiresIn)

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) { return testSecret, nil })
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	users.AssertExpectations(t)
}

func TestLoginHandler_Rejections(t *testing.T) {
	t.Run("senha errada", func(t *testing.T) {
		users := &mockUserStore{}
		users.On("FindByEmail", mock.Anything, "admin@loja.com").Return(adminUser(t, "senha-forte"), nil)
		users.On("RecordLogin", mock.Anything, mock.MatchedBy(func(l models.UserLogin) bool { return !l.PassValid })).Return(nil)

		rec := postForm(LoginHandler(users, testSecret), url.Values{
			"username": {"admin@loja.com"}, "password": {"outra"}, "grant_type": {"password"},
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		users.AssertExpectations(t)
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		users := &mockUserStore{}
		users.On("FindByEmail", mock.Anything, "x@loja.com").Return(nil, database.ErrNotFound)
		users.On("RecordLogin", mock.Anything, mock.Anything).Return(nil)

		rec := postForm(LoginHandler(users, testSecret), url.Values{
			"username": {"x@loja.com"}, "password": {"a"}, "grant_type": {"password"},
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("grant_type inválido", func(t *testing.T) {
		users := &mockUserStore{}
		rec := postForm(LoginHandler(users, testSecret), url.Values{
			"username": {"admin@loja.com"}, "password": {"a"}, "grant_type": {"client_credentials"},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("content type", func(t *testing.T) {
		rec := postJSON(LoginHandler(&mockUserStore{}, testSecret), `{}`)
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})
}
