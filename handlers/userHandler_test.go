package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"LOJA_PIX_GO/database"
	"LOJA_PIX_GO/models"
)

func TestCreateUserHandler(t *testing.T) {
	t.Run("cria com senha hasheada", func(t *testing.T) {
		users := &mockUserStore{}
		users.On("FindByEmail", mock.Anything, "nova@loja.com").Return(nil, database.ErrNotFound)
		users.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.ID != "" && u.Active && u.Name == "Nova" &&
				bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("12345678")) == nil
		})).Return(nil)

		rec := postJSON(CreateUserHandler(users), `{"name": "Nova", "email": " Nova@Loja.com ", "password": "12345678"}`)
		assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		users.AssertExpectations(t)
	})

	t.Run("email duplicado", func(t *testing.T) {
		users := &mockUserStore{}
		users.On("FindByEmail", mock.Anything, "admin@loja.com").Return(&models.User{ID: "1"}, nil)

		rec := postJSON(CreateUserHandler(users), `{"name": "A", "email": "admin@loja.com", "password": "12345678"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("campos obrigatórios", func(t *testing.T) {
		rec := postJSON(CreateUserHandler(&mockUserStore{}), `{"name": "A"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("senha curta", func(t *testing.T) {
		rec := postJSON(CreateUserHandler(&mockUserStore{}), `{"name": "A", "email": "a@b.com", "password": "123"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("erro no banco", func(t *testing.T) {
		users := &mockUserStore{}
		users.On("FindByEmail", mock.Anything, "a@b.com").Return(nil, errors.New("falhou"))
		rec := postJSON(CreateUserHandler(users), `{"name": "A", "email": "a@b.com", "password": "12345678"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
