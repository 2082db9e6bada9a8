package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"LOJA_PIX_GO/database"
	"LOJA_PIX_GO/logger"
	"LOJA_PIX_GO/models"
)

const tokenTTL = 24 * time.Hour

// LoginResponse é a resposta do token
type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	ExpiresIn int          `json:"expires_in"`
	User      *models.User `json:"user"`
}

// LoginHandler lida com a autenticação dos administradores (grant_type=password).
func LoginHandler(users UserStore, secret []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/x-www-form-urlencoded" {
			http.Error(w, "Cabeçalhos inválidos", http.StatusUnsupportedMediaType)
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Erro ao processar os parâmetros", http.StatusBadRequest)
			return
		}

		username := r.FormValue("username")
		password := r.FormValue("password")
		grantType := r.FormValue("grant_type")

		if grantType != "password" || username == "" || password == "" {
			http.Error(w, "Parâmetros inválidos", http.StatusBadRequest)
			return
		}

		user, err := users.FindByEmail(r.Context(), username)
		if errors.Is(err, database.ErrNotFound) {
			recordLogin(r, users, username, nil, false)
			http.Error(w, "Usuário ou senha inválidos", http.StatusUnauthorized)
			return
		}
		if err != nil {
			logger.Error("Erro ao buscar usuário", zap.Error(err))
			http.Error(w, "Erro ao buscar usuário", http.StatusInternalServerError)
			return
		}

		if !user.Active || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
			recordLogin(r, users, username, &user.ID, false)
			http.Error(w, "Usuário ou senha inválidos", http.StatusUnauthorized)
			return
		}

		// Gerar token
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": user.ID,
			"exp": time.Now().Add(tokenTTL).Unix(),
		})
		tokenString, err := token.SignedString(secret)
		if err != nil {
			http.Error(w, "Erro ao gerar token", http.StatusInternalServerError)
			return
		}
		recordLogin(r, users, username, &user.ID, true)

		writeJSON(w, http.StatusOK, LoginResponse{
			Token:     tokenString,
			TokenType: "Bearer",
			ExpiresIn: int(tokenTTL.Seconds()),
			User:      user,
		})
	}
}

func recordLogin(r *http.Request, users UserStore, email string, userID *string, valid bool) {
	err := users.RecordLogin(r.Context(), models.UserLogin{
		ID:        uuid.NewString(),
		Email:     email,
		IDUser:    userID,
		PassValid: valid,
		Date:      time.Now(),
	})
	if err != nil {
		logger.Warn("Erro ao registrar tentativa de login", zap.Error(err))
	}
}
