package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	json "github.com/json-iterator/go"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"LOJA_PIX_GO/database"
	"LOJA_PIX_GO/logger"
	"LOJA_PIX_GO/models"
)

const minPasswordLength = 8

// CreateUserHandler cria um novo administrador
func CreateUserHandler(users UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Erro ao decodificar o JSON", http.StatusBadRequest)
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		if req.Name == "" || req.Email == "" || req.Password == "" {
			http.Error(w, "Todos os campos (name, email, password) são obrigatórios", http.StatusBadRequest)
			return
		}
		if len(req.Password) < minPasswordLength {
			http.Error(w, "A senha deve ter no mínimo 8 caracteres", http.StatusBadRequest)
			return
		}

		_, err := users.FindByEmail(r.Context(), req.Email)
		if err == nil {
			http.Error(w, "E-mail já cadastrado", http.StatusConflict)
			return
		}
		if !errors.Is(err, database.ErrNotFound) {
			logger.Error("Erro ao buscar usuário", zap.Error(err))
			http.Error(w, "Erro ao criar o usuário", http.StatusInternalServerError)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			http.Error(w, "Erro ao processar a senha", http.StatusInternalServerError)
			return
		}

		now := time.Now()
		user := &models.User{
			ID:         uuid.NewString(),
			Name:       req.Name,
			Email:      req.Email,
			Password:   string(hash),
			Active:     true,
			DateCreate: now,
			DateUpdate: now,
		}
		if err := users.Create(r.Context(), user); err != nil {
			logger.Error("Erro ao criar o usuário", zap.Error(err))
			http.Error(w, "Erro ao criar o usuário", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]string{
			"message": "Usuário criado com sucesso",
			"id":      user.ID,
		})
	}
}
