package handlers

import (
	"errors"
	"net/http"
	"time"

	json "github.com/json-iterator/go"
	"go.uber.org/zap"

	"LOJA_PIX_GO/database"
	"LOJA_PIX_GO/logger"
	"LOJA_PIX_GO/models"
	"LOJA_PIX_GO/pix"
)

// SaveSettingsHandler cria ou atualiza as configurações da loja (POST /settings/admin).
func SaveSettingsHandler(store SettingsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.SettingsInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "Erro ao decodificar JSON: "+err.Error(), http.StatusBadRequest)
			return
		}

		in = in.Normalize()
		if in.CompanyName == "" {
			http.Error(w, "O nome da empresa é obrigatório", http.StatusBadRequest)
			return
		}
		// Chave salva com formato inválido só seria descoberta no checkout.
		if in.PixKey != nil && !pix.IsValidPixKey(*in.PixKey) {
			http.Error(w, msgChaveInvalida, http.StatusBadRequest)
			return
		}

		settings, err := store.Save(r.Context(), in)
		if err != nil {
			logger.Error("Erro ao salvar configurações", zap.Error(err))
			http.Error(w, "Erro ao salvar configurações", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message":  "Configurações salvas com sucesso",
			"settings": settings,
		})
	}
}

// FindLogoNameHandler devolve nome e logo da loja para o cabeçalho da vitrine.
func FindLogoNameHandler(store SettingsStore) http.HandlerFunc {
	return findSettings(store, func(s *models.Settings) interface{} {
		return map[string]interface{}{
			"companyName": s.CompanyName,
			"logo":        s.Logo,
		}
	})
}

// FindPixKeyHandler devolve apenas a chave PIX configurada.
func FindPixKeyHandler(store SettingsStore) http.HandlerFunc {
	return findSettings(store, func(s *models.Settings) interface{} {
		return map[string]interface{}{
			"pixKey": s.PixKey,
		}
	})
}

type adminSettings struct {
	CompanyName         string    `json:"companyName"`
	CompanyID           *string   `json:"companyId"`
	Logo                *string   `json:"logo"`
	PixKey              *string   `json:"pixKey"`
	Phone               *string   `json:"phone"`
	Email               *string   `json:"email"`
	CreditCardAvailable bool      `json:"creditCardAvailable"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// FindAdminSettingsHandler devolve as configurações completas para o painel.
func FindAdminSettingsHandler(store SettingsStore) http.HandlerFunc {
	return findSettings(store, func(s *models.Settings) interface{} {
		return adminSettings{
			CompanyName:         s.CompanyName,
			CompanyID:           s.CompanyID,
			Logo:                s.Logo,
			PixKey:              s.PixKey,
			Phone:               s.Phone,
			Email:               s.Email,
			CreditCardAvailable: s.CreditCardAvailable,
			CreatedAt:           s.CreatedAt,
			UpdatedAt:           s.UpdatedAt,
		}
	})
}

// findSettings responde null quando ainda não há configurações, como a vitrine espera.
func findSettings(store SettingsStore, project func(*models.Settings) interface{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := store.Get(r.Context())
		if errors.Is(err, database.ErrNotFound) {
			writeJSON(w, http.StatusOK, nil)
			return
		}
		if err != nil {
			logger.Error("Erro ao buscar configurações", zap.Error(err))
			http.Error(w, "Erro ao buscar configurações", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, project(settings))
	}
}
