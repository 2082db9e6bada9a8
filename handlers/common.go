package handlers

import (
	"context"
	"net/http"
	"time"

	json "github.com/json-iterator/go"
	"go.uber.org/zap"

	"LOJA_PIX_GO/efi"
	"LOJA_PIX_GO/logger"
	"LOJA_PIX_GO/models"
)

// SettingsStore fornece a chave PIX e o nome da loja.
type SettingsStore interface {
	Get(ctx context.Context) (*models.Settings, error)
	Save(ctx context.Context, in models.SettingsInput) (*models.Settings, error)
}

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
	RecordLogin(ctx context.Context, l models.UserLogin) error
}

type ChargeStore interface {
	Create(ctx context.Context, c *models.PixCobranca) error
	FindByTxID(ctx context.Context, txid string) (*models.PixCobranca, error)
	UpdateStatus(ctx context.Context, txid, status string, dataPago *time.Time) error
}

// ChargeGateway é o PSP que emite cobranças dinâmicas.
type ChargeGateway interface {
	CreateImmediateCharge(ctx context.Context, req efi.ChargeRequest) (*efi.Charge, error)
	DetailCharge(ctx context.Context, txid string) (*efi.Charge, error)
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("Erro ao escrever resposta JSON", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg, detail string) {
	writeJSON(w, status, errorResponse{Error: msg, Detail: detail})
}
