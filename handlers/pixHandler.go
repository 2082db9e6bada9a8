package handlers

import (
	"encoding/base64"
	"errors"
	"net/http"

	json "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"LOJA_PIX_GO/database"
	"LOJA_PIX_GO/logger"
	"LOJA_PIX_GO/pix"
)

const (
	msgChaveInvalida    = "Chave PIX inválida"
	detailChaveInvalida = "Configure uma chave PIX válida nas configurações do sistema."
)

// PixConfig são os padrões do recebedor e do QR Code.
type PixConfig struct {
	MerchantName string
	MerchantCity string
	QRSize       int
	Encoder      *pix.Encoder
}

// PixCodeRequest é o corpo de POST /pix/code.
type PixCodeRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type PixCodeResponse struct {
	PixCode      string      `json:"pixCode"`
	QRCode       string      `json:"qrCode"`
	Amount       string      `json:"amount"`
	PixKey       string      `json:"pixKey"`
	KeyType      pix.KeyType `json:"keyType"`
	MerchantName string      `json:"merchantName"`
	MerchantCity string      `json:"merchantCity"`
}

// GeneratePixCodeHandler gera o "Copia e Cola" e o QR Code com a chave PIX da loja.
func GeneratePixCodeHandler(store SettingsStore, cfg PixConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PixCodeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Erro ao decodificar JSON", err.Error())
			return
		}

		code, status, err := buildPixCode(r, store, cfg, req)
		if err != nil {
			writePixError(w, status, err)
			return
		}

		png, err := qrcode.Encode(code.PixCode, qrcode.Medium, cfg.QRSize)
		if err != nil {
			logger.Error("Erro ao gerar QR Code", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Erro ao gerar QR Code", "")
			return
		}
		code.QRCode = "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)

		writeJSON(w, http.StatusOK, code)
	}
}

// PixQRCodeImageHandler devolve o QR Code em PNG (GET /pix/qrcode.png?amount=&description=).
func PixQRCodeImageHandler(store SettingsStore, cfg PixConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := PixCodeRequest{Description: r.URL.Query().Get("description")}
		if v := r.URL.Query().Get("amount"); v != "" {
			amount, err := decimal.NewFromString(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Valor inválido", err.Error())
				return
			}
			req.Amount = amount
		}

		code, status, err := buildPixCode(r, store, cfg, req)
		if err != nil {
			writePixError(w, status, err)
			return
		}

		png, err := qrcode.Encode(code.PixCode, qrcode.Medium, cfg.QRSize)
		if err != nil {
			logger.Error("Erro ao gerar QR Code", zap.Error(err))
			http.Error(w, "Erro ao gerar QR Code", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(png); err != nil {
			logger.Warn("Erro ao escrever QR Code", zap.Error(err))
		}
	}
}

// buildPixCode resolve chave e recebedor nas configurações e gera o payload.
// O status devolvido só tem significado quando err != nil.
func buildPixCode(r *http.Request, store SettingsStore, cfg PixConfig, req PixCodeRequest) (*PixCodeResponse, int, error) {
	settings, err := store.Get(r.Context())
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		logger.Error("Erro ao buscar configurações", zap.Error(err))
		return nil, http.StatusInternalServerError, err
	}

	key := settings.PixKeyValue()
	keyType, ok := pix.ClassifyPixKey(key)
	if !ok {
		return nil, http.StatusUnprocessableEntity, errInvalidKey
	}

	merchantName := cfg.MerchantName
	if settings != nil && settings.CompanyName != "" {
		merchantName = settings.CompanyName
	}

	encoder := cfg.Encoder
	if encoder == nil {
		encoder = pix.NewEncoder()
	}
	code, err := encoder.Encode(pix.PaymentRequest{
		PixKey:       key,
		Amount:       req.Amount,
		MerchantName: merchantName,
		MerchantCity: cfg.MerchantCity,
		Description:  req.Description,
	})
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	return &PixCodeResponse{
		PixCode:      code,
		Amount:       req.Amount.StringFixed(2),
		PixKey:       key,
		KeyType:      keyType,
		MerchantName: merchantName,
		MerchantCity: cfg.MerchantCity,
	}, 0, nil
}

var errInvalidKey = errors.New(msgChaveInvalida)

func writePixError(w http.ResponseWriter, status int, err error) {
	var tooLong *pix.ValueTooLongError
	switch {
	case errors.Is(err, errInvalidKey):
		writeError(w, status, msgChaveInvalida, detailChaveInvalida)
	case errors.As(err, &tooLong):
		writeError(w, status, "Campo excede o tamanho permitido", tooLong.Field)
	case errors.Is(err, pix.ErrInvalidAmount):
		writeError(w, status, "Valor inválido", "O valor deve ser maior ou igual a zero.")
	case status == http.StatusInternalServerError:
		writeError(w, status, "Erro ao gerar código PIX", "")
	default:
		writeError(w, status, err.Error(), "")
	}
}

type validateKeyRequest struct {
	PixKey string `json:"pixKey"`
}

type validateKeyResponse struct {
	Valid bool        `json:"valid"`
	Type  pix.KeyType `json:"type,omitempty"`
}

// ValidatePixKeyHandler confere apenas o formato da chave informada.
func ValidatePixKeyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req validateKeyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Erro ao decodificar JSON", err.Error())
			return
		}

		keyType, ok := pix.ClassifyPixKey(req.PixKey)
		writeJSON(w, http.StatusOK, validateKeyResponse{Valid: ok, Type: keyType})
	}
}

type decodeRequest struct {
	Payload string `json:"payload"`
}

// DecodePixHandler lê um "Copia e Cola" e devolve seus campos.
func DecodePixHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req decodeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Erro ao decodificar JSON", err.Error())
			return
		}

		payload, err := pix.Decode(req.Payload)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Código PIX inválido", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, payload)
	}
}
