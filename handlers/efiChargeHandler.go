package handlers

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	json "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"LOJA_PIX_GO/database"
	"LOJA_PIX_GO/efi"
	"LOJA_PIX_GO/logger"
	"LOJA_PIX_GO/models"
	"LOJA_PIX_GO/pix"
)

var cpfPattern = regexp.MustCompile(`^\d{11}$`)

// PixChargeRequest define a estrutura do JSON recebido na requisição
type PixChargeRequest struct {
	Valor      decimal.Decimal `json:"valor"`
	CPF        string          `json:"cpf"`
	Nome       string          `json:"nome"`
	Mensagem   string          `json:"mensagem"`
	Referencia string          `json:"referencia"`
}

// CreatePixChargeHandler cria uma cobrança PIX imediata na Efí com a chave da loja.
func CreatePixChargeHandler(store SettingsStore, gateway ChargeGateway, charges ChargeStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PixChargeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Erro ao decodificar JSON: "+err.Error(), http.StatusBadRequest)
			return
		}

		if !req.Valor.IsPositive() {
			http.Error(w, "O valor deve ser maior que zero", http.StatusBadRequest)
			return
		}
		if req.CPF != "" && !cpfPattern.MatchString(req.CPF) {
			http.Error(w, "CPF deve conter 11 dígitos", http.StatusBadRequest)
			return
		}
		if len(req.Mensagem) > 140 {
			http.Error(w, "A mensagem deve ter no máximo 140 caracteres", http.StatusBadRequest)
			return
		}

		settings, err := store.Get(r.Context())
		if err != nil && !errors.Is(err, database.ErrNotFound) {
			logger.Error("Erro ao buscar configurações", zap.Error(err))
			http.Error(w, "Erro ao buscar configurações", http.StatusInternalServerError)
			return
		}
		chave := settings.PixKeyValue()
		if !pix.IsValidPixKey(chave) {
			writeError(w, http.StatusUnprocessableEntity, msgChaveInvalida, detailChaveInvalida)
			return
		}

		valor := req.Valor.StringFixed(2)
		charge, err := gateway.CreateImmediateCharge(r.Context(), efi.ChargeRequest{
			Valor:    valor,
			CPF:      req.CPF,
			Nome:     req.Nome,
			Chave:    chave,
			Mensagem: req.Mensagem,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}

		cobranca := &models.PixCobranca{
			ID:            uuid.New(),
			TxID:          charge.TxID,
			Referencia:    req.Referencia,
			Valor:         valor,
			CPF:           req.CPF,
			Nome:          req.Nome,
			Mensagem:      req.Mensagem,
			Chave:         chave,
			Status:        charge.Status,
			PixCopiaECola: charge.PixCopiaECola,
			Location:      charge.Loc.Location,
			LocID:         charge.Loc.ID,
			Expiracao:     charge.Calendario.Expiracao,
			DataCriacao:   charge.CriadaEm(),
		}
		if err := charges.Create(r.Context(), cobranca); err != nil {
			// A cobrança já existe no PSP; o txid vai no log para conciliação.
			logger.Error("Erro ao salvar pix_cobranca", zap.String("txid", charge.TxID), zap.Error(err))
			http.Error(w, "Erro ao salvar cobrança", http.StatusInternalServerError)
			return
		}

		logger.Info("Cobrança PIX criada", zap.String("txid", charge.TxID), zap.String("valor", valor))
		writeJSON(w, http.StatusCreated, cobranca)
	}
}

// PixChargeStatusHandler consulta a cobrança na Efí e persiste o status.
func PixChargeStatusHandler(gateway ChargeGateway, charges ChargeStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		txid := mux.Vars(r)["txid"]
		if txid == "" {
			http.Error(w, "txid é obrigatório", http.StatusBadRequest)
			return
		}

		cobranca, err := charges.FindByTxID(r.Context(), txid)
		if errors.Is(err, database.ErrNotFound) {
			http.Error(w, "Cobrança não encontrada", http.StatusNotFound)
			return
		}
		if err != nil {
			logger.Error("Erro ao buscar pix_cobranca", zap.String("txid", txid), zap.Error(err))
			http.Error(w, "Erro ao buscar cobrança", http.StatusInternalServerError)
			return
		}

		if cobranca.Finalizada() {
			writeJSON(w, http.StatusOK, cobranca)
			return
		}

		charge, err := gateway.DetailCharge(r.Context(), txid)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}

		if charge.Status != cobranca.Status {
			pago := charge.PagoEm()
			if err := charges.UpdateStatus(r.Context(), txid, charge.Status, pago); err != nil {
				logger.Error("Erro ao atualizar pix_cobranca", zap.String("txid", txid), zap.Error(err))
				http.Error(w, "Erro ao atualizar cobrança", http.StatusInternalServerError)
				return
			}
			logger.Info("Status da cobrança atualizado",
				zap.String("txid", txid), zap.String("de", cobranca.Status), zap.String("para", charge.Status))
			cobranca.Status = charge.Status
			if cobranca.DataPago == nil {
				cobranca.DataPago = pago
			}
		}

		writeJSON(w, http.StatusOK, cobranca)
	}
}

// ChargesDisabledHandler responde quando as credenciais da Efí não estão configuradas.
func ChargesDisabledHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusServiceUnavailable, "Cobranças dinâmicas desabilitadas", "Configure CLIENT_ID e CLIENT_SECRET da Efí.")
	}
}
