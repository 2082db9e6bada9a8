package models

import (
	"time"

	"github.com/google/uuid"
)

// Status devolvidos pela API Pix para cobranças imediatas.
const (
	CobrancaAtiva     = "ATIVA"
	CobrancaConcluida = "CONCLUIDA"
	CobrancaRemovida  = "REMOVIDA_PELO_USUARIO_RECEBEDOR"
	CobrancaPSP       = "REMOVIDA_PELO_PSP"
)

// PixCobranca é uma cobrança dinâmica criada no PSP.
type PixCobranca struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	TxID          string     `json:"txid" db:"txid"`
	Referencia    string     `json:"referencia" db:"referencia"`
	Valor         string     `json:"valor" db:"valor"`
	CPF           string     `json:"cpf,omitempty" db:"cpf"`
	Nome          string     `json:"nome,omitempty" db:"nome"`
	Mensagem      string     `json:"mensagem,omitempty" db:"mensagem"`
	Chave         string     `json:"chave" db:"chave"`
	Status        string     `json:"status" db:"status"`
	PixCopiaECola string     `json:"pixCopiaECola" db:"pix_copia_e_cola"`
	Location      string     `json:"location" db:"location"`
	LocID         int        `json:"locId" db:"loc_id"`
	Expiracao     int        `json:"expiracao" db:"expiracao"`
	DataCriacao   time.Time  `json:"dataCriacao" db:"data_criacao"`
	DataPago      *time.Time `json:"dataPago,omitempty" db:"data_pago"`
}

// Finalizada informa se a cobrança não muda mais de status.
func (c *PixCobranca) Finalizada() bool {
	switch c.Status {
	case CobrancaConcluida, CobrancaRemovida, CobrancaPSP:
		return true
	}
	return false
}
