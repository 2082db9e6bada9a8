package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"LOJA_PIX_GO/models"
)

type PixCobrancaRepository struct {
	db *sql.DB
}

func NewPixCobrancaRepository(db *sql.DB) *PixCobrancaRepository {
	return &PixCobrancaRepository{db: db}
}

func (r *PixCobrancaRepository) Create(ctx context.Context, c *models.PixCobranca) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO core.pix_cobranca (
			id, txid, referencia, valor, cpf, nome, mensagem, chave, status,
			pix_copia_e_cola, location, loc_id, expiracao, data_criacao
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9,
			$10, $11, $12, $13, $14
		)
	`,
		c.ID, c.TxID, c.Referencia, c.Valor, c.CPF, c.Nome, c.Mensagem, c.Chave, c.Status,
		c.PixCopiaECola, c.Location, c.LocID, c.Expiracao, c.DataCriacao,
	)
	return errors.Wrap(err, "erro ao salvar pix_cobranca")
}

func (r *PixCobrancaRepository) FindByTxID(ctx context.Context, txid string) (*models.PixCobranca, error) {
	var c models.PixCobranca
	var referencia, cpf, nome, mensagem, copiaECola, location sql.NullString
	var locID sql.NullInt64
	err := r.db.QueryRowContext(ctx, `
		SELECT id, txid, referencia, valor, cpf, nome, mensagem, chave, status,
			pix_copia_e_cola, location, loc_id, expiracao, data_criacao, data_pago
		FROM core.pix_cobranca
		WHERE txid = $1
	`, txid).Scan(
		&c.ID, &c.TxID, &referencia, &c.Valor, &cpf, &nome, &mensagem, &c.Chave, &c.Status,
		&copiaECola, &location, &locID, &c.Expiracao, &c.DataCriacao, &c.DataPago,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar pix_cobranca")
	}
	c.Referencia = referencia.String
	c.CPF = cpf.String
	c.Nome = nome.String
	c.Mensagem = mensagem.String
	c.PixCopiaECola = copiaECola.String
	c.Location = location.String
	c.LocID = int(locID.Int64)
	return &c, nil
}

// UpdateStatus grava o status consultado no PSP. dataPago só é preenchida uma vez.
func (r *PixCobrancaRepository) UpdateStatus(ctx context.Context, txid, status string, dataPago *time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE core.pix_cobranca
		SET status = $1, data_pago = COALESCE(data_pago, $2)
		WHERE txid = $3
	`, status, dataPago, txid)
	if err != nil {
		return errors.Wrap(err, "erro ao atualizar pix_cobranca")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
