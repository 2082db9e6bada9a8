package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cobrancaCols = []string{
	"id", "txid", "referencia", "valor", "cpf", "nome", "mensagem", "chave", "status",
	"pix_copia_e_cola", "location", "loc_id", "expiracao", "data_criacao", "data_pago",
}

func TestPixCobrancaRepository_FindByTxID(t *testing.T) {
	criada := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	pago := criada.Add(5 * time.Minute)

	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		wantRef string
		wantLoc int
		wantPay bool
	}{
		{
			name: "colunas opcionais nulas",
			rows: sqlmock.NewRows(cobrancaCols).AddRow(
				"9a1f3c2e-0b6d-4c1e-8f7a-2d5b6c7e8f90", "tx1", nil, "10.00", nil, nil, nil, "user@example.com", "ATIVA",
				nil, nil, nil, 3600, criada, nil,
			),
		},
		{
			name: "cobrança paga",
			rows: sqlmock.NewRows(cobrancaCols).AddRow(
				"9a1f3c2e-0b6d-4c1e-8f7a-2d5b6c7e8f90", "tx1", "PED-1", "10.00", "12345678909", "Maria", "oi", "user@example.com", "CONCLUIDA",
				"000201...", "pix.example.com/qr", int64(42), 3600, criada, pago,
			),
			wantRef: "PED-1",
			wantLoc: 42,
			wantPay: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, m := newMock(t)
			m.ExpectQuery(`FROM core\.pix_cobranca\s+WHERE txid = \$1`).WithArgs("tx1").WillReturnRows(tt.rows)

			c, err := NewPixCobrancaRepository(db).FindByTxID(context.Background(), "tx1")
			require.NoError(t, err)
			assert.Equal(t, "tx1", c.TxID)
			assert.Equal(t, tt.wantRef, c.Referencia)
			assert.Equal(t, tt.wantLoc, c.LocID)
			assert.True(t, criada.Equal(c.DataCriacao))
			if tt.wantPay {
				require.NotNil(t, c.DataPago)
				assert.True(t, pago.Equal(*c.DataPago))
			} else {
				assert.Nil(t, c.DataPago)
				assert.Empty(t, c.CPF)
				assert.Empty(t, c.PixCopiaECola)
			}
			assert.NoError(t, m.ExpectationsWereMet())
		})
	}
}

func TestPixCobrancaRepository_FindByTxIDNotFound(t *testing.T) {
	db, m := newMock(t)
	m.ExpectQuery(`FROM core\.pix_cobranca`).WithArgs("nada").WillReturnRows(sqlmock.NewRows(cobrancaCols))

	c, err := NewPixCobrancaRepository(db).FindByTxID(context.Background(), "nada")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, c)
}

func TestPixCobrancaRepository_UpdateStatus(t *testing.T) {
	boom := errors.New("timeout")

	tests := []struct {
		name    string
		result  func(e *sqlmock.ExpectedExec)
		wantErr error
	}{
		{"atualizada", func(e *sqlmock.ExpectedExec) { e.WillReturnResult(sqlmock.NewResult(0, 1)) }, nil},
		{"txid inexistente", func(e *sqlmock.ExpectedExec) { e.WillReturnResult(sqlmock.NewResult(0, 0)) }, ErrNotFound},
		{"erro do driver", func(e *sqlmock.ExpectedExec) { e.WillReturnError(boom) }, boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, m := newMock(t)
			tt.result(m.ExpectExec(`UPDATE core\.pix_cobranca\s+SET status = \$1, data_pago = COALESCE\(data_pago, \$2\)`).
				WithArgs("CONCLUIDA", sqlmock.AnyArg(), "tx1"))

			err := NewPixCobrancaRepository(db).UpdateStatus(context.Background(), "tx1", "CONCLUIDA", nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, m.ExpectationsWereMet())
		})
	}
}
