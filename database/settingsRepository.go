package database

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"LOJA_PIX_GO/models"
)

const settingsColumns = `id, company_name, company_id, pix_key, phone, email, logo, credit_card_available, created_at, updated_at`

type SettingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get devolve a linha de configurações ou ErrNotFound.
func (r *SettingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+settingsColumns+` FROM core.settings ORDER BY created_at LIMIT 1`)
	s, err := scanSettings(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar configurações")
	}
	return s, nil
}

// Save cria ou atualiza a linha única de configurações.
func (r *SettingsRepository) Save(ctx context.Context, in models.SettingsInput) (*models.Settings, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao iniciar transação")
	}
	defer tx.Rollback()

	var id string
	err = tx.QueryRowContext(ctx, `SELECT id FROM core.settings ORDER BY created_at LIMIT 1 FOR UPDATE`).Scan(&id)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrap(err, "erro ao buscar configurações existentes")
	}

	var row *sql.Row
	if id == "" {
		row = tx.QueryRowContext(ctx, `
			INSERT INTO core.settings (company_name, company_id, pix_key, phone, email, logo, credit_card_available)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING `+settingsColumns,
			in.CompanyName, in.CompanyID, in.PixKey, in.Phone, in.Email, in.Logo, boolValue(in.CreditCardAvailable),
		)
	} else {
		row = tx.QueryRowContext(ctx, `
			UPDATE core.settings
			SET company_name = $1, company_id = $2, pix_key = $3, phone = $4, email = $5, logo = $6,
				credit_card_available = $7, updated_at = now()
			WHERE id = $8
			RETURNING `+settingsColumns,
			in.CompanyName, in.CompanyID, in.PixKey, in.Phone, in.Email, in.Logo, boolValue(in.CreditCardAvailable), id,
		)
	}

	s, err := scanSettings(row)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao salvar configurações")
	}
	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "erro ao commitar configurações")
	}
	return s, nil
}

func scanSettings(row *sql.Row) (*models.Settings, error) {
	var s models.Settings
	err := row.Scan(
		&s.ID, &s.CompanyName, &s.CompanyID, &s.PixKey, &s.Phone, &s.Email, &s.Logo,
		&s.CreditCardAvailable, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func boolValue(b *bool) bool {
	return b != nil && *b
}
