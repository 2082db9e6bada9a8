package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func RunMigrations(db *sql.DB) error {
	queries := []string{
		`CREATE SCHEMA IF NOT EXISTS core;`,

		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,

		// Tabela user (administradores)
		`CREATE TABLE IF NOT EXISTS core.user (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			active BOOLEAN DEFAULT true,
			date_create TIMESTAMP DEFAULT now(),
			date_update TIMESTAMP DEFAULT now()
		);`,

		// Tabela user_login
		`CREATE TABLE IF NOT EXISTS core.user_login (
			id UUID PRIMARY KEY,
			email VARCHAR(255),
			id_user UUID REFERENCES core.user(id),
			pass_valid BOOLEAN DEFAULT false,
			date TIMESTAMP DEFAULT now()
		);`,

		// Configurações da loja (linha única)
		`CREATE TABLE IF NOT EXISTS core.settings (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			company_name VARCHAR(255) NOT NULL,
			company_id VARCHAR(255),
			pix_key VARCHAR(255),
			phone VARCHAR(70),
			email VARCHAR(255),
			logo VARCHAR(500),
			credit_card_available BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMP WITHOUT TIME ZONE NOT NULL DEFAULT now(),
			updated_at TIMESTAMP WITHOUT TIME ZONE NOT NULL DEFAULT now()
		);`,

		// Cobranças dinâmicas criadas na Efí
		`CREATE TABLE IF NOT EXISTS core.pix_cobranca (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			txid VARCHAR(255) UNIQUE NOT NULL,
			referencia VARCHAR(255),
			valor NUMERIC(12,2) NOT NULL,
			cpf VARCHAR(14),
			nome VARCHAR(255),
			mensagem VARCHAR(255),
			chave VARCHAR(255) NOT NULL,
			status VARCHAR(50) NOT NULL,
			pix_copia_e_cola TEXT,
			location TEXT,
			loc_id INTEGER,
			expiracao INTEGER NOT NULL,
			data_criacao TIMESTAMP WITHOUT TIME ZONE NOT NULL DEFAULT now(),
			data_pago TIMESTAMP WITHOUT TIME ZONE DEFAULT NULL
		);`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("erro ao executar a query: %v\n%v", err, query)
		}
	}

	return nil
}

// SeedAdmin cria o primeiro administrador quando a tabela de usuários está vazia.
func SeedAdmin(ctx context.Context, db *sql.DB, email, password string) (bool, error) {
	if email == "" || password == "" {
		return false, nil
	}

	var total int
	if err := db.QueryRowContext(ctx, `SELECT count(*) FROM core.user`).Scan(&total); err != nil {
		return false, fmt.Errorf("erro ao contar usuários: %w", err)
	}
	if total > 0 {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("erro ao gerar hash da senha: %w", err)
	}

	now := time.Now()
	_, err = db.ExecContext(ctx, `
		INSERT INTO core.user (id, name, email, password, active, date_create, date_update)
		VALUES ($1, $2, $3, $4, true, $5, $5)
	`, uuid.NewString(), "Administrador", email, string(hash), now)
	if err != nil {
		return false, fmt.Errorf("erro ao criar administrador: %w", err)
	}
	return true, nil
}
