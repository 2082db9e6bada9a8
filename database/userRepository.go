package database

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"LOJA_PIX_GO/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, password, active, date_create, date_update
		FROM core.user
		WHERE email = $1
	`, email).Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Active, &u.DateCreate, &u.DateUpdate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar usuário")
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO core.user (id, name, email, password, active, date_create, date_update)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, u.ID, u.Name, u.Email, u.Password, u.Active, u.DateCreate, u.DateUpdate)
	return errors.Wrap(err, "erro ao criar usuário")
}

// RecordLogin grava a tentativa de login para auditoria.
func (r *UserRepository) RecordLogin(ctx context.Context, l models.UserLogin) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO core.user_login (id, email, id_user, pass_valid, date)
		VALUES ($1, $2, $3, $4, $5)
	`, l.ID, l.Email, l.IDUser, l.PassValid, l.Date)
	return errors.Wrap(err, "erro ao registrar login")
}
