package models

import (
	"strings"
	"time"
)

// Settings é a linha única de configurações da loja.
type Settings struct {
	ID                  string    `json:"id" db:"id"`
	CompanyName         string    `json:"companyName" db:"company_name"`
	CompanyID           *string   `json:"companyId" db:"company_id"`
	PixKey              *string   `json:"pixKey" db:"pix_key"`
	Phone               *string   `json:"phone" db:"phone"`
	Email               *string   `json:"email" db:"email"`
	Logo                *string   `json:"logo" db:"logo"`
	CreditCardAvailable bool      `json:"creditCardAvailable" db:"credit_card_available"`
	CreatedAt           time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time `json:"updatedAt" db:"updated_at"`
}

// PixKeyValue devolve a chave PIX ou vazio quando não configurada.
func (s *Settings) PixKeyValue() string {
	if s == nil || s.PixKey == nil {
		return ""
	}
	return *s.PixKey
}

// SettingsInput é o corpo de POST /settings/admin.
type SettingsInput struct {
	CompanyName         string  `json:"companyName"`
	CompanyID           *string `json:"companyId"`
	PixKey              *string `json:"pixKey"`
	Phone               *string `json:"phone"`
	Email               *string `json:"email"`
	Logo                *string `json:"logo"`
	CreditCardAvailable *bool   `json:"creditCardAvailable"`
}

// Normalize remove espaços nas pontas e troca textos vazios por nil.
func (in SettingsInput) Normalize() SettingsInput {
	out := SettingsInput{
		CompanyName:         strings.TrimSpace(in.CompanyName),
		CompanyID:           trimOrNil(in.CompanyID),
		PixKey:              trimOrNil(in.PixKey),
		Phone:               trimOrNil(in.Phone),
		Email:               trimOrNil(in.Email),
		Logo:                trimOrNil(in.Logo),
		CreditCardAvailable: in.CreditCardAvailable,
	}
	if out.CreditCardAvailable == nil {
		f := false
		out.CreditCardAvailable = &f
	}
	return out
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
