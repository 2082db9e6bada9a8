package pix

import (
	"regexp"
	"unicode/utf8"
)

// KeyType é o formato reconhecido de uma chave PIX.
type KeyType string

const (
	KeyTypeEmail  KeyType = "email"
	KeyTypePhone  KeyType = "phone"
	KeyTypeCPF    KeyType = "cpf"
	KeyTypeCNPJ   KeyType = "cnpj"
	KeyTypeRandom KeyType = "random"
)

const minKeyLength = 5

var (
	emailPattern     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern     = regexp.MustCompile(`^55\d{10,11}$`)
	randomKeyPattern = regexp.MustCompile(`(?i)^[a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12}$`)
	nonDigitPattern  = regexp.MustCompile(`\D`)
)

// ClassifyPixKey verifica apenas o formato da chave, sem consultar o DICT.
// Telefone e CPF/CNPJ são avaliados depois de remover tudo que não é dígito.
func ClassifyPixKey(key string) (KeyType, bool) {
	if utf8.RuneCountInString(key) < minKeyLength {
		return "", false
	}
	if emailPattern.MatchString(key) {
		return KeyTypeEmail, true
	}
	if randomKeyPattern.MatchString(key) {
		return KeyTypeRandom, true
	}

	digits := nonDigitPattern.ReplaceAllString(key, "")
	if phonePattern.MatchString(digits) {
		return KeyTypePhone, true
	}
	switch len(digits) {
	case 11:
		return KeyTypeCPF, true
	case 14:
		return KeyTypeCNPJ, true
	}
	return "", false
}

// IsValidPixKey informa se a chave tem o formato de alguma chave PIX.
func IsValidPixKey(key string) bool {
	_, ok := ClassifyPixKey(key)
	return ok
}
