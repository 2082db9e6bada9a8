package pix

import (
	"errors"
	"fmt"
)

var (
	// ErrValueTooLong indica um valor que não cabe no comprimento de 2 dígitos do TLV.
	ErrValueTooLong = errors.New("pix: valor excede o tamanho máximo do campo")
	// ErrInvalidAmount indica valor negativo ou não finito.
	ErrInvalidAmount = errors.New("pix: valor da transação inválido")
	// ErrMalformedPayload indica um BR Code que não segue a estrutura TLV.
	ErrMalformedPayload = errors.New("pix: payload malformado")
	// ErrChecksumMismatch indica que o CRC16 informado não confere com o conteúdo.
	ErrChecksumMismatch = errors.New("pix: CRC16 não confere")
)

// ValueTooLongError identifica o campo que estourou o limite de 99 caracteres.
type ValueTooLongError struct {
	Field  string
	Tag    string
	Length int
}

func (e *ValueTooLongError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("pix: tag %s com %d caracteres excede o limite de %d", e.Tag, e.Length, maxValueLength)
	}
	return fmt.Sprintf("pix: campo %s (tag %s) com %d caracteres excede o limite de %d", e.Field, e.Tag, e.Length, maxValueLength)
}

func (e *ValueTooLongError) Is(target error) bool {
	return target == ErrValueTooLong
}

// withField atribui o nome do campo de entrada a um ValueTooLongError.
func withField(err error, field string) error {
	var tooLong *ValueTooLongError
	if errors.As(err, &tooLong) && tooLong.Field == "" {
		tooLong.Field = field
	}
	return err
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedPayload, fmt.Sprintf(format, args...))
}
