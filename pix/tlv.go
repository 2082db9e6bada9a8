package pix

import (
	"fmt"
	"strings"
)

// maxValueLength é o maior valor representável no comprimento de 2 dígitos.
const maxValueLength = 99

// EncodeField monta um campo TLV: tag de 2 dígitos, comprimento com zero à
// esquerda e o valor. O comprimento é a contagem de bytes do valor em UTF-8,
// não de caracteres: "joão@x.com" é declarado com 11.
func EncodeField(tag, value string) (string, error) {
	if len(value) > maxValueLength {
		return "", &ValueTooLongError{Tag: tag, Length: len(value)}
	}
	return tag + fmt.Sprintf("%02d", len(value)) + value, nil
}

// EncodeTemplate monta um campo composto a partir de subcampos já codificados.
// O comprimento do pai é o tamanho serializado dos filhos.
func EncodeTemplate(tag string, children ...string) (string, error) {
	return EncodeField(tag, strings.Join(children, ""))
}

// isTemplate informa se a tag carrega uma sequência TLV aninhada.
// 26-51: informações da conta, 62: dados adicionais, 80-99: templates livres.
func isTemplate(tag string) bool {
	switch {
	case tag >= "26" && tag <= "51":
		return true
	case tag == tagAdditionalData:
		return true
	case tag >= "80" && tag <= "99":
		return true
	}
	return false
}
