package pix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Field é um campo TLV lido de um payload. Templates trazem os subcampos em Children.
type Field struct {
	Tag      string  `json:"tag"`
	Length   int     `json:"length"`
	Value    string  `json:"value"`
	Children []Field `json:"children,omitempty"`
}

// String serializa o campo de volta no formato TLV.
func (f Field) String() string {
	return f.Tag + fmt.Sprintf("%02d", f.Length) + f.Value
}

// Payload é um BR Code decodificado.
type Payload struct {
	Fields         []Field         `json:"fields"`
	PixKey         string          `json:"pixKey"`
	Amount         decimal.Decimal `json:"amount"`
	HasAmount      bool            `json:"hasAmount"`
	MerchantName   string          `json:"merchantName"`
	MerchantCity   string          `json:"merchantCity"`
	ReferenceLabel string          `json:"referenceLabel,omitempty"`
	CRC            string          `json:"crc"`
}

// Field devolve o primeiro campo de primeiro nível com a tag informada.
func (p *Payload) Field(tag string) (Field, bool) {
	return findField(p.Fields, tag)
}

// Decode lê um "Copia e Cola", confere o CRC16 e extrai os dados da cobrança.
func Decode(payload string) (*Payload, error) {
	payload = strings.TrimSpace(payload)
	if len(payload) < len(crcFieldPrefix)+crcLength {
		return nil, malformed("payload curto demais")
	}

	body := payload[:len(payload)-crcLength]
	if !strings.HasSuffix(body, crcFieldPrefix) {
		return nil, malformed("campo CRC ausente")
	}
	given := strings.ToUpper(payload[len(payload)-crcLength:])
	if want := checksum(body); given != want {
		return nil, fmt.Errorf("%w: esperado %s, recebido %s", ErrChecksumMismatch, want, given)
	}

	fields, err := parseFields(payload)
	if err != nil {
		return nil, err
	}
	if fields[0].Tag != tagPayloadFormat {
		return nil, malformed("payload deve começar pela tag %s", tagPayloadFormat)
	}
	if last := fields[len(fields)-1]; last.Tag != tagCRC || last.Length != crcLength {
		return nil, malformed("CRC deve ser o último campo")
	}

	out := &Payload{Fields: fields, CRC: given}
	for _, f := range fields {
		switch {
		case f.Tag >= "26" && f.Tag <= "51":
			if out.PixKey != "" {
				continue
			}
			if gui, ok := findField(f.Children, subTagGUI); ok && strings.EqualFold(gui.Value, pixGUI) {
				if key, ok := findField(f.Children, subTagKey); ok {
					out.PixKey = key.Value
				}
			}
		case f.Tag == tagAmount:
			amount, err := decimal.NewFromString(f.Value)
			if err != nil {
				return nil, malformed("valor %q inválido", f.Value)
			}
			out.Amount = amount
			out.HasAmount = true
		case f.Tag == tagMerchantName:
			out.MerchantName = f.Value
		case f.Tag == tagMerchantCity:
			out.MerchantCity = f.Value
		case f.Tag == tagAdditionalData:
			if ref, ok := findField(f.Children, subTagReferenceLabel); ok {
				out.ReferenceLabel = ref.Value
			}
		}
	}
	return out, nil
}

func parseFields(s string) ([]Field, error) {
	var fields []Field
	for i := 0; i < len(s); {
		if len(s)-i < 4 {
			return nil, malformed("campo incompleto na posição %d", i)
		}
		tag, size := s[i:i+2], s[i+2:i+4]
		if !isDigits(tag) || !isDigits(size) {
			return nil, malformed("tag ou comprimento não numérico na posição %d", i)
		}
		n, _ := strconv.Atoi(size)
		start, end := i+4, i+4+n
		if end > len(s) {
			return nil, malformed("tag %s declara %d caracteres, restam %d", tag, n, len(s)-start)
		}

		f := Field{Tag: tag, Length: n, Value: s[start:end]}
		if isTemplate(tag) {
			children, err := parseFields(f.Value)
			if err != nil {
				return nil, fmt.Errorf("tag %s: %w", tag, err)
			}
			f.Children = children
		}
		fields = append(fields, f)
		i = end
	}
	return fields, nil
}

func findField(fields []Field, tag string) (Field, bool) {
	for _, f := range fields {
		if f.Tag == tag {
			return f, true
		}
	}
	return Field{}, false
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
