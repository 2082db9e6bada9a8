package pix

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	tagPayloadFormat    = "00"
	tagMerchantAccount  = "26"
	tagMerchantCategory = "52"
	tagCurrency         = "53"
	tagAmount           = "54"
	tagCountry          = "58"
	tagMerchantName     = "59"
	tagMerchantCity     = "60"
	tagAdditionalData   = "62"
	tagCRC              = "63"

	subTagGUI            = "00"
	subTagKey            = "01"
	subTagReferenceLabel = "05"

	payloadFormatIndicator = "01"
	pixGUI                 = "br.gov.bcb.pix"
	merchantCategoryCode   = "0000"
	currencyBRL            = "986"
	countryCode            = "BR"

	// Referência (txid) limitada a 25 caracteres antes da limpeza.
	maxDescriptionLength = 25

	crcFieldPrefix = tagCRC + "04"
	crcLength      = 4
)

// PaymentRequest reúne os dados de uma cobrança PIX estática.
type PaymentRequest struct {
	PixKey       string
	Amount       decimal.Decimal
	MerchantName string
	MerchantCity string
	Description  string
}

// Encoder gera BR Codes. O valor zero já é utilizável.
type Encoder struct {
	transliterate bool
}

type Option func(*Encoder)

// WithTransliteration troca letras acentuadas pela letra base antes da
// limpeza alfanumérica, preservando "João" como "Joao".
func WithTransliteration() Option {
	return func(e *Encoder) {
		e.transliterate = true
	}
}

func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEncoder = NewEncoder()

// GeneratePixCode gera o "Copia e Cola" com o encoder padrão (filtro estrito).
// A chave não é validada aqui: use IsValidPixKey antes.
func GeneratePixCode(req PaymentRequest) (string, error) {
	return defaultEncoder.Encode(req)
}

// Encode monta o payload EMV na ordem fixa do BR Code e anexa o CRC16.
func (e *Encoder) Encode(req PaymentRequest) (string, error) {
	amount, err := FormatAmount(req.Amount)
	if err != nil {
		return "", err
	}

	account, err := merchantAccountInfo(req.PixKey)
	if err != nil {
		return "", err
	}

	p := &payloadBuilder{}
	p.add("", tagPayloadFormat, payloadFormatIndicator)
	p.raw(account)
	p.add("", tagMerchantCategory, merchantCategoryCode)
	p.add("", tagCurrency, currencyBRL)
	p.add("amount", tagAmount, amount)
	p.add("", tagCountry, countryCode)
	p.add("merchantName", tagMerchantName, e.clean(req.MerchantName))
	p.add("merchantCity", tagMerchantCity, e.clean(req.MerchantCity))

	if label := e.clean(truncate(req.Description, maxDescriptionLength)); label != "" {
		additional, err := additionalData(label)
		if err != nil {
			return "", err
		}
		p.raw(additional)
	}

	if p.err != nil {
		return "", p.err
	}

	p.b.WriteString(crcFieldPrefix)
	payload := p.b.String()
	return payload + checksum(payload), nil
}

func (e *Encoder) clean(s string) string {
	if e.transliterate {
		s = foldAccents(s)
	}
	return Sanitize(s)
}

// FormatAmount formata o valor com exatamente duas casas e ponto decimal.
func FormatAmount(amount decimal.Decimal) (string, error) {
	if amount.IsNegative() {
		return "", ErrInvalidAmount
	}
	return amount.StringFixed(2), nil
}

// NewAmount converte um float vindo de fora, rejeitando NaN, infinito e negativos.
func NewAmount(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return decimal.Zero, ErrInvalidAmount
	}
	return decimal.NewFromFloat(f), nil
}

func merchantAccountInfo(key string) (string, error) {
	gui, err := EncodeField(subTagGUI, pixGUI)
	if err != nil {
		return "", err
	}
	keyField, err := EncodeField(subTagKey, key)
	if err != nil {
		return "", withField(err, "pixKey")
	}
	account, err := EncodeTemplate(tagMerchantAccount, gui, keyField)
	if err != nil {
		return "", withField(err, "pixKey")
	}
	return account, nil
}

func additionalData(label string) (string, error) {
	ref, err := EncodeField(subTagReferenceLabel, label)
	if err != nil {
		return "", withField(err, "description")
	}
	field, err := EncodeTemplate(tagAdditionalData, ref)
	if err != nil {
		return "", withField(err, "description")
	}
	return field, nil
}

// payloadBuilder concatena campos e guarda o primeiro erro.
type payloadBuilder struct {
	b   strings.Builder
	err error
}

func (p *payloadBuilder) add(name, tag, value string) {
	if p.err != nil {
		return
	}
	f, err := EncodeField(tag, value)
	if err != nil {
		p.err = withField(err, name)
		return
	}
	p.b.WriteString(f)
}

func (p *payloadBuilder) raw(field string) {
	if p.err != nil {
		return
	}
	p.b.WriteString(field)
}
