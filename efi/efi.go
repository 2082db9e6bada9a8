package efi

import (
	"context"
	"fmt"
	"time"

	efipix "github.com/efipay/sdk-go-apis-efi/src/efipay/pix"
	json "github.com/json-iterator/go"
	"go.uber.org/zap"

	"LOJA_PIX_GO/logger"
)

const defaultExpiracao = 3600

// ChargeRequest são os dados de uma cobrança imediata (cob).
type ChargeRequest struct {
	Valor     string
	CPF       string
	Nome      string
	Chave     string
	Mensagem  string
	Expiracao int
}

// Charge é a resposta da API Pix para uma cobrança.
type Charge struct {
	TxID       string `json:"txid"`
	Status     string `json:"status"`
	Chave      string `json:"chave"`
	Location   string `json:"location"`
	Calendario struct {
		Criacao   string `json:"criacao"`
		Expiracao int    `json:"expiracao"`
	} `json:"calendario"`
	Loc struct {
		ID       int    `json:"id"`
		Location string `json:"location"`
		TipoCob  string `json:"tipoCob"`
		Criacao  string `json:"criacao"`
	} `json:"loc"`
	Valor struct {
		Original string `json:"original"`
	} `json:"valor"`
	PixCopiaECola string `json:"pixCopiaECola"`
	Pix           []struct {
		EndToEndID string `json:"endToEndId"`
		Horario    string `json:"horario"`
	} `json:"pix"`
}

// CriadaEm devolve a data de criação informada pelo PSP.
func (c *Charge) CriadaEm() time.Time {
	return parseTimeISO(c.Calendario.Criacao)
}

// PagoEm devolve o horário do primeiro pagamento recebido. Nil quando não há
// pagamento ou o horário não é RFC3339.
func (c *Charge) PagoEm() *time.Time {
	if len(c.Pix) == 0 {
		return nil
	}
	t, err := time.Parse(time.RFC3339, c.Pix[0].Horario)
	if err != nil {
		logger.Warn("[Efi:PagoEm] - Horário de pagamento inválido",
			zap.String("txid", c.TxID), zap.String("horario", c.Pix[0].Horario))
		return nil
	}
	return &t
}

// Gateway cria e consulta cobranças na API Pix da Efí.
type Gateway struct {
	create func(body map[string]interface{}) (string, error)
	detail func(txid string) (string, error)
}

func NewGateway(credentials map[string]interface{}) *Gateway {
	efi := efipix.NewEfiPay(credentials)
	return &Gateway{
		create: func(body map[string]interface{}) (string, error) {
			return efi.CreateImmediateCharge(body)
		},
		detail: func(txid string) (string, error) {
			return efi.DetailCharge(txid)
		},
	}
}

// CreateImmediateCharge cria uma cobrança imediata com txid gerado pelo PSP.
func (g *Gateway) CreateImmediateCharge(ctx context.Context, req ChargeRequest) (*Charge, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	expiracao := req.Expiracao
	if expiracao <= 0 {
		expiracao = defaultExpiracao
	}

	body := map[string]interface{}{
		"calendario": map[string]interface{}{"expiracao": expiracao},
		"valor":      map[string]interface{}{"original": req.Valor},
		"chave":      req.Chave,
	}
	if req.CPF != "" && req.Nome != "" {
		body["devedor"] = map[string]interface{}{
			"cpf":  req.CPF,
			"nome": req.Nome,
		}
	}
	if req.Mensagem != "" {
		body["solicitacaoPagador"] = req.Mensagem
	}

	res, err := g.create(body)
	if err != nil {
		logger.Error("[Efi:CreateImmediateCharge] - Erro ao criar cobrança PIX", zap.Error(err))
		return nil, fmt.Errorf("erro ao criar cobrança PIX: %w", err)
	}
	return decodeCharge(res)
}

// DetailCharge consulta a cobrança pelo txid.
func (g *Gateway) DetailCharge(ctx context.Context, txid string) (*Charge, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := g.detail(txid)
	if err != nil {
		logger.Error("[Efi:DetailCharge] - Erro ao consultar cobrança PIX", zap.String("txid", txid), zap.Error(err))
		return nil, fmt.Errorf("erro ao consultar status do PIX: %w", err)
	}
	return decodeCharge(res)
}

func decodeCharge(res string) (*Charge, error) {
	var c Charge
	if err := json.Unmarshal([]byte(res), &c); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta do PIX: %w", err)
	}
	if c.TxID == "" {
		return nil, fmt.Errorf("resposta inválida da API (txid ausente)")
	}
	return &c, nil
}

// parseTimeISO faz parse de string ISO para time.Time
func parseTimeISO(v string) time.Time {
	if v == "" {
		return time.Now()
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Now()
	}
	return t
}
