package efi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cobResponse = `{
	"calendario": {"criacao": "2025-03-01T12:00:00.000Z", "expiracao": 3600},
	"txid": "7978c0c97ea847e78e8849634473c1f1",
	"revisao": 0,
	"loc": {"id": 789, "location": "pix.example.com/qr/v2/9d36b84f", "tipoCob": "cob", "criacao": "2025-03-01T12:00:00.000Z"},
	"location": "pix.example.com/qr/v2/9d36b84f",
	"status": "ATIVA",
	"valor": {"original": "123.45"},
	"chave": "loja@melbijour.com.br",
	"pixCopiaECola": "00020101021226830014BR.GOV.BCB.PIX2561pix.example.com/qr/v2/9d36b84f5204000053039865802BR5905EFISA6008SAOPAULO62070503***630499AB"
}`

func fakeGateway(create func(map[string]interface{}) (string, error), detail func(string) (string, error)) *Gateway {
	return &Gateway{create: create, detail: detail}
}

func TestCreateImmediateCharge(t *testing.T) {
	var sent map[string]interface{}
	g := fakeGateway(func(body map[string]interface{}) (string, error) {
		sent = body
		return cobResponse, nil
	}, nil)

	c, err := g.CreateImmediateCharge(context.Background(), ChargeRequest{
		Valor:    "123.45",
		CPF:      "12345678909",
		Nome:     "Maria",
		Chave:    "loja@melbijour.com.br",
		Mensagem: "Pedido 10",
	})
	require.NoError(t, err)

	assert.Equal(t, "7978c0c97ea847e78e8849634473c1f1", c.TxID)
	assert.Equal(t, "ATIVA", c.Status)
	assert.Equal(t, 789, c.Loc.ID)
	assert.Equal(t, 3600, c.Calendario.Expiracao)
	assert.Equal(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), c.CriadaEm().UTC())
	assert.Nil(t, c.PagoEm())

	assert.Equal(t, map[string]interface{}{"expiracao": 3600}, sent["calendario"])
	assert.Equal(t, map[string]interface{}{"original": "123.45"}, sent["valor"])
	assert.Equal(t, map[string]interface{}{"cpf": "12345678909", "nome": "Maria"}, sent["devedor"])
	assert.Equal(t, "Pedido 10", sent["solicitacaoPagador"])
}

func TestCreateImmediateCharge_WithoutDebtor(t *testing.T) {
	var sent map[string]interface{}
	g := fakeGateway(func(body map[string]interface{}) (string, error) {
		sent = body
		return cobResponse, nil
	}, nil)

	_, err := g.CreateImmediateCharge(context.Background(), ChargeRequest{Valor: "1.00", Chave: "12345678901", CPF: "12345678909"})
	require.NoError(t, err)
	assert.NotContains(t, sent, "devedor")
	assert.NotContains(t, sent, "solicitacaoPagador")
}

func TestCreateImmediateCharge_Errors(t *testing.T) {
	g := fakeGateway(func(map[string]interface{}) (string, error) {
		return "", errors.New("401 unauthorized")
	}, nil)
	_, err := g.CreateImmediateCharge(context.Background(), ChargeRequest{Valor: "1.00"})
	assert.ErrorContains(t, err, "401 unauthorized")

	g = fakeGateway(func(map[string]interface{}) (string, error) {
		return `{"status":"ATIVA"}`, nil
	}, nil)
	_, err = g.CreateImmediateCharge(context.Background(), ChargeRequest{Valor: "1.00"})
	assert.ErrorContains(t, err, "txid ausente")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.CreateImmediateCharge(ctx, ChargeRequest{Valor: "1.00"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDetailCharge_Paid(t *testing.T) {
	g := fakeGateway(nil, func(txid string) (string, error) {
		assert.Equal(t, "abc123", txid)
		return `{"txid":"abc123","status":"CONCLUIDA","pix":[{"endToEndId":"E1","horario":"2025-03-01T12:05:00Z"}]}`, nil
	})

	c, err := g.DetailCharge(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "CONCLUIDA", c.Status)
	require.NotNil(t, c.PagoEm())
	assert.Equal(t, time.Date(2025, 3, 1, 12, 5, 0, 0, time.UTC), c.PagoEm().UTC())
}

func TestPagoEm_InvalidHorario(t *testing.T) {
	for _, horario := range []string{"", "01/03/2025 12:05", "2025-03-01"} {
		c, err := decodeCharge(`{"txid":"abc123","status":"CONCLUIDA","pix":[{"endToEndId":"E1","horario":"` + horario + `"}]}`)
		require.NoError(t, err)
		assert.Nil(t, c.PagoEm(), horario)
	}
}
