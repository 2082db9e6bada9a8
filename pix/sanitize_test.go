package pix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"LOJA_PIX_GO/pix"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "João & Cia.", want: "JooCia"},
		{in: "Mel Bijour", want: "MelBijour"},
		{in: "PEDIDO-123/abc", want: "PEDIDO123abc"},
		{in: "", want: ""},
		{in: "***", want: ""},
		{in: "São Paulo", want: "SoPaulo"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, pix.Sanitize(tt.in))
		})
	}
}
