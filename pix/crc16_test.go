package pix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"LOJA_PIX_GO/pix"
)

func TestCRC16(t *testing.T) {
	tests := []struct {
		name string
		data string
		want uint16
	}{
		{name: "empty input keeps initial register", data: "", want: 0xFFFF},
		{name: "check value of CCITT-FALSE", data: "123456789", want: 0x29B1},
		{
			name: "BCB static BR Code example",
			data: "00020126580014br.gov.bcb.pix0136123e4567-e12b-12d1-a456-4266554400005204000053039865802BR5913Fulano de Tal6008BRASILIA62070503***6304",
			want: 0x1D3D,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pix.CRC16([]byte(tt.data)))
		})
	}
}
