package pix

import "fmt"

const (
	crcInit = 0xFFFF
	crcPoly = 0x1021
)

// CRC16 calcula o CRC-16/CCITT-FALSE exigido pelo BR Code: registro inicial
// 0xFFFF, polinômio 0x1021, bit mais significativo primeiro, sem reflexão e
// sem XOR final.
func CRC16(data []byte) uint16 {
	crc := uint16(crcInit)
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ crcPoly
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// checksum devolve o CRC16 do payload em 4 dígitos hexadecimais maiúsculos.
func checksum(payload string) string {
	return fmt.Sprintf("%04X", CRC16([]byte(payload)))
}
