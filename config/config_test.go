package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMerchantDefaults(t *testing.T) {
	t.Setenv("MERCHANT_NAME", "")
	t.Setenv("APP_NAME", "")
	t.Setenv("MERCHANT_CITY", "")

	assert.Equal(t, "Mel Bijour", GetMerchantName())
	assert.Equal(t, "Fortaleza", GetMerchantCity())

	t.Setenv("APP_NAME", "Loja da Ana")
	assert.Equal(t, "Loja da Ana", GetMerchantName())

	t.Setenv("MERCHANT_NAME", "Ana Acessorios")
	t.Setenv("MERCHANT_CITY", "Recife")
	assert.Equal(t, "Ana Acessorios", GetMerchantName())
	assert.Equal(t, "Recife", GetMerchantCity())
}

func TestGetCredentials(t *testing.T) {
	t.Setenv("CLIENT_ID", "Client_Id_x")
	t.Setenv("CLIENT_SECRET", "Client_Secret_y")
	t.Setenv("SANDBOX", "true")
	t.Setenv("TIMEOUT", "abc")

	creds := GetCredentials()
	assert.Equal(t, "Client_Id_x", creds["client_id"])
	assert.Equal(t, true, creds["sandbox"])
	assert.Equal(t, 30, creds["timeout"])
	assert.True(t, EfiEnabled())

	t.Setenv("CLIENT_SECRET", "")
	assert.False(t, EfiEnabled())
}

func TestTypedGetters(t *testing.T) {
	t.Setenv("QR_SIZE", "")
	t.Setenv("PIX_TRANSLITERATE", "")
	t.Setenv("SETTINGS_CACHE_TTL", "")
	assert.Equal(t, 256, GetQRSize())
	assert.False(t, GetPixTransliterate())
	assert.Equal(t, 5*time.Minute, GetSettingsCacheTTL())

	t.Setenv("QR_SIZE", "512")
	t.Setenv("PIX_TRANSLITERATE", "true")
	t.Setenv("SETTINGS_CACHE_TTL", "30s")
	assert.Equal(t, 512, GetQRSize())
	assert.True(t, GetPixTransliterate())
	assert.Equal(t, 30*time.Second, GetSettingsCacheTTL())

	t.Setenv("QR_SIZE", "grande")
	t.Setenv("SETTINGS_CACHE_TTL", "logo")
	assert.Equal(t, 256, GetQRSize())
	assert.Equal(t, 5*time.Minute, GetSettingsCacheTTL())
}
