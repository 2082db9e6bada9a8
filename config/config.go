package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"LOJA_PIX_GO/logger"
)

const (
	defaultMerchantName     = "Mel Bijour"
	defaultMerchantCity     = "Fortaleza"
	defaultCorsOrigin       = "http://localhost:3000"
	defaultQRSize           = 256
	defaultSettingsCacheTTL = 5 * time.Minute
	defaultEfiTimeout       = 30
)

// LoadEnv carrega as variáveis de ambiente do arquivo .env, se existir.
func LoadEnv() error {
	return godotenv.Load()
}

// GetDatabaseURL retorna a URL de conexão com o banco de dados
func GetDatabaseURL() string {
	return mustGetenv("DATABASE_URL")
}

// GetPortServerStart retorna a porta HTTP do servidor
func GetPortServerStart() string {
	return mustGetenv("SERVER_PORT")
}

// GetJwtSecret retorna a chave de assinatura dos tokens de acesso
func GetJwtSecret() []byte {
	return []byte(mustGetenv("JWT_SECRET"))
}

// GetCredentials monta as credenciais da API Pix da Efí no formato do SDK.
func GetCredentials() map[string]interface{} {
	sandbox, err := strconv.ParseBool(os.Getenv("SANDBOX"))
	if err != nil {
		logger.Warn("SANDBOX inválido, usando false", zap.Error(err))
		sandbox = false
	}

	timeout, err := strconv.Atoi(os.Getenv("TIMEOUT"))
	if err != nil {
		logger.Warn("TIMEOUT inválido, usando padrão", zap.Int("timeout", defaultEfiTimeout))
		timeout = defaultEfiTimeout
	}

	return map[string]interface{}{
		"client_id":     os.Getenv("CLIENT_ID"),
		"client_secret": os.Getenv("CLIENT_SECRET"),
		"sandbox":       sandbox,
		"timeout":       timeout,
		"CA":            os.Getenv("CA_PEM"),
		"Key":           os.Getenv("KEY_PEM"),
	}
}

// EfiEnabled informa se as cobranças dinâmicas via Efí estão configuradas.
func EfiEnabled() bool {
	return os.Getenv("CLIENT_ID") != "" && os.Getenv("CLIENT_SECRET") != ""
}

// GetMerchantName é o nome do recebedor quando as configurações não trazem companyName.
func GetMerchantName() string {
	if name := os.Getenv("MERCHANT_NAME"); name != "" {
		return name
	}
	return getenv("APP_NAME", defaultMerchantName)
}

func GetMerchantCity() string {
	return getenv("MERCHANT_CITY", defaultMerchantCity)
}

// GetPixTransliterate liga a troca de acentos antes da limpeza dos campos do BR Code.
func GetPixTransliterate() bool {
	return getenvBool("PIX_TRANSLITERATE", false)
}

func GetQRSize() int {
	return getenvInt("QR_SIZE", defaultQRSize)
}

// GetRedisAddr retorna vazio quando o cache de configurações está desligado.
func GetRedisAddr() string {
	return os.Getenv("REDIS_ADDR")
}

func GetSettingsCacheTTL() time.Duration {
	v := os.Getenv("SETTINGS_CACHE_TTL")
	if v == "" {
		return defaultSettingsCacheTTL
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logger.Warn("SETTINGS_CACHE_TTL inválido, usando padrão", zap.String("valor", v), zap.Error(err))
		return defaultSettingsCacheTTL
	}
	return d
}

func GetCorsOrigin() string {
	return getenv("CORS_ORIGIN", defaultCorsOrigin)
}

func GetAdminEmail() string {
	return os.Getenv("ADMIN_EMAIL")
}

func GetAdminPassword() string {
	return os.Getenv("ADMIN_PASSWORD")
}

func mustGetenv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		logger.Fatal(key + " não definida nas variáveis de ambiente.")
	}
	return v
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logger.Warn("valor inteiro inválido, usando padrão", zap.String("variavel", key), zap.String("valor", v))
		return fallback
	}
	return n
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		logger.Warn("valor booleano inválido, usando padrão", zap.String("variavel", key), zap.String("valor", v))
		return fallback
	}
	return b
}
