package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"LOJA_PIX_GO/cache"
	"LOJA_PIX_GO/config"
	"LOJA_PIX_GO/database"
	"LOJA_PIX_GO/efi"
	"LOJA_PIX_GO/handlers"
	"LOJA_PIX_GO/logger"
	"LOJA_PIX_GO/middleware"
	"LOJA_PIX_GO/pix"
	"LOJA_PIX_GO/routes"
	"LOJA_PIX_GO/server"
)

func main() {
	// Carregar configuração
	envErr := config.LoadEnv()
	logger.InitLogger()
	defer logger.Sync()
	if envErr != nil {
		logger.Warn("Arquivo .env não encontrado, usando variáveis do ambiente")
	}

	// Conectar ao banco de dados
	db, err := database.Connect(config.GetDatabaseURL())
	if err != nil {
		logger.Fatal("Erro ao conectar ao banco de dados", zap.Error(err))
	}
	defer db.Close()

	// Executar migrações
	if err := database.RunMigrations(db); err != nil {
		logger.Fatal("Erro ao executar migrações", zap.Error(err))
	}
	logger.Info("Migrações executadas com sucesso!")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	created, err := database.SeedAdmin(ctx, db, config.GetAdminEmail(), config.GetAdminPassword())
	cancel()
	if err != nil {
		logger.Fatal("Erro ao criar administrador inicial", zap.Error(err))
	}
	if created {
		logger.Info("Administrador inicial criado", zap.String("email", config.GetAdminEmail()))
	}

	var settings handlers.SettingsStore = database.NewSettingsRepository(db)
	if addr := config.GetRedisAddr(); addr != "" {
		rdb, err := database.ConnectRedis(addr)
		if err != nil {
			logger.Warn("Cache de configurações desabilitado", zap.Error(err))
		} else {
			settings = cache.NewSettingsCache(settings, rdb, config.GetSettingsCacheTTL())
			defer database.CloseRedis()
		}
	}

	var gateway handlers.ChargeGateway
	if config.EfiEnabled() {
		gateway = efi.NewGateway(config.GetCredentials())
	} else {
		logger.Warn("CLIENT_ID/CLIENT_SECRET ausentes, cobranças dinâmicas desabilitadas")
	}

	var opts []pix.Option
	if config.GetPixTransliterate() {
		opts = append(opts, pix.WithTransliteration())
	}

	// Configurar as rotas
	router := routes.SetupRoutes(routes.Dependencies{
		DB:       db,
		Settings: settings,
		Users:    database.NewUserRepository(db),
		Charges:  database.NewPixCobrancaRepository(db),
		Gateway:  gateway,
		Pix: handlers.PixConfig{
			MerchantName: config.GetMerchantName(),
			MerchantCity: config.GetMerchantCity(),
			QRSize:       config.GetQRSize(),
			Encoder:      pix.NewEncoder(opts...),
		},
		JwtSecret: config.GetJwtSecret(),
	})

	// Iniciar o servidor
	srv := server.New(config.GetPortServerStart(), middleware.CorsMiddleware(config.GetCorsOrigin())(router))
	if err := server.GracefulShutdown(srv, 10*time.Second); err != nil {
		logger.Error("Servidor encerrado com erro", zap.Error(err))
	}
}
