package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/lib/pq" // Driver PostgreSQL
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"LOJA_PIX_GO/logger"
)

// Connect cria uma conexão com o banco de dados PostgreSQL
func Connect(dbURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("não foi possível conectar ao banco de dados: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("erro ao testar a conexão com o banco: %w", err)
	}

	return db, nil
}

var (
	redisClient *redis.Client
	redisOnce   sync.Once
	redisErr    error
)

// ConnectRedis abre o cliente Redis uma única vez por processo.
func ConnectRedis(addr string) (*redis.Client, error) {
	redisOnce.Do(func() {
		logger.Info("Iniciando conexão com o Redis", zap.String("addr", addr))

		if addr == "" {
			redisErr = fmt.Errorf("endereço do Redis não configurado")
			return
		}

		c := redis.NewClient(&redis.Options{
			Addr:         addr,
			PoolSize:     32,
			MinIdleConns: 4,
		})

		if err := c.Ping(context.Background()).Err(); err != nil {
			redisErr = fmt.Errorf("falha ao conectar com o Redis em %s: %w", addr, err)
			return
		}

		redisClient = c
	})

	return redisClient, redisErr
}

// CloseRedis fecha o cliente aberto por ConnectRedis, se houver.
func CloseRedis() {
	if redisClient == nil {
		return
	}
	if err := redisClient.Close(); err != nil {
		logger.Warn("Erro ao fechar o cliente Redis", zap.Error(err))
	}
}
