package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nemopss/fin-tracker/backend/api"
	"github.com/nemopss/fin-tracker/backend/config"
	"github.com/nemopss/fin-tracker/backend/db"
	_ "github.com/nemopss/fin-tracker/backend/docs"
	"github.com/nemopss/fin-tracker/backend/logger"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	exitOK      = 0
	exitStorage = 1
	exitConfig  = 2
	exitServer  = 3
)

const initTimeout = 30 * time.Second

// @title Transações API
// @version 1.0
// @description Personal finance transaction tracker.
// @BasePath /
func main() {
	os.Exit(run(context.Background()))
}

// run wires config, logger, storage and router and serves until the listener
// fails. It returns before listening if configuration or storage setup fails.
func run(ctx context.Context) int {
	cfg, err := config.Load()
	if err != nil {
		log := logger.New("info")
		log.Error().Err(err).Msg("invalid configuration")
		return exitConfig
	}

	log := logger.New(cfg.LogLevel)
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// Инициализация базы до приёма запросов
	initCtx, cancel := context.WithTimeout(ctx, initTimeout)
	storage, err := db.NewStorage(initCtx, cfg.DBDriver, cfg.DatabaseURL, cfg.MaxOpenConns)
	cancel()
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.DBDriver).Msg("Erro na inicialização do banco")
		return exitStorage
	}
	defer storage.Close()
	log.Info().Str("driver", cfg.DBDriver).Msg("Banco conectado com sucesso!")

	r := newRouter(cfg, storage, log)

	log.Info().Str("port", cfg.Port).Msg("Servidor sendo executado")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("server stopped")
		return exitServer
	}
	return exitOK
}

func newRouter(cfg *config.Config, store api.Store, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(logger.Middleware(log), gin.Recovery())
	api.NewHandler(store).RegisterRoutes(r)

	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	return r
}
