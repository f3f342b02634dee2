package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "mining-map-api/docs"
	"mining-map-api/internal/auth"
	"mining-map-api/internal/config"
	"mining-map-api/internal/events"
	"mining-map-api/internal/handler"
	"mining-map-api/internal/repository"
	"mining-map-api/internal/service"
	"mining-map-api/internal/storage"
	"mining-map-api/internal/textgen"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	setupLogger(config.LogLevel, config.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if config.JWTSecret == "" {
		config.JWTSecret = randomSecret()
		log.Warn().Msg("JWT_SECRET not set, using a random secret; tokens will not survive a restart")
	}
	tokens, err := auth.NewTokenMaker(config.JWTSecret, config.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create token maker")
	}

	// Database connection
	conn, err := repository.Connect(ctx, config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	repo := repository.NewRepository(conn)
	if err := repo.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot migrate db")
	}

	store, err := newStore(ctx, config)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open file storage")
	}

	publisher := events.New(config.Brokers(), config.KafkaActivityTopic)
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Warn().Err(err).Msg("closing activity publisher")
		}
	}()

	generator := textgen.New(textgen.Config{
		BaseURL: config.TextGenURL,
		APIKey:  config.TextGenAPIKey,
		Model:   config.TextGenModel,
		Timeout: 30 * time.Second,
	})

	// Initialize layers
	licenseService := service.NewLicenseService(repo, store, config.DefaultCountry)
	fileService := service.NewFileService(repo, store)
	authService := service.NewAuthService(repo, tokens)
	activityService := service.NewActivityService(repo, publisher)
	briefService := service.NewBriefService(repo, generator)

	created, err := authService.EnsureAdmin(ctx, config.AdminUsername, config.AdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot seed admin account")
	}
	if created {
		log.Info().Str("username", config.AdminUsername).Msg("created default admin account")
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger())

	handler.Register(r, handler.Handlers{
		Licenses: handler.NewLicenseHandler(licenseService),
		Files:    handler.NewFileHandler(fileService),
		Auth:     handler.NewAuthHandler(authService),
		Activity: handler.NewActivityHandler(activityService),
		Briefs:   handler.NewBriefHandler(briefService),
	}, handler.NewGuards(tokens, config.AuthEnforce))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	c := cors.New(cors.Options{
		AllowedOrigins:   config.AllowedOrigins(),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              config.ServerAddress,
		Handler:           c.Handler(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", config.ServerAddress).Bool("auth_enforce", config.AuthEnforce).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func setupLogger(level, format string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

func newStore(ctx context.Context, cfg config.Config) (storage.Store, error) {
	if cfg.StorageBackend == "minio" {
		return storage.NewMinio(ctx, storage.MinioConfig{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
		})
	}
	return storage.NewLocal(cfg.UploadDir)
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatal().Err(err).Msg("cannot generate secret")
	}
	return hex.EncodeToString(b)
}
