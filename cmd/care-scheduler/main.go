package main

import (
	"context"
	"crypto/rand"
	"log"
	"net/http"

	"github.com/careviah/care-scheduler/internal/api"
	medications_service "github.com/careviah/care-scheduler/internal/business/medications"
	schedules_service "github.com/careviah/care-scheduler/internal/business/schedules"
	"github.com/careviah/care-scheduler/internal/config"
	"github.com/careviah/care-scheduler/internal/database"
	"github.com/careviah/care-scheduler/internal/database/locations"
	"github.com/careviah/care-scheduler/internal/database/medications"
	"github.com/careviah/care-scheduler/internal/database/schedules"
	"github.com/careviah/care-scheduler/internal/database/user"
	"github.com/careviah/care-scheduler/internal/pkg/jwt"
	"github.com/careviah/care-scheduler/internal/pkg/oauth"
	"github.com/careviah/care-scheduler/internal/redis"
	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx := context.Background()

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initialize logger: %v", err)
	}

	jwts := jwt.NewManger()
	tokenParser := oauth.NewParser()

	redisPool := redis.NewRedisPool(logger)
	refreshTokens := redis.NewRefreshTokenRepository(redisPool, logger)

	db, err := database.NewPGX(ctx)
	if err != nil {
		log.Fatalf("unable to initialize db: %v", err)
	}
	usersRepository := user.NewRepository()
	schedulesRepository := schedules.NewRepository()
	medicationsRepository := medications.NewRepository()
	locationsRepository := locations.NewRepository()

	schedulesService := schedules_service.NewService(db, schedulesRepository)
	medicationsService := medications_service.NewService(db, medicationsRepository)

	api, err := api.NewApi(
		logger,
		rand.Reader,
		jwts,
		tokenParser,
		refreshTokens,
		db,
		usersRepository,
		schedulesService,
		medicationsService,
		locationsRepository,
	)
	if err != nil {
		logger.Fatalw("error initiating api", "err", err)
	}

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  api,
		ErrorLog: errLogger,
	}

	logger.Infow("Started server", "port", config.Port())
	logger.Fatalw("server error", "err", server.ListenAndServe())
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}
