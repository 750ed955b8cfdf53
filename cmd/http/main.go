package main

import (
	"clearclaim-service/cmd/migration"
	"clearclaim-service/internal/app/config"
	"clearclaim-service/internal/app/delivery/http/controllers"
	"clearclaim-service/internal/app/delivery/http/middlewares"
	"clearclaim-service/internal/app/delivery/http/routers"
	"clearclaim-service/internal/app/drivers/database"
	"clearclaim-service/internal/app/drivers/logger"
	"clearclaim-service/internal/app/drivers/messaging"
	"clearclaim-service/internal/app/drivers/storage"
	"clearclaim-service/internal/app/services/core/claims"
	"clearclaim-service/internal/app/services/core/postings"
	"clearclaim-service/internal/app/services/core/remittances"
	"clearclaim-service/internal/app/services/shared/clearinghouse"
	sharedmessaging "clearclaim-service/internal/app/services/shared/messaging"
	"clearclaim-service/internal/app/services/shared/redis"
	sharedstorage "clearclaim-service/internal/app/services/shared/storage"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	postgresDB := database.NewPostgresDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	if internalConfig.App.RunMigrations {
		migration.Run(postgresDB)
	}

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		PostgresDB:     postgresDB,
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQConnection,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error closing connections: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)
	clearinghouseClient := clearinghouse.NewClearinghouseClient(bootstrap.InternalConfig, bootstrap.Logger)

	eventPublisher, err := sharedmessaging.NewRabbitMQPublisher(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.App.RabbitMQPostingQueue,
		bootstrap.InternalConfig.App.RabbitMQSubmissionQueue,
	)
	if err != nil {
		bootstrap.Logger.Fatal("Failed to initialize event publisher", zap.Error(err))
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Remittance posting
	postingRepository := postings.NewPostingPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	remittanceUsecase := remittances.NewRemittanceUsecase(
		postingRepository,
		redisRepository,
		minioStorage,
		eventPublisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	remittanceController := controllers.NewRemittanceController(bootstrap.Logger, remittanceUsecase)

	// Claim submission
	claimUsecase := claims.NewClaimUsecase(
		clearinghouseClient,
		minioStorage,
		eventPublisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	claimController := controllers.NewClaimController(bootstrap.Logger, claimUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, remittanceController, claimController)
}
