package config

import (
	"clearclaim-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		PostgresDB: PostgresDB{
			Host:     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "clearclaim"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", "clearclaim"),
			DBName:   utils.GetEnvString("POSTGRES_DB_NAME", "clearclaim"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "edi-archive"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "America/New_York"),
			RunMigrations:              utils.GetEnvBool("APP_RUN_MIGRATIONS", true),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api/v1"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			RabbitMQPostingQueue:       utils.GetEnvString("APP_RABBITMQ_POSTING_QUEUE", "remittance.posting.completed"),
			RabbitMQSubmissionQueue:    utils.GetEnvString("APP_RABBITMQ_SUBMISSION_QUEUE", "claims.submitted"),
		},
		EDI: EDI{
			SenderID:                utils.GetEnvString("EDI_SENDER_ID", ""),
			ReceiverID:              utils.GetEnvString("EDI_RECEIVER_ID", ""),
			SubmitterName:           utils.GetEnvString("EDI_SUBMITTER_NAME", ""),
			SubmitterID:             utils.GetEnvString("EDI_SUBMITTER_ID", ""),
			ReceiverName:            utils.GetEnvString("EDI_RECEIVER_NAME", ""),
			ContactName:             utils.GetEnvString("EDI_CONTACT_NAME", ""),
			ContactPhone:            utils.GetEnvString("EDI_CONTACT_PHONE", ""),
			DedupWindowInHours:      utils.GetEnvInt("EDI_DEDUP_WINDOW_IN_HOURS", 72),
			EnforceMarylandMedicaid: utils.GetEnvBool("EDI_ENFORCE_MARYLAND_MEDICAID", true),
		},
		Clearinghouse: Clearinghouse{
			BaseUrl:          utils.GetEnvString("CLEARINGHOUSE_BASE_URL", "http://localhost:5555"),
			APIKey:           utils.GetEnvString("CLEARINGHOUSE_API_KEY", ""),
			TimeoutInSeconds: utils.GetEnvInt("CLEARINGHOUSE_TIMEOUT_IN_SECONDS", 30),
		},
	}
}
