package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/env"
)

type Config struct {
	Port        string
	ENV         string
	Google      GoogleConfig
	Company     CompanyConfig
	DB          DatabaseConfig
	RabbitMQ    RabbitMQConfig
	Minio       MinioConfig
	Mail        MailConfig
	RateLimiter RateLimiterConfig
	Auth        AuthConfig
	Receiver    ReceiverConfig
}

// GoogleConfig holds everything needed to talk to the Workspace APIs with
// a domain-wide delegated service account.
type GoogleConfig struct {
	// Domain is the Workspace domain whose directory is listed.
	Domain string

	// ServiceAccountKeyFile points to the service account JSON key used for
	// domain-wide delegation.
	ServiceAccountKeyFile string

	// AdminSubject is the directory account impersonated for the batch run.
	AdminSubject string

	// Template documents, exported as text from Drive.
	TemplateDocID          string
	TechnicalTemplateDocID string

	// Shared drive destination for the signature snapshot files.
	SharedDriveID       string
	SharedDriveFolderID string
}

// CompanyConfig carries the two global template constants substituted
// last into every signature.
type CompanyConfig struct {
	Name    string
	Website string
}

type RabbitMQConfig struct {
	HOST     string
	PORT     string
	USERNAME string
	PASSWORD string
}

func (r RabbitMQConfig) GetConnectionString() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", r.USERNAME, r.PASSWORD, r.HOST, r.PORT)
}

type MinioConfig struct {
	ENDPOINT   string
	ACCESS_KEY string
	SECRET_KEY string
	BUCKET     string
	USE_SSL    bool
}

type DatabaseConfig struct {
	DB_HOST      string
	DB_PORT      string
	DB_DATABASE  string
	DB_USERNAME  string
	DB_PASSWORD  string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  string
}

type MailConfig struct {
	SEND_GRID    SendGridConfig
	FROM_EMAIL   string
	REPORT_EMAIL string
}

type SendGridConfig struct {
	API_KEY string
}

type RateLimiterConfig struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

type AuthConfig struct {
	JWT_SECRET string
}

type ReceiverConfig struct {
	MaxWorkers int
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.ENV, "production")
}

func GetConfig() Config {
	rateLimitTimeFrame, err := time.ParseDuration(env.GetString("RATE_LIMIT_TIME_FRAME", "1m"))
	if err != nil {
		rateLimitTimeFrame = 60 * time.Second
	}

	return Config{
		Port: env.GetString("PORT", "8080"),
		ENV:  env.GetString("ENV", "development"),
		Google: GoogleConfig{
			Domain:                 env.GetString("GOOGLE_DOMAIN", "kaiser-x.com"),
			ServiceAccountKeyFile:  env.GetString("GOOGLE_SERVICE_ACCOUNT_KEY_FILE", "service-account.json"),
			AdminSubject:           env.GetString("GOOGLE_ADMIN_SUBJECT", "kaiser.soze@kaiser-x.com"),
			TemplateDocID:          env.GetString("HTML_TEMPLATE_FILE_ID", ""),
			TechnicalTemplateDocID: env.GetString("HTML_TEMPLATE_FILE_ID_TECHNICAL_USER", ""),
			SharedDriveID:          env.GetString("SHARED_DRIVE_ID", ""),
			SharedDriveFolderID:    env.GetString("SHARED_DRIVE_FOLDER_ID", ""),
		},
		Company: CompanyConfig{
			Name:    env.GetString("COMPANY_NAME", "Kaiser X Labs"),
			Website: env.GetString("COMPANY_WEBSITE", "http://www.kaiser-x.com/"),
		},
		DB: DatabaseConfig{
			DB_HOST:      env.GetString("DB_HOST", "127.0.0.1"),
			DB_PORT:      env.GetString("DB_PORT", "5432"),
			DB_USERNAME:  env.GetString("DB_USERNAME", "root"),
			DB_PASSWORD:  env.GetString("DB_PASSWORD", ""),
			DB_DATABASE:  env.GetString("DB_DATABASE", "signatures"),
			MaxOpenConns: env.GetInt("DB_MAX_OPEN_CONNS", 30),
			MaxIdleConns: env.GetInt("DB_MAX_IDLE_CONNS", 30),
			MaxIdleTime:  env.GetString("DB_MAX_IDLE_TIME", "15m"),
		},
		RabbitMQ: RabbitMQConfig{
			HOST:     env.GetString("RABBITMQ_HOST", "127.0.0.1"),
			PORT:     env.GetString("RABBITMQ_PORT", "5672"),
			USERNAME: env.GetString("RABBITMQ_USERNAME", "guest"),
			PASSWORD: env.GetString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: MinioConfig{
			ENDPOINT:   env.GetString("MINIO_ENDPOINT", "127.0.0.1:9000"),
			ACCESS_KEY: env.GetString("MINIO_ACCESS_KEY", ""),
			SECRET_KEY: env.GetString("MINIO_SECRET_KEY", ""),
			BUCKET:     env.GetString("MINIO_BUCKET", "signature-archive"),
			USE_SSL:    env.GetBool("MINIO_USE_SSL", false),
		},
		Mail: MailConfig{
			FROM_EMAIL:   env.GetString("MAIL_FROM_MAIL", ""),
			REPORT_EMAIL: env.GetString("MAIL_REPORT_MAIL", ""),
			SEND_GRID: SendGridConfig{
				API_KEY: env.GetString("MAIL_SEND_GRID_API_KEY", ""),
			},
		},
		RateLimiter: RateLimiterConfig{
			RequestsPerTimeFrame: env.GetInt("RATE_LIMIT_REQUESTS_PER_TIME_FRAME", 5000),
			TimeFrame:            rateLimitTimeFrame,
			Enabled:              env.GetBool("RATE_LIMIT_ENABLED", true),
		},
		Auth: AuthConfig{
			JWT_SECRET: env.GetString("AUTH_JWT_SECRET", ""),
		},
		Receiver: ReceiverConfig{
			MaxWorkers: env.GetInt("RECEIVER_MAX_WORKERS", 3),
		},
	}
}
