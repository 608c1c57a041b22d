package appcontext

import (
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/auth"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/config"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/gsuite"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/mailer"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/repository"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Repository provides access to data storage operations.
	Repository *repository.Repository

	// Mailer handles email-sending functions.
	Mailer mailer.Client

	// JWTService manages JWT operations for service authentication.
	JWTService auth.JWTInterface

	// Applier publishes rendered signatures to Gmail and Drive.
	Applier *gsuite.Applier

	S3 *minio.Client
}
