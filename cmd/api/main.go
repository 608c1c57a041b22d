package main

import (
	appcontext "github.com/KaiserXLabs/kxl-gmail-signature-update/internal/app_context"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/auth"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/config"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/controller"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/database"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/env"
	filestorage "github.com/KaiserXLabs/kxl-gmail-signature-update/internal/file_storage"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/gsuite"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/mailer"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/middleware"
	ratelimiter "github.com/KaiserXLabs/kxl-gmail-signature-update/internal/rate_limiter"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/repository"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/route"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/util"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Info("Database connected \n")

	s3, err := filestorage.NewMinioClient(&cfg.Minio)
	if err != nil {
		logger.Error("Error connecting to minio")
		logger.Panic(err)
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)
	mail := mailer.NewSendgrid(cfg.Mail.SEND_GRID.API_KEY, cfg.Mail.FROM_EMAIL, cfg.IsProduction(), logger)
	jwtService := auth.NewJwt(cfg.Auth, logger)
	repo := repository.NewRepository(db, logger)
	applier := gsuite.NewApplier(cfg.Google, logger)
	app := appcontext.Application{
		Config:     &cfg,
		Repository: repo,
		Logger:     logger,
		Mailer:     mail,
		JWTService: jwtService,
		Applier:    applier,
		S3:         s3,
	}

	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.ENV == "production" {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept"}
	r.Use(cors.New(corsConfig))
	r.Use(_middleware.RateLimiterMiddleware)

	_controller := controller.NewController(&app)

	r.GET("/", _controller.Index.Index)

	rApi := r.Group("/api")

	route.V1_Signatures(rApi, _controller.Signature, _middleware)

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panic("Error running server: %v \n", err)
	}
}
