package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rakeebhasan09/ZapShift-server/config"
	"github.com/rakeebhasan09/ZapShift-server/controllers"
	"github.com/rakeebhasan09/ZapShift-server/database"
	"github.com/rakeebhasan09/ZapShift-server/logger"
	"github.com/rakeebhasan09/ZapShift-server/middleware"
	"github.com/rakeebhasan09/ZapShift-server/providers"
	"github.com/rakeebhasan09/ZapShift-server/repository"
	"github.com/rakeebhasan09/ZapShift-server/routes"
	"github.com/rakeebhasan09/ZapShift-server/services"
	"go.uber.org/zap"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	client, db, err := database.Connect(cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		logger.Log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := database.Close(client); err != nil {
			logger.Log.Warn("MongoDB disconnect failed", zap.Error(err))
		}
	}()

	indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.EnsureIndexes(indexCtx, db); err != nil {
		logger.Log.Fatal("Failed to create indexes", zap.Error(err))
	}

	parcelRepo := repository.NewMongoParcelRepo(db)
	paymentRepo := repository.NewMongoPaymentRepo(db)
	stripeProvider := providers.NewStripeProvider(cfg.StripeSecretKey, cfg.StripeWebhookSecret, cfg.FrontendURL)
	verifier := middleware.NewJWTVerifier(cfg.JWTSecret)

	parcelSvc := services.NewParcelService(parcelRepo, logger.Log)
	paymentSvc := services.NewPaymentService(parcelRepo, paymentRepo, stripeProvider, logger.Log)

	parcelCtrl := controllers.NewParcelController(parcelSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc, stripeProvider, logger.Log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, parcelCtrl, paymentCtrl, verifier)

	logger.Log.Info("ZapShift server running", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal("Server failed", zap.Error(err))
	}
}
