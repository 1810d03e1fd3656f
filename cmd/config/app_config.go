package config

import (
	"ShareBite-Backend/internal/api/handlers"
	"ShareBite-Backend/internal/api/routes"
	"ShareBite-Backend/internal/metrics"
	"ShareBite-Backend/internal/middleware"
	"ShareBite-Backend/internal/utils"
	"ShareBite-Backend/internal/utils/mailing"
	"ShareBite-Backend/internal/utils/storage"
	"ShareBite-Backend/pkg/auth"
	"ShareBite-Backend/pkg/food"
	"ShareBite-Backend/pkg/ranking"
	"ShareBite-Backend/pkg/request"
	"ShareBite-Backend/pkg/user"
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func NewApp(ctx context.Context, db *gorm.DB, config *utils.Config, log *logrus.Logger) (*fiber.App, error) {
	verifier, err := NewAuthVerifier(ctx, config)
	if err != nil {
		return nil, err
	}
	return newApp(ctx, db, config, log, verifier)
}

func newApp(ctx context.Context, db *gorm.DB, config *utils.Config, log *logrus.Logger, verifier auth.AuthVerifier) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName: "ShareBite",
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// access log, metrics and limiter
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
		Output:     log.Writer(),
	}))
	app.Use(metrics.Middleware())
	if config.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        config.RateLimitMax,
			Expiration: 1 * time.Second,
		}))
	}

	// utils
	s3, err := storage.NewAwsS3(ctx, config)
	if err != nil {
		return nil, err
	}
	mailer := mailing.NewMailer(config)

	// Repository
	userRepository := user.NewUserRepository(db)
	rankingRepository := ranking.NewRankingRepository(db)
	foodRepository := food.NewFoodRepository(db)
	requestRepository := request.NewRequestRepository(db)

	// Service
	userService := user.NewUserService(userRepository, s3, log)
	rankingService := ranking.NewRankingService(rankingRepository, userRepository, log)
	foodService := food.NewFoodService(foodRepository, rankingService, s3, log)
	requestService := request.NewRequestService(
		requestRepository,
		foodRepository,
		rankingService,
		mailer,
		config.AppURL,
		log,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	rankingHandler := handlers.NewRankingHandler(rankingService)
	foodHandler := handlers.NewFoodHandler(foodService, rankingService, validator)
	requestHandler := handlers.NewRequestHandler(requestService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		FoodHandler:    foodHandler,
		RequestHandler: requestHandler,
		RankingHandler: rankingHandler,
		UserHandler:    userHandler,
		Middleware:     middlewares,
		AuthVerifier:   verifier,
	}
	routesConfig.Setup()
	return app, nil
}
