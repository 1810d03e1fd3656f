package routes

import (
	"ShareBite-Backend/internal/api/handlers"
	"ShareBite-Backend/internal/metrics"
	"ShareBite-Backend/internal/middleware"
	"ShareBite-Backend/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

type Config struct {
	App            *fiber.App
	FoodHandler    handlers.FoodHandler
	RequestHandler handlers.RequestHandler
	RankingHandler handlers.RankingHandler
	UserHandler    handlers.UserHandler
	Middleware     middleware.Middleware
	AuthVerifier   auth.AuthVerifier
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Foods()
	c.Requests()
	c.Rankings()
	c.Users()
	c.GuestRoute()
}

func (c *Config) Foods() {
	requireAuth := c.Middleware.AuthMiddleware(c.AuthVerifier)
	foods := c.App.Group("/foods")

	foods.Get("/", c.FoodHandler.GetAllFoods)
	foods.Get("/food-quantity", c.FoodHandler.GetFoodByQuantity)
	foods.Get("/available-foods", c.FoodHandler.GetAvailableFoods)
	foods.Get("/my-foods", requireAuth, c.FoodHandler.GetMyFoods)
	foods.Get("/my-food-stats", requireAuth, c.FoodHandler.GetMyFoodStats)
	foods.Get("/my-chart", requireAuth, c.FoodHandler.GetMyFoodChart)
	foods.Get("/my-score", requireAuth, c.FoodHandler.GetMyScore)
	foods.Post("/", requireAuth, c.FoodHandler.AddFood)
	foods.Post("/image", requireAuth, c.FoodHandler.UploadFoodImage)
	foods.Put("/update-food/:id", requireAuth, c.FoodHandler.UpdateFood)
	foods.Delete("/my-foods/:id", requireAuth, c.FoodHandler.DeleteFood)

	// must stay last so it does not shadow the fixed paths above
	foods.Get("/:id", c.FoodHandler.GetFoodDetails)
}

func (c *Config) Requests() {
	requireAuth := c.Middleware.AuthMiddleware(c.AuthVerifier)
	requests := c.App.Group("/requests")

	requests.Get("/", c.RequestHandler.GetAllRequests)
	requests.Get("/food/:foodID", c.RequestHandler.GetRequestsForFood)
	requests.Get("/my-requests", requireAuth, c.RequestHandler.GetMyRequests)
	requests.Get("/my-stats", requireAuth, c.RequestHandler.GetMyRequestStats)
	requests.Get("/latest", requireAuth, c.RequestHandler.GetLatestRequests)
	requests.Post("/", requireAuth, c.RequestHandler.AddRequest)
	requests.Delete("/my-requests/:id", requireAuth, c.RequestHandler.DeleteRequest)
	requests.Patch("/accept/:id", requireAuth, c.RequestHandler.AcceptRequest)
	requests.Patch("/reject/:id", requireAuth, c.RequestHandler.RejectRequest)
}

func (c *Config) Rankings() {
	requireAuth := c.Middleware.AuthMiddleware(c.AuthVerifier)
	rankings := c.App.Group("/rankings")

	rankings.Get("/top", requireAuth, c.RankingHandler.GetTopRankings)
	rankings.Get("/my-score", requireAuth, c.RankingHandler.GetMyScore)
	rankings.Get("/top-donor", c.RankingHandler.GetTopDonor)
	rankings.Get("/area-impact", c.RankingHandler.GetAreaImpact)
}

func (c *Config) Users() {
	requireAuth := c.Middleware.AuthMiddleware(c.AuthVerifier)
	users := c.App.Group("/users")

	users.Post("/", c.UserHandler.CreateUser)
	users.Patch("/email", requireAuth, c.UserHandler.UpdateUser)
	users.Post("/image", requireAuth, c.UserHandler.UploadAvatar)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
}
