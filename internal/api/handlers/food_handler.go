package handlers

import (
	"ShareBite-Backend/domain"
	"ShareBite-Backend/internal/api/presenters"
	"ShareBite-Backend/internal/middleware"
	"ShareBite-Backend/pkg/food"
	"ShareBite-Backend/pkg/ranking"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		GetAllFoods(c *fiber.Ctx) error
		GetFoodByQuantity(c *fiber.Ctx) error
		GetAvailableFoods(c *fiber.Ctx) error
		GetFoodDetails(c *fiber.Ctx) error
		GetMyFoods(c *fiber.Ctx) error
		GetMyFoodStats(c *fiber.Ctx) error
		GetMyFoodChart(c *fiber.Ctx) error
		GetMyScore(c *fiber.Ctx) error
		AddFood(c *fiber.Ctx) error
		UploadFoodImage(c *fiber.Ctx) error
		UpdateFood(c *fiber.Ctx) error
		DeleteFood(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService    food.FoodService
		rankingService ranking.RankingService
		validator      *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, rankingService ranking.RankingService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService:    foodService,
		rankingService: rankingService,
		validator:      validator,
	}
}

func (h *foodHandler) GetAllFoods(c *fiber.Ctx) error {
	foods, err := h.foodService.GetAllFoods(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetFoods, err)
	}
	return presenters.SuccessResponse(c, foods, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *foodHandler) GetFoodByQuantity(c *fiber.Ctx) error {
	foods, err := h.foodService.GetTopFoodsByQuantity(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetFoods, err)
	}
	return presenters.SuccessResponse(c, foods, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *foodHandler) GetAvailableFoods(c *fiber.Ctx) error {
	query := domain.AvailableFoodsQuery{
		Search: c.Query("search"),
		Limit:  c.QueryInt("limit", domain.AvailableFoodsLimit),
		Skip:   c.QueryInt("skip", 0),
	}

	res, err := h.foodService.GetAvailableFoods(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetFoods, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *foodHandler) GetFoodDetails(c *fiber.Ctx) error {
	res, err := h.foodService.GetFoodByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetFood, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFood)
}

func (h *foodHandler) GetMyFoods(c *fiber.Ctx) error {
	email := middleware.TokenEmail(c)

	foods, err := h.foodService.GetMyFoods(c.Context(), email, c.Query("email"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetFoods, err)
	}
	return presenters.SuccessResponse(c, foods, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *foodHandler) GetMyFoodStats(c *fiber.Ctx) error {
	email := middleware.TokenEmail(c)

	stats, err := h.foodService.GetMyFoodStats(c.Context(), email, c.Query("email"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetFoodStats, err)
	}
	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetFoodStats)
}

func (h *foodHandler) GetMyFoodChart(c *fiber.Ctx) error {
	email := middleware.TokenEmail(c)

	foods, err := h.foodService.GetMyFoodChart(c.Context(), email, c.Query("email"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetFoodCharts, err)
	}
	return presenters.SuccessResponse(c, foods, fiber.StatusOK, domain.MessageSuccessGetFoodCharts)
}

func (h *foodHandler) GetMyScore(c *fiber.Ctx) error {
	email := middleware.TokenEmail(c)

	score, err := h.rankingService.GetMyScore(c.Context(), email, email)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetMyScore, err)
	}
	return presenters.SuccessResponse(c, score, fiber.StatusOK, domain.MessageSuccessGetMyScore)
}

func (h *foodHandler) AddFood(c *fiber.Ctx) error {
	email := middleware.TokenEmail(c)
	req := new(domain.AddFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, domain.ErrInvalidBody)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFood, err)
	}

	res, err := h.foodService.AddFood(c.Context(), *req, email)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedAddFood, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFood)
}

func (h *foodHandler) UploadFoodImage(c *fiber.Ctx) error {
	email := middleware.TokenEmail(c)
	req := new(domain.UploadFoodImageRequest)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, domain.ErrInvalidImage)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	res, err := h.foodService.UploadFoodImage(c.Context(), *req, email)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedUploadImage, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUploadImage)
}

func (h *foodHandler) UpdateFood(c *fiber.Ctx) error {
	email := middleware.TokenEmail(c)
	req := new(domain.UpdateFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, domain.ErrInvalidBody)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFood, err)
	}

	res, err := h.foodService.UpdateFood(c.Context(), c.Params("id"), *req, email)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedUpdateFood, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateFood)
}

func (h *foodHandler) DeleteFood(c *fiber.Ctx) error {
	email := middleware.TokenEmail(c)

	if err := h.foodService.DeleteFood(c.Context(), c.Params("id"), email); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedDeleteFood, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFood)
}
