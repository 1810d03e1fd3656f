package handlers

import (
	"ShareBite-Backend/domain"
	"ShareBite-Backend/internal/api/presenters"
	"ShareBite-Backend/internal/middleware"
	"ShareBite-Backend/pkg/ranking"

	"github.com/gofiber/fiber/v2"
)

type (
	RankingHandler interface {
		GetTopRankings(c *fiber.Ctx) error
		GetMyScore(c *fiber.Ctx) error
		GetTopDonor(c *fiber.Ctx) error
		GetAreaImpact(c *fiber.Ctx) error
	}

	rankingHandler struct {
		rankingService ranking.RankingService
	}
)

func NewRankingHandler(rankingService ranking.RankingService) RankingHandler {
	return &rankingHandler{rankingService: rankingService}
}

func (h *rankingHandler) GetTopRankings(c *fiber.Ctx) error {
	res, err := h.rankingService.GetTopRankings(c.Context(), c.QueryInt("limit", domain.DefaultTopRankingsLimit))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetTopRankings, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTopRankings)
}

func (h *rankingHandler) GetMyScore(c *fiber.Ctx) error {
	email := middleware.TokenEmail(c)

	res, err := h.rankingService.GetMyScore(c.Context(), email, c.Query("email"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetMyScore, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMyScore)
}

func (h *rankingHandler) GetTopDonor(c *fiber.Ctx) error {
	res, err := h.rankingService.GetTopDonorThisMonth(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetTopDonor, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTopDonor)
}

func (h *rankingHandler) GetAreaImpact(c *fiber.Ctx) error {
	res, err := h.rankingService.GetImpactStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetImpactStats, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetImpactStats)
}
