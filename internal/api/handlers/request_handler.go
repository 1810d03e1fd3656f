package handlers

import (
	"ShareBite-Backend/domain"
	"ShareBite-Backend/internal/api/presenters"
	"ShareBite-Backend/internal/middleware"
	"ShareBite-Backend/pkg/request"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RequestHandler interface {
		GetAllRequests(c *fiber.Ctx) error
		GetRequestsForFood(c *fiber.Ctx) error
		GetMyRequests(c *fiber.Ctx) error
		GetMyRequestStats(c *fiber.Ctx) error
		GetLatestRequests(c *fiber.Ctx) error
		AddRequest(c *fiber.Ctx) error
		DeleteRequest(c *fiber.Ctx) error
		AcceptRequest(c *fiber.Ctx) error
		RejectRequest(c *fiber.Ctx) error
	}

	requestHandler struct {
		requestService request.RequestService
		validator      *validator.Validate
	}
)

func NewRequestHandler(requestService request.RequestService, validator *validator.Validate) RequestHandler {
	return &requestHandler{
		requestService: requestService,
		validator:      validator,
	}
}

func (h *requestHandler) GetAllRequests(c *fiber.Ctx) error {
	res, err := h.requestService.GetAllRequests(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetRequests, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRequests)
}

func (h *requestHandler) GetRequestsForFood(c *fiber.Ctx) error {
	res, err := h.requestService.GetRequestsForFood(c.Context(), c.Params("foodID"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetRequests, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRequests)
}

func (h *requestHandler) GetMyRequests(c *fiber.Ctx) error {
	email := middleware.TokenEmail(c)

	res, err := h.requestService.GetMyRequests(c.Context(), email, c.Query("email"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetRequests, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRequests)
}

func (h *requestHandler) GetMyRequestStats(c *fiber.Ctx) error {
	email := middleware.TokenEmail(c)

	res, err := h.requestService.GetMyRequestStats(c.Context(), email, c.Query("email"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetRequestStats, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRequestStats)
}

func (h *requestHandler) GetLatestRequests(c *fiber.Ctx) error {
	email := middleware.TokenEmail(c)

	res, err := h.requestService.GetLatestRequests(c.Context(), email)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetRequests, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRequests)
}

func (h *requestHandler) AddRequest(c *fiber.Ctx) error {
	email := middleware.TokenEmail(c)
	req := new(domain.AddRequestRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, domain.ErrInvalidBody)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddRequest, err)
	}

	res, err := h.requestService.AddRequest(c.Context(), *req, email)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedAddRequest, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddRequest)
}

func (h *requestHandler) DeleteRequest(c *fiber.Ctx) error {
	email := middleware.TokenEmail(c)

	if err := h.requestService.DeleteRequest(c.Context(), c.Params("id"), email); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedDeleteRequest, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRequest)
}

func (h *requestHandler) AcceptRequest(c *fiber.Ctx) error {
	email := middleware.TokenEmail(c)

	res, err := h.requestService.AcceptRequest(c.Context(), c.Params("id"), email)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedAcceptRequest, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAcceptRequest)
}

func (h *requestHandler) RejectRequest(c *fiber.Ctx) error {
	email := middleware.TokenEmail(c)

	res, err := h.requestService.RejectRequest(c.Context(), c.Params("id"), email)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedRejectRequest, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRejectRequest)
}
