package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"watch-tracker-service/internal/models"
	"watch-tracker-service/internal/service"
)

// SeriesHandler handles HTTP requests for series and their seasons.
type SeriesHandler struct {
	svc *service.SeriesService
}

// NewSeriesHandler creates a new SeriesHandler.
func NewSeriesHandler(svc *service.SeriesService) *SeriesHandler {
	return &SeriesHandler{svc: svc}
}

// List returns all series ordered by title, without seasons.
func (h *SeriesHandler) List(c fiber.Ctx) error {
	list, err := h.svc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Create creates a series from the request body.
func (h *SeriesHandler) Create(c fiber.Ctx) error {
	var req models.CreateSeriesRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	series, err := h.svc.Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(series)
}

// Get returns a single series with its seasons.
func (h *SeriesHandler) Get(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid series ID"})
	}

	detail, err := h.svc.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(detail)
}

// Update applies a partial update to a series.
func (h *SeriesHandler) Update(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid series ID"})
	}

	var req models.UpdateSeriesRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	detail, err := h.svc.Update(id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(detail)
}

// Delete removes a series from the catalog.
func (h *SeriesHandler) Delete(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid series ID"})
	}

	if err := h.svc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddSeason adds a season to an existing series.
func (h *SeriesHandler) AddSeason(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid series ID"})
	}

	var req models.AddSeasonRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	season, err := h.svc.AddSeason(id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(season)
}
