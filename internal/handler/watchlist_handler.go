package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"watch-tracker-service/internal/middleware"
	"watch-tracker-service/internal/models"
	"watch-tracker-service/internal/service"
)

// WatchlistHandler handles HTTP requests for watchlists and watch progress.
// All routes sit behind middleware.RequireUser.
type WatchlistHandler struct {
	svc *service.WatchlistService
}

// NewWatchlistHandler creates a new WatchlistHandler.
func NewWatchlistHandler(svc *service.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{svc: svc}
}

// GetWatchlist returns the caller's watchlist, most recently touched first.
func (h *WatchlistHandler) GetWatchlist(c fiber.Ctx) error {
	uid, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: "missing user identity"})
	}

	entries, err := h.svc.ListWatchlist(uid)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}

// AddMovie adds a movie to the caller's watchlist.
func (h *WatchlistHandler) AddMovie(c fiber.Ctx) error {
	uid, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: "missing user identity"})
	}

	movieID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid movie ID"})
	}

	entry, err := h.svc.AddMovie(uid, movieID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// AddSeries adds a series to the caller's watchlist.
func (h *WatchlistHandler) AddSeries(c fiber.Ctx) error {
	uid, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: "missing user identity"})
	}

	seriesID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid series ID"})
	}

	entry, err := h.svc.AddSeries(uid, seriesID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// UpdateProgress applies a partial progress update to the caller's entry
// for a series. An empty payload is rejected.
func (h *WatchlistHandler) UpdateProgress(c fiber.Ctx) error {
	uid, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: "missing user identity"})
	}

	seriesID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid series ID"})
	}

	var req models.ProgressUpdateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	entry, err := h.svc.UpdateSeriesProgress(uid, seriesID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entry)
}
