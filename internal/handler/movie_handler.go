package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"watch-tracker-service/internal/models"
	"watch-tracker-service/internal/service"
)

// MovieHandler handles HTTP requests for the movie catalog.
type MovieHandler struct {
	svc *service.MovieService
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(svc *service.MovieService) *MovieHandler {
	return &MovieHandler{svc: svc}
}

// List returns all movies ordered by title.
func (h *MovieHandler) List(c fiber.Ctx) error {
	movies, err := h.svc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movies)
}

// Create creates a movie from the request body.
func (h *MovieHandler) Create(c fiber.Ctx) error {
	var req models.CreateMovieRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	movie, err := h.svc.Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(movie)
}

// Get returns a single movie.
func (h *MovieHandler) Get(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid movie ID"})
	}

	movie, err := h.svc.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movie)
}

// Update applies a partial update to a movie.
func (h *MovieHandler) Update(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid movie ID"})
	}

	var req models.UpdateMovieRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	movie, err := h.svc.Update(id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movie)
}

// Delete removes a movie from the catalog.
func (h *MovieHandler) Delete(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid movie ID"})
	}

	if err := h.svc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
