package handlers

import (
	"errors"
	"strings"

	"movies-api/internal/services"
	"movies-api/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.MovieService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// GetMovies godoc
// @Summary List movies
// @Description Paginated list of filmworks with their genres and people grouped by role, newest first. Pages hold 50 movies.
// @Tags movies
// @Produce json
// @Param page query string false "Page number (1-based) or \"last\"; invalid values mean page 1" default(1)
// @Success 200 {object} MovieListResponse "Page of movies"
// @Failure 405 {object} utils.StandardResponse "Method not allowed"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/ [get]
func (h *MovieHandler) GetMovies(c *fiber.Ctx) error {
	ctx := c.Context()

	page := utils.ParsePage(c.Query("page"))

	list, err := h.service.ListMovies(ctx, page)
	if err != nil {
		h.logger.WithError(err).WithField("page", page).Error("Failed to list movies")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movies")
	}

	return c.Status(fiber.StatusOK).JSON(NewMovieListResponse(list))
}

// GetMovieByID godoc
// @Summary Get movie by ID
// @Description Single filmwork with its genres and people grouped by role
// @Tags movies
// @Produce json
// @Param id path string true "Movie UUID"
// @Success 200 {object} MovieResponse "Movie details"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Failure 405 {object} utils.StandardResponse "Method not allowed"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/{id}/ [get]
func (h *MovieHandler) GetMovieByID(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
	}

	movie, err := h.service.GetMovie(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrMovieNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to get movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movie")
	}

	return c.Status(fiber.StatusOK).JSON(NewMovieResponse(movie))
}

// GetMovieFile godoc
// @Summary Get movie file download URL
// @Description Temporary presigned URL for downloading the movie's file from object storage
// @Tags movies
// @Produce json
// @Param id path string true "Movie UUID"
// @Success 200 {object} utils.StandardResponse{data=MovieFileResponse} "Presigned URL"
// @Failure 404 {object} utils.StandardResponse "Movie or file not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Failure 503 {object} utils.StandardResponse "File storage not configured"
// @Router /movies/{id}/file/ [get]
func (h *MovieHandler) GetMovieFile(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
	}

	link, err := h.service.GetMovieFileURL(ctx, id)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrMovieNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
	case errors.Is(err, services.ErrFileNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie has no file")
	case errors.Is(err, services.ErrStorageDisabled):
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "File storage is not available")
	default:
		h.logger.WithError(err).WithField("id", id).Error("Failed to get movie file URL")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate file URL")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "File URL generated successfully", MovieFileResponse{
		URL:       link.URL,
		ExpiresIn: int(link.ExpiresIn.Seconds()),
	})
}

// MethodNotAllowed rejects every request whose method is not in allowed.
func MethodNotAllowed(allowed ...string) fiber.Handler {
	allow := make(map[string]bool, len(allowed))
	for _, m := range allowed {
		allow[m] = true
	}
	header := strings.Join(allowed, ", ")

	return func(c *fiber.Ctx) error {
		if allow[c.Method()] {
			return c.Next()
		}
		c.Set(fiber.HeaderAllow, header)
		return utils.ErrorResponse(c, fiber.StatusMethodNotAllowed, "Method "+c.Method()+" not allowed")
	}
}
