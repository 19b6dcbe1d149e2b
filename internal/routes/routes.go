package routes

import (
	"movies-api/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, movieHandler *handlers.MovieHandler) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Movie routes - read only
	movies := v1.Group("/movies", handlers.MethodNotAllowed(fiber.MethodGet))
	{
		movies.Get("/", movieHandler.GetMovies)
		movies.Get("/:id", movieHandler.GetMovieByID)
		movies.Get("/:id/file", movieHandler.GetMovieFile)
	}
}
