package handlers

import (
	"movies-api/internal/models"
	"movies-api/internal/services"

	"github.com/google/uuid"
)

// MovieResponse is the wire shape of one filmwork, shared by the list and detail endpoints.
type MovieResponse struct {
	ID           uuid.UUID           `json:"id" example:"3d825f60-9fff-4dfe-b294-1a45fa1e115d"`
	Title        string              `json:"title" example:"Star Wars: Episode IV - A New Hope"`
	Description  string              `json:"description"`
	CreationDate models.Date         `json:"creation_date" swaggertype:"string" example:"1977-05-25"`
	Rating       float64             `json:"rating" example:"86"`
	Type         models.FilmworkType `json:"type" swaggertype:"string" enums:"movie,tv_show" example:"movie"`
	Genres       []string            `json:"genres" example:"Action,Adventure"`
	Actors       []string            `json:"actors" example:"Mark Hamill,Harrison Ford"`
	Directors    []string            `json:"directors" example:"George Lucas"`
	Writers      []string            `json:"writers" example:"George Lucas"`
}

type MovieListResponse struct {
	Count      int64           `json:"count" example:"120"`
	TotalPages int             `json:"total_pages" example:"3"`
	Prev       *int            `json:"prev" example:"1"`
	Next       *int            `json:"next" example:"3"`
	Results    []MovieResponse `json:"results"`
}

type MovieFileResponse struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in" example:"900"`
}

func NewMovieResponse(s *models.FilmworkSummary) MovieResponse {
	return MovieResponse{
		ID:           s.ID,
		Title:        s.Title,
		Description:  s.Description,
		CreationDate: s.CreationDate,
		Rating:       s.Rating,
		Type:         s.Type,
		Genres:       nonNil(s.Genres),
		Actors:       nonNil(s.Actors),
		Directors:    nonNil(s.Directors),
		Writers:      nonNil(s.Writers),
	}
}

func NewMovieListResponse(list *services.MovieList) MovieListResponse {
	results := make([]MovieResponse, 0, len(list.Results))
	for i := range list.Results {
		results = append(results, NewMovieResponse(&list.Results[i]))
	}
	return MovieListResponse{
		Count:      list.Page.Count,
		TotalPages: list.Page.TotalPages,
		Prev:       list.Page.Prev,
		Next:       list.Page.Next,
		Results:    results,
	}
}

func nonNil(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}
