package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movies-api/internal/models"
	"movies-api/internal/repository"
	"movies-api/internal/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrMovieNotFound   = errors.New("movie not found")
	ErrFileNotFound    = errors.New("movie has no file")
	ErrStorageDisabled = errors.New("file storage is not configured")
)

// MovieList is one page of the catalog together with its pagination metadata.
type MovieList struct {
	Page    utils.Page
	Results []models.FilmworkSummary
}

type FileLink struct {
	URL       string
	ExpiresIn time.Duration
}

type MovieService interface {
	ListMovies(ctx context.Context, page int) (*MovieList, error)
	GetMovie(ctx context.Context, id uuid.UUID) (*models.FilmworkSummary, error)
	GetMovieFileURL(ctx context.Context, id uuid.UUID) (*FileLink, error)
}

type movieService struct {
	repo    repository.FilmworkRepository
	storage FileStorage
	logger  *logrus.Logger
}

// NewMovieService wires the catalog service. storage may be nil when file
// downloads are not configured.
func NewMovieService(repo repository.FilmworkRepository, storage FileStorage, logger *logrus.Logger) MovieService {
	return &movieService{
		repo:    repo,
		storage: storage,
		logger:  logger,
	}
}

func (s *movieService) ListMovies(ctx context.Context, page int) (*MovieList, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	p := utils.Paginate(page, utils.DefaultPageSize, total)
	list := &MovieList{
		Page:    p,
		Results: []models.FilmworkSummary{},
	}
	if p.OutOfRange() {
		s.logger.WithFields(logrus.Fields{
			"page":        p.Number,
			"total_pages": p.TotalPages,
		}).Debug("Requested page is past the end of the catalog")
		return list, nil
	}

	results, err := s.repo.FindPage(ctx, p.Offset(), p.Limit())
	if err != nil {
		return nil, err
	}
	list.Results = results
	return list, nil
}

func (s *movieService) GetMovie(ctx context.Context, id uuid.UUID) (*models.FilmworkSummary, error) {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return movie, nil
}

func (s *movieService) GetMovieFileURL(ctx context.Context, id uuid.UUID) (*FileLink, error) {
	if s.storage == nil {
		return nil, ErrStorageDisabled
	}

	filePath, err := s.repo.FindFilePath(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	if filePath == "" {
		return nil, ErrFileNotFound
	}

	link, err := s.storage.PresignedURL(ctx, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to sign file of movie %s: %w", id, err)
	}
	return &FileLink{URL: link, ExpiresIn: s.storage.URLExpiry()}, nil
}
