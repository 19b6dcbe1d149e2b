package models

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FilmworkType is the kind of catalog entry.
type FilmworkType string

const (
	FilmworkTypeMovie  FilmworkType = "movie"
	FilmworkTypeTVShow FilmworkType = "tv_show"
)

func ParseFilmworkType(s string) (FilmworkType, error) {
	t := FilmworkType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown filmwork type %q", s)
	}
	return t, nil
}

func (t FilmworkType) Valid() bool {
	return t == FilmworkTypeMovie || t == FilmworkTypeTVShow
}

func (t FilmworkType) String() string {
	return string(t)
}

func (t *FilmworkType) Scan(value interface{}) error {
	s, err := scanString(value)
	if err != nil {
		return fmt.Errorf("scan filmwork type: %w", err)
	}
	parsed, err := ParseFilmworkType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t FilmworkType) Value() (driver.Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("unknown filmwork type %q", string(t))
	}
	return string(t), nil
}

const (
	MinRating = 0.0
	MaxRating = 100.0
)

var ErrRatingOutOfRange = errors.New("rating must be between 0 and 100")

type FilmWork struct {
	UUIDModel
	Title        string       `gorm:"size:255;not null;uniqueIndex" json:"title" example:"The Matrix"`
	Description  string       `gorm:"type:text" json:"description"`
	CreationDate Date         `gorm:"not null;index" json:"creation_date" example:"1999-03-31"`
	FilePath     *string      `gorm:"size:100" json:"file_path,omitempty" example:"movies/the-matrix.mp4"`
	Rating       *float64     `json:"rating" example:"87.5"`
	Type         FilmworkType `gorm:"size:7;not null;index" json:"type" example:"movie"`
	TimeStampedModel
}

func (f *FilmWork) BeforeSave(tx *gorm.DB) error {
	if f.Rating != nil && (*f.Rating < MinRating || *f.Rating > MaxRating) {
		return ErrRatingOutOfRange
	}
	if !f.Type.Valid() {
		return fmt.Errorf("unknown filmwork type %q", string(f.Type))
	}
	return nil
}

// FilmworkSummary is the flattened read model of a filmwork: scalar columns plus
// the deduplicated names of its genres and of the people linked under each role.
type FilmworkSummary struct {
	ID           uuid.UUID
	Title        string
	Description  string
	CreationDate Date
	Rating       float64
	Type         FilmworkType
	Genres       []string
	Actors       []string
	Directors    []string
	Writers      []string
}

// PeopleByRole returns the names aggregated for role.
func (s *FilmworkSummary) PeopleByRole(role Role) []string {
	switch role {
	case RoleActor:
		return s.Actors
	case RoleDirector:
		return s.Directors
	case RoleWriter:
		return s.Writers
	}
	return nil
}
