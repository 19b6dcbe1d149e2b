package models

import (
	"time"

	"github.com/google/uuid"
)

type Genre struct {
	UUIDModel
	Name        string `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	TimeStampedModel
}

// GenreFilmWork links a filmwork to one of its genres. A pair appears at most once.
type GenreFilmWork struct {
	UUIDModel
	FilmWorkID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:unique_film_work_genre,priority:1" json:"film_work_id"`
	GenreID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:unique_film_work_genre,priority:2;index" json:"genre_id"`
	FilmWork   *FilmWork `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Genre      *Genre    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Created    time.Time `gorm:"autoCreateTime" json:"created"`
}
