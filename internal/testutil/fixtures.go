package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"movies-api/internal/models"

	"gorm.io/gorm"
)

func SeedGenre(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *models.Genre {
	tb.Helper()
	g := &models.Genre{Name: name}
	if err := tx.WithContext(ctx).Create(g).Error; err != nil {
		tb.Fatalf("seed genre: %v", err)
	}
	return g
}

func SeedPerson(tb testing.TB, ctx context.Context, tx *gorm.DB, fullName string) *models.Person {
	tb.Helper()
	p := &models.Person{FullName: fullName}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed person: %v", err)
	}
	return p
}

func SeedFilmWork(tb testing.TB, ctx context.Context, tx *gorm.DB, fw *models.FilmWork) *models.FilmWork {
	tb.Helper()
	if fw.Type == "" {
		fw.Type = models.FilmworkTypeMovie
	}
	if fw.CreationDate.IsZero() {
		fw.CreationDate = models.NewDate(2020, time.January, 1)
	}
	if err := tx.WithContext(ctx).Create(fw).Error; err != nil {
		tb.Fatalf("seed filmwork: %v", err)
	}
	return fw
}

// SeedFilmWorks creates n movies with distinct titles. Every third one shares
// its creation date with its predecessor so ordering needs the id tiebreak.
func SeedFilmWorks(tb testing.TB, ctx context.Context, tx *gorm.DB, n int) []*models.FilmWork {
	tb.Helper()
	base := models.NewDate(2000, time.January, 1)
	out := make([]*models.FilmWork, 0, n)
	for i := 0; i < n; i++ {
		day := i
		if i%3 == 2 {
			day = i - 1
		}
		out = append(out, SeedFilmWork(tb, ctx, tx, &models.FilmWork{
			Title:        fmt.Sprintf("Movie %03d", i),
			CreationDate: models.Date{Time: base.AddDate(0, 0, day)},
			Rating:       PtrFloat(float64(i % 100)),
		}))
	}
	return out
}

func LinkGenre(tb testing.TB, ctx context.Context, tx *gorm.DB, fw *models.FilmWork, g *models.Genre) {
	tb.Helper()
	link := &models.GenreFilmWork{FilmWorkID: fw.ID, GenreID: g.ID}
	if err := tx.WithContext(ctx).Create(link).Error; err != nil {
		tb.Fatalf("link genre: %v", err)
	}
}

func LinkPerson(tb testing.TB, ctx context.Context, tx *gorm.DB, fw *models.FilmWork, p *models.Person, role *models.Role) {
	tb.Helper()
	link := &models.PersonFilmWork{FilmWorkID: fw.ID, PersonID: p.ID, Role: role}
	if err := tx.WithContext(ctx).Create(link).Error; err != nil {
		tb.Fatalf("link person: %v", err)
	}
}

func PtrFloat(v float64) *float64 { return &v }

func PtrString(v string) *string { return &v }

func PtrRole(v models.Role) *models.Role { return &v }
