package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movies-api/internal/database"
	"movies-api/internal/metrics"
	"movies-api/internal/models"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type FilmworkRepository interface {
	// FindPage returns one window of filmwork summaries in catalog order.
	FindPage(ctx context.Context, offset, limit int) ([]models.FilmworkSummary, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.FilmworkSummary, error)
	Count(ctx context.Context) (int64, error)
	// FindFilePath returns the stored object key of the filmwork's file, or "" if it has none.
	FindFilePath(ctx context.Context, id uuid.UUID) (string, error)
}

type filmworkRepository struct {
	db      *database.Database
	timeout time.Duration
	query   *summaryQuery
}

func NewFilmworkRepository(db *database.Database) (FilmworkRepository, error) {
	query, err := newSummaryQuery(db)
	if err != nil {
		return nil, err
	}
	return &filmworkRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
		query:   query,
	}, nil
}

func (r *filmworkRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *filmworkRepository) FindPage(ctx context.Context, offset, limit int) ([]models.FilmworkSummary, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	var rows []summaryRow
	err := r.query.build(r.db.WithContext(ctx)).
		Order("fw.creation_date DESC").
		Order("fw.id ASC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	metrics.RecordDBQuery("filmwork_page", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query filmworks: %w", err)
	}

	summaries := make([]models.FilmworkSummary, 0, len(rows))
	for i := range rows {
		s, err := rows[i].toSummary()
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

func (r *filmworkRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.FilmworkSummary, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	var rows []summaryRow
	err := r.query.build(r.db.WithContext(ctx)).
		Where("fw.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	metrics.RecordDBQuery("filmwork_detail", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query filmwork %s: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	s, err := rows[0].toSummary()
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *filmworkRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	var total int64
	err := r.db.WithContext(ctx).Model(&models.FilmWork{}).Count(&total).Error
	metrics.RecordDBQuery("filmwork_count", time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to count filmworks: %w", err)
	}
	return total, nil
}

func (r *filmworkRepository) FindFilePath(ctx context.Context, id uuid.UUID) (string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	var fw models.FilmWork
	err := r.db.WithContext(ctx).Select("id", "file_path").Where("id = ?", id).First(&fw).Error
	metrics.RecordDBQuery("filmwork_file", time.Since(start), err)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to query file of filmwork %s: %w", id, err)
	}
	if fw.FilePath == nil {
		return "", nil
	}
	return *fw.FilePath, nil
}

// summaryRow is the raw shape of one grouped row. The name lists arrive as JSON
// arrays so both dialects can be scanned the same way.
type summaryRow struct {
	ID           uuid.UUID
	Title        string
	Description  string
	CreationDate models.Date
	Rating       float64
	Type         models.FilmworkType
	Genres       datatypes.JSON
	Actors       datatypes.JSON
	Directors    datatypes.JSON
	Writers      datatypes.JSON
}

func (row *summaryRow) toSummary() (models.FilmworkSummary, error) {
	s := models.FilmworkSummary{
		ID:           row.ID,
		Title:        row.Title,
		Description:  row.Description,
		CreationDate: row.CreationDate,
		Rating:       row.Rating,
		Type:         row.Type,
	}

	lists := []struct {
		column string
		raw    datatypes.JSON
		dst    *[]string
	}{
		{"genres", row.Genres, &s.Genres},
		{"actors", row.Actors, &s.Actors},
		{"directors", row.Directors, &s.Directors},
		{"writers", row.Writers, &s.Writers},
	}
	for _, l := range lists {
		names, err := decodeNames(l.raw)
		if err != nil {
			return models.FilmworkSummary{}, fmt.Errorf("failed to decode %s of filmwork %s: %w", l.column, row.ID, err)
		}
		*l.dst = names
	}
	return s, nil
}

func decodeNames(raw datatypes.JSON) ([]string, error) {
	names := []string{}
	if len(raw) == 0 {
		return names, nil
	}
	var decoded []*string
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}
	for _, name := range decoded {
		if name != nil {
			names = append(names, *name)
		}
	}
	return names, nil
}
