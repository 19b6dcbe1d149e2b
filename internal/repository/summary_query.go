package repository

import (
	"fmt"
	"strings"

	"movies-api/internal/database"
	"movies-api/internal/models"

	"gorm.io/gorm"
)

// aggregateFunc renders a deduplicated JSON array aggregate of expr over the
// grouped rows matching filter. An empty group yields "[]", never NULL.
type aggregateFunc func(expr, filter string) string

func postgresAggregate(expr, filter string) string {
	return fmt.Sprintf("COALESCE(json_agg(DISTINCT %s) FILTER (WHERE %s), '[]'::json)::text", expr, filter)
}

func sqliteAggregate(expr, filter string) string {
	return fmt.Sprintf("COALESCE(json_group_array(DISTINCT %s) FILTER (WHERE %s), '[]')", expr, filter)
}

func aggregateFor(dialect string) (aggregateFunc, error) {
	switch dialect {
	case "postgres":
		return postgresAggregate, nil
	case "sqlite":
		return sqliteAggregate, nil
	}
	return nil, fmt.Errorf("no list aggregate for dialect %q", dialect)
}

// summaryQuery composes the single grouped query that flattens a filmwork with
// its genres and role-filtered people.
type summaryQuery struct {
	filmwork       string
	genre          string
	genreFilmwork  string
	person         string
	personFilmwork string
	selectSQL      string
	selectArgs     []interface{}
}

func newSummaryQuery(db *database.Database) (*summaryQuery, error) {
	aggregate, err := aggregateFor(db.Dialect())
	if err != nil {
		return nil, err
	}

	q := &summaryQuery{}
	tables := []struct {
		model interface{}
		dst   *string
	}{
		{&models.FilmWork{}, &q.filmwork},
		{&models.Genre{}, &q.genre},
		{&models.GenreFilmWork{}, &q.genreFilmwork},
		{&models.Person{}, &q.person},
		{&models.PersonFilmWork{}, &q.personFilmwork},
	}
	for _, t := range tables {
		name, err := db.TableName(t.model)
		if err != nil {
			return nil, err
		}
		*t.dst = name
	}

	columns := []string{
		"fw.id AS id",
		"fw.title AS title",
		"fw.description AS description",
		"fw.creation_date AS creation_date",
		"COALESCE(fw.rating, 0.0) AS rating",
		"fw.type AS type",
		aggregate("g.name", "g.name IS NOT NULL") + " AS genres",
	}
	for _, role := range models.Roles {
		columns = append(columns, aggregate("p.full_name", "pfw.role = ? AND p.full_name IS NOT NULL")+" AS "+role.String()+"s")
		q.selectArgs = append(q.selectArgs, role)
	}
	q.selectSQL = strings.Join(columns, ", ")

	return q, nil
}

func (q *summaryQuery) build(tx *gorm.DB) *gorm.DB {
	return tx.Table(q.filmwork+" AS fw").
		Select(q.selectSQL, q.selectArgs...).
		Joins("LEFT JOIN " + q.genreFilmwork + " AS gfw ON gfw.film_work_id = fw.id").
		Joins("LEFT JOIN " + q.genre + " AS g ON g.id = gfw.genre_id").
		Joins("LEFT JOIN " + q.personFilmwork + " AS pfw ON pfw.film_work_id = fw.id").
		Joins("LEFT JOIN " + q.person + " AS p ON p.id = pfw.person_id").
		Group("fw.id")
}
