package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Person struct {
	UUIDModel
	FullName string `gorm:"size:255;not null;index" json:"full_name"`
	TimeStampedModel
}

// Role qualifies a person's participation in a filmwork.
type Role string

const (
	RoleActor    Role = "actor"
	RoleDirector Role = "director"
	RoleWriter   Role = "writer"
)

// Roles lists every role in the order the API exposes them.
var Roles = []Role{RoleActor, RoleDirector, RoleWriter}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

func (r Role) Valid() bool {
	switch r {
	case RoleActor, RoleDirector, RoleWriter:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

func (r *Role) Scan(value interface{}) error {
	s, err := scanString(value)
	if err != nil {
		return fmt.Errorf("scan role: %w", err)
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r Role) Value() (driver.Value, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("unknown role %q", string(r))
	}
	return string(r), nil
}

// PersonFilmWork links a person to a filmwork under an optional role.
// The (filmwork, person, role) triple is unique.
type PersonFilmWork struct {
	UUIDModel
	FilmWorkID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:unique_film_work_person,priority:1" json:"film_work_id"`
	PersonID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:unique_film_work_person,priority:2;index" json:"person_id"`
	Role       *Role     `gorm:"size:8;uniqueIndex:unique_film_work_person,priority:3" json:"role"`
	FilmWork   *FilmWork `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Person     *Person   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Created    time.Time `gorm:"autoCreateTime" json:"created"`
}
