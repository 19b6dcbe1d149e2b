package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestFilmworkTypeScan(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		want    FilmworkType
		wantErr bool
	}{
		{name: "movie string", value: "movie", want: FilmworkTypeMovie},
		{name: "tv show bytes", value: []byte("tv_show"), want: FilmworkTypeTVShow},
		{name: "unknown value", value: "cartoon", wantErr: true},
		{name: "null", value: nil, wantErr: true},
		{name: "wrong type", value: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got FilmworkType
			err := got.Scan(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Scan() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Scan() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilmworkTypeValue(t *testing.T) {
	v, err := FilmworkTypeTVShow.Value()
	if err != nil || v != "tv_show" {
		t.Errorf("Value() = %v, %v; want tv_show", v, err)
	}
	if _, err := FilmworkType("documentary").Value(); err == nil {
		t.Error("Value() should reject unknown types")
	}
}

func TestRoleParseAndScan(t *testing.T) {
	for _, role := range Roles {
		parsed, err := ParseRole(role.String())
		if err != nil || parsed != role {
			t.Errorf("ParseRole(%q) = %q, %v", role, parsed, err)
		}
	}

	var r Role
	if err := r.Scan([]byte("director")); err != nil || r != RoleDirector {
		t.Errorf("Scan(director) = %q, %v", r, err)
	}
	if err := r.Scan("producer"); err == nil {
		t.Error("Scan should reject unknown roles")
	}
	if _, err := Role("").Value(); err == nil {
		t.Error("Value should reject empty role")
	}
}

func TestDateScan(t *testing.T) {
	want := NewDate(2021, time.May, 1)
	tests := []struct {
		name  string
		value interface{}
	}{
		{name: "time", value: time.Date(2021, time.May, 1, 0, 0, 0, 0, time.UTC)},
		{name: "date string", value: "2021-05-01"},
		{name: "sqlite timestamp string", value: "2021-05-01 00:00:00+00:00"},
		{name: "bytes", value: []byte("2021-05-01")},
		{name: "rfc3339 string", value: "2021-05-01T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Date
			if err := got.Scan(tt.value); err != nil {
				t.Fatalf("Scan() error = %v", err)
			}
			if !got.Equal(want.Time) {
				t.Errorf("Scan() = %v, want %v", got, want)
			}
		})
	}

	for _, bad := range []string{"yesterday", "2021-05-01garbage", "2021-05-0"} {
		var d Date
		if err := d.Scan(bad); err == nil {
			t.Errorf("Scan(%q) should reject malformed dates", bad)
		}
	}
}

func TestDateJSON(t *testing.T) {
	payload := struct {
		CreationDate Date `json:"creation_date"`
	}{CreationDate: NewDate(1999, time.March, 31)}

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"creation_date":"1999-03-31"}` {
		t.Errorf("Marshal() = %s", data)
	}

	var decoded struct {
		CreationDate Date `json:"creation_date"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded.CreationDate.String() != "1999-03-31" {
		t.Errorf("round trip = %s", decoded.CreationDate)
	}
}

func TestFilmWorkBeforeSave(t *testing.T) {
	rating := func(v float64) *float64 { return &v }

	tests := []struct {
		name    string
		fw      FilmWork
		wantErr bool
	}{
		{name: "valid", fw: FilmWork{Type: FilmworkTypeMovie, Rating: rating(85.5)}},
		{name: "boundary high", fw: FilmWork{Type: FilmworkTypeMovie, Rating: rating(100)}},
		{name: "no rating", fw: FilmWork{Type: FilmworkTypeTVShow}},
		{name: "rating too high", fw: FilmWork{Type: FilmworkTypeMovie, Rating: rating(100.1)}, wantErr: true},
		{name: "negative rating", fw: FilmWork{Type: FilmworkTypeMovie, Rating: rating(-1)}, wantErr: true},
		{name: "missing type", fw: FilmWork{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fw.BeforeSave(nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("BeforeSave() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUUIDModelBeforeCreate(t *testing.T) {
	var g Genre
	if err := g.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate() error = %v", err)
	}
	if g.ID == uuid.Nil {
		t.Fatal("BeforeCreate should assign an id")
	}

	fixed := uuid.New()
	p := Person{UUIDModel: UUIDModel{ID: fixed}}
	_ = p.BeforeCreate(nil)
	if p.ID != fixed {
		t.Error("BeforeCreate must not replace an existing id")
	}
}

func TestPeopleByRole(t *testing.T) {
	s := FilmworkSummary{
		Actors:    []string{"Alice"},
		Directors: []string{"Bob"},
		Writers:   []string{},
	}
	if got := s.PeopleByRole(RoleDirector); len(got) != 1 || got[0] != "Bob" {
		t.Errorf("PeopleByRole(director) = %v", got)
	}
	if got := s.PeopleByRole(Role("producer")); got != nil {
		t.Errorf("PeopleByRole(unknown) = %v, want nil", got)
	}
}
