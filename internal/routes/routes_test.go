package routes

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"movies-api/internal/database"
	"movies-api/internal/handlers"
	"movies-api/internal/models"
	"movies-api/internal/repository"
	"movies-api/internal/services"
	"movies-api/internal/testutil"
	"movies-api/internal/utils"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T, storage services.FileStorage) (*fiber.App, *database.Database) {
	t.Helper()
	db := testutil.DB(t)
	repo, err := repository.NewFilmworkRepository(db)
	if err != nil {
		t.Fatalf("NewFilmworkRepository() error = %v", err)
	}
	log := testutil.Logger(t)
	svc := services.NewMovieService(repo, storage, log)

	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})
	Setup(app, handlers.NewMovieHandler(svc, log))
	return app, db
}

func do(t *testing.T, app *fiber.App, method, target string) (*http.Response, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil), -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, body
}

func getList(t *testing.T, app *fiber.App, query string) handlers.MovieListResponse {
	t.Helper()
	resp, body := do(t, app, http.MethodGet, "/api/v1/movies/"+query)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET list%s status = %d, body = %s", query, resp.StatusCode, body)
	}
	var list handlers.MovieListResponse
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	return list
}

func assertPage(t *testing.T, got *int, want int) {
	t.Helper()
	switch {
	case want == 0 && got != nil:
		t.Errorf("page link = %d, want null", *got)
	case want != 0 && (got == nil || *got != want):
		t.Errorf("page link = %v, want %d", got, want)
	}
}

func TestMovieDetail(t *testing.T) {
	ctx := context.Background()
	app, db := newTestApp(t, nil)

	fw := testutil.SeedFilmWork(t, ctx, db.DB, &models.FilmWork{
		Title:        "Test Movie",
		CreationDate: models.NewDate(2021, time.May, 1),
		Rating:       testutil.PtrFloat(85.5),
		Type:         models.FilmworkTypeMovie,
	})
	testutil.LinkGenre(t, ctx, db.DB, fw, testutil.SeedGenre(t, ctx, db.DB, "Action"))
	actor := testutil.PtrRole(models.RoleActor)
	testutil.LinkPerson(t, ctx, db.DB, fw, testutil.SeedPerson(t, ctx, db.DB, "Alice"), actor)
	testutil.LinkPerson(t, ctx, db.DB, fw, testutil.SeedPerson(t, ctx, db.DB, "Alice"), actor)
	testutil.LinkPerson(t, ctx, db.DB, fw, testutil.SeedPerson(t, ctx, db.DB, "Bob"), testutil.PtrRole(models.RoleDirector))

	for _, target := range []string{"/api/v1/movies/" + fw.ID.String() + "/", "/api/v1/movies/" + fw.ID.String()} {
		resp, body := do(t, app, http.MethodGet, target)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("GET %s status = %d, body = %s", target, resp.StatusCode, body)
		}

		var raw map[string]interface{}
		if err := json.Unmarshal(body, &raw); err != nil {
			t.Fatalf("decode detail: %v", err)
		}
		want := map[string]interface{}{
			"id":            fw.ID.String(),
			"title":         "Test Movie",
			"description":   "",
			"creation_date": "2021-05-01",
			"rating":        85.5,
			"type":          "movie",
			"genres":        []interface{}{"Action"},
			"actors":        []interface{}{"Alice"},
			"directors":     []interface{}{"Bob"},
			"writers":       []interface{}{},
		}
		if len(raw) != len(want) {
			t.Errorf("detail has %d fields, want %d: %s", len(raw), len(want), body)
		}
		for key, value := range want {
			if fmt.Sprint(raw[key]) != fmt.Sprint(value) {
				t.Errorf("%s = %v, want %v", key, raw[key], value)
			}
		}
		if _, ok := raw["writers"].([]interface{}); !ok {
			t.Errorf("writers should be an empty array, got %v", raw["writers"])
		}
	}
}

func TestMovieDetailNotFound(t *testing.T) {
	app, _ := newTestApp(t, nil)

	for _, id := range []string{"3fa85f64-5717-4562-b3fc-2c963f66afa6", "not-a-uuid"} {
		resp, body := do(t, app, http.MethodGet, "/api/v1/movies/"+id+"/")
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("GET %s status = %d, want 404 (body %s)", id, resp.StatusCode, body)
		}
	}
}

func TestMovieListPagination(t *testing.T) {
	ctx := context.Background()
	app, db := newTestApp(t, nil)
	testutil.SeedFilmWorks(t, ctx, db.DB, 120)

	first := getList(t, app, "")
	if first.Count != 120 || first.TotalPages != 3 || len(first.Results) != 50 {
		t.Errorf("page 1: count=%d total_pages=%d results=%d", first.Count, first.TotalPages, len(first.Results))
	}
	assertPage(t, first.Prev, 0)
	assertPage(t, first.Next, 2)

	third := getList(t, app, "?page=3")
	if len(third.Results) != 20 {
		t.Errorf("page 3: results=%d, want 20", len(third.Results))
	}
	assertPage(t, third.Prev, 2)
	assertPage(t, third.Next, 0)

	last := getList(t, app, "?page=last")
	if len(last.Results) != 20 || last.Results[0].ID != third.Results[0].ID {
		t.Error("page=last should return page 3")
	}

	for _, query := range []string{"?page=4", "?page=99999999999999999999"} {
		beyond := getList(t, app, query)
		if beyond.Results == nil || len(beyond.Results) != 0 {
			t.Errorf("%s: results=%v, want []", query, beyond.Results)
		}
		if beyond.Count != 120 || beyond.TotalPages != 3 {
			t.Errorf("%s: count=%d total_pages=%d", query, beyond.Count, beyond.TotalPages)
		}
		assertPage(t, beyond.Prev, 3)
		assertPage(t, beyond.Next, 0)
	}

	for _, bad := range []string{"?page=abc", "?page=-3", "?page=0"} {
		got := getList(t, app, bad)
		if len(got.Results) != 50 || got.Results[0].ID != first.Results[0].ID {
			t.Errorf("%s should behave as page 1", bad)
		}
	}

	again := getList(t, app, "?page=2")
	second := getList(t, app, "?page=2")
	for i := range second.Results {
		if again.Results[i].ID != second.Results[i].ID {
			t.Fatalf("page 2 is not stable at row %d", i)
		}
	}

	seen := make(map[string]bool)
	var ordered []string
	for _, page := range []handlers.MovieListResponse{first, second, third} {
		for _, m := range page.Results {
			if seen[m.ID.String()] {
				t.Fatalf("movie %s appears on more than one page", m.ID)
			}
			seen[m.ID.String()] = true
			ordered = append(ordered, m.CreationDate.String())
		}
	}
	if len(seen) != 120 {
		t.Errorf("pages cover %d movies, want 120", len(seen))
	}
	if !sort.SliceIsSorted(ordered, func(i, j int) bool { return ordered[i] > ordered[j] }) {
		t.Error("movies are not ordered by creation date, newest first")
	}
}

func TestMovieListEmptyCatalog(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp, body := do(t, app, http.MethodGet, "/api/v1/movies")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	for _, fragment := range []string{`"count":0`, `"total_pages":0`, `"prev":null`, `"next":null`, `"results":[]`} {
		if !strings.Contains(string(body), fragment) {
			t.Errorf("body %s is missing %s", body, fragment)
		}
	}
}

func TestMoviesBackendUnavailable(t *testing.T) {
	ctx := context.Background()
	app, db := newTestApp(t, nil)
	fw := testutil.SeedFilmWork(t, ctx, db.DB, &models.FilmWork{Title: "Stored"})

	if err := db.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	for _, target := range []string{"/api/v1/movies/", "/api/v1/movies/" + fw.ID.String() + "/"} {
		resp, body := do(t, app, http.MethodGet, target)
		if resp.StatusCode != http.StatusInternalServerError {
			t.Errorf("GET %s status = %d, want 500", target, resp.StatusCode)
		}

		var envelope utils.StandardResponse
		if err := json.Unmarshal(body, &envelope); err != nil {
			t.Fatalf("decode %s: %v", body, err)
		}
		if envelope.Status != "fail" || envelope.Code != http.StatusInternalServerError || envelope.Message == "" {
			t.Errorf("GET %s envelope = %+v", target, envelope)
		}
		if strings.Contains(string(body), "results") {
			t.Errorf("GET %s leaked partial results: %s", target, body)
		}
	}
}

func TestMoviesRejectNonGetMethods(t *testing.T) {
	app, _ := newTestApp(t, nil)

	targets := []string{"/api/v1/movies/", "/api/v1/movies/3fa85f64-5717-4562-b3fc-2c963f66afa6/"}
	methods := []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodHead}

	for _, target := range targets {
		for _, method := range methods {
			t.Run(method+" "+target, func(t *testing.T) {
				resp, _ := do(t, app, method, target)
				if resp.StatusCode != http.StatusMethodNotAllowed {
					t.Errorf("status = %d, want 405", resp.StatusCode)
				}
				if allow := resp.Header.Get(fiber.HeaderAllow); allow != fiber.MethodGet {
					t.Errorf("Allow = %q, want GET", allow)
				}
			})
		}
	}
}

type fakeStorage struct{}

func (fakeStorage) PresignedURL(_ context.Context, filePath string) (string, error) {
	return "https://storage.test/" + filePath + "?X-Amz-Expires=900", nil
}

func (fakeStorage) URLExpiry() time.Duration { return 15 * time.Minute }

func TestMovieFile(t *testing.T) {
	ctx := context.Background()

	t.Run("storage disabled", func(t *testing.T) {
		app, db := newTestApp(t, nil)
		fw := testutil.SeedFilmWork(t, ctx, db.DB, &models.FilmWork{Title: "Has file", FilePath: testutil.PtrString("movies/a.mp4")})

		resp, _ := do(t, app, http.MethodGet, "/api/v1/movies/"+fw.ID.String()+"/file/")
		if resp.StatusCode != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", resp.StatusCode)
		}
	})

	t.Run("signed url", func(t *testing.T) {
		app, db := newTestApp(t, fakeStorage{})
		withFile := testutil.SeedFilmWork(t, ctx, db.DB, &models.FilmWork{Title: "Has file", FilePath: testutil.PtrString("movies/a.mp4")})
		withoutFile := testutil.SeedFilmWork(t, ctx, db.DB, &models.FilmWork{Title: "No file"})

		resp, body := do(t, app, http.MethodGet, "/api/v1/movies/"+withFile.ID.String()+"/file/")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, body = %s", resp.StatusCode, body)
		}
		var envelope struct {
			Status string                     `json:"status"`
			Data   handlers.MovieFileResponse `json:"data"`
		}
		if err := json.Unmarshal(body, &envelope); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if envelope.Data.URL != "https://storage.test/movies/a.mp4?X-Amz-Expires=900" || envelope.Data.ExpiresIn != 900 {
			t.Errorf("data = %+v", envelope.Data)
		}

		resp, _ = do(t, app, http.MethodGet, "/api/v1/movies/"+withoutFile.ID.String()+"/file/")
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("movie without file: status = %d, want 404", resp.StatusCode)
		}
	})
}

func TestMoviesUnknownSubPath(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp, _ := do(t, app, http.MethodPost, "/api/v1/movies/x/y")
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d, want 405", resp.StatusCode)
	}

	resp, _ = do(t, app, http.MethodGet, "/api/v1/movies/x/y")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("GET status = %d, want 404", resp.StatusCode)
	}
}
