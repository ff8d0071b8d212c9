package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/fadilmartias/intern-coach/internal/model"
	"github.com/fadilmartias/intern-coach/internal/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	repo, err := repository.NewInternshipRepository(filepath.Join(t.TempDir(), "internships.json"))
	require.NoError(t, err)

	app := fiber.New()
	NewInternshipHandler(repo).RegisterRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func validBody() map[string]string {
	return map[string]string{
		"company":  "Acme Corp",
		"role":     "Backend Intern",
		"platform": "LinkedIn",
		"location": "Remote",
		"status":   "Applied",
		"deadline": "2025-08-01",
		"notes":    "referred by a friend",
	}
}

func TestCreateInternship(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/internships", validBody())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	rec := decode[model.Internship](t, resp)
	assert.NotEmpty(t, rec.ID)
	assert.NotEmpty(t, rec.CreatedAt)
	assert.Equal(t, "Acme Corp", rec.Company)
	assert.Equal(t, model.StatusApplied, rec.Status)
}

func TestCreateInternshipValidation(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name   string
		mutate func(map[string]string)
	}{
		{"short company", func(b map[string]string) { b["company"] = "A" }},
		{"short role", func(b map[string]string) { b["role"] = " x " }},
		{"missing location", func(b map[string]string) { delete(b, "location") }},
		{"missing deadline", func(b map[string]string) { delete(b, "deadline") }},
		{"future deadline", func(b map[string]string) {
			b["deadline"] = time.Now().AddDate(0, 0, 2).Format("2006-01-02")
		}},
		{"overlong notes", func(b map[string]string) {
			notes := make([]byte, 501)
			for i := range notes {
				notes[i] = 'x'
			}
			b["notes"] = string(notes)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validBody()
			tt.mutate(body)
			resp := doJSON(t, app, fiber.MethodPost, "/api/internships", body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}

	// Nothing invalid made it into the store.
	resp := doJSON(t, app, fiber.MethodGet, "/api/internships", nil)
	assert.Empty(t, decode[[]model.Internship](t, resp))
}

func TestCreateInternshipStatusIsNotEnforced(t *testing.T) {
	app := newTestApp(t)

	body := validBody()
	body["status"] = "Ghosted"
	resp := doJSON(t, app, fiber.MethodPost, "/api/internships", body)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestListInternships(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/internships", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]model.Internship](t, resp))

	created := decode[model.Internship](t, doJSON(t, app, fiber.MethodPost, "/api/internships", validBody()))

	resp = doJSON(t, app, fiber.MethodGet, "/api/internships", nil)
	internships := decode[[]model.Internship](t, resp)
	require.Len(t, internships, 1)
	assert.Equal(t, created, internships[0])
}

func TestUpdateInternshipMergesPartialFields(t *testing.T) {
	app := newTestApp(t)
	created := decode[model.Internship](t, doJSON(t, app, fiber.MethodPost, "/api/internships", validBody()))

	resp := doJSON(t, app, fiber.MethodPatch, "/api/internships/"+created.ID, map[string]string{"status": "Offer"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	updated := decode[model.Internship](t, resp)
	want := created
	want.Status = model.StatusOffer
	assert.Equal(t, want, updated)
}

func TestUpdateInternshipNotFound(t *testing.T) {
	app := newTestApp(t)
	created := decode[model.Internship](t, doJSON(t, app, fiber.MethodPost, "/api/internships", validBody()))

	resp := doJSON(t, app, fiber.MethodPatch, "/api/internships/missing", map[string]string{"status": "Offer"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// The collection is untouched.
	internships := decode[[]model.Internship](t, doJSON(t, app, fiber.MethodGet, "/api/internships", nil))
	require.Len(t, internships, 1)
	assert.Equal(t, created, internships[0])
}

func TestDeleteInternshipIsIdempotent(t *testing.T) {
	app := newTestApp(t)
	created := decode[model.Internship](t, doJSON(t, app, fiber.MethodPost, "/api/internships", validBody()))

	resp := doJSON(t, app, fiber.MethodDelete, "/api/internships/"+created.ID, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodDelete, "/api/internships/"+created.ID, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	internships := decode[[]model.Internship](t, doJSON(t, app, fiber.MethodGet, "/api/internships", nil))
	assert.Empty(t, internships)
}

func TestClearInternships(t *testing.T) {
	app := newTestApp(t)

	for range 3 {
		doJSON(t, app, fiber.MethodPost, "/api/internships", validBody())
	}

	resp := doJSON(t, app, fiber.MethodDelete, "/api/internships", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	internships := decode[[]model.Internship](t, doJSON(t, app, fiber.MethodGet, "/api/internships", nil))
	assert.Empty(t, internships)
}
