package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"catalogd/internal/config"
	"catalogd/internal/http/handlers"
	"catalogd/internal/repos"
)

// Minimal app setup mirroring the catalog routes in cmd/catalogd.
func newAPIApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := repos.EnsureSchema(db); err != nil {
		t.Fatalf("schema: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	cfg := config.Config{MediaDir: t.TempDir()}
	deps := handlers.NewDeps(db, cfg)

	app := fiber.New()
	app.Use(requestid.New())

	api := app.Group("/api/v1")
	api.Get("/categories", deps.CategoryHandler.List)
	api.Post("/categories", deps.CategoryHandler.Create)
	api.Get("/categories/:id", deps.CategoryHandler.Get)
	api.Put("/categories/:id", deps.CategoryHandler.Update)
	api.Delete("/categories/:id", deps.CategoryHandler.Delete)
	api.Get("/products", deps.ProductHandler.List)
	api.Post("/products", deps.ProductHandler.Create)
	api.Get("/products/:id", deps.ProductHandler.Get)
	api.Put("/products/:id", deps.ProductHandler.Update)
	api.Delete("/products/:id", deps.ProductHandler.Delete)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var out map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("decode %s: %v", raw, err)
		}
	}
	return resp, out
}

func TestCategoryCRUD(t *testing.T) {
	app, _ := newAPIApp(t)

	// create
	resp, body := doJSON(t, app, "POST", "/api/v1/categories", `{"name":"Shoes"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create expected 201, got %d", resp.StatusCode)
	}
	if body["id"] != float64(1) || body["name"] != "Shoes" {
		t.Fatalf("create returned %v", body)
	}

	// get
	resp, body = doJSON(t, app, "GET", "/api/v1/categories/1", "")
	if resp.StatusCode != http.StatusOK || body["name"] != "Shoes" {
		t.Fatalf("get returned %d %v", resp.StatusCode, body)
	}

	// update
	resp, body = doJSON(t, app, "PUT", "/api/v1/categories/1", `{"name":"Footwear"}`)
	if resp.StatusCode != http.StatusOK || body["name"] != "Footwear" {
		t.Fatalf("update returned %d %v", resp.StatusCode, body)
	}

	// list
	req := httptest.NewRequest("GET", "/api/v1/categories", nil)
	listResp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	var cats []map[string]any
	if err := json.NewDecoder(listResp.Body).Decode(&cats); err != nil {
		t.Fatal(err)
	}
	if len(cats) != 1 || cats[0]["name"] != "Footwear" {
		t.Fatalf("list returned %v", cats)
	}

	// delete
	resp, body = doJSON(t, app, "DELETE", "/api/v1/categories/1", "")
	if resp.StatusCode != http.StatusOK || body["message"] != "Category deleted successfully" {
		t.Fatalf("delete returned %d %v", resp.StatusCode, body)
	}

	// gone: every operation on the id reports not found
	for _, probe := range []struct{ method, path, body string }{
		{"GET", "/api/v1/categories/1", ""},
		{"PUT", "/api/v1/categories/1", `{"name":"X"}`},
		{"DELETE", "/api/v1/categories/1", ""},
	} {
		resp, body := doJSON(t, app, probe.method, probe.path, probe.body)
		if resp.StatusCode != http.StatusNotFound || body["message"] != "Category not found" {
			t.Fatalf("%s after delete returned %d %v", probe.method, resp.StatusCode, body)
		}
	}
}

func TestCategoryValidationDoesNotPersist(t *testing.T) {
	app, db := newAPIApp(t)

	for _, payload := range []string{`{}`, `{"name":""}`, `not json`} {
		resp, body := doJSON(t, app, "POST", "/api/v1/categories", payload)
		if resp.StatusCode != http.StatusUnprocessableEntity {
			t.Fatalf("payload %q expected 422, got %d", payload, resp.StatusCode)
		}
		if body["errors"] == nil {
			t.Fatalf("payload %q missing errors map: %v", payload, body)
		}
	}

	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM categories`); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("store size changed after failed validation: %d rows", n)
	}
}

func TestUnknownIDsAreNotFound(t *testing.T) {
	app, _ := newAPIApp(t)

	paths := []struct{ method, path, body string }{
		{"GET", "/api/v1/categories/99", ""},
		{"PUT", "/api/v1/categories/99", `{"name":"X"}`},
		{"DELETE", "/api/v1/categories/99", ""},
		{"GET", "/api/v1/products/99", ""},
		{"PUT", "/api/v1/products/99", `{"name":"X","price":1}`},
		{"DELETE", "/api/v1/products/99", ""},
		{"GET", "/api/v1/products/abc", ""}, // non-numeric ids live outside the id space
	}
	for _, p := range paths {
		resp, _ := doJSON(t, app, p.method, p.path, p.body)
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("%s %s expected 404, got %d", p.method, p.path, resp.StatusCode)
		}
	}
}
