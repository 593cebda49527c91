package app

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"portfolio/internal/config"
	"portfolio/internal/database/seeder"
	dbsqlite "portfolio/internal/database/sqlite"
	"portfolio/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

func testConfig(services bool) config.Config {
	return config.Config{
		App:       config.AppConfig{AppName: "portfolio-test", HTTPPort: "0"},
		Database:  config.DatabaseConfig{Driver: config.DriverSQLite},
		Portfolio: config.PortfolioConfig{ServicesEnabled: services, FallbackName: "Rizwan Ahmed"},
		Scene:     config.SceneConfig{FPS: 60, PublishEvery: 6, Particles: 10, Seed: 1},
	}
}

func newTestContainer(t *testing.T, services bool) *Container {
	t.Helper()
	ctx := context.Background()
	logger := log.New(io.Discard, "", 0)

	db, err := dbsqlite.Open(ctx, filepath.Join(t.TempDir(), "portfolio.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	c := newContainer(testConfig(services), db, cache.NewRedis(config.RedisConfig{}, logger), logger)
	t.Cleanup(func() { _ = c.Close() })

	if err := c.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := (seeder.Runner{Seeders: seeder.Defaults(), Logger: logger}).Run(ctx, db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return c
}

func do(t *testing.T, a *App, method, path string) *http.Response {
	t.Helper()
	resp, err := a.Fiber.Test(httptest.NewRequest(method, path, nil), fiber.TestConfig{Timeout: 10 * time.Second})
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return b
}

func TestData_ReturnsRecord(t *testing.T) {
	a := New(newTestContainer(t, false))

	resp := do(t, a, http.MethodGet, "/api/data")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(readBody(t, resp), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, key := range []string{"profile", "skills", "projects"} {
		if _, ok := body[key]; !ok {
			t.Fatalf("missing %q in %v", key, body)
		}
	}
	if _, ok := body["services"]; ok {
		t.Fatalf("expected services omitted when not provisioned")
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}
}

func TestData_IncludesProvisionedServices(t *testing.T) {
	a := New(newTestContainer(t, true))

	var body struct {
		Services []map[string]any `json:"services"`
	}
	if err := json.Unmarshal(readBody(t, do(t, a, http.MethodGet, "/api/data")), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Services) == 0 {
		t.Fatalf("expected services in payload")
	}
}

func TestStoreFailure(t *testing.T) {
	c := newTestContainer(t, false)
	if _, err := c.DB.Exec(context.Background(), `DROP TABLE projects`); err != nil {
		t.Fatalf("drop: %v", err)
	}
	a := New(c)

	resp := do(t, a, http.MethodGet, "/api/data")
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(readBody(t, resp), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error == "" {
		t.Fatalf("expected non-empty error message")
	}

	page := do(t, a, http.MethodGet, "/")
	if page.StatusCode != http.StatusOK {
		t.Fatalf("expected page despite failure, got %d", page.StatusCode)
	}
	html := string(readBody(t, page))
	if !strings.Contains(html, `id="p-name">Rizwan Ahmed<`) {
		t.Fatalf("expected fallback name on the page")
	}
	if strings.Contains(html, "project-card") {
		t.Fatalf("expected no project cards on failure")
	}
}

func TestPage_Renders(t *testing.T) {
	a := New(newTestContainer(t, true))

	resp := do(t, a, http.MethodGet, "/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}
	html := string(readBody(t, resp))
	for _, want := range []string{"skill-card", "project-card", "service-card", "reveal-observer"} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in page", want)
		}
	}
}

func TestCV_NotLoaded(t *testing.T) {
	a := New(newTestContainer(t, false))

	resp := do(t, a, http.MethodGet, "/api/cv")
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(readBody(t, resp), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "Data is loading... please wait a moment." {
		t.Fatalf("unexpected notice %q", body.Error)
	}
}

func TestCV_AfterPageLoad(t *testing.T) {
	a := New(newTestContainer(t, true))
	do(t, a, http.MethodGet, "/")

	resp := do(t, a, http.MethodGet, "/api/cv")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "Rizwan_Ahmed_CV.pdf") {
		t.Fatalf("unexpected disposition %q", cd)
	}
	if b := readBody(t, resp); !strings.HasPrefix(string(b), "%PDF") {
		t.Fatalf("body is not a PDF")
	}
}

func TestHealth(t *testing.T) {
	a := New(newTestContainer(t, false))

	var body struct {
		Status  int            `json:"status"`
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
	}
	resp := do(t, a, http.MethodGet, "/health")
	if err := json.Unmarshal(readBody(t, resp), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != http.StatusOK || body.Message != "ok" || body.Data["database"] != "up" {
		t.Fatalf("unexpected health %+v", body)
	}
	if body.Data["loaded"] != false {
		t.Fatalf("expected not loaded before the first fetch")
	}
}

func TestScene_Geometry(t *testing.T) {
	a := New(newTestContainer(t, false))

	var g struct {
		Camera struct {
			Z float64 `json:"z"`
		} `json:"camera"`
		Particles struct {
			Positions []float64 `json:"positions"`
		} `json:"particles"`
	}
	if err := json.Unmarshal(readBody(t, do(t, a, http.MethodGet, "/api/scene")), &g); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if g.Camera.Z != 30 || len(g.Particles.Positions) != 30 {
		t.Fatalf("unexpected geometry %+v", g)
	}
}

func TestStaticAssets(t *testing.T) {
	a := New(newTestContainer(t, false))

	resp := do(t, a, http.MethodGet, "/static/js/scene.js")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(string(readBody(t, resp)), "/ws/scene") {
		t.Fatalf("unexpected asset body")
	}
}

func TestCVDownloadScript(t *testing.T) {
	a := New(newTestContainer(t, false))

	resp := do(t, a, http.MethodGet, "/static/js/cv.js")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	js := string(readBody(t, resp))
	for _, want := range []string{"download-cv", "preventDefault", "alert(body.error", "Content-Disposition"} {
		if !strings.Contains(js, want) {
			t.Errorf("expected %q in cv.js", want)
		}
	}

	page := string(readBody(t, do(t, a, http.MethodGet, "/")))
	if !strings.Contains(page, `<script src="/static/js/cv.js"></script>`) {
		t.Fatalf("expected the page to load cv.js")
	}
}

func TestUnknownRoute(t *testing.T) {
	a := New(newTestContainer(t, false))

	resp := do(t, a, http.MethodGet, "/nope")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestListenAddr(t *testing.T) {
	if got, _ := ListenAddr("8080"); got != ":8080" {
		t.Fatalf("got %q", got)
	}
	if got, _ := ListenAddr(":9000"); got != ":9000" {
		t.Fatalf("got %q", got)
	}
	if _, err := ListenAddr(" "); err == nil {
		t.Fatalf("expected error for empty port")
	}
}
