package api

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jpl-au/docsite/internal/config"
	"github.com/jpl-au/docsite/internal/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mkdocs = `site_name: Test
nav:
  - Home: index.md
  - Guides:
      - Install: guides/install.md
      - Advanced:
          - Getting Started: guides/advanced/getting_started.md
`

func newTestServer(t *testing.T, opts Options) (*httptest.Server, string) {
	t.Helper()
	t.Setenv(config.EnvRoot, "")
	t.Setenv(config.EnvOutput, "")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mkdocs.yml"), []byte(mkdocs), 0644))
	for p, c := range map[string]string{
		"index.md":                           "# Home\n",
		"guides/install.md":                  "# Install\n\nRun it.\n",
		"guides/advanced/getting_started.md": "# Getting Started\n",
	} {
		full := filepath.Join(dir, "docs", filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(c), 0644))
	}

	svc, err := site.New(&config.Config{Site: config.Site{Root: dir}})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := httptest.NewServer(NewServer(svc, logger, opts))
	t.Cleanup(ts.Close)
	return ts, dir
}

func do(t *testing.T, method, url, body string, header ...string) (*http.Response, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, r)
	require.NoError(t, err)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp, out
}

func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t, Options{})
	resp, body := do(t, http.MethodGet, ts.URL+"/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestTree(t *testing.T) {
	ts, _ := newTestServer(t, Options{})
	resp, body := do(t, http.MethodGet, ts.URL+"/api/tree", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	sections, ok := body["sections"].([]any)
	require.True(t, ok)
	assert.Len(t, sections, 2)
}

func TestGetPage(t *testing.T) {
	ts, _ := newTestServer(t, Options{})

	resp, body := do(t, http.MethodGet, ts.URL+"/api/pages/getting_started", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "guides/advanced/getting_started.md", body["path"])
	assert.Equal(t, "Getting Started", body["section"])
	assert.Nil(t, body["html"])

	resp, body = do(t, http.MethodGet, ts.URL+"/api/pages/Getting%20Started?html=1", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body["html"], "<h1")

	resp, body = do(t, http.MethodGet, ts.URL+"/api/pages/nowhere", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Could not associate path", body["error"])
}

func TestPutPage(t *testing.T) {
	ts, dir := newTestServer(t, Options{})

	resp, body := do(t, http.MethodPut, ts.URL+"/api/pages/install", `{"content":"# Install\n\nRun it twice.\n"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "guides/install.md", body["path"])

	data, err := os.ReadFile(filepath.Join(dir, "docs", "guides", "install.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "twice")

	resp, body = do(t, http.MethodPut, ts.URL+"/api/pages/install", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "Content (required)")

	resp, _ = do(t, http.MethodPut, ts.URL+"/api/pages/install", `not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, http.MethodPut, ts.URL+"/api/pages/nowhere", `{"content":"x"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeletePage(t *testing.T) {
	ts, dir := newTestServer(t, Options{})

	resp, _ := do(t, http.MethodDelete, ts.URL+"/api/pages/install", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NoFileExists(t, filepath.Join(dir, "docs", "guides", "install.md"))

	resp, _ = do(t, http.MethodDelete, ts.URL+"/api/pages/install", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestValidate(t *testing.T) {
	ts, _ := newTestServer(t, Options{})

	tests := []struct {
		name   string
		body   string
		status int
		errMsg string
	}{
		{"section exists", `{"name":"guides","section":true}`, http.StatusConflict, "That section already exists!"},
		{"subsection exists", `{"name":"advanced","path":"guides","section":true}`, http.StatusConflict, "That sub-section already exists!"},
		{"page exists", `{"name":"install","path":"guides"}`, http.StatusConflict, "A page in that section already exists!"},
		{"clear", `{"name":"Deploy","path":"guides"}`, http.StatusOK, ""},
		{"missing name", `{"path":"guides"}`, http.StatusBadRequest, "Name (required)"},
		{"bad name", `{"name":"a/b"}`, http.StatusBadRequest, "invalid name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := do(t, http.MethodPost, ts.URL+"/api/validate", tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.errMsg != "" {
				assert.Contains(t, body["error"], tt.errMsg)
			} else {
				assert.Equal(t, true, body["valid"])
			}
		})
	}
}

func TestCreate(t *testing.T) {
	ts, dir := newTestServer(t, Options{})

	resp, body := do(t, http.MethodPost, ts.URL+"/api/nodes", `{"name":"Deploy","path":"Guides","content":"# Deploy\n"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "guides/deploy.md", body["path"])
	assert.FileExists(t, filepath.Join(dir, "docs", "guides", "deploy.md"))

	resp, _ = do(t, http.MethodPost, ts.URL+"/api/nodes", `{"name":"Deploy","path":"Guides"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = do(t, http.MethodPost, ts.URL+"/api/nodes", `{"name":"Orphan","path":"Nowhere"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDownload(t *testing.T) {
	ts, dir := newTestServer(t, Options{})

	resp, _ := do(t, http.MethodGet, ts.URL+"/api/download", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "no build output yet")

	out := filepath.Join(dir, "site")
	require.NoError(t, os.MkdirAll(out, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(out, "index.html"), []byte("<h1>Home</h1>"), 0644))

	r, err := http.Get(ts.URL + "/api/download")
	require.NoError(t, err)
	defer r.Body.Close()
	assert.Equal(t, http.StatusOK, r.StatusCode)
	assert.Equal(t, "application/zip", r.Header.Get("Content-Type"))

	data, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 1)
	assert.Equal(t, "index.html", zr.File[0].Name)
}

func TestAuth(t *testing.T) {
	ts, _ := newTestServer(t, Options{APIKey: "secret"})

	resp, _ := do(t, http.MethodGet, ts.URL+"/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode, "health is public")

	resp, body := do(t, http.MethodGet, ts.URL+"/api/tree", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "missing authorization", body["error"])

	resp, _ = do(t, http.MethodGet, ts.URL+"/api/tree", "", "Authorization", "Bearer wrong")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = do(t, http.MethodGet, ts.URL+"/api/tree", "", "Authorization", "Bearer secret")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMaxBody(t *testing.T) {
	ts, _ := newTestServer(t, Options{MaxBody: 16})
	resp, _ := do(t, http.MethodPut, ts.URL+"/api/pages/install", `{"content":"this body is far too long"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}
