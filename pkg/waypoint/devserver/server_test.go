package devserver

import (
	"bytes"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const indexHTML = `<!doctype html><main id="app"></main>`

func newTestServer() *Server {
	return New(Options{
		Root: fstest.MapFS{
			"index.html":   {Data: []byte(indexHTML)},
			"app.wasm":     {Data: []byte("\x00asm\x01\x00\x00\x00")},
			"wasm_exec.js": {Data: []byte("// runtime")},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func get(t *testing.T, s *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestServer_IndexFallback(t *testing.T) {
	s := newTestServer()
	for _, target := range []string{"/", "/about", "/project/rome", "/project/rome/walk/w1?x=1"} {
		rec := get(t, s, http.MethodGet, target)
		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.Equal(t, indexHTML, rec.Body.String(), target)
		assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"), target)
	}
}

func TestServer_StaticFiles(t *testing.T) {
	s := newTestServer()

	rec := get(t, s, http.MethodGet, "/app.wasm")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/wasm", rec.Header().Get("Content-Type"))

	rec = get(t, s, http.MethodGet, "/wasm_exec.js")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "// runtime", rec.Body.String())

	rec = get(t, s, http.MethodGet, "/missing.js")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(t, s, http.MethodPost, "/about")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestServer_Icons(t *testing.T) {
	s := newTestServer()

	rec := get(t, s, http.MethodGet, "/icons/192.png")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	cfg, err := png.DecodeConfig(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 192, cfg.Width)
	assert.Equal(t, 192, cfg.Height)

	again := get(t, s, http.MethodGet, "/icons/192.png")
	assert.Equal(t, rec.Body.Bytes(), again.Body.Bytes())
	assert.Equal(t, 1, s.icons.Len())

	for _, target := range []string{"/icons/100.png", "/icons/abc.png", "/icons/192.jpg"} {
		assert.Equal(t, http.StatusNotFound, get(t, s, http.MethodGet, target).Code, target)
	}
}

func TestRasterizeIcon_Errors(t *testing.T) {
	_, err := RasterizeIcon(`<svg xmlns="http://www.w3.org/2000/svg"/>`, 0)
	assert.ErrorIs(t, err, ErrIconSize)

	_, err = RasterizeIcon("not svg at all <", 32)
	assert.Error(t, err)
}
