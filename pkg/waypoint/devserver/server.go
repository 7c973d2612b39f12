// Package devserver serves the browser build during development.
//
// Paths with a file extension are served from the root directory. Paths
// without one fall back to the index document, so a deep link such as
// /project/rome loads the app and the client-side router resolves it.
package devserver

import (
	"errors"
	"io/fs"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/trailmark/waypoint/pkg/waypoint/constants"
)

func init() {
	// Some systems ship a mime table without wasm, and browsers refuse to
	// stream-compile a module served as anything else.
	mime.AddExtensionType(".wasm", "application/wasm")
	mime.AddExtensionType(".js", "application/javascript")
	mime.AddExtensionType(".css", "text/css")
	mime.AddExtensionType(".svg", "image/svg+xml")
	mime.AddExtensionType(".webmanifest", "application/manifest+json")
}

// Options configures the server.
type Options struct {
	Root      fs.FS        // Static files: index.html, wasm_exec.js, the wasm bundle
	Index     string       // Index document name; defaults to index.html
	IconSVG   string       // Source for /icons/{size}.png; defaults to the app icon
	IconSizes []int        // Sizes that may be requested; defaults to constants.IconSizes
	Logger    *slog.Logger // Request log; defaults to slog.Default()
}

// Server is the development HTTP handler.
type Server struct {
	root      fs.FS
	index     string
	iconSVG   string
	iconSizes []int
	icons     *IconCache
	logger    *slog.Logger
	mux       chi.Router
}

// New builds the handler.
func New(opts Options) *Server {
	s := &Server{
		root:      opts.Root,
		index:     opts.Index,
		iconSVG:   opts.IconSVG,
		iconSizes: opts.IconSizes,
		icons:     NewIconCache(),
		logger:    opts.Logger,
	}
	if s.index == "" {
		s.index = constants.DefaultIndexFile
	}
	if s.iconSVG == "" {
		s.iconSVG = constants.AppIconSVG
	}
	if len(s.iconSizes) == 0 {
		s.iconSizes = constants.IconSizes
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Get("/icons/{file}", s.handleIcon)
	r.NotFound(s.handleStatic)
	s.mux = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		started := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(started),
		)
	})
}

func (s *Server) handleIcon(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")
	size, err := strconv.Atoi(strings.TrimSuffix(file, ".png"))
	if err != nil || !strings.HasSuffix(file, ".png") || !slices.Contains(s.iconSizes, size) {
		http.NotFound(w, r)
		return
	}

	icon, ok := s.icons.Get(size)
	if !ok {
		icon, err = RasterizeIcon(s.iconSVG, size)
		if err != nil {
			s.logger.Error("rasterize icon", "size", size, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.icons.Set(size, icon)
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(icon)
}

func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name == "" || path.Ext(name) == "" {
		s.serveFile(w, r, s.index)
		return
	}
	s.serveFile(w, r, name)
}

func (s *Server) serveFile(w http.ResponseWriter, r *http.Request, name string) {
	info, err := fs.Stat(s.root, name)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && info.IsDir()) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if name == s.index {
		w.Header().Set("Cache-Control", "no-cache")
	}
	http.ServeFileFS(w, r, s.root, name)
}
