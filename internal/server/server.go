// Package server implements the development preview server.
//
// The server renders JSON pages from a content directory on demand and
// serves the result over HTTP. It is meant for local authoring and CI
// previews, not for production traffic: pages are re-read from disk on
// every request so edits show up on refresh, with rendered artifacts
// cached by content hash.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/pagesmith/pagesmith/pkg/buildinfo"
	"github.com/pagesmith/pagesmith/pkg/cache"
	"github.com/pagesmith/pagesmith/pkg/errors"
	"github.com/pagesmith/pagesmith/pkg/pipeline"
	"github.com/pagesmith/pagesmith/pkg/ptree"
)

const shutdownTimeout = 10 * time.Second

// contentTypes maps output formats to response content types.
var contentTypes = map[string]string{
	pipeline.FormatHTML: "text/html; charset=utf-8",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatDOT:  "text/plain; charset=utf-8",
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
}

// Config configures the preview server.
type Config struct {
	// Addr is the listen address (default ":8080").
	Addr string

	// ContentDir is the directory holding page JSON files.
	ContentDir string

	// Cache stores rendered artifacts. Nil disables caching.
	Cache cache.Cache

	// Keys emits stable child keys as data-key attributes in HTML.
	Keys bool

	// Logger receives request and render logs.
	Logger *log.Logger
}

// Server renders pages from a content directory over HTTP.
type Server struct {
	cfg    Config
	runner *pipeline.Runner
	router *chi.Mux
	logger *log.Logger
}

// New creates a preview server for the given config.
func New(cfg Config) (*Server, error) {
	if err := errors.ValidateContentDir(cfg.ContentDir); err != nil {
		return nil, err
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	s := &Server{
		cfg:    cfg,
		runner: pipeline.NewRunner(cfg.Cache, nil, cfg.Logger),
		logger: cfg.Logger,
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(s.logger))

	r.Get("/healthz", s.handleHealth)
	r.Get("/", s.handleIndex)
	r.Get("/pages/{name}", s.handlePage)
	return r
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", s.cfg.Addr, "content", s.cfg.ContentDir)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// handleIndex lists the available pages as a rendered HTML page. The
// listing itself goes through the presentation tree, so the index
// exercises the same sink as real pages.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	names, err := s.pages()
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, err)
		return
	}

	h := ptree.Element("h1", "title")
	h.AddClass("page-title")
	h.Append(ptree.Text("text-0", "Pages"))

	list := ptree.Element("ul", "pages")
	for i, name := range names {
		a := ptree.Element("a", "link-0")
		a.SetAttr("href", "/pages/"+name)
		a.Append(ptree.Text("text-0", name))
		li := ptree.Element("li", ptree.ChildKey("page", i))
		li.Append(a)
		list.Append(li)
	}

	w.Header().Set("Content-Type", contentTypes[pipeline.FormatHTML])
	writeShell(w, "Pages", ptree.RenderHTML([]*ptree.Node{h, list}))
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := errors.ValidatePageName(name); err != nil {
		s.respondError(w, r, http.StatusBadRequest, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatHTML
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.respondError(w, r, http.StatusBadRequest, err)
		return
	}

	data, err := os.ReadFile(filepath.Join(s.cfg.ContentDir, name+".json"))
	if os.IsNotExist(err) {
		s.respondError(w, r, http.StatusNotFound,
			errors.New(errors.ErrCodePageNotFound, "page %q not found", name))
		return
	}
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), name, data, pipeline.Options{
		Formats: []string{format},
		Keys:    s.cfg.Keys,
		Refresh: r.URL.Query().Get("refresh") == "1",
		Logger:  s.logger,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, errors.ErrCodeInvalidPage) {
			status = http.StatusUnprocessableEntity
		}
		s.respondError(w, r, status, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	if format == pipeline.FormatHTML {
		writeShell(w, pageTitle(result.Page, name), result.Artifacts[format])
		return
	}
	_, _ = w.Write(result.Artifacts[format])
}

// pages lists the page names in the content directory, sorted.
func (s *Server) pages() ([]string, error) {
	entries, err := os.ReadDir(s.cfg.ContentDir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.logger.Error("request failed",
		"request_id", GetRequestID(r.Context()),
		"path", r.URL.Path,
		"status", status,
		"err", err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}

func pageTitle(p *pipeline.Page, fallback string) string {
	if p != nil && p.Title != "" {
		return p.Title
	}
	return fallback
}

// writeShell wraps rendered body markup in a minimal HTML document.
func writeShell(w http.ResponseWriter, title string, body []byte) {
	_, _ = w.Write([]byte("<!doctype html>\n<html>\n<head>\n<meta charset=\"utf-8\"/>\n<title>"))
	_, _ = w.Write(ptree.RenderHTML([]*ptree.Node{ptree.Text("title", title)}))
	_, _ = w.Write([]byte("</title>\n</head>\n<body>\n"))
	_, _ = w.Write(body)
	_, _ = w.Write([]byte("\n</body>\n</html>\n"))
}
