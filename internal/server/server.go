package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wordgrid/wordgrid/pkg/errors"
	"github.com/wordgrid/wordgrid/pkg/pipeline"
	"github.com/wordgrid/wordgrid/pkg/puzzle"
	"github.com/wordgrid/wordgrid/pkg/render"
)

// Server is the HTTP API.
type Server struct {
	router chi.Router
	store  Store
	runner *pipeline.Runner
	logger *log.Logger
}

// NewServer creates a configured HTTP server.
func NewServer(store Store, runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	s := &Server{
		router: chi.NewRouter(),
		store:  store,
		runner: runner,
		logger: logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api/puzzles", func(r chi.Router) {
		r.Post("/", s.handleCreatePuzzle)
		r.Get("/", s.handleListPuzzles)
		r.Get("/{id}", s.handleGetPuzzle)
		r.Get("/{id}/render", s.handleRenderPuzzle)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// requestLogger logs one line per request with status and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start))
	})
}

// GET /healthz
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// createRequest is the POST /api/puzzles body.
type createRequest struct {
	Title       string   `json:"title,omitempty"`
	Words       []string `json:"words"`
	Size        int      `json:"size,omitempty"`
	Mode        string   `json:"mode,omitempty"`
	Seed        uint64   `json:"seed,omitempty"`
	MaxAttempts int      `json:"max_attempts,omitempty"`
	KeepOrder   bool     `json:"keep_order,omitempty"`
	Alphabet    string   `json:"alphabet,omitempty"`
}

// puzzleResponse pairs the stored record with the full puzzle.
type puzzleResponse struct {
	*Record
	Puzzle json.RawMessage `json:"puzzle"`
}

// POST /api/puzzles generates a puzzle and persists it.
func (s *Server) handleCreatePuzzle(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid request body"))
		return
	}

	p, err := s.runner.Generate(r.Context(), pipeline.Options{
		Title:       req.Title,
		Words:       req.Words,
		Size:        req.Size,
		Mode:        req.Mode,
		Seed:        req.Seed,
		MaxAttempts: req.MaxAttempts,
		KeepOrder:   req.KeepOrder,
		Alphabet:    req.Alphabet,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	data, err := puzzle.MarshalPuzzle(p)
	if err != nil {
		writeError(w, err)
		return
	}

	rec := &Record{
		Title:    p.Title,
		Size:     p.Size,
		Mode:     string(p.Mode),
		Seed:     p.Seed,
		Placed:   len(p.Placements),
		Unplaced: p.Unplaced,
		Data:     data,
	}
	if err := s.store.Save(r.Context(), rec); err != nil {
		writeError(w, err)
		return
	}

	s.logger.Info("puzzle created",
		"id", rec.ID,
		"size", rec.Size,
		"placed", rec.Placed,
		"unplaced", len(rec.Unplaced))

	writeJSON(w, http.StatusCreated, puzzleResponse{Record: rec, Puzzle: data})
}

// GET /api/puzzles lists stored puzzles, most recent first.
func (s *Server) handleListPuzzles(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// GET /api/puzzles/{id} fetches one puzzle with its grid.
func (s *Server) handleGetPuzzle(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, puzzleResponse{Record: rec, Puzzle: rec.Data})
}

// GET /api/puzzles/{id}/render?format=svg&solution=true re-renders a stored
// puzzle in any supported format.
func (s *Server) handleRenderPuzzle(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = render.FormatSVG
	}
	if err := render.ValidateFormat(format); err != nil {
		writeError(w, err)
		return
	}

	p, err := puzzle.UnmarshalPuzzle(rec.Data)
	if err != nil {
		writeError(w, err)
		return
	}

	var opts []render.Option
	if solution, _ := strconv.ParseBool(r.URL.Query().Get("solution")); solution {
		opts = append(opts, render.WithSolution())
	}

	out, err := render.Render(p, format, opts...)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType(format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

func contentType(format string) string {
	switch format {
	case render.FormatSVG:
		return "image/svg+xml"
	case render.FormatPNG:
		return "image/png"
	case render.FormatPDF:
		return "application/pdf"
	case render.FormatJSON:
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps structured error codes to HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch code := errors.GetCode(err); code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidSize, errors.ErrCodeInvalidWord,
		errors.ErrCodeInvalidAlphabet, errors.ErrCodeInvalidMode, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidPuzzle:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodePuzzleNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}

	writeJSON(w, status, map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}
